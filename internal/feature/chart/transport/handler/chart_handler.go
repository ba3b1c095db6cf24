// Package handler はchartフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"

	"kline_viewer/internal/api"
	"kline_viewer/internal/feature/chart/transport/http/dto"
	klineusecase "kline_viewer/internal/feature/kline/usecase"

	"github.com/gin-gonic/gin"
	"github.com/go-echarts/go-echarts/v2/charts"
)

// ChartUsecase はチャート構築のユースケースインターフェースです。
type ChartUsecase interface {
	GetChart(ctx context.Context, symbol string) (*charts.Kline, error)
}

// ChartHandler はチャートのJSON設定とHTMLページを返します。
type ChartHandler struct {
	uc ChartUsecase
}

// NewChartHandler はChartHandlerの新しいインスタンスを生成します。
func NewChartHandler(uc ChartUsecase) *ChartHandler {
	return &ChartHandler{uc: uc}
}

// GetOption はECharts optionをJSONで返します。
//
// エンドポイント例:
// GET /api/stocks/:symbol/chart
func (h *ChartHandler) GetOption(c *gin.Context) {
	symbol := c.Param("symbol")

	kline, err := h.uc.GetChart(c.Request.Context(), symbol)
	if err != nil {
		_ = c.Error(toAPIError(symbol, err))
		return
	}

	kline.Validate()
	c.JSON(http.StatusOK, dto.ChartResponse{Symbol: symbol, Option: kline.JSON()})
}

// GetPage はチャートを埋め込んだHTMLページを返します。
// 失敗した場合はチャート領域にエラーメッセージを表示します。
//
// エンドポイント例:
// GET /stocks/:symbol/chart
func (h *ChartHandler) GetPage(c *gin.Context) {
	symbol := c.Param("symbol")

	kline, err := h.uc.GetChart(c.Request.Context(), symbol)
	if err != nil {
		apiErr := toAPIError(symbol, err)
		h.renderError(c, symbol, apiErr.StatusCode)
		return
	}

	var buf bytes.Buffer
	if err := kline.Render(&buf); err != nil {
		slog.Error("failed to render chart", "symbol", symbol, "error", err)
		h.renderError(c, symbol, http.StatusInternalServerError)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func (h *ChartHandler) renderError(c *gin.Context, symbol string, status int) {
	var buf bytes.Buffer
	if err := errorPage.Execute(&buf, errorPageData{Symbol: symbol, Message: api.LoadFailedMessage}); err != nil {
		slog.Error("failed to render error page", "error", err)
		c.String(status, api.LoadFailedMessage)
		return
	}
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}

func toAPIError(symbol string, err error) api.Error {
	if errors.Is(err, klineusecase.ErrSymbolRequired) {
		return api.ErrSymbolRequired
	}
	slog.Error("failed to build chart", "symbol", symbol, "error", err)
	return api.ErrUpstream
}

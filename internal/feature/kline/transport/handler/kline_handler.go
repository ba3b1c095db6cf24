// Package handler はklineフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"kline_viewer/internal/api"
	"kline_viewer/internal/feature/kline/domain/entity"
	"kline_viewer/internal/feature/kline/transport/http/dto"
	"kline_viewer/internal/feature/kline/usecase"

	"github.com/gin-gonic/gin"
)

// KlineUsecase は時系列取得のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type KlineUsecase interface {
	GetSeries(ctx context.Context, symbol string) ([]entity.Point, error)
}

// KlineHandler は時系列データのHTTPリクエストを処理します。
type KlineHandler struct {
	uc KlineUsecase
}

// NewKlineHandler は指定されたusecaseでKlineHandlerの新しいインスタンスを生成します。
func NewKlineHandler(uc KlineUsecase) *KlineHandler {
	return &KlineHandler{uc: uc}
}

// GetKline は銘柄コードを受け取り、時系列データをJSONで返します。
//
// エンドポイント例:
// GET /api/stocks/:symbol/kline
func (h *KlineHandler) GetKline(c *gin.Context) {
	symbol := c.Param("symbol")

	points, err := h.uc.GetSeries(c.Request.Context(), symbol)
	if err != nil {
		_ = c.Error(toAPIError(symbol, err))
		return
	}

	out := dto.KlineResponse{Symbol: symbol, Data: make([]dto.PointResponse, 0, len(points))}
	for _, p := range points {
		out.Data = append(out.Data, dto.PointResponse{
			Date:   p.Date,
			Open:   p.Open,
			High:   p.High,
			Low:    p.Low,
			Close:  p.Close,
			Volume: p.Volume,
			MA20:   p.MA20,
			VolMA5: p.VolMA5,
			DIFF:   p.DIFF,
			DEA:    p.DEA,
			MACD:   p.MACD,
			K:      p.K,
			D:      p.D,
			J:      p.J,
		})
	}

	c.JSON(http.StatusOK, out)
}

// toAPIError はusecaseのエラーをHTTPレスポンス用のエラーに変換します。
func toAPIError(symbol string, err error) error {
	if errors.Is(err, usecase.ErrSymbolRequired) {
		return api.ErrSymbolRequired
	}
	slog.Error("failed to fetch kline", "symbol", symbol, "error", err)
	return api.ErrUpstream
}

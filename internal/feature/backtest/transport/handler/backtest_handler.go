// Package handler はbacktestフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"

	"kline_viewer/internal/api"
	"kline_viewer/internal/feature/backtest/domain/entity"
	"kline_viewer/internal/feature/backtest/report"
	"kline_viewer/internal/feature/backtest/transport/http/dto"
	"kline_viewer/internal/feature/backtest/usecase"

	"github.com/gin-gonic/gin"
)

// BacktestUsecase はバックテストのユースケースインターフェースです。
type BacktestUsecase interface {
	Run(ctx context.Context, req usecase.Request) (*entity.Run, error)
	ListRuns(ctx context.Context, symbol string, limit int) ([]entity.Run, error)
}

// BacktestHandler はバックテストのHTTPリクエストを処理します。
type BacktestHandler struct {
	uc BacktestUsecase
}

// NewBacktestHandler はBacktestHandlerの新しいインスタンスを生成します。
func NewBacktestHandler(uc BacktestUsecase) *BacktestHandler {
	return &BacktestHandler{uc: uc}
}

// Run はバックテストを実行して結果を返します。
//
// エンドポイント例:
// POST /api/backtest/run
// {"symbol":"600519","start_date":"20230101","end_date":"20231231","initial_capital":100000}
func (h *BacktestHandler) Run(c *gin.Context) {
	var req dto.RunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(err)
		return
	}

	run, err := h.uc.Run(c.Request.Context(), usecase.Request{
		Symbol:         req.Symbol,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		InitialCapital: req.InitialCapital,
	})
	if err != nil {
		_ = c.Error(toAPIError(req.Symbol, err))
		return
	}

	c.JSON(http.StatusOK, dto.NewRunResponse(run))
}

// GetPage はバックテストを実行し、資産推移チャートのHTMLページを返します。
// 実行結果はAPIからの実行と同じく保存されます。失敗時はステータスとメッセージだけを返します。
//
// エンドポイント例:
// GET /backtest/600519?start_date=20230101&end_date=20231231
func (h *BacktestHandler) GetPage(c *gin.Context) {
	symbol := c.Param("symbol")

	var q dto.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.String(http.StatusBadRequest, "invalid request")
		return
	}

	run, err := h.uc.Run(c.Request.Context(), usecase.Request{
		Symbol:         symbol,
		StartDate:      q.StartDate,
		EndDate:        q.EndDate,
		InitialCapital: q.InitialCapital,
	})
	if err != nil {
		status, msg := pageError(toAPIError(symbol, err))
		c.String(status, msg)
		return
	}

	var buf bytes.Buffer
	if err := report.EquityChart(run).Render(&buf); err != nil {
		slog.Error("failed to render equity chart", "symbol", symbol, "error", err)
		c.String(http.StatusInternalServerError, api.ErrInternal.Message)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// ListRuns は保存済みの実行を新しい順に返します。
//
// エンドポイント例:
// GET /api/backtest/runs?symbol=600519&limit=20
func (h *BacktestHandler) ListRuns(c *gin.Context) {
	var q dto.RunsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		_ = c.Error(err)
		return
	}

	runs, err := h.uc.ListRuns(c.Request.Context(), q.Symbol, q.Limit)
	if err != nil {
		slog.Error("failed to list backtest runs", "symbol", q.Symbol, "error", err)
		_ = c.Error(api.ErrInternal)
		return
	}

	out := make([]dto.RunSummary, 0, len(runs))
	for _, r := range runs {
		out = append(out, dto.NewRunSummary(r))
	}
	c.JSON(http.StatusOK, out)
}

func toAPIError(symbol string, err error) error {
	switch {
	case errors.Is(err, usecase.ErrSymbolRequired):
		return api.ErrSymbolRequired
	case errors.Is(err, usecase.ErrInvalidDateRange):
		return api.NewError(http.StatusBadRequest, usecase.ErrInvalidDateRange.Error())
	case errors.Is(err, usecase.ErrNoData):
		return api.ErrNoData
	case errors.Is(err, context.DeadlineExceeded):
		return err
	}
	slog.Error("backtest failed", "symbol", symbol, "error", err)
	return api.ErrUpstream
}

// pageError はtoAPIErrorの結果をHTMLページ用のステータスと本文にします。
func pageError(err error) (int, string) {
	var ae api.Error
	if errors.As(err, &ae) {
		return ae.StatusCode, ae.Message
	}
	return http.StatusGatewayTimeout, api.LoadFailedMessage
}

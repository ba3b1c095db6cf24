package dto

import (
	"time"

	"kline_viewer/internal/feature/backtest/domain/entity"
)

// RunRequest はバックテスト実行のリクエストボディです。
type RunRequest struct {
	Symbol         string  `json:"symbol" binding:"required"`
	StartDate      string  `json:"start_date" binding:"omitempty,len=8,numeric"`
	EndDate        string  `json:"end_date" binding:"omitempty,len=8,numeric"`
	InitialCapital float64 `json:"initial_capital" binding:"omitempty,gt=0"`
}

// PageQuery は資産推移ページのクエリパラメータです。銘柄はパスから受け取ります。
type PageQuery struct {
	StartDate      string  `form:"start_date" binding:"omitempty,len=8,numeric"`
	EndDate        string  `form:"end_date" binding:"omitempty,len=8,numeric"`
	InitialCapital float64 `form:"initial_capital" binding:"omitempty,gt=0"`
}

// RunResponse はバックテスト1回分の結果です。
type RunResponse struct {
	RunID          string               `json:"run_id"`
	Symbol         string               `json:"symbol"`
	StartDate      string               `json:"start_date"`
	EndDate        string               `json:"end_date"`
	InitialCapital float64              `json:"initial_capital"`
	CreatedAt      time.Time            `json:"created_at"`
	Stats          entity.Stats         `json:"stats"`
	EquityCurve    []entity.EquityPoint `json:"equity_curve"`
	Trades         []entity.Trade       `json:"trades"`
}

// RunSummary は履歴一覧の1行です（評価額の推移と売買明細は含めません）。
type RunSummary struct {
	RunID          string       `json:"run_id"`
	Symbol         string       `json:"symbol"`
	StartDate      string       `json:"start_date"`
	EndDate        string       `json:"end_date"`
	InitialCapital float64      `json:"initial_capital"`
	CreatedAt      time.Time    `json:"created_at"`
	Stats          entity.Stats `json:"stats"`
}

// RunsQuery は履歴一覧のクエリパラメータです。
type RunsQuery struct {
	Symbol string `form:"symbol"`
	Limit  int    `form:"limit" binding:"omitempty,min=1"`
}

// NewRunResponse はエンティティをレスポンスに変換します。
func NewRunResponse(r *entity.Run) RunResponse {
	return RunResponse{
		RunID:          r.ID,
		Symbol:         r.Symbol,
		StartDate:      r.StartDate,
		EndDate:        r.EndDate,
		InitialCapital: r.InitialCapital,
		CreatedAt:      r.CreatedAt,
		Stats:          r.Result.Stats,
		EquityCurve:    r.Result.EquityCurve,
		Trades:         r.Result.Trades,
	}
}

// NewRunSummary はエンティティを一覧用の行に変換します。
func NewRunSummary(r entity.Run) RunSummary {
	return RunSummary{
		RunID:          r.ID,
		Symbol:         r.Symbol,
		StartDate:      r.StartDate,
		EndDate:        r.EndDate,
		InitialCapital: r.InitialCapital,
		CreatedAt:      r.CreatedAt,
		Stats:          r.Result.Stats,
	}
}

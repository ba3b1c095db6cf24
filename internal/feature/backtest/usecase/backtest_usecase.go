// Package usecase はバックテストの実行、履歴の参照、全銘柄の一括実行を実装します。
package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"kline_viewer/internal/feature/backtest/domain/entity"
	"kline_viewer/internal/feature/backtest/engine"
	klineentity "kline_viewer/internal/feature/kline/domain/entity"

	"github.com/google/uuid"
)

const (
	DefaultStartDate = "20230101"
	DefaultEndDate   = "20231231"

	DefaultListLimit = 20
	MaxListLimit     = 100
)

// SeriesReader は銘柄の時系列を返します。
type SeriesReader interface {
	GetSeries(ctx context.Context, symbol string) ([]klineentity.Point, error)
}

// RunRepository はバックテスト実行結果の保存先です。
type RunRepository interface {
	Save(ctx context.Context, run *entity.Run) error
	// List は新しい順に最大 limit 件返します。symbol が空なら全銘柄が対象です。
	List(ctx context.Context, symbol string, limit int) ([]entity.Run, error)
}

// Request はバックテスト1回分のパラメータです。空の項目にはデフォルト値が入ります。
type Request struct {
	Symbol         string
	StartDate      string
	EndDate        string
	InitialCapital float64
}

// BacktestUsecase はバックテストのユースケースです。
type BacktestUsecase struct {
	series         SeriesReader
	runs           RunRepository
	commissionRate float64
	defaultCapital float64
	now            func() time.Time
}

// NewBacktestUsecase はBacktestUsecaseを生成します。
func NewBacktestUsecase(series SeriesReader, runs RunRepository, defaultCapital, commissionRate float64) *BacktestUsecase {
	if defaultCapital <= 0 {
		defaultCapital = engine.DefaultInitialCapital
	}
	return &BacktestUsecase{
		series:         series,
		runs:           runs,
		commissionRate: commissionRate,
		defaultCapital: defaultCapital,
		now:            time.Now,
	}
}

func (u *BacktestUsecase) normalize(req Request) (Request, error) {
	req.Symbol = strings.TrimSpace(req.Symbol)
	if req.Symbol == "" {
		return req, ErrSymbolRequired
	}
	if req.StartDate == "" {
		req.StartDate = DefaultStartDate
	}
	if req.EndDate == "" {
		req.EndDate = DefaultEndDate
	}
	if !validDate(req.StartDate) || !validDate(req.EndDate) || req.StartDate > req.EndDate {
		return req, ErrInvalidDateRange
	}
	if req.InitialCapital <= 0 {
		req.InitialCapital = u.defaultCapital
	}
	return req, nil
}

// Run は時系列を取得して期間で絞り込み、エンジンを実行して結果を保存します。
// 保存に失敗してもログに残すだけで、結果は返します。
func (u *BacktestUsecase) Run(ctx context.Context, req Request) (*entity.Run, error) {
	req, err := u.normalize(req)
	if err != nil {
		return nil, err
	}

	points, err := u.series.GetSeries(ctx, req.Symbol)
	if err != nil {
		return nil, fmt.Errorf("fetch series %s: %w", req.Symbol, err)
	}

	points = filterByDate(points, req.StartDate, req.EndDate)
	if len(points) == 0 {
		return nil, ErrNoData
	}

	result := engine.New(req.InitialCapital, u.commissionRate).Run(req.Symbol, points)

	run := &entity.Run{
		ID:             uuid.NewString(),
		Symbol:         req.Symbol,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		InitialCapital: req.InitialCapital,
		Result:         result,
		CreatedAt:      u.now().UTC(),
	}

	if u.runs != nil {
		if err := u.runs.Save(ctx, run); err != nil {
			slog.Warn("failed to save backtest run", "run_id", run.ID, "symbol", run.Symbol, "error", err)
		}
	}

	slog.Info("backtest finished",
		"run_id", run.ID,
		"symbol", run.Symbol,
		"points", len(points),
		"trades", result.Stats.TotalTrades,
		"total_return", result.Stats.TotalReturn,
	)
	return run, nil
}

// ListRuns は保存済みの実行を新しい順に返します。limit は 1..MaxListLimit に丸めます。
func (u *BacktestUsecase) ListRuns(ctx context.Context, symbol string, limit int) ([]entity.Run, error) {
	if u.runs == nil {
		return []entity.Run{}, nil
	}
	switch {
	case limit <= 0:
		limit = DefaultListLimit
	case limit > MaxListLimit:
		limit = MaxListLimit
	}
	return u.runs.List(ctx, strings.TrimSpace(symbol), limit)
}

package usecase

import (
	"context"
	"log/slog"

	"kline_viewer/internal/feature/backtest/domain/entity"
	symbolentity "kline_viewer/internal/feature/symbollist/domain/entity"
	"kline_viewer/internal/shared/ratelimiter"
)

// StockLister は一括実行の対象銘柄を返します。
type StockLister interface {
	ListStocks(ctx context.Context) ([]symbolentity.Stock, error)
}

// Runner は1銘柄分のバックテストを実行します（BacktestUsecaseが満たします）。
type Runner interface {
	Run(ctx context.Context, req Request) (*entity.Run, error)
}

// SweepUsecase は全銘柄に対してデフォルト条件のバックテストを順に実行します。
type SweepUsecase struct {
	stocks  StockLister
	runner  Runner
	limiter ratelimiter.RateLimiterInterface
}

// NewSweepUsecase はSweepUsecaseを生成します。
func NewSweepUsecase(stocks StockLister, runner Runner, limiter ratelimiter.RateLimiterInterface) *SweepUsecase {
	return &SweepUsecase{stocks: stocks, runner: runner, limiter: limiter}
}

// RunAll は上流の銘柄一覧を取得し、1銘柄ずつレートリミットを守りながら実行します。
// 個別の失敗はログに残して次の銘柄へ進みます。成功した件数を返します。
func (u *SweepUsecase) RunAll(ctx context.Context) (int, error) {
	stocks, err := u.stocks.ListStocks(ctx)
	if err != nil {
		return 0, err
	}

	ok := 0
	for _, s := range stocks {
		if err := ctx.Err(); err != nil {
			return ok, err
		}
		u.limiter.WaitIfNeeded()
		if _, err := u.runner.Run(ctx, Request{Symbol: s.Symbol}); err != nil {
			slog.Warn("sweep backtest failed", "symbol", s.Symbol, "error", err)
			continue
		}
		ok++
	}

	slog.Info("sweep finished", "stocks", len(stocks), "succeeded", ok)
	return ok, nil
}

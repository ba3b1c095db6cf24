// Command backtest は上流の株価APIから時系列を取得してバックテストを実行し、結果を表で表示します。
//
// 使い方:
//
//	backtest [-start 20230101] [-end 20231231] [-capital 100000] [-trades] [-save] [symbol ...]
//
// 銘柄を省略すると上流の一覧にある全銘柄を順に実行します。
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kline_viewer/internal/app/config"
	"kline_viewer/internal/app/di"
	"kline_viewer/internal/feature/backtest/domain/entity"
	"kline_viewer/internal/feature/backtest/report"
	backtestusecase "kline_viewer/internal/feature/backtest/usecase"
	klineusecase "kline_viewer/internal/feature/kline/usecase"
	symbollistusecase "kline_viewer/internal/feature/symbollist/usecase"
	"kline_viewer/internal/platform/db"
	"kline_viewer/internal/shared/ratelimiter"
)

func main() {
	var (
		start      = flag.String("start", backtestusecase.DefaultStartDate, "start date (YYYYMMDD)")
		end        = flag.String("end", backtestusecase.DefaultEndDate, "end date (YYYYMMDD)")
		capital    = flag.Float64("capital", 0, "initial capital (default from config)")
		showTrades = flag.Bool("trades", false, "print the trade list of every run")
		save       = flag.Bool("save", false, "store runs in the configured database")
	)
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = config.DefaultPath
	}
	cfg, err := config.Load(path)
	if err != nil {
		fatal("failed to load config", err)
	}
	if err := cfg.Validate(); err != nil {
		fatal("invalid config", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	stocks := di.NewStocksClient(cfg)

	var runs backtestusecase.RunRepository
	if *save {
		gdb, err := db.OpenDB(db.Config{
			Driver:     cfg.Database.Driver,
			SQLitePath: cfg.Database.SQLitePath,
			Host:       cfg.Database.Host,
			Port:       cfg.Database.Port,
			User:       cfg.Database.User,
			Password:   cfg.Database.Password,
			Name:       cfg.Database.Name,
		})
		if err != nil {
			fatal("failed to open database", err)
		}
		runs = di.NewRunRepository(nil, gdb)
	}

	uc := backtestusecase.NewBacktestUsecase(klineusecase.NewKlineUsecase(stocks), runs,
		cfg.Backtest.InitialCapital, cfg.Backtest.CommissionRate)

	symbols := flag.Args()
	if len(symbols) == 0 {
		list, err := symbollistusecase.NewSymbolUsecase(stocks).ListStocks(ctx)
		if err != nil {
			fatal("failed to list stocks", err)
		}
		for _, s := range list {
			symbols = append(symbols, s.Symbol)
		}
	}

	limiter := ratelimiter.NewRateLimiter(cfg.Backtest.RateLimit, time.Minute)
	results := make([]*entity.Run, 0, len(symbols))
	for _, symbol := range symbols {
		if ctx.Err() != nil {
			break
		}
		limiter.WaitIfNeeded()
		run, err := uc.Run(ctx, backtestusecase.Request{
			Symbol:         symbol,
			StartDate:      *start,
			EndDate:        *end,
			InitialCapital: *capital,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", symbol, err)
			continue
		}
		results = append(results, run)
	}

	report.WriteSummary(os.Stdout, results)
	if *showTrades {
		for _, r := range results {
			fmt.Println()
			report.WriteTrades(os.Stdout, r)
		}
	}

	if len(results) == 0 {
		os.Exit(1)
	}
}

func fatal(msg string, err error) {
	slog.Error(msg, "error", err)
	os.Exit(1)
}

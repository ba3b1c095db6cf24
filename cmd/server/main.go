package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kline_viewer/internal/app/config"
	"kline_viewer/internal/app/di"
	"kline_viewer/internal/app/router"
	backtesthandler "kline_viewer/internal/feature/backtest/transport/handler"
	backtestusecase "kline_viewer/internal/feature/backtest/usecase"
	charthandler "kline_viewer/internal/feature/chart/transport/handler"
	chartusecase "kline_viewer/internal/feature/chart/usecase"
	klinehandler "kline_viewer/internal/feature/kline/transport/handler"
	klineusecase "kline_viewer/internal/feature/kline/usecase"
	symbollisthandler "kline_viewer/internal/feature/symbollist/transport/handler"
	symbollistusecase "kline_viewer/internal/feature/symbollist/usecase"
	"kline_viewer/internal/platform/db"
	platformhandler "kline_viewer/internal/platform/http/handler"
	infraredis "kline_viewer/internal/platform/redis"
	"kline_viewer/internal/platform/scheduler"
	"kline_viewer/internal/shared/ratelimiter"

	redisv9 "github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = config.DefaultPath
	}
	cfg, err := config.Load(path)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	checks := map[string]platformhandler.Checker{}

	// Redis（任意）
	var rdb *redisv9.Client
	if cfg.RedisEnabled() {
		if tmp, err := infraredis.NewRedisClient(ctx, infraredis.Config{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
		}); err != nil {
			slog.Warn("Redis unavailable. Storing backtest runs in the database.", "error", err)
		} else {
			rdb = tmp
			checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
			defer func() {
				if err := rdb.Close(); err != nil {
					slog.Error("failed to close Redis client", "error", err)
				}
			}()
		}
	}

	// DB（Redisがない場合の保存先）
	var gdb *gorm.DB
	if rdb == nil {
		gdb, err = db.OpenDB(db.Config{
			Driver:     cfg.Database.Driver,
			SQLitePath: cfg.Database.SQLitePath,
			Host:       cfg.Database.Host,
			Port:       cfg.Database.Port,
			User:       cfg.Database.User,
			Password:   cfg.Database.Password,
			Name:       cfg.Database.Name,
		})
		if err != nil {
			slog.Warn("database unavailable. Backtest runs will not be stored.", "error", err)
		} else {
			checks["database"] = func(ctx context.Context) error {
				sqlDB, err := gdb.DB()
				if err != nil {
					return err
				}
				return sqlDB.PingContext(ctx)
			}
		}
	}

	// Repository
	stocks := di.NewStocksClient(cfg)
	runs := di.NewRunRepository(rdb, gdb)

	// Usecase
	symbolUC := symbollistusecase.NewSymbolUsecase(stocks)
	klineUC := klineusecase.NewKlineUsecase(stocks)
	chartUC := chartusecase.NewChartUsecase(klineUC)
	backtestUC := backtestusecase.NewBacktestUsecase(klineUC, runs, cfg.Backtest.InitialCapital, cfg.Backtest.CommissionRate)

	// 定期バックテスト（任意）
	if cfg.Backtest.SweepCron != "" {
		sweepUC := backtestusecase.NewSweepUsecase(symbolUC, backtestUC,
			ratelimiter.NewRateLimiter(cfg.Backtest.RateLimit, time.Minute))
		sched := scheduler.New(ctx, sweepUC)
		if err := sched.RegisterSweep(cfg.Backtest.SweepCron); err != nil {
			slog.Error("invalid sweep schedule", "error", err)
			os.Exit(1)
		}
		sched.Start()
		defer sched.Stop()
	}

	r := router.NewRouter(router.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		RequestTimeout: cfg.Server.RequestTimeout,
	}, router.Handlers{
		Health:   platformhandler.NewHealthHandler(checks),
		Symbol:   symbollisthandler.NewSymbolHandler(symbolUC),
		Kline:    klinehandler.NewKlineHandler(klineUC),
		Chart:    charthandler.NewChartHandler(chartUC),
		Backtest: backtesthandler.NewBacktestHandler(backtestUC),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", srv.Addr, "upstream", cfg.Upstream.BaseURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
}

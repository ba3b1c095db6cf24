// Package router はginのルーティングを組み立てます。
package router

import (
	"time"

	backtesthandler "kline_viewer/internal/feature/backtest/transport/handler"
	charthandler "kline_viewer/internal/feature/chart/transport/handler"
	klinehandler "kline_viewer/internal/feature/kline/transport/handler"
	symbollisthandler "kline_viewer/internal/feature/symbollist/transport/handler"
	platformhandler "kline_viewer/internal/platform/http/handler"
	"kline_viewer/internal/platform/http/middleware"

	"github.com/gin-gonic/gin"
)

// Options はルーター全体に効く設定です。
type Options struct {
	AllowedOrigins []string
	RequestTimeout time.Duration
}

// Handlers はルーターに登録するハンドラー群です。
type Handlers struct {
	Health   *platformhandler.HealthHandler
	Symbol   *symbollisthandler.SymbolHandler
	Kline    *klinehandler.KlineHandler
	Chart    *charthandler.ChartHandler
	Backtest *backtesthandler.BacktestHandler
}

func NewRouter(opts Options, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), middleware.CORS(opts.AllowedOrigins))

	// 導通確認用
	r.GET("/healthz", h.Health.Health)
	r.HEAD("/healthz", h.Health.Health)

	// チャート画面（HTML）。エラーも画面内に描画するため、JSONのエラーミドルウェアは通さない
	r.GET("/stocks/:symbol/chart", middleware.Timeout(opts.RequestTimeout), h.Chart.GetPage)
	r.GET("/backtest/:symbol", middleware.Timeout(opts.RequestTimeout), h.Backtest.GetPage)

	api := r.Group("/api")
	api.Use(middleware.Error(), middleware.Timeout(opts.RequestTimeout))
	{
		api.GET("/stocks", h.Symbol.List)
		api.GET("/stocks/:symbol/kline", h.Kline.GetKline)
		api.GET("/stocks/:symbol/chart", h.Chart.GetOption)

		api.POST("/backtest/run", h.Backtest.Run)
		api.GET("/backtest/runs", h.Backtest.ListRuns)
	}

	return r
}

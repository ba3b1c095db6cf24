package di

import (
	backtestadapters "kline_viewer/internal/feature/backtest/adapters"
	"kline_viewer/internal/feature/backtest/usecase"
	"kline_viewer/internal/platform/runstore"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// NewRunRepository creates a RunRepository implementation.
// If Redis is available, it returns a Redis-backed implementation.
// Otherwise, it falls back to the SQL database. With neither, runs are not stored.
func NewRunRepository(rdb *redis.Client, db *gorm.DB) usecase.RunRepository {
	if rdb != nil {
		return runstore.NewRunRedis(rdb, "backtest", runstore.DefaultMaxRuns)
	}
	if db != nil {
		return backtestadapters.NewRunGorm(db)
	}
	return nil
}

// Package adapters provides repository implementations for the backtest feature.
package adapters

import (
	"context"
	"fmt"

	"kline_viewer/internal/feature/backtest/domain/entity"
	"kline_viewer/internal/feature/backtest/usecase"

	"gorm.io/gorm"
)

// runGorm stores backtest runs in a SQL database (PostgreSQL or SQLite) through GORM.
type runGorm struct {
	db *gorm.DB
}

// Compile-time check to ensure runGorm implements RunRepository.
var _ usecase.RunRepository = (*runGorm)(nil)

// NewRunGorm creates a new instance of runGorm.
func NewRunGorm(db *gorm.DB) *runGorm {
	return &runGorm{db: db}
}

// Save inserts a run.
func (r *runGorm) Save(ctx context.Context, run *entity.Run) error {
	if err := r.db.WithContext(ctx).Create(RunModelFromEntity(run)).Error; err != nil {
		return fmt.Errorf("save run %s: %w", run.ID, err)
	}
	return nil
}

// List returns up to limit runs, newest first. An empty symbol lists every symbol.
func (r *runGorm) List(ctx context.Context, symbol string, limit int) ([]entity.Run, error) {
	q := r.db.WithContext(ctx).Model(&RunModel{})
	if symbol != "" {
		q = q.Where("symbol = ?", symbol)
	}

	var models []RunModel
	if err := q.Order("created_at DESC").Limit(limit).Find(&models).Error; err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}

	runs := make([]entity.Run, len(models))
	for i := range models {
		runs[i] = models[i].ToEntity()
	}
	return runs, nil
}

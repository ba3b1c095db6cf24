package adapters

import (
	"time"

	"kline_viewer/internal/feature/backtest/domain/entity"
)

// RunModel is the GORM model for the backtest_runs table.
// Stats are stored as columns for querying; the equity curve and trades are kept as JSON.
type RunModel struct {
	ID             string  `gorm:"primaryKey;size:36"`
	Symbol         string  `gorm:"index:idx_runs_symbol_created,priority:1;size:16;not null"`
	StartDate      string  `gorm:"size:8;not null"`
	EndDate        string  `gorm:"size:8;not null"`
	InitialCapital float64 `gorm:"not null"`
	TotalReturn    float64
	TotalTrades    int
	WinRate        float64
	MaxDrawdown    float64
	EquityCurve    []entity.EquityPoint `gorm:"serializer:json;type:text"`
	Trades         []entity.Trade       `gorm:"serializer:json;type:text"`
	CreatedAt      time.Time            `gorm:"index:idx_runs_symbol_created,priority:2;not null"`
}

// TableName returns the table name for GORM.
func (RunModel) TableName() string {
	return "backtest_runs"
}

// ToEntity converts the GORM model to a domain entity.
func (m *RunModel) ToEntity() entity.Run {
	curve := m.EquityCurve
	if curve == nil {
		curve = []entity.EquityPoint{}
	}
	trades := m.Trades
	if trades == nil {
		trades = []entity.Trade{}
	}
	return entity.Run{
		ID:             m.ID,
		Symbol:         m.Symbol,
		StartDate:      m.StartDate,
		EndDate:        m.EndDate,
		InitialCapital: m.InitialCapital,
		Result: entity.Result{
			Stats: entity.Stats{
				TotalReturn: m.TotalReturn,
				TotalTrades: m.TotalTrades,
				WinRate:     m.WinRate,
				MaxDrawdown: m.MaxDrawdown,
			},
			EquityCurve: curve,
			Trades:      trades,
		},
		CreatedAt: m.CreatedAt,
	}
}

// RunModelFromEntity converts a domain entity to a GORM model.
func RunModelFromEntity(r *entity.Run) *RunModel {
	return &RunModel{
		ID:             r.ID,
		Symbol:         r.Symbol,
		StartDate:      r.StartDate,
		EndDate:        r.EndDate,
		InitialCapital: r.InitialCapital,
		TotalReturn:    r.Result.Stats.TotalReturn,
		TotalTrades:    r.Result.Stats.TotalTrades,
		WinRate:        r.Result.Stats.WinRate,
		MaxDrawdown:    r.Result.Stats.MaxDrawdown,
		EquityCurve:    r.Result.EquityCurve,
		Trades:         r.Result.Trades,
		CreatedAt:      r.CreatedAt,
	}
}

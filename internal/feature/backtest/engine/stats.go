package engine

import "kline_viewer/internal/feature/backtest/domain/entity"

// CalculateStats は売買履歴と評価額の推移から集計値を計算します。
// 未決済のトレードは取引数にも勝率にも含めません。
func CalculateStats(trades []entity.Trade, curve []entity.EquityPoint) entity.Stats {
	if len(curve) == 0 {
		return entity.Stats{}
	}

	var stats entity.Stats

	first, last := curve[0].TotalValue, curve[len(curve)-1].TotalValue
	if first != 0 {
		stats.TotalReturn = (last - first) / first
	}

	wins := 0
	for _, t := range trades {
		if !t.Closed() {
			continue
		}
		stats.TotalTrades++
		if t.Profit > 0 {
			wins++
		}
	}
	if stats.TotalTrades > 0 {
		stats.WinRate = float64(wins) / float64(stats.TotalTrades)
	}

	stats.MaxDrawdown = maxDrawdown(curve)
	return stats
}

// maxDrawdown はピークからの下落率の最小値（0以下）を返します。
func maxDrawdown(curve []entity.EquityPoint) float64 {
	var (
		peak = curve[0].TotalValue
		mdd  float64
	)
	for _, p := range curve {
		if p.TotalValue > peak {
			peak = p.TotalValue
		}
		if peak <= 0 {
			continue
		}
		if dd := (p.TotalValue - peak) / peak; dd < mdd {
			mdd = dd
		}
	}
	return mdd
}

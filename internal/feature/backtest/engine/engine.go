// Package engine はKDJ/MACDの反転シグナルで売買する日足バックテストを実装します。
// 指標（DEA, J）は上流で計算済みの値をそのまま使います。
package engine

import (
	"math"
	"strings"

	"kline_viewer/internal/feature/backtest/domain/entity"
	klineentity "kline_viewer/internal/feature/kline/domain/entity"
)

const (
	DefaultInitialCapital = 100000.0
	DefaultCommissionRate = 0.0003

	// LotSize は売買単位（1手 = 100株）です。
	LotSize = 100

	stopLossRatio   = 0.95
	takeProfitRatio = 1.15
	kdjCeiling      = 80.0

	// 判定には当日・前日・前々日の3行が必要です。
	lookback = 2
)

// untradablePrefix は売買対象外の銘柄（科創板）のコード接頭辞です。
const untradablePrefix = "68"

// Engine は初期資金と手数料率を保持するバックテストエンジンです。
type Engine struct {
	InitialCapital float64
	CommissionRate float64
}

// New はエンジンを生成します。0以下の初期資金、負の手数料率はデフォルト値に置き換えます。
func New(initialCapital, commissionRate float64) *Engine {
	if initialCapital <= 0 {
		initialCapital = DefaultInitialCapital
	}
	if commissionRate < 0 {
		commissionRate = DefaultCommissionRate
	}
	return &Engine{InitialCapital: initialCapital, CommissionRate: commissionRate}
}

// Tradable は銘柄が売買対象かどうかを返します。
func Tradable(symbol string) bool {
	return !strings.HasPrefix(symbol, untradablePrefix)
}

// Run は時系列を古い順に走査し、売買と評価額の推移を記録します。
func (e *Engine) Run(symbol string, points []klineentity.Point) entity.Result {
	if !Tradable(symbol) {
		curve := make([]entity.EquityPoint, len(points))
		for i, p := range points {
			curve[i] = entity.EquityPoint{Date: p.Date, TotalValue: e.InitialCapital}
		}
		return entity.Result{EquityCurve: curve, Trades: []entity.Trade{}}
	}

	var (
		balance  = e.InitialCapital
		position = 0
		curve    = make([]entity.EquityPoint, 0, len(points))
		trades   = []entity.Trade{}
	)

	record := func(p klineentity.Point) {
		curve = append(curve, entity.EquityPoint{
			Date:       p.Date,
			TotalValue: balance + float64(position)*p.Close,
		})
	}

	for i, p := range points {
		if i < lookback {
			record(p)
			continue
		}

		w, ok := window(points, i)
		if !ok {
			record(p)
			continue
		}

		switch {
		case position > 0:
			last := &trades[len(trades)-1]
			reason, sell := sellSignal(p.Close, last.Price, w)
			if !sell {
				break
			}
			revenue := float64(position) * p.Close
			commission := revenue * e.CommissionRate
			balance += revenue - commission

			last.SellDate = p.Date
			last.SellPrice = p.Close
			last.SellReason = reason
			last.Profit = (p.Close-last.Price)*float64(position) - commission - last.Commission
			position = 0

		default:
			signal, buy := buySignal(w)
			if !buy {
				break
			}
			shares := e.maxShares(balance, p.Close)
			if shares <= 0 {
				break
			}
			cost := float64(shares) * p.Close
			commission := cost * e.CommissionRate
			balance -= cost + commission
			position = shares

			trades = append(trades, entity.Trade{
				BuyDate:    p.Date,
				Price:      p.Close,
				Shares:     shares,
				Commission: commission,
				Signal:     signal,
			})
		}

		record(p)
	}

	return entity.Result{
		Stats:       CalculateStats(trades, curve),
		EquityCurve: curve,
		Trades:      trades,
	}
}

// maxShares は手数料込みで買える最大株数を100株単位で返します。
func (e *Engine) maxShares(balance, price float64) int {
	costPerShare := price * (1 + e.CommissionRate)
	if costPerShare <= 0 || balance < costPerShare*LotSize {
		return 0
	}
	lots := math.Floor(balance / costPerShare / LotSize)
	return int(lots) * LotSize
}

// indicators は当日(0)・前日(1)・前々日(2)のDEAとJです。
type indicators struct {
	dea [3]float64
	j   [3]float64
}

// window は i, i-1, i-2 行の指標を取り出します。いずれかが欠損していれば false を返します。
func window(points []klineentity.Point, i int) (indicators, bool) {
	var w indicators
	for k := 0; k <= lookback; k++ {
		p := points[i-k]
		if p.DEA == nil || p.J == nil {
			return indicators{}, false
		}
		w.dea[k] = *p.DEA
		w.j[k] = *p.J
	}
	return w, true
}

// sellSignal は損切り、価格による利確、DEAの傾き鈍化の順に判定します。
func sellSignal(price, buyPrice float64, w indicators) (entity.SellReason, bool) {
	switch {
	case price <= buyPrice*stopLossRatio:
		return entity.SellStopLoss, true
	case price >= buyPrice*takeProfitRatio:
		return entity.SellTakeProfitPrice, true
	case w.dea[0]-w.dea[1] < w.dea[1]-w.dea[2]:
		return entity.SellTakeProfitMACD, true
	}
	return "", false
}

// buySignal はJまたはDEAのV字反転を判定します。両方成立した場合はKDJを優先します。
func buySignal(w indicators) (entity.Signal, bool) {
	kdj := w.j[1] <= kdjCeiling && w.j[0] > w.j[1] && w.j[1] < w.j[2]
	macd := w.dea[0] > w.dea[1] && w.dea[1] < w.dea[2]
	switch {
	case kdj:
		return entity.SignalKDJ, true
	case macd:
		return entity.SignalMACD, true
	}
	return "", false
}

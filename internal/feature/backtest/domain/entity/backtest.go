// Package entity はバックテストのドメインエンティティを定義します。
package entity

import "time"

// Signal は買いエントリーの根拠です。
type Signal string

const (
	SignalKDJ  Signal = "KDJ"
	SignalMACD Signal = "MACD"
)

// SellReason は決済の理由です。
type SellReason string

const (
	SellStopLoss        SellReason = "Stop Loss"
	SellTakeProfitPrice SellReason = "Take Profit (Price)"
	SellTakeProfitMACD  SellReason = "Take Profit (MACD Slope)"
)

// Trade は1回の売買です。決済前は SellDate が空で、Closed() は false を返します。
type Trade struct {
	BuyDate    string     `json:"buy_date"`
	Price      float64    `json:"price"`
	Shares     int        `json:"shares"`
	Commission float64    `json:"commission"` // 買い手数料
	Signal     Signal     `json:"signal"`
	SellDate   string     `json:"sell_date,omitempty"`
	SellPrice  float64    `json:"sell_price,omitempty"`
	SellReason SellReason `json:"sell_reason,omitempty"`
	Profit     float64    `json:"profit"`
}

// Closed は決済済みかどうかを返します。
func (t Trade) Closed() bool {
	return t.SellDate != ""
}

// EquityPoint はある取引日の評価額（現金 + 保有株の終値評価）です。
type EquityPoint struct {
	Date       string  `json:"date"`
	TotalValue float64 `json:"total_value"`
}

// Stats はバックテスト結果の集計値です。
type Stats struct {
	TotalReturn float64 `json:"total_return"`
	TotalTrades int     `json:"total_trades"`
	WinRate     float64 `json:"win_rate"`
	MaxDrawdown float64 `json:"max_drawdown"`
}

// Result はエンジン1回分の出力です。
type Result struct {
	Stats       Stats         `json:"stats"`
	EquityCurve []EquityPoint `json:"equity_curve"`
	Trades      []Trade       `json:"trades"`
}

// Run は保存されたバックテスト実行です。
type Run struct {
	ID             string
	Symbol         string
	StartDate      string
	EndDate        string
	InitialCapital float64
	Result         Result
	CreatedAt      time.Time
}

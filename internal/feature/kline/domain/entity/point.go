// Package entity defines the domain models for the kline feature.
package entity

// Point は日足1本分の価格と、上流で計算済みのテクニカル指標を表します。
// 指標は計算期間に満たない先頭部分では上流がnullを返すため、ポインタで保持します。
type Point struct {
	Date   string // 取引日 "YYYY-MM-DD"
	Open   float64
	Close  float64
	Low    float64
	High   float64
	Volume float64

	MA20   *float64 // 終値の20日移動平均
	VolMA5 *float64 // 出来高の5日移動平均
	MACD   *float64 // MACDヒストグラム 2*(DIFF-DEA)
	DIFF   *float64
	DEA    *float64
	K      *float64
	D      *float64
	J      *float64
}

// Rising は陽線（終値が始値以上）かどうかを返します。
func (p Point) Rising() bool {
	return p.Close >= p.Open
}

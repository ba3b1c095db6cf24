// Package builder は行形式の時系列を列形式に組み替え、複数グリッドのローソク足チャートを構築します。
package builder

import "kline_viewer/internal/feature/kline/domain/entity"

// Columns はチャートの各シリーズにそのまま渡せる列形式のデータです。
// すべてのスライスは入力と同じ長さで、同じインデックスは同じ取引日を指します。
type Columns struct {
	Dates   []string
	Candles [][4]float64 // [open, close, low, high]（EChartsの順序）
	Volumes []float64
	Rising  []bool // 終値 >= 始値

	MA20   []*float64
	VolMA5 []*float64
	MACD   []*float64
	DIFF   []*float64
	DEA    []*float64
	K      []*float64
	D      []*float64
	J      []*float64
}

// Len は行数を返します。
func (c Columns) Len() int {
	return len(c.Dates)
}

// Reshape は行形式の時系列を列形式に変換します。
func Reshape(points []entity.Point) Columns {
	n := len(points)
	cols := Columns{
		Dates:   make([]string, n),
		Candles: make([][4]float64, n),
		Volumes: make([]float64, n),
		Rising:  make([]bool, n),
		MA20:    make([]*float64, n),
		VolMA5:  make([]*float64, n),
		MACD:    make([]*float64, n),
		DIFF:    make([]*float64, n),
		DEA:     make([]*float64, n),
		K:       make([]*float64, n),
		D:       make([]*float64, n),
		J:       make([]*float64, n),
	}
	for i, p := range points {
		cols.Dates[i] = p.Date
		cols.Candles[i] = [4]float64{p.Open, p.Close, p.Low, p.High}
		cols.Volumes[i] = p.Volume
		cols.Rising[i] = p.Rising()
		cols.MA20[i] = p.MA20
		cols.VolMA5[i] = p.VolMA5
		cols.MACD[i] = p.MACD
		cols.DIFF[i] = p.DIFF
		cols.DEA[i] = p.DEA
		cols.K[i] = p.K
		cols.D[i] = p.D
		cols.J[i] = p.J
	}
	return cols
}

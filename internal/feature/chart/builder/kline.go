package builder

import (
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// A株の慣例に従い、上昇は赤、下落は緑で描きます。
const (
	UpColor   = "#ef232a"
	DownColor = "#14b143"
)

// emptyValue はEChartsが欠損として扱う値です。
const emptyValue = "-"

// グリッド（パネル）の並び。x軸とy軸のインデックスもこれに一致します。
const (
	GridPrice = iota
	GridVolume
	GridMACD
	GridKDJ
	gridCount
)

// Series names.
const (
	SeriesCandle = "K线"
	SeriesMA20   = "MA20"
	SeriesVolume = "VOL"
	SeriesVolMA5 = "VOL_MA5"
	SeriesMACD   = "MACD"
	SeriesDIFF   = "DIFF"
	SeriesDEA    = "DEA"
	SeriesK      = "K"
	SeriesD      = "D"
	SeriesJ      = "J"
)

// Build は4つのグリッドが1本の日付軸を共有するチャートを構築します。
//
//   - グリッド0: ローソク足 + MA20
//   - グリッド1: 出来高（陽線/陰線で色分け） + VOL_MA5
//   - グリッド2: MACDヒストグラム（符号で色分け） + DIFF + DEA
//   - グリッド3: K, D, J
func Build(title string, cols Columns) *charts.Kline {
	kline := charts.NewKLine()
	kline.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Width:     "100%",
			Height:    "860px",
		}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "3%"}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:        opts.Bool(true),
			Trigger:     "axis",
			AxisPointer: &opts.AxisPointer{Type: "cross"},
		}),
		charts.WithGridOpts(
			opts.Grid{Left: "8%", Right: "4%", Top: "8%", Height: "40%"},
			opts.Grid{Left: "8%", Right: "4%", Top: "52%", Height: "12%"},
			opts.Grid{Left: "8%", Right: "4%", Top: "68%", Height: "12%"},
			opts.Grid{Left: "8%", Right: "4%", Top: "84%", Height: "12%"},
		),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", GridIndex: GridPrice}),
		charts.WithYAxisOpts(opts.YAxis{GridIndex: GridPrice, Scale: opts.Bool(true)}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      50,
			End:        100,
			XAxisIndex: []int{GridPrice, GridVolume, GridMACD, GridKDJ},
		}),
	)

	for grid := GridVolume; grid < gridCount; grid++ {
		kline.ExtendXAxis(opts.XAxis{Type: "category", GridIndex: grid, Data: cols.Dates})
		kline.ExtendYAxis(opts.YAxis{GridIndex: grid, Scale: opts.Bool(true), SplitNumber: 2})
	}

	kline.SetXAxis(cols.Dates).
		AddSeries(SeriesCandle, candleData(cols.Candles),
			charts.WithItemStyleOpts(opts.ItemStyle{
				Color:        UpColor,
				Color0:       DownColor,
				BorderColor:  UpColor,
				BorderColor0: DownColor,
			}),
		)

	kline.Overlap(
		lines(GridPrice, named{SeriesMA20, cols.MA20}),
		bars(GridVolume, SeriesVolume, volumeData(cols.Volumes, cols.Rising)),
		lines(GridVolume, named{SeriesVolMA5, cols.VolMA5}),
		bars(GridMACD, SeriesMACD, macdData(cols.MACD)),
		lines(GridMACD, named{SeriesDIFF, cols.DIFF}, named{SeriesDEA, cols.DEA}),
		lines(GridKDJ, named{SeriesK, cols.K}, named{SeriesD, cols.D}, named{SeriesJ, cols.J}),
	)
	return kline
}

type named struct {
	name   string
	values []*float64
}

// lines は指定グリッドに折れ線シリーズをまとめたチャートを返します。
func lines(grid int, series ...named) *charts.Line {
	line := charts.NewLine()
	for _, s := range series {
		line.AddSeries(s.name, lineData(s.values),
			charts.WithLineChartOpts(opts.LineChart{
				Smooth:     opts.Bool(true),
				XAxisIndex: grid,
				YAxisIndex: grid,
			}),
		)
	}
	return line
}

func bars(grid int, name string, data []opts.BarData) *charts.Bar {
	bar := charts.NewBar()
	bar.AddSeries(name, data,
		charts.WithBarChartOpts(opts.BarChart{XAxisIndex: grid, YAxisIndex: grid}),
	)
	return bar
}

func candleData(candles [][4]float64) []opts.KlineData {
	out := make([]opts.KlineData, len(candles))
	for i, c := range candles {
		out[i] = opts.KlineData{Value: c}
	}
	return out
}

func lineData(values []*float64) []opts.LineData {
	out := make([]opts.LineData, len(values))
	for i, v := range values {
		out[i] = opts.LineData{Value: valueOrEmpty(v)}
	}
	return out
}

func volumeData(volumes []float64, rising []bool) []opts.BarData {
	out := make([]opts.BarData, len(volumes))
	for i, v := range volumes {
		color := DownColor
		if i < len(rising) && rising[i] {
			color = UpColor
		}
		out[i] = opts.BarData{Value: v, ItemStyle: &opts.ItemStyle{Color: color}}
	}
	return out
}

func macdData(values []*float64) []opts.BarData {
	out := make([]opts.BarData, len(values))
	for i, v := range values {
		if v == nil {
			out[i] = opts.BarData{Value: emptyValue}
			continue
		}
		color := DownColor
		if *v >= 0 {
			color = UpColor
		}
		out[i] = opts.BarData{Value: *v, ItemStyle: &opts.ItemStyle{Color: color}}
	}
	return out
}

func valueOrEmpty(v *float64) any {
	if v == nil {
		return emptyValue
	}
	return *v
}

package report

import (
	"fmt"

	"kline_viewer/internal/feature/backtest/domain/entity"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// 資産推移チャートのシリーズ名
const (
	SeriesEquity = "总资产"
	SeriesBuys   = "买入"
	SeriesSells  = "卖出"
)

const (
	buyColor  = "#ef232a"
	sellColor = "#14b143"
)

// EquityChart は評価額の推移を折れ線で描き、売買した日に印を重ねたチャートを返します。
// 印の高さはその日の評価額です。
func EquityChart(r *entity.Run) *charts.Line {
	title := r.Symbol + " 回测资产曲线"
	s := r.Result.Stats

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Width:     "100%",
			Height:    "560px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: title,
			Subtitle: fmt.Sprintf("%s-%s  收益率 %s  交易次数 %d  胜率 %s  最大回撤 %s",
				r.StartDate, r.EndDate, percent(s.TotalReturn), s.TotalTrades, percent(s.WinRate), percent(s.MaxDrawdown)),
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "8%"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category"}),
		charts.WithYAxisOpts(opts.YAxis{Scale: opts.Bool(true)}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "inside", Start: 0, End: 100}),
	)

	dates := make([]string, len(r.Result.EquityCurve))
	values := make([]opts.LineData, len(r.Result.EquityCurve))
	valueAt := make(map[string]float64, len(r.Result.EquityCurve))
	for i, p := range r.Result.EquityCurve {
		dates[i] = p.Date
		values[i] = opts.LineData{Value: p.TotalValue}
		valueAt[p.Date] = p.TotalValue
	}

	line.SetXAxis(dates).
		AddSeries(SeriesEquity, values,
			charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}),
		)

	buys := make([]opts.ScatterData, 0, len(r.Result.Trades))
	sells := make([]opts.ScatterData, 0, len(r.Result.Trades))
	for _, tr := range r.Result.Trades {
		buys = append(buys, marker(tr.BuyDate, valueAt[tr.BuyDate], "triangle"))
		if tr.Closed() {
			sells = append(sells, marker(tr.SellDate, valueAt[tr.SellDate], "pin"))
		}
	}
	line.Overlap(
		scatter(SeriesBuys, buys, buyColor),
		scatter(SeriesSells, sells, sellColor),
	)
	return line
}

func marker(date string, value float64, symbol string) opts.ScatterData {
	return opts.ScatterData{Value: []interface{}{date, value}, Symbol: symbol, SymbolSize: 12}
}

func scatter(name string, data []opts.ScatterData, color string) *charts.Scatter {
	sc := charts.NewScatter()
	sc.AddSeries(name, data, charts.WithItemStyleOpts(opts.ItemStyle{Color: color}))
	return sc
}

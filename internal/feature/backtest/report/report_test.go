package report

import (
	"bytes"
	"testing"

	"kline_viewer/internal/feature/backtest/domain/entity"

	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRun() *entity.Run {
	return &entity.Run{
		Symbol:         "600519",
		StartDate:      "20230101",
		EndDate:        "20231231",
		InitialCapital: 100000,
		Result: entity.Result{
			Stats: entity.Stats{TotalReturn: 0.1234, TotalTrades: 2, WinRate: 0.5, MaxDrawdown: -0.0821},
			EquityCurve: []entity.EquityPoint{
				{Date: "2023-01-03", TotalValue: 100000},
				{Date: "2023-12-29", TotalValue: 112340},
			},
			Trades: []entity.Trade{
				{BuyDate: "2023-02-01", Price: 10, Shares: 9900, Signal: entity.SignalKDJ,
					SellDate: "2023-03-01", SellPrice: 11.6, SellReason: entity.SellTakeProfitPrice, Profit: 15800.5},
				{BuyDate: "2023-05-01", Price: 12, Shares: 9600, Signal: entity.SignalMACD,
					SellDate: "2023-05-10", SellPrice: 11.3, SellReason: entity.SellStopLoss, Profit: -6800.25},
				{BuyDate: "2023-12-20", Price: 11, Shares: 10000, Signal: entity.SignalMACD},
			},
		},
	}
}

func TestWriteSummary(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	WriteSummary(&buf, []*entity.Run{sampleRun()})
	out := buf.String()

	assert.Contains(t, out, "600519")
	assert.Contains(t, out, "20230101-20231231")
	assert.Contains(t, out, "112340.00")
	assert.Contains(t, out, "12.34%")
	assert.Contains(t, out, "50.00%")
	assert.Contains(t, out, "-8.21%")
}

func TestWriteSummary_EmptyCurveFallsBackToCapital(t *testing.T) {
	t.Parallel()

	run := &entity.Run{Symbol: "688001", StartDate: "20230101", EndDate: "20231231", InitialCapital: 50000}

	var buf bytes.Buffer
	WriteSummary(&buf, []*entity.Run{run})

	assert.Contains(t, buf.String(), "50000.00")
}

func TestWriteTrades(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	WriteTrades(&buf, sampleRun())
	out := buf.String()

	assert.Contains(t, out, "Take Profit (Price)")
	assert.Contains(t, out, "Stop Loss")
	assert.Contains(t, out, "15800.50")
	assert.Contains(t, out, "-6800.25")
	assert.Contains(t, out, "2023-12-20")
	// 合計は決済済みのみ
	assert.Contains(t, out, "9000.25")
}

func TestEquityChart(t *testing.T) {
	t.Parallel()

	run := sampleRun()
	run.Result.EquityCurve = []entity.EquityPoint{
		{Date: "2023-02-01", TotalValue: 100000},
		{Date: "2023-03-01", TotalValue: 115800},
		{Date: "2023-05-01", TotalValue: 115800},
		{Date: "2023-05-10", TotalValue: 109000},
		{Date: "2023-12-20", TotalValue: 109000},
	}

	line := EquityChart(run)

	require.Len(t, line.MultiSeries, 3)
	assert.Equal(t, SeriesEquity, line.MultiSeries[0].Name)
	assert.Equal(t, SeriesBuys, line.MultiSeries[1].Name)
	assert.Equal(t, SeriesSells, line.MultiSeries[2].Name)

	values, ok := line.MultiSeries[0].Data.([]opts.LineData)
	require.True(t, ok)
	require.Len(t, values, 5)
	assert.Equal(t, 115800.0, values[1].Value)

	buys, ok := line.MultiSeries[1].Data.([]opts.ScatterData)
	require.True(t, ok)
	require.Len(t, buys, 3)
	assert.Equal(t, []interface{}{"2023-05-01", 115800.0}, buys[1].Value)

	// 未決済のトレードには売りの印を付けない
	sells, ok := line.MultiSeries[2].Data.([]opts.ScatterData)
	require.True(t, ok)
	require.Len(t, sells, 2)
	assert.Equal(t, []interface{}{"2023-05-10", 109000.0}, sells[1].Value)

	var buf bytes.Buffer
	require.NoError(t, line.Render(&buf))
	assert.Contains(t, buf.String(), "600519 回测资产曲线")
}

func TestEquityChart_EmptyRun(t *testing.T) {
	t.Parallel()

	line := EquityChart(&entity.Run{Symbol: "688001"})

	require.Len(t, line.MultiSeries, 3)
	values, ok := line.MultiSeries[0].Data.([]opts.LineData)
	require.True(t, ok)
	assert.Empty(t, values)
}

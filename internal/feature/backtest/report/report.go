// Package report はバックテスト結果を端末向けの表とブラウザ向けの資産推移チャートに整形します。
package report

import (
	"fmt"
	"io"

	"kline_viewer/internal/feature/backtest/domain/entity"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// WriteSummary は銘柄ごとの集計値を1行ずつ書き出します。
func WriteSummary(w io.Writer, runs []*entity.Run) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"代码", "期间", "初始资金", "最终资产", "收益率", "交易次数", "胜率", "最大回撤"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
		{Number: 7, Align: text.AlignRight},
		{Number: 8, Align: text.AlignRight},
	})

	for _, r := range runs {
		s := r.Result.Stats
		t.AppendRow(table.Row{
			r.Symbol,
			r.StartDate + "-" + r.EndDate,
			fmt.Sprintf("%.2f", r.InitialCapital),
			fmt.Sprintf("%.2f", finalValue(r)),
			percent(s.TotalReturn),
			s.TotalTrades,
			percent(s.WinRate),
			percent(s.MaxDrawdown),
		})
	}
	t.Render()
}

// WriteTrades は1回分の売買明細を書き出します。未決済のトレードは売りの列が空になります。
func WriteTrades(w io.Writer, r *entity.Run) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle(r.Symbol)
	t.AppendHeader(table.Row{"买入日", "买入价", "股数", "信号", "卖出日", "卖出价", "原因", "盈亏"})

	var total float64
	for _, tr := range r.Result.Trades {
		if !tr.Closed() {
			t.AppendRow(table.Row{tr.BuyDate, fmt.Sprintf("%.2f", tr.Price), tr.Shares, tr.Signal, "", "", "", ""})
			continue
		}
		total += tr.Profit
		t.AppendRow(table.Row{
			tr.BuyDate,
			fmt.Sprintf("%.2f", tr.Price),
			tr.Shares,
			tr.Signal,
			tr.SellDate,
			fmt.Sprintf("%.2f", tr.SellPrice),
			tr.SellReason,
			fmt.Sprintf("%.2f", tr.Profit),
		})
	}
	t.AppendFooter(table.Row{"", "", "", "", "", "", "合计", fmt.Sprintf("%.2f", total)})
	t.Render()
}

func finalValue(r *entity.Run) float64 {
	curve := r.Result.EquityCurve
	if len(curve) == 0 {
		return r.InitialCapital
	}
	return curve[len(curve)-1].TotalValue
}

func percent(v float64) string {
	return fmt.Sprintf("%.2f%%", v*100)
}

package usecase

import (
	"testing"

	"kline_viewer/internal/feature/symbollist/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestFilter(t *testing.T) {
	t.Parallel()

	stocks := []entity.Stock{
		{Symbol: "600519", Name: "贵州茅台"},
		{Symbol: "300750", Name: "宁德时代"},
		{Symbol: "000333", Name: "美的集团"},
		{Symbol: "BYD", Name: "Byd Company"},
	}

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "blank query keeps everything in order", query: "   ", want: []string{"600519", "300750", "000333", "BYD"}},
		{name: "substring inside symbol", query: "07", want: []string{"300750"}},
		{name: "substring inside name", query: "时代", want: []string{"300750"}},
		{name: "matches symbol or name", query: "byd", want: []string{"BYD"}},
		{name: "query is trimmed", query: " 333 ", want: []string{"000333"}},
		{name: "upper-case query", query: "COMPANY", want: []string{"BYD"}},
		{name: "nothing matches", query: "999999", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Filter(stocks, tt.query)
			symbols := make([]string, 0, len(got))
			for _, s := range got {
				symbols = append(symbols, s.Symbol)
			}
			assert.Equal(t, tt.want, symbols)
		})
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	stocks := []entity.Stock{{Symbol: "600519", Name: "贵州茅台"}, {Symbol: "000858", Name: "五粮液"}}
	original := append([]entity.Stock(nil), stocks...)

	_ = Filter(stocks, "000")

	assert.Equal(t, original, stocks)
}

func TestFilter_NilInput(t *testing.T) {
	t.Parallel()

	got := Filter(nil, "x")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

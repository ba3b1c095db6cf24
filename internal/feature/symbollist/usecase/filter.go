package usecase

import (
	"strings"

	"kline_viewer/internal/feature/symbollist/domain/entity"
)

// Filter returns the stocks whose symbol or name contains query, ignoring case.
// Surrounding whitespace in query is ignored and a blank query matches everything.
// The input slice is never modified and the result keeps the input order.
func Filter(stocks []entity.Stock, query string) []entity.Stock {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]entity.Stock, 0, len(stocks))
	for _, s := range stocks {
		if q == "" ||
			strings.Contains(strings.ToLower(s.Symbol), q) ||
			strings.Contains(strings.ToLower(s.Name), q) {
			out = append(out, s)
		}
	}
	return out
}

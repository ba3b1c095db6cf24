package usecase

import (
	"strings"
	"time"

	"kline_viewer/internal/feature/kline/domain/entity"
)

const dateLayout = "20060102"

// compactDate は "2023-01-05" や "2023/01/05 00:00:00" を "20230105" に正規化します。
func compactDate(s string) string {
	s = strings.NewReplacer("-", "", "/", "").Replace(strings.TrimSpace(s))
	if len(s) > len(dateLayout) {
		s = s[:len(dateLayout)]
	}
	return s
}

func validDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

// filterByDate は [start, end] に含まれる行だけを元の順序で返します。
func filterByDate(points []entity.Point, start, end string) []entity.Point {
	out := make([]entity.Point, 0, len(points))
	for _, p := range points {
		d := compactDate(p.Date)
		if d >= start && d <= end {
			out = append(out, p)
		}
	}
	return out
}

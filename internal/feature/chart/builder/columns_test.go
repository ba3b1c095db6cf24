package builder

import (
	"testing"

	"kline_viewer/internal/feature/kline/domain/entity"

	"github.com/stretchr/testify/assert"
)

func f(v float64) *float64 { return &v }

func samplePoints() []entity.Point {
	return []entity.Point{
		{Date: "2024-01-02", Open: 10, Close: 11, Low: 9, High: 12, Volume: 1000, K: f(50), D: f(50), J: f(50)},
		{Date: "2024-01-03", Open: 11, Close: 10.5, Low: 10, High: 13, Volume: 1500,
			MA20: f(10.4), VolMA5: f(1200), MACD: f(-0.2), DIFF: f(0.1), DEA: f(0.2), K: f(45), D: f(48), J: f(39)},
		{Date: "2024-01-04", Open: 10.5, Close: 10.5, Low: 10.1, High: 10.9, Volume: 800,
			MA20: f(10.45), VolMA5: f(1100), MACD: f(0.3), DIFF: f(0.35), DEA: f(0.2), K: f(55), D: f(50), J: f(65)},
	}
}

func TestReshape(t *testing.T) {
	t.Parallel()

	cols := Reshape(samplePoints())

	assert.Equal(t, 3, cols.Len())
	assert.Equal(t, []string{"2024-01-02", "2024-01-03", "2024-01-04"}, cols.Dates)
	// [open, close, low, high]
	assert.Equal(t, [][4]float64{{10, 11, 9, 12}, {11, 10.5, 10, 13}, {10.5, 10.5, 10.1, 10.9}}, cols.Candles)
	assert.Equal(t, []float64{1000, 1500, 800}, cols.Volumes)
	assert.Equal(t, []bool{true, false, true}, cols.Rising)

	assert.Nil(t, cols.MA20[0])
	assert.Equal(t, 10.4, *cols.MA20[1])
	assert.Nil(t, cols.VolMA5[0])
	assert.Equal(t, 1100.0, *cols.VolMA5[2])
	assert.Equal(t, -0.2, *cols.MACD[1])
	assert.Equal(t, 0.35, *cols.DIFF[2])
	assert.Equal(t, 0.2, *cols.DEA[1])
	assert.Equal(t, 50.0, *cols.K[0])
	assert.Equal(t, 48.0, *cols.D[1])
	assert.Equal(t, 65.0, *cols.J[2])
}

func TestReshape_AllColumnsAligned(t *testing.T) {
	t.Parallel()

	cols := Reshape(samplePoints())
	n := cols.Len()

	for name, l := range map[string]int{
		"candles": len(cols.Candles), "volumes": len(cols.Volumes), "rising": len(cols.Rising),
		"ma20": len(cols.MA20), "vol_ma5": len(cols.VolMA5), "macd": len(cols.MACD),
		"diff": len(cols.DIFF), "dea": len(cols.DEA), "k": len(cols.K), "d": len(cols.D), "j": len(cols.J),
	} {
		assert.Equal(t, n, l, "column %s must have the same length as dates", name)
	}
}

func TestReshape_Empty(t *testing.T) {
	t.Parallel()

	cols := Reshape(nil)

	assert.Equal(t, 0, cols.Len())
	assert.NotNil(t, cols.Dates)
	assert.Empty(t, cols.Candles)
}

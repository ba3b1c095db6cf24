package usecase_test

import (
	"context"
	"errors"
	"testing"

	"kline_viewer/internal/feature/chart/usecase"
	"kline_viewer/internal/feature/kline/domain/entity"

	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockSeriesReader struct {
	GetSeriesFunc func(ctx context.Context, symbol string) ([]entity.Point, error)
}

func (m *mockSeriesReader) GetSeries(ctx context.Context, symbol string) ([]entity.Point, error) {
	return m.GetSeriesFunc(ctx, symbol)
}

func TestChartUsecase_GetChart(t *testing.T) {
	t.Parallel()

	t.Run("success: builds chart from series", func(t *testing.T) {
		t.Parallel()

		reader := &mockSeriesReader{GetSeriesFunc: func(ctx context.Context, symbol string) ([]entity.Point, error) {
			assert.Equal(t, "000001", symbol)
			return []entity.Point{
				{Date: "2024-01-02", Open: 10, Close: 11, Low: 9, High: 12, Volume: 100},
				{Date: "2024-01-03", Open: 11, Close: 10, Low: 9.5, High: 11.5, Volume: 200},
			}, nil
		}}
		uc := usecase.NewChartUsecase(reader)

		kline, err := uc.GetChart(context.Background(), "000001")

		require.NoError(t, err)
		require.Len(t, kline.MultiSeries, 10)
		candles, ok := kline.MultiSeries[0].Data.([]opts.KlineData)
		require.True(t, ok)
		assert.Len(t, candles, 2)
		assert.Equal(t, "000001", kline.Title.Title)
	})

	t.Run("error: propagates series error", func(t *testing.T) {
		t.Parallel()

		wantErr := errors.New("stocksapi http 503")
		uc := usecase.NewChartUsecase(&mockSeriesReader{GetSeriesFunc: func(ctx context.Context, symbol string) ([]entity.Point, error) {
			return nil, wantErr
		}})

		kline, err := uc.GetChart(context.Background(), "000001")

		assert.ErrorIs(t, err, wantErr)
		assert.Nil(t, kline)
	})
}

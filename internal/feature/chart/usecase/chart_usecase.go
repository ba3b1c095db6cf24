// Package usecase は時系列を取得してチャート設定を組み立てるユースケースを実装します。
package usecase

import (
	"context"

	"kline_viewer/internal/feature/chart/builder"
	"kline_viewer/internal/feature/kline/domain/entity"

	"github.com/go-echarts/go-echarts/v2/charts"
)

// SeriesReader は銘柄の時系列を返します（klineフィーチャーのusecaseが満たします）。
type SeriesReader interface {
	GetSeries(ctx context.Context, symbol string) ([]entity.Point, error)
}

// ChartUsecase はチャート構築のユースケースです。
type ChartUsecase struct {
	series SeriesReader
}

// NewChartUsecase はChartUsecaseの新しいインスタンスを生成します。
func NewChartUsecase(series SeriesReader) *ChartUsecase {
	return &ChartUsecase{series: series}
}

// GetChart は時系列を取得し、列形式に組み替えてチャートを構築します。
func (u *ChartUsecase) GetChart(ctx context.Context, symbol string) (*charts.Kline, error) {
	points, err := u.series.GetSeries(ctx, symbol)
	if err != nil {
		return nil, err
	}
	return builder.Build(symbol, builder.Reshape(points)), nil
}

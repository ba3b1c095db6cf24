// Package usecase は時系列（ローソク足と計算済み指標）取得のビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"strings"

	"kline_viewer/internal/feature/kline/domain/entity"
)

// ErrSymbolRequired は銘柄コードが空の場合に返されます。
var ErrSymbolRequired = errors.New("symbol is required")

// SeriesRepository は銘柄ごとの時系列の取得元（上流の株価API）を抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type SeriesRepository interface {
	GetKline(ctx context.Context, symbol string) ([]entity.Point, error)
}

// KlineUsecase は時系列取得のユースケースです。
type KlineUsecase struct {
	series SeriesRepository
}

// NewKlineUsecase はKlineUsecaseの新しいインスタンスを生成します。
func NewKlineUsecase(series SeriesRepository) *KlineUsecase {
	return &KlineUsecase{series: series}
}

// GetSeries は指定された銘柄の時系列を上流から取得します。
// 銘柄が選択されるたびに取得し直し、結果は受信順のまま返します。
func (u *KlineUsecase) GetSeries(ctx context.Context, symbol string) ([]entity.Point, error) {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return nil, ErrSymbolRequired
	}
	return u.series.GetKline(ctx, symbol)
}

// Package usecase implements the business logic for symbol-list operations.
package usecase

import (
	"context"

	"kline_viewer/internal/feature/symbollist/domain/entity"
)

// StockRepository abstracts the source of the stock list (the upstream stocks API).
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type StockRepository interface {
	ListStocks(ctx context.Context) ([]entity.Stock, error)
}

// SymbolUsecase provides business logic for the stock list.
type SymbolUsecase struct {
	repo StockRepository
}

// NewSymbolUsecase creates a new SymbolUsecase with the given repository.
func NewSymbolUsecase(r StockRepository) *SymbolUsecase {
	return &SymbolUsecase{repo: r}
}

// ListStocks returns every stock the upstream API lists, in upstream order.
func (u *SymbolUsecase) ListStocks(ctx context.Context) ([]entity.Stock, error) {
	return u.repo.ListStocks(ctx)
}

// Search fetches the stock list and keeps only the entries matching query.
// An empty query returns the whole list.
func (u *SymbolUsecase) Search(ctx context.Context, query string) ([]entity.Stock, error) {
	stocks, err := u.repo.ListStocks(ctx)
	if err != nil {
		return nil, err
	}
	return Filter(stocks, query), nil
}

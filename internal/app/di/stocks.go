// Package di provides dependency injection factories for creating application components.
package di

import (
	"kline_viewer/internal/app/config"
	"kline_viewer/internal/platform/externalapi/stocksapi"
	infrahttp "kline_viewer/internal/platform/http"
)

// NewStocksClient creates a fully configured upstream stocks API client with its HTTP client.
func NewStocksClient(cfg *config.Config) *stocksapi.Client {
	httpClient := infrahttp.NewHTTPClient(infrahttp.ClientOptions{Timeout: cfg.Upstream.Timeout})
	return stocksapi.NewClient(stocksapi.Config{
		BaseURL: cfg.Upstream.BaseURL,
		Timeout: cfg.Upstream.Timeout,
	}, httpClient)
}

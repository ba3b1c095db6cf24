// Package dto defines data transfer objects for the symbollist HTTP API.
package dto

// StockItem represents a stock in the API response.
type StockItem struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

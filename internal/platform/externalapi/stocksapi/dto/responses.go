// Package dto は株価APIレスポンスのデータ転送オブジェクトを定義します。
package dto

// StockItem は /stocks/list が返す配列の要素です。
type StockItem struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// KlineResponse は /stocks/{symbol}/kline のレスポンスです。
type KlineResponse struct {
	Symbol string      `json:"symbol"`
	Data   []PointItem `json:"data"`
}

// PointItem は時系列1行分です。指標は上流で計算済みで、未計算の行はnullになります。
type PointItem struct {
	Date   string   `json:"date"`
	Open   float64  `json:"open"`
	High   float64  `json:"high"`
	Low    float64  `json:"low"`
	Close  float64  `json:"close"`
	Volume float64  `json:"volume"`
	MA20   *float64 `json:"ma20"`
	VolMA5 *float64 `json:"vol_ma5"`
	DIFF   *float64 `json:"diff"`
	DEA    *float64 `json:"dea"`
	MACD   *float64 `json:"macd"`
	K      *float64 `json:"k"`
	D      *float64 `json:"d"`
	J      *float64 `json:"j"`
}

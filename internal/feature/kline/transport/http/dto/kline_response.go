// Package dto defines data transfer objects for the kline HTTP API.
package dto

// KlineResponse は時系列のレスポンスDTOです。
type KlineResponse struct {
	Symbol string          `json:"symbol"`
	Data   []PointResponse `json:"data"`
}

// PointResponse は時系列1行分です。未計算の指標はnullのまま返します。
type PointResponse struct {
	Date   string   `json:"date"`   // 日付
	Open   float64  `json:"open"`   // 始値
	High   float64  `json:"high"`   // 高値
	Low    float64  `json:"low"`    // 安値
	Close  float64  `json:"close"`  // 終値
	Volume float64  `json:"volume"` // 出来高
	MA20   *float64 `json:"ma20"`
	VolMA5 *float64 `json:"vol_ma5"`
	DIFF   *float64 `json:"diff"`
	DEA    *float64 `json:"dea"`
	MACD   *float64 `json:"macd"`
	K      *float64 `json:"k"`
	D      *float64 `json:"d"`
	J      *float64 `json:"j"`
}

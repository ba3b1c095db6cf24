package dto

// ChartResponse はECharts optionをそのまま埋め込んだレスポンスです。
type ChartResponse struct {
	Symbol string         `json:"symbol"`
	Option map[string]any `json:"option"`
}

// Package stocksapi は株価APIサーバー（/stocks/list, /stocks/{symbol}/kline）のクライアントを提供します。
package stocksapi

import "time"

// Config は株価APIクライアントの設定を保持します。
type Config struct {
	BaseURL string        // APIのベースURL（API_BASE、例: "http://localhost:8000"）
	Timeout time.Duration // HTTPリクエストタイムアウト
}

// Package api はHTTP APIで共有するレスポンス型とエラー型を定義します。
package api

import "net/http"

// LoadFailedMessage は上流APIからの取得に失敗したときに画面へ表示する固定メッセージです。
const LoadFailedMessage = "数据加载失败，请稍后重试"

// Error はHTTPステータスコードを伴うアプリケーションエラーです。
// ハンドラーが c.Error() に積むと、エラーミドルウェアがこのステータスでレスポンスします。
type Error struct {
	StatusCode int
	Message    string
}

// NewError は指定されたステータスとメッセージでErrorを生成します。
func NewError(statusCode int, message string) Error {
	return Error{StatusCode: statusCode, Message: message}
}

func (e Error) Error() string {
	return e.Message
}

var (
	// ErrUpstream は上流の株価APIが失敗した場合のエラーです。
	ErrUpstream = NewError(http.StatusBadGateway, LoadFailedMessage)
	// ErrSymbolRequired は銘柄コードが空の場合のエラーです。
	ErrSymbolRequired = NewError(http.StatusBadRequest, "symbol is required")
	// ErrNoData は指定期間にデータが存在しない場合のエラーです。
	ErrNoData = NewError(http.StatusNotFound, "no data found for the specified parameters")
	// ErrInternal は詳細を外に出さない内部エラーです。
	ErrInternal = NewError(http.StatusInternalServerError, "internal server error")
)

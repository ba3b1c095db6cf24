package api

// ErrorResponse はエラー時のJSONレスポンスです。
type ErrorResponse struct {
	Error  string       `json:"error"`
	Fields []FieldError `json:"fields,omitempty"`
}

// FieldError はリクエストのバリデーションエラー1件分を表します。
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

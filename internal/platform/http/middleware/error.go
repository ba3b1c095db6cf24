// Package middleware はAPIルートで共有するginミドルウェアを提供します。
package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"kline_viewer/internal/api"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Error はハンドラーが c.Error() で積んだ最初のエラーをJSONレスポンスに変換します。
//
//   - リクエストの期限切れ: 504（画面に出す固定メッセージ）
//   - validator.ValidationErrors: 400（フィールドごとのメッセージ付き）
//   - 壊れたJSON、数値に変換できないクエリ: 400
//   - api.Error: そのステータスコード
//   - それ以外: 500
func Error() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		if errors.Is(c.Request.Context().Err(), context.DeadlineExceeded) {
			c.AbortWithStatusJSON(http.StatusGatewayTimeout, api.ErrorResponse{Error: api.LoadFailedMessage})
			return
		}

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors[0].Err

		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			fields := make([]api.FieldError, 0, len(ve))
			for _, fe := range ve {
				fields = append(fields, api.FieldError{Field: fe.Field(), Message: fe.Error()})
			}
			c.AbortWithStatusJSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request", Fields: fields})
			return
		}

		if malformedInput(err) {
			c.AbortWithStatusJSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
			return
		}

		var ae api.Error
		if errors.As(err, &ae) {
			c.AbortWithStatusJSON(ae.StatusCode, api.ErrorResponse{Error: ae.Message})
			return
		}

		slog.Error("unhandled request error", "path", c.FullPath(), "error", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
	}
}

func malformedInput(err error) bool {
	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
		numErr    *strconv.NumError
	)
	return errors.As(err, &syntaxErr) ||
		errors.As(err, &typeErr) ||
		errors.As(err, &numErr) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrUnexpectedEOF)
}

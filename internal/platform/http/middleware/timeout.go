package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
)

// Timeout はリクエストのコンテキストに期限を設定します。
// 上流API呼び出しはこのコンテキストを使うため、期限を過ぎると打ち切られ Error() が504を返します。
func Timeout(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

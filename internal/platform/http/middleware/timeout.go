package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
)

// Timeout はリクエストのcontextに期限を設定します。
// 上流呼び出しやDB呼び出しはこのcontextを引き継ぐため、期限を超えると失敗し、
// ErrorHandlerが504に変換します。ハンドラーは同じgoroutineで実行されます。
func Timeout(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if d <= 0 {
			c.Next()
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

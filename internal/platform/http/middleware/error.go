// Package middleware はルーター全体で使うginミドルウェアを提供します。
package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/sujalsuyash/NASDAQ-stock-market/internal/api"
	"github.com/sujalsuyash/NASDAQ-stock-market/internal/shared/apperror"
)

// MsgTimeout はリクエストの期限切れ時に返すメッセージです。
const MsgTimeout = "request timed out"

// ErrorHandler はハンドラーがc.Errorで積んだエラーをステータスコードと
// {"error": "..."} 形式のJSONに変換します。
// 既にレスポンスが書き込まれている場合（ストリーミング途中の失敗など）はログのみ出力します。
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		if c.Writer.Written() {
			logrus.WithFields(logrus.Fields{
				"path":   c.FullPath(),
				"status": c.Writer.Status(),
				"bytes":  c.Writer.Size(),
				"error":  err,
			}).Error("request failed after response was written")
			return
		}

		// 期限切れは分類前のエラーにのみ適用し、400/409など分類済みのエラーは上書きしない
		if errors.Is(err, context.DeadlineExceeded) {
			logrus.WithFields(logrus.Fields{"path": c.FullPath(), "error": err}).Warn("request deadline exceeded")
			c.AbortWithStatusJSON(http.StatusGatewayTimeout, api.ErrorResponse{Error: MsgTimeout})
			return
		}

		status := apperror.StatusCode(err)
		entry := logrus.WithFields(logrus.Fields{
			"path":   c.FullPath(),
			"status": status,
			"error":  err,
		})
		if status >= http.StatusInternalServerError {
			entry.Error("request failed")
		} else {
			entry.Info("request rejected")
		}

		c.AbortWithStatusJSON(status, api.ErrorResponse{Error: apperror.PublicMessage(err)})
	}
}

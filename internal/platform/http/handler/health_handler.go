// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sujalsuyash/NASDAQ-stock-market/internal/api"
)

// Health は /healthz を処理します。上流APIやDBには問い合わせず、プロセスの生存のみを返します。
// HEADは200、OPTIONSは204、それ以外は {"status":"ok"} を返します。
func Health(c *gin.Context) {
	c.Header("Cache-Control", "no-store")

	switch c.Request.Method {
	case http.MethodHead:
		c.Status(http.StatusOK)
	case http.MethodOptions:
		c.Status(http.StatusNoContent)
	default:
		c.JSON(http.StatusOK, api.HealthResponse{Status: "ok"})
	}
}

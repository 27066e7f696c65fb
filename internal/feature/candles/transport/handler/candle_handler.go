// Package handler はcandlesフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sujalsuyash/NASDAQ-stock-market/internal/api"
	"github.com/sujalsuyash/NASDAQ-stock-market/internal/feature/candles/domain/entity"
)

// CandlesUsecase はローソク足データ操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type CandlesUsecase interface {
	GetCandles(ctx context.Context, symbol string) ([]entity.Candle, error)
}

// CandlesHandler はローソク足データのHTTPリクエストを処理します。
type CandlesHandler struct {
	uc CandlesUsecase
}

// NewCandlesHandler は指定されたusecaseでCandlesHandlerの新しいインスタンスを生成します。
func NewCandlesHandler(uc CandlesUsecase) *CandlesHandler {
	return &CandlesHandler{uc: uc}
}

// GetCandlesHandler は銘柄コードを受け取り、直近6か月の日足をJSONで返します。
// エラーはc.Errorに積み、ErrorHandlerミドルウェアがステータスに変換します。
//
// エンドポイント例:
// GET /api/candles?symbol=AAPL
func (h *CandlesHandler) GetCandlesHandler(c *gin.Context) {
	candles, err := h.uc.GetCandles(c.Request.Context(), c.Query("symbol"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	// データをフォーマット（上流の欠損値はnullのまま返す）
	out := make([]api.Candle, 0, len(candles))
	for _, x := range candles {
		out = append(out, api.Candle{
			T: x.Timestamp,
			O: x.Open,
			H: x.High,
			L: x.Low,
			C: x.Close,
			V: x.Volume,
		})
	}

	c.JSON(http.StatusOK, out)
}

// Package handler はmarketフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/sujalsuyash/NASDAQ-stock-market/internal/api"
	"github.com/sujalsuyash/NASDAQ-stock-market/internal/feature/market/domain/entity"
)

// MarketUsecase はマーケットデータ取得のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type MarketUsecase interface {
	Search(ctx context.Context, query string) ([]entity.SearchMatch, error)
	Profile(ctx context.Context, symbol string) (entity.Profile, error)
	Quote(ctx context.Context, symbol string) (entity.Quote, error)
	Summary(ctx context.Context) entity.MarketSummary
	Logo(ctx context.Context, rawURL string) (entity.Image, error)
}

// MarketHandler は銘柄検索・株価・指数サマリー・ロゴのHTTPリクエストを処理します。
type MarketHandler struct {
	uc MarketUsecase
}

// NewMarketHandler は指定されたusecaseでMarketHandlerの新しいインスタンスを生成します。
func NewMarketHandler(uc MarketUsecase) *MarketHandler {
	return &MarketHandler{uc: uc}
}

// Search は銘柄を検索します。
//
// エンドポイント例:
// GET /api/search?q=apple
func (h *MarketHandler) Search(c *gin.Context) {
	matches, err := h.uc.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	out := api.SearchResponse{Result: make([]api.SearchMatch, 0, len(matches))}
	for _, m := range matches {
		out.Result = append(out.Result, api.SearchMatch{
			Description:   m.Description,
			DisplaySymbol: m.DisplaySymbol,
			Symbol:        m.Symbol,
			Type:          m.Type,
		})
	}

	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, out)
}

// Profile は企業プロフィールを返します。未知の銘柄では空オブジェクトを返します。
//
// エンドポイント例:
// GET /api/profile?symbol=AAPL
func (h *MarketHandler) Profile(c *gin.Context) {
	p, err := h.uc.Profile(c.Request.Context(), c.Query("symbol"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, api.Profile{
		Country:              optString(p.Country),
		Currency:             optString(p.Currency),
		Exchange:             optString(p.Exchange),
		FinnhubIndustry:      optString(p.FinnhubIndustry),
		Ipo:                  optString(p.IPO),
		Logo:                 optString(p.Logo),
		MarketCapitalization: p.MarketCapitalization,
		Name:                 optString(p.Name),
		Phone:                optString(p.Phone),
		ShareOutstanding:     p.ShareOutstanding,
		Ticker:               optString(p.Ticker),
		Weburl:               optString(p.WebURL),
	})
}

// Quote は最新株価を返します。
//
// エンドポイント例:
// GET /api/quote?symbol=AAPL
func (h *MarketHandler) Quote(c *gin.Context) {
	q, err := h.uc.Quote(c.Request.Context(), c.Query("symbol"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, api.Quote{
		C:  q.Current,
		D:  q.Change,
		Dp: q.PercentChange,
		H:  q.High,
		L:  q.Low,
		O:  q.Open,
		Pc: q.PreviousClose,
		T:  q.Timestamp,
	})
}

// Summary は主要3指数のサマリーを返します。取得できなかった指数はnullになります。
//
// エンドポイント例:
// GET /api/market
func (h *MarketHandler) Summary(c *gin.Context) {
	s := h.uc.Summary(c.Request.Context())
	c.JSON(http.StatusOK, api.MarketSummary{
		Nasdaq:   toIndexSummary(s.Nasdaq),
		Sp500:    toIndexSummary(s.SP500),
		Dowjones: toIndexSummary(s.DowJones),
	})
}

// Logo は許可されたホストのロゴ画像を中継します。
//
// エンドポイント例:
// GET /api/logo?url=https://static2.finnhub.io/file/publicdatany/finnhubimage/stock_logo/AAPL.png
func (h *MarketHandler) Logo(c *gin.Context) {
	img, err := h.uc.Logo(c.Request.Context(), c.Query("url"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	defer func() {
		if err := img.Body.Close(); err != nil {
			logrus.WithError(err).Warn("failed to close logo body")
		}
	}()

	c.DataFromReader(http.StatusOK, img.ContentLength, img.ContentType, img.Body, nil)
}

func toIndexSummary(s *entity.IndexSummary) *api.IndexSummary {
	if s == nil {
		return nil
	}
	return &api.IndexSummary{
		Price:   s.Price,
		Change:  s.Change.StringFixed(2),
		Percent: s.Percent.StringFixed(2),
	}
}

// optString は空文字をnilに変換し、JSONでフィールドごと省略されるようにします。
func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

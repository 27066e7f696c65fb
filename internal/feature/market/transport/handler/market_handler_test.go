package handler_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sujalsuyash/NASDAQ-stock-market/internal/feature/market/domain/entity"
	"github.com/sujalsuyash/NASDAQ-stock-market/internal/feature/market/transport/handler"
	"github.com/sujalsuyash/NASDAQ-stock-market/internal/platform/http/middleware"
	"github.com/sujalsuyash/NASDAQ-stock-market/internal/shared/apperror"
)

// mockMarketUsecase はMarketUsecaseインターフェースのモック実装です。
type mockMarketUsecase struct {
	SearchFunc  func(ctx context.Context, query string) ([]entity.SearchMatch, error)
	ProfileFunc func(ctx context.Context, symbol string) (entity.Profile, error)
	QuoteFunc   func(ctx context.Context, symbol string) (entity.Quote, error)
	SummaryFunc func(ctx context.Context) entity.MarketSummary
	LogoFunc    func(ctx context.Context, rawURL string) (entity.Image, error)
}

func (m *mockMarketUsecase) Search(ctx context.Context, query string) ([]entity.SearchMatch, error) {
	return m.SearchFunc(ctx, query)
}

func (m *mockMarketUsecase) Profile(ctx context.Context, symbol string) (entity.Profile, error) {
	return m.ProfileFunc(ctx, symbol)
}

func (m *mockMarketUsecase) Quote(ctx context.Context, symbol string) (entity.Quote, error) {
	return m.QuoteFunc(ctx, symbol)
}

func (m *mockMarketUsecase) Summary(ctx context.Context) entity.MarketSummary {
	return m.SummaryFunc(ctx)
}

func (m *mockMarketUsecase) Logo(ctx context.Context, rawURL string) (entity.Image, error) {
	return m.LogoFunc(ctx, rawURL)
}

func newRouter(uc handler.MarketUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handler.NewMarketHandler(uc)

	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.GET("/api/search", h.Search)
	r.GET("/api/profile", h.Profile)
	r.GET("/api/quote", h.Quote)
	r.GET("/api/market", h.Summary)
	r.GET("/api/logo", h.Logo)
	return r
}

func do(r *gin.Engine, url string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	r.ServeHTTP(w, req)
	return w
}

func f64(v float64) *float64 { return &v }

func TestMarketHandler_Search(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		mockSearch     func(ctx context.Context, query string) ([]entity.SearchMatch, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success",
			url:  "/api/search?q=apple",
			mockSearch: func(ctx context.Context, query string) ([]entity.SearchMatch, error) {
				assert.Equal(t, "apple", query)
				return []entity.SearchMatch{{Description: "APPLE INC", DisplaySymbol: "AAPL", Symbol: "AAPL", Type: "Common Stock"}}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"result":[{"description":"APPLE INC","displaySymbol":"AAPL","symbol":"AAPL","type":"Common Stock"}]}`,
		},
		{
			name: "empty result",
			url:  "/api/search?q=a",
			mockSearch: func(ctx context.Context, query string) ([]entity.SearchMatch, error) {
				return []entity.SearchMatch{}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"result":[]}`,
		},
		{
			name: "upstream failure",
			url:  "/api/search?q=apple",
			mockSearch: func(ctx context.Context, query string) ([]entity.SearchMatch, error) {
				return nil, &apperror.UpstreamError{Provider: "finnhub", StatusCode: 500}
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"upstream request failed"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRouter(&mockMarketUsecase{SearchFunc: tt.mockSearch})
			w := do(r, tt.url)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			if w.Code == http.StatusOK {
				assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
			}
		})
	}
}

func TestMarketHandler_Profile(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		mockProfile    func(ctx context.Context, symbol string) (entity.Profile, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success",
			url:  "/api/profile?symbol=AAPL",
			mockProfile: func(ctx context.Context, symbol string) (entity.Profile, error) {
				assert.Equal(t, "AAPL", symbol)
				return entity.Profile{Name: "Apple Inc", Ticker: "AAPL", WebURL: "https://www.apple.com/", MarketCapitalization: f64(100.5)}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"name":"Apple Inc","ticker":"AAPL","weburl":"https://www.apple.com/","marketCapitalization":100.5}`,
		},
		{
			name: "unknown symbol gives empty object",
			url:  "/api/profile?symbol=NOPE",
			mockProfile: func(ctx context.Context, symbol string) (entity.Profile, error) {
				return entity.Profile{}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{}`,
		},
		{
			name: "missing symbol",
			url:  "/api/profile",
			mockProfile: func(ctx context.Context, symbol string) (entity.Profile, error) {
				return entity.Profile{}, apperror.New(apperror.ErrMissingParameter, "missing symbol")
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"missing symbol"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRouter(&mockMarketUsecase{ProfileFunc: tt.mockProfile})
			w := do(r, tt.url)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestMarketHandler_Quote(t *testing.T) {
	r := newRouter(&mockMarketUsecase{
		QuoteFunc: func(ctx context.Context, symbol string) (entity.Quote, error) {
			return entity.Quote{Current: 10, Change: f64(-0.5), High: 11, Low: 9, Open: 10.5, PreviousClose: 10.5, Timestamp: 1700000000}, nil
		},
	})

	w := do(r, "/api/quote?symbol=AAPL")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"c":10,"d":-0.5,"dp":null,"h":11,"l":9,"o":10.5,"pc":10.5,"t":1700000000}`, w.Body.String())
}

func TestMarketHandler_Summary(t *testing.T) {
	r := newRouter(&mockMarketUsecase{
		SummaryFunc: func(ctx context.Context) entity.MarketSummary {
			return entity.MarketSummary{
				Nasdaq: &entity.IndexSummary{Price: 15000, Change: decimal.NewFromInt(200), Percent: decimal.RequireFromString("1.35")},
			}
		},
	})

	w := do(r, "/api/market")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"nasdaq":{"price":15000,"change":"200.00","percent":"1.35"},
		"sp500":null,
		"dowjones":null
	}`, w.Body.String())
}

func TestMarketHandler_Logo(t *testing.T) {
	t.Run("streams body with content type", func(t *testing.T) {
		r := newRouter(&mockMarketUsecase{
			LogoFunc: func(ctx context.Context, rawURL string) (entity.Image, error) {
				assert.Equal(t, "https://static2.finnhub.io/AAPL.png", rawURL)
				return entity.Image{Body: io.NopCloser(strings.NewReader("PNGDATA")), ContentType: "image/png", ContentLength: 7}, nil
			},
		})

		w := do(r, "/api/logo?url=https://static2.finnhub.io/AAPL.png")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
		assert.Equal(t, "PNGDATA", w.Body.String())
	})

	t.Run("disallowed host", func(t *testing.T) {
		r := newRouter(&mockMarketUsecase{
			LogoFunc: func(ctx context.Context, rawURL string) (entity.Image, error) {
				return entity.Image{}, apperror.New(apperror.ErrInvalidParameter, "url host is not allowed")
			},
		})

		w := do(r, "/api/logo?url=http://169.254.169.254/")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"url host is not allowed"}`, w.Body.String())
	})

	t.Run("upstream failure", func(t *testing.T) {
		r := newRouter(&mockMarketUsecase{
			LogoFunc: func(ctx context.Context, rawURL string) (entity.Image, error) {
				return entity.Image{}, &apperror.UpstreamError{Provider: "logo", StatusCode: 404}
			},
		})

		w := do(r, "/api/logo?url=https://static2.finnhub.io/missing.png")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

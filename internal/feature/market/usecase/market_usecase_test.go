package usecase_test

import (
	"context"
	"errors"
	"io"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sujalsuyash/NASDAQ-stock-market/internal/feature/market/domain/entity"
	"github.com/sujalsuyash/NASDAQ-stock-market/internal/feature/market/usecase"
	"github.com/sujalsuyash/NASDAQ-stock-market/internal/shared/apperror"
)

// mockQuoteProvider はQuoteProviderインターフェースのモック実装です。
type mockQuoteProvider struct {
	SearchFunc  func(ctx context.Context, query string) ([]entity.SearchMatch, error)
	ProfileFunc func(ctx context.Context, symbol string) (entity.Profile, error)
	QuoteFunc   func(ctx context.Context, symbol string) (entity.Quote, error)
	Calls       int
}

func (m *mockQuoteProvider) Search(ctx context.Context, query string) ([]entity.SearchMatch, error) {
	m.Calls++
	return m.SearchFunc(ctx, query)
}

func (m *mockQuoteProvider) Profile(ctx context.Context, symbol string) (entity.Profile, error) {
	m.Calls++
	return m.ProfileFunc(ctx, symbol)
}

func (m *mockQuoteProvider) Quote(ctx context.Context, symbol string) (entity.Quote, error) {
	m.Calls++
	return m.QuoteFunc(ctx, symbol)
}

// mockIndexQuoter はIndexQuoterのモックです。並行に呼ばれるため呼び出し記録をロックします。
type mockIndexQuoter struct {
	mu      sync.Mutex
	quotes  map[string]entity.IndexQuote
	symbols []string
}

func (m *mockIndexQuoter) GetIndexQuote(ctx context.Context, symbol string) (entity.IndexQuote, error) {
	m.mu.Lock()
	m.symbols = append(m.symbols, symbol)
	m.mu.Unlock()

	q, ok := m.quotes[symbol]
	if !ok {
		return entity.IndexQuote{}, errors.New("upstream down")
	}
	return q, nil
}

// mockImageFetcher はImageFetcherのモックです。
type mockImageFetcher struct {
	got   *url.URL
	allow usecase.HostPolicy
}

func (m *mockImageFetcher) FetchImage(ctx context.Context, u *url.URL, allow usecase.HostPolicy) (entity.Image, error) {
	m.got = u
	m.allow = allow
	return entity.Image{Body: io.NopCloser(strings.NewReader("img")), ContentType: "image/png", ContentLength: 3}, nil
}

func TestMarketUsecase_Search(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantCall  bool
		wantQuery string
	}{
		{name: "empty query returns empty result", query: ""},
		{name: "single character returns empty result", query: "a"},
		{name: "whitespace padded single character", query: "  a  "},
		{name: "two characters are forwarded", query: "ap", wantCall: true, wantQuery: "ap"},
		{name: "query is trimmed before forwarding", query: "  apple ", wantCall: true, wantQuery: "apple"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qp := &mockQuoteProvider{
				SearchFunc: func(ctx context.Context, query string) ([]entity.SearchMatch, error) {
					assert.Equal(t, tt.wantQuery, query)
					return []entity.SearchMatch{{Symbol: "AAPL"}}, nil
				},
			}
			uc := usecase.NewMarketUsecase(qp, nil, nil, nil)

			got, err := uc.Search(context.Background(), tt.query)
			require.NoError(t, err)
			if tt.wantCall {
				assert.Equal(t, 1, qp.Calls)
				assert.Len(t, got, 1)
			} else {
				assert.Equal(t, 0, qp.Calls)
				assert.NotNil(t, got)
				assert.Empty(t, got)
			}
		})
	}
}

func TestMarketUsecase_ProfileAndQuote_MissingSymbol(t *testing.T) {
	qp := &mockQuoteProvider{}
	uc := usecase.NewMarketUsecase(qp, nil, nil, nil)

	_, err := uc.Profile(context.Background(), "  ")
	assert.True(t, errors.Is(err, apperror.ErrMissingParameter))

	_, err = uc.Quote(context.Background(), "")
	assert.True(t, errors.Is(err, apperror.ErrMissingParameter))

	assert.Equal(t, 0, qp.Calls)
}

func TestMarketUsecase_ProfileAndQuote_Forward(t *testing.T) {
	upstreamErr := &apperror.UpstreamError{Provider: "finnhub", StatusCode: 429}
	qp := &mockQuoteProvider{
		ProfileFunc: func(ctx context.Context, symbol string) (entity.Profile, error) {
			assert.Equal(t, "AAPL", symbol)
			return entity.Profile{Ticker: "AAPL"}, nil
		},
		QuoteFunc: func(ctx context.Context, symbol string) (entity.Quote, error) {
			return entity.Quote{}, upstreamErr
		},
	}
	uc := usecase.NewMarketUsecase(qp, nil, nil, nil)

	p, err := uc.Profile(context.Background(), " AAPL ")
	require.NoError(t, err)
	assert.Equal(t, "AAPL", p.Ticker)

	_, err = uc.Quote(context.Background(), "AAPL")
	assert.ErrorIs(t, err, upstreamErr)
}

func TestMarketUsecase_Summary(t *testing.T) {
	iq := &mockIndexQuoter{quotes: map[string]entity.IndexQuote{
		usecase.SymbolNasdaq: {Symbol: usecase.SymbolNasdaq, Price: 15000, PreviousClose: 14800},
		usecase.SymbolSP500:  {Symbol: usecase.SymbolSP500, Price: 4500.55, PreviousClose: 4510.10},
	}}
	uc := usecase.NewMarketUsecase(nil, iq, nil, nil)

	got := uc.Summary(context.Background())

	require.NotNil(t, got.Nasdaq)
	assert.Equal(t, "200", got.Nasdaq.Change.String())
	assert.Equal(t, "1.35", got.Nasdaq.Percent.String())

	require.NotNil(t, got.SP500)
	assert.Equal(t, "-9.55", got.SP500.Change.String())
	assert.Equal(t, "-0.21", got.SP500.Percent.String())

	// 失敗した指数はnilになり、他の指数には影響しない
	assert.Nil(t, got.DowJones)
	assert.ElementsMatch(t, []string{usecase.SymbolNasdaq, usecase.SymbolSP500, usecase.SymbolDowJones}, iq.symbols)
}

func TestMarketUsecase_Logo(t *testing.T) {
	tests := []struct {
		name    string
		rawURL  string
		hosts   []string
		wantErr error
	}{
		{name: "missing url", rawURL: "", wantErr: apperror.ErrMissingParameter},
		{name: "relative url", rawURL: "/AAPL.png", wantErr: apperror.ErrInvalidParameter},
		{name: "non http scheme", rawURL: "file:///etc/passwd", wantErr: apperror.ErrInvalidParameter},
		{name: "host not allowed", rawURL: "http://169.254.169.254/latest/meta-data", wantErr: apperror.ErrInvalidParameter},
		{name: "suffix trick rejected", rawURL: "https://finnhub.io.evil.com/a.png", wantErr: apperror.ErrInvalidParameter},
		{name: "default exact host", rawURL: "https://static2.finnhub.io/file/AAPL.png"},
		{name: "default wildcard host", rawURL: "https://static3.finnhub.io/AAPL.png"},
		{name: "host match is case insensitive", rawURL: "https://LOGO.CLEARBIT.COM/apple.com"},
		{name: "custom allow-list", rawURL: "http://127.0.0.1:8080/x.png", hosts: []string{" 127.0.0.1 "}},
		{name: "custom allow-list replaces defaults", rawURL: "https://logo.clearbit.com/apple.com", hosts: []string{"example.com"}, wantErr: apperror.ErrInvalidParameter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			imgs := &mockImageFetcher{}
			uc := usecase.NewMarketUsecase(nil, nil, imgs, tt.hosts)

			img, err := uc.Logo(context.Background(), tt.rawURL)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, imgs.got, "fetcher must not be called")
				return
			}
			require.NoError(t, err)
			defer img.Body.Close()
			require.NotNil(t, imgs.got)
			assert.Equal(t, "image/png", img.ContentType)

			// リダイレクト先の判定にも同じ許可リストが渡される
			require.NotNil(t, imgs.allow)
			assert.True(t, imgs.allow(imgs.got.Hostname()))
			assert.False(t, imgs.allow("169.254.169.254"))
		})
	}
}

package finnhub

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"

	"github.com/sujalsuyash/NASDAQ-stock-market/internal/feature/market/domain/entity"
	"github.com/sujalsuyash/NASDAQ-stock-market/internal/feature/market/usecase"
	"github.com/sujalsuyash/NASDAQ-stock-market/internal/platform/externalapi/finnhub/dto"
	"github.com/sujalsuyash/NASDAQ-stock-market/internal/shared/apperror"
)

const providerName = "finnhub"

// FinnhubMarket はFinnhub外部APIから銘柄検索・企業プロフィール・株価を取得するQuoteProvider実装です。
type FinnhubMarket struct {
	cfg    Config
	client *http.Client
}

// FinnhubMarketがQuoteProviderを実装していることをコンパイル時に検証します。
var _ usecase.QuoteProvider = (*FinnhubMarket)(nil)

// NewFinnhubMarket は指定された設定とHTTPクライアントでFinnhubMarketの新しいインスタンスを生成します。
func NewFinnhubMarket(cfg Config, client *http.Client) *FinnhubMarket {
	return &FinnhubMarket{cfg: cfg, client: client}
}

// Search はクエリ文字列に一致する銘柄を返します。結果がない場合は空スライスを返します。
func (f *FinnhubMarket) Search(ctx context.Context, query string) ([]entity.SearchMatch, error) {
	q := url.Values{}
	q.Set("q", query)

	var body dto.SearchResponse
	if err := f.get(ctx, "/search", q, &body); err != nil {
		return nil, err
	}

	out := make([]entity.SearchMatch, 0, len(body.Result))
	for _, r := range body.Result {
		out = append(out, entity.SearchMatch{
			Description:   r.Description,
			DisplaySymbol: r.DisplaySymbol,
			Symbol:        r.Symbol,
			Type:          r.Type,
		})
	}
	return out, nil
}

// Profile は銘柄の企業プロフィールを返します。
func (f *FinnhubMarket) Profile(ctx context.Context, symbol string) (entity.Profile, error) {
	q := url.Values{}
	q.Set("symbol", symbol)

	var body dto.ProfileResponse
	if err := f.get(ctx, "/stock/profile2", q, &body); err != nil {
		return entity.Profile{}, err
	}
	return entity.Profile{
		Country:              body.Country,
		Currency:             body.Currency,
		Exchange:             body.Exchange,
		FinnhubIndustry:      body.FinnhubIndustry,
		IPO:                  body.IPO,
		Logo:                 body.Logo,
		MarketCapitalization: body.MarketCapitalization,
		Name:                 body.Name,
		Phone:                body.Phone,
		ShareOutstanding:     body.ShareOutstanding,
		Ticker:               body.Ticker,
		WebURL:               body.WebURL,
	}, nil
}

// Quote は銘柄の最新株価を返します。
func (f *FinnhubMarket) Quote(ctx context.Context, symbol string) (entity.Quote, error) {
	q := url.Values{}
	q.Set("symbol", symbol)

	var body dto.QuoteResponse
	if err := f.get(ctx, "/quote", q, &body); err != nil {
		return entity.Quote{}, err
	}
	return entity.Quote{
		Current:       body.C,
		Change:        body.D,
		PercentChange: body.DP,
		High:          body.H,
		Low:           body.L,
		Open:          body.O,
		PreviousClose: body.PC,
		Timestamp:     body.T,
	}, nil
}

// get はAPIキーを付与してGETリクエストを送り、成功時のボディをoutにデコードします。
func (f *FinnhubMarket) get(ctx context.Context, path string, q url.Values, out any) error {
	q.Set("token", f.cfg.APIKey)
	u := fmt.Sprintf("%s%s?%s", f.cfg.BaseURL, path, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return apperror.Wrap(apperror.ErrUpstream, "", err)
	}
	req.Header.Set("Accept", "application/json")

	res, err := f.client.Do(req)
	if err != nil {
		// *url.Error はトークン入りのURLを含むためログには出さない
		return apperror.Wrap(apperror.ErrUpstream, "", unwrapURLError(err))
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			logrus.WithError(err).Warn("failed to close finnhub response body")
		}
	}()

	if res.StatusCode >= 400 {
		var eb dto.ErrorResponse
		raw, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		_ = json.Unmarshal(raw, &eb)
		return &apperror.UpstreamError{Provider: providerName, StatusCode: res.StatusCode, Message: eb.Error}
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		// ルート表に合わせ、Finnhubの形式不一致は500として扱う
		return apperror.Wrap(apperror.ErrUpstream, "", fmt.Errorf("decode %s: %w", path, err))
	}
	return nil
}

// unwrapURLError strips the request URL (which carries the API key) from transport errors.
func unwrapURLError(err error) error {
	var ue *url.Error
	if errors.As(err, &ue) {
		return fmt.Errorf("%s %s: %w", ue.Op, providerName, ue.Err)
	}
	return err
}

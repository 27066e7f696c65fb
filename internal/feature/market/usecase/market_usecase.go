// Package usecase は銘柄検索・株価・指数サマリー・ロゴ取得のビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/sujalsuyash/NASDAQ-stock-market/internal/feature/market/domain/entity"
	"github.com/sujalsuyash/NASDAQ-stock-market/internal/shared/apperror"
)

const (
	// MinSearchQueryLength は外部APIに問い合わせる検索クエリの最小文字数です。
	MinSearchQueryLength = 2

	// 指数サマリーの対象となるYahoo Financeのシンボル
	SymbolNasdaq   = "^IXIC" // NASDAQ総合指数
	SymbolSP500    = "^GSPC" // S&P 500
	SymbolDowJones = "^DJI"  // ダウ工業株30種平均
)

// DefaultLogoHosts はロゴ取得を許可するホストパターンのデフォルト値です。
var DefaultLogoHosts = []string{"static2.finnhub.io", "*.finnhub.io", "logo.clearbit.com"}

// QuoteProvider は銘柄検索・企業プロフィール・株価を提供する外部APIのインターフェースです。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type QuoteProvider interface {
	Search(ctx context.Context, query string) ([]entity.SearchMatch, error)
	Profile(ctx context.Context, symbol string) (entity.Profile, error)
	Quote(ctx context.Context, symbol string) (entity.Quote, error)
}

// IndexQuoter は指数の現在値と前日終値を提供する外部APIのインターフェースです。
type IndexQuoter interface {
	GetIndexQuote(ctx context.Context, symbol string) (entity.IndexQuote, error)
}

// HostPolicy はホスト名が取得対象として許可されているかを判定します。
type HostPolicy func(host string) bool

// ImageFetcher は任意URLの画像を取得するインターフェースです。
type ImageFetcher interface {
	// FetchImage は画像ボディを返します。呼び出し側がBodyをCloseする必要があります。
	// リダイレクト先のホストもallowで判定されます。
	FetchImage(ctx context.Context, u *url.URL, allow HostPolicy) (entity.Image, error)
}

// MarketUsecase はマーケットデータ取得のユースケースを提供します。
type MarketUsecase struct {
	quotes       QuoteProvider
	indices      IndexQuoter
	images       ImageFetcher
	allowedHosts []string
}

// NewMarketUsecase はMarketUsecaseの新しいインスタンスを生成します。
// allowedHostsが空の場合はDefaultLogoHostsを使用します。
func NewMarketUsecase(quotes QuoteProvider, indices IndexQuoter, images ImageFetcher, allowedHosts []string) *MarketUsecase {
	if len(allowedHosts) == 0 {
		allowedHosts = DefaultLogoHosts
	}
	hosts := make([]string, 0, len(allowedHosts))
	for _, h := range allowedHosts {
		if h = strings.ToLower(strings.TrimSpace(h)); h != "" {
			hosts = append(hosts, h)
		}
	}
	return &MarketUsecase{quotes: quotes, indices: indices, images: images, allowedHosts: hosts}
}

// Search は銘柄を検索します。
// 前後の空白を除いたクエリがMinSearchQueryLength未満の場合、外部APIを呼ばずに空の結果を返します。
func (u *MarketUsecase) Search(ctx context.Context, query string) ([]entity.SearchMatch, error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < MinSearchQueryLength {
		return []entity.SearchMatch{}, nil
	}
	return u.quotes.Search(ctx, query)
}

// Profile は企業プロフィールを取得します。
func (u *MarketUsecase) Profile(ctx context.Context, symbol string) (entity.Profile, error) {
	symbol, err := requireSymbol(symbol)
	if err != nil {
		return entity.Profile{}, err
	}
	return u.quotes.Profile(ctx, symbol)
}

// Quote は最新株価を取得します。
func (u *MarketUsecase) Quote(ctx context.Context, symbol string) (entity.Quote, error) {
	symbol, err := requireSymbol(symbol)
	if err != nil {
		return entity.Quote{}, err
	}
	return u.quotes.Quote(ctx, symbol)
}

// Summary は3つの主要指数のサマリーを並行して取得します。
// 取得に失敗した指数はnilとなり、全体としては失敗しません。
func (u *MarketUsecase) Summary(ctx context.Context) entity.MarketSummary {
	var out entity.MarketSummary
	targets := []struct {
		symbol string
		dst    **entity.IndexSummary
	}{
		{SymbolNasdaq, &out.Nasdaq},
		{SymbolSP500, &out.SP500},
		{SymbolDowJones, &out.DowJones},
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, tg := range targets {
		g.Go(func() error {
			q, err := u.indices.GetIndexQuote(gctx, tg.symbol)
			if err != nil {
				// 1つの指数で失敗しても他の指数の取得は続ける
				logrus.WithFields(logrus.Fields{"symbol": tg.symbol, "error": err}).Warn("failed to fetch index quote")
				return nil
			}
			s := entity.NewIndexSummary(q)
			*tg.dst = &s
			return nil
		})
	}
	_ = g.Wait()
	return out
}

// Logo は許可されたホストの画像を取得します。
// URLが空ならErrMissingParameter、許可リスト外または不正なURLならErrInvalidParameterを返します。
func (u *MarketUsecase) Logo(ctx context.Context, rawURL string) (entity.Image, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return entity.Image{}, apperror.New(apperror.ErrMissingParameter, "url parameter is required")
	}

	parsed, err := url.Parse(rawURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Hostname() == "" {
		return entity.Image{}, apperror.New(apperror.ErrInvalidParameter, "url must be an absolute http(s) url")
	}
	if !u.hostAllowed(parsed.Hostname()) {
		return entity.Image{}, apperror.Wrap(apperror.ErrInvalidParameter, "url host is not allowed",
			fmt.Errorf("host %q", parsed.Hostname()))
	}
	return u.images.FetchImage(ctx, parsed, u.hostAllowed)
}

// hostAllowed はhostが許可パターンのいずれかに一致するかを判定します。
func (u *MarketUsecase) hostAllowed(host string) bool {
	host = strings.ToLower(host)
	for _, p := range u.allowedHosts {
		if ok, err := path.Match(p, host); err == nil && ok {
			return true
		}
	}
	return false
}

// requireSymbol は銘柄コードの前後の空白を除去し、空であればErrMissingParameterを返します。
func requireSymbol(symbol string) (string, error) {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return "", apperror.New(apperror.ErrMissingParameter, "missing symbol")
	}
	return symbol, nil
}

package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"

	candleentity "github.com/sujalsuyash/NASDAQ-stock-market/internal/feature/candles/domain/entity"
	candleusecase "github.com/sujalsuyash/NASDAQ-stock-market/internal/feature/candles/usecase"
	marketentity "github.com/sujalsuyash/NASDAQ-stock-market/internal/feature/market/domain/entity"
	marketusecase "github.com/sujalsuyash/NASDAQ-stock-market/internal/feature/market/usecase"
	"github.com/sujalsuyash/NASDAQ-stock-market/internal/platform/externalapi/yahoo/dto"
	"github.com/sujalsuyash/NASDAQ-stock-market/internal/shared/apperror"
)

const (
	providerName = "yahoo"
	// maxChartBytes caps the chart body we are willing to buffer.
	maxChartBytes = 8 << 20
)

// YahooMarket はYahoo Financeのチャートエンドポイントからローソク足と指数価格を取得します。
type YahooMarket struct {
	cfg    Config
	client *http.Client
}

// YahooMarketが各ユースケースのインターフェースを実装していることをコンパイル時に検証します。
var (
	_ candleusecase.MarketRepository = (*YahooMarket)(nil)
	_ marketusecase.IndexQuoter      = (*YahooMarket)(nil)
)

// NewYahooMarket は指定された設定とHTTPクライアントでYahooMarketの新しいインスタンスを生成します。
func NewYahooMarket(cfg Config, client *http.Client) *YahooMarket {
	return &YahooMarket{cfg: cfg, client: client}
}

// GetCandles は指定銘柄の時系列データを取得し、entity.Candleのスライスに正規化して返します。
func (y *YahooMarket) GetCandles(ctx context.Context, symbol, interval, rng string) ([]candleentity.Candle, error) {
	q := url.Values{}
	q.Set("interval", interval)
	q.Set("range", rng)

	body, err := y.fetchChart(ctx, symbol, q)
	if err != nil {
		return nil, err
	}
	return NormalizeChart(body)
}

// GetIndexQuote は指数の現在値と前日終値を取得します。
func (y *YahooMarket) GetIndexQuote(ctx context.Context, symbol string) (marketentity.IndexQuote, error) {
	q := url.Values{}
	q.Set("interval", "1d")
	q.Set("range", "1d")

	body, err := y.fetchChart(ctx, symbol, q)
	if err != nil {
		return marketentity.IndexQuote{}, err
	}
	if body.Chart == nil || len(body.Chart.Result) == 0 {
		return marketentity.IndexQuote{}, apperror.New(apperror.ErrUpstreamDataShape, "no index data")
	}

	meta := body.Chart.Result[0].Meta
	prev := meta.PreviousClose
	if prev == 0 {
		// range=1dでもpreviousCloseが欠けることがあるためchartPreviousCloseで補う
		prev = meta.ChartPreviousClose
	}
	if prev == 0 {
		return marketentity.IndexQuote{}, apperror.Wrap(apperror.ErrUpstreamDataShape, "no index data",
			fmt.Errorf("previous close missing for %s", symbol))
	}
	return marketentity.IndexQuote{
		Symbol:        symbol,
		Price:         meta.RegularMarketPrice,
		PreviousClose: prev,
	}, nil
}

// fetchChart はチャートエンドポイントを呼び出し、レスポンスをDTOにデコードします。
// Yahooは未知の銘柄に対して404とJSONボディを返すため、ステータスより先にボディを解釈します。
func (y *YahooMarket) fetchChart(ctx context.Context, symbol string, q url.Values) (*dto.ChartResponse, error) {
	u := fmt.Sprintf("%s/v8/finance/chart/%s?%s", y.cfg.BaseURL, url.PathEscape(symbol), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, apperror.Wrap(apperror.ErrUpstream, "", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", y.cfg.UserAgent)

	res, err := y.client.Do(req)
	if err != nil {
		return nil, apperror.Wrap(apperror.ErrUpstream, "", err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			logrus.WithError(err).Warn("failed to close yahoo response body")
		}
	}()

	raw, err := io.ReadAll(io.LimitReader(res.Body, maxChartBytes))
	if err != nil {
		return nil, apperror.Wrap(apperror.ErrUpstream, "", err)
	}

	var body dto.ChartResponse
	if err := json.Unmarshal(raw, &body); err != nil || body.Chart == nil {
		if res.StatusCode >= 400 {
			return nil, &apperror.UpstreamError{Provider: providerName, StatusCode: res.StatusCode, Message: snippet(raw)}
		}
		if err == nil {
			err = fmt.Errorf("chart object missing")
		}
		return nil, apperror.Wrap(apperror.ErrUpstreamDataShape, MsgNoCandleData, err)
	}

	if body.Chart.Error != nil {
		logrus.WithFields(logrus.Fields{
			"symbol": symbol,
			"status": res.StatusCode,
			"code":   body.Chart.Error.Code,
		}).Warn("yahoo chart returned an error object")
	}
	return &body, nil
}

// snippet trims an upstream body for use in error messages.
func snippet(b []byte) string {
	const limit = 200
	if len(b) > limit {
		return string(b[:limit])
	}
	return string(b)
}

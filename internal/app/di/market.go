// Package di provides dependency injection factories for creating application components.
package di

import (
	candleshandler "github.com/sujalsuyash/NASDAQ-stock-market/internal/feature/candles/transport/handler"
	candlesusecase "github.com/sujalsuyash/NASDAQ-stock-market/internal/feature/candles/usecase"
	markethandler "github.com/sujalsuyash/NASDAQ-stock-market/internal/feature/market/transport/handler"
	marketusecase "github.com/sujalsuyash/NASDAQ-stock-market/internal/feature/market/usecase"
	"github.com/sujalsuyash/NASDAQ-stock-market/internal/platform/externalapi/finnhub"
	"github.com/sujalsuyash/NASDAQ-stock-market/internal/platform/externalapi/logo"
	"github.com/sujalsuyash/NASDAQ-stock-market/internal/platform/externalapi/yahoo"
	infrahttp "github.com/sujalsuyash/NASDAQ-stock-market/internal/platform/http"
)

// NewYahooMarket creates a fully configured YahooMarket with HTTP client.
func NewYahooMarket() *yahoo.YahooMarket {
	cfg := yahoo.LoadConfig()
	return yahoo.NewYahooMarket(cfg, infrahttp.NewHTTPClient(cfg.Timeout))
}

// NewFinnhubMarket creates a fully configured FinnhubMarket with HTTP client.
func NewFinnhubMarket() *finnhub.FinnhubMarket {
	cfg := finnhub.LoadConfig()
	return finnhub.NewFinnhubMarket(cfg, infrahttp.NewHTTPClient(cfg.Timeout))
}

// NewCandlesHandler wires the candles feature on top of Yahoo Finance.
func NewCandlesHandler(y *yahoo.YahooMarket) *candleshandler.CandlesHandler {
	return candleshandler.NewCandlesHandler(candlesusecase.NewCandlesUsecase(y))
}

// NewMarketHandler wires search, profile, quote, index summary and logo proxy.
// logoHosts empty means the default allow-list.
func NewMarketHandler(y *yahoo.YahooMarket, logoHosts []string) *markethandler.MarketHandler {
	f := NewFinnhubMarket()
	images := logo.NewFetcher(infrahttp.NewHTTPClient(0))
	uc := marketusecase.NewMarketUsecase(f, y, images, logoHosts)
	return markethandler.NewMarketHandler(uc)
}

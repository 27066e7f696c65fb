// Package entity defines the domain models for the market feature.
package entity

import (
	"io"

	"github.com/shopspring/decimal"
)

// SearchMatch is one symbol lookup hit.
type SearchMatch struct {
	Description   string // Company or instrument name
	DisplaySymbol string // Symbol as shown to users
	Symbol        string // Symbol to query profile/quote/candles with
	Type          string // Security type (e.g. "Common Stock")
}

// Profile is the company profile of a listed symbol.
// All fields are empty when the provider does not know the symbol.
type Profile struct {
	Country              string
	Currency             string
	Exchange             string
	FinnhubIndustry      string
	IPO                  string
	Logo                 string
	MarketCapitalization *float64
	Name                 string
	Phone                string
	ShareOutstanding     *float64
	Ticker               string
	WebURL               string
}

// Quote is the latest price snapshot of a symbol.
type Quote struct {
	Current       float64  // Current price
	Change        *float64 // Change from previous close
	PercentChange *float64 // Percent change from previous close
	High          float64  // High of the day
	Low           float64  // Low of the day
	Open          float64  // Open of the day
	PreviousClose float64  // Previous close
	Timestamp     int64    // Quote time, seconds since the Unix epoch
}

// IndexQuote is the latest price of a market index together with the
// previous session's close.
type IndexQuote struct {
	Symbol        string  // Upstream index symbol (e.g. "^IXIC")
	Price         float64 // Regular market price
	PreviousClose float64 // Close of the previous session
}

// IndexSummary is the price move of an index since the previous close,
// rounded to 2 decimal places.
type IndexSummary struct {
	Price   float64
	Change  decimal.Decimal
	Percent decimal.Decimal
}

// NewIndexSummary derives the change and percent change of q.
// PreviousClose must be non-zero.
func NewIndexSummary(q IndexQuote) IndexSummary {
	price := decimal.NewFromFloat(q.Price)
	prev := decimal.NewFromFloat(q.PreviousClose)
	change := price.Sub(prev).Round(2)
	percent := change.Div(prev).Mul(decimal.NewFromInt(100)).Round(2)
	return IndexSummary{
		Price:   q.Price,
		Change:  change,
		Percent: percent,
	}
}

// MarketSummary holds the summary of each tracked index.
// A nil entry means that index could not be fetched.
type MarketSummary struct {
	Nasdaq   *IndexSummary
	SP500    *IndexSummary
	DowJones *IndexSummary
}

// Image is an upstream image body to be streamed to the client.
// The caller must close Body.
type Image struct {
	Body          io.ReadCloser
	ContentType   string
	ContentLength int64 // -1 when unknown
}

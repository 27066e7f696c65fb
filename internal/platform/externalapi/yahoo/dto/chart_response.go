// Package dto defines data transfer objects for the Yahoo Finance chart API.
package dto

// ChartResponse represents the JSON response of the v8 chart endpoint.
//
//	{"chart": {"result": [...], "error": null}}
//
// On unknown symbols Yahoo answers HTTP 404 with result null and an error
// object, which still decodes into this type.
type ChartResponse struct {
	Chart *Chart `json:"chart"`
}

// Chart is the top-level container of a chart response.
type Chart struct {
	Result []ChartResult `json:"result"`
	Error  *ChartError   `json:"error"`
}

// ChartError is the error object Yahoo embeds in failed chart responses.
type ChartError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// ChartResult holds one security's series. Value arrays are parallel to Timestamp.
type ChartResult struct {
	Meta       ChartMeta  `json:"meta"`
	Timestamp  []int64    `json:"timestamp"`
	Indicators Indicators `json:"indicators"`
}

// ChartMeta carries the summary fields used for index quotes.
type ChartMeta struct {
	Symbol             string  `json:"symbol"`
	Currency           string  `json:"currency"`
	RegularMarketPrice float64 `json:"regularMarketPrice"`
	PreviousClose      float64 `json:"previousClose"`
	ChartPreviousClose float64 `json:"chartPreviousClose"`
}

// Indicators groups the indicator series of a chart result.
type Indicators struct {
	Quote []QuoteSeries `json:"quote"`
}

// QuoteSeries holds the OHLCV columns. Entries are nullable.
type QuoteSeries struct {
	Open   []*float64 `json:"open"`
	High   []*float64 `json:"high"`
	Low    []*float64 `json:"low"`
	Close  []*float64 `json:"close"`
	Volume []*int64   `json:"volume"`
}

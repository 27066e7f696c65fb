// Package entity defines the domain models for the candles feature.
package entity

// Candle represents one OHLCV (Open, High, Low, Close, Volume) bucket of a
// security's price history.
//
// Price and volume fields are pointers because upstream series contain
// null entries (e.g. trading halts) and those are passed through untouched.
type Candle struct {
	Timestamp int64    // Bucket start, seconds since the Unix epoch
	Open      *float64 // Opening price
	High      *float64 // Highest price during this bucket
	Low       *float64 // Lowest price during this bucket
	Close     *float64 // Closing price
	Volume    *int64   // Trading volume
}


package yahoo

import (
	"fmt"

	"github.com/sujalsuyash/NASDAQ-stock-market/internal/feature/candles/domain/entity"
	"github.com/sujalsuyash/NASDAQ-stock-market/internal/platform/externalapi/yahoo/dto"
	"github.com/sujalsuyash/NASDAQ-stock-market/internal/shared/apperror"
)

// MsgNoCandleData is the client-facing message for charts without a usable result.
const MsgNoCandleData = "no candle data"

// NormalizeChart converts the columnar chart layout (one timestamp array
// plus parallel OHLCV arrays) into one Candle per timestamp, in upstream
// order. Values are passed through as-is, nulls included.
func NormalizeChart(body *dto.ChartResponse) ([]entity.Candle, error) {
	if body == nil || body.Chart == nil || len(body.Chart.Result) == 0 {
		return nil, apperror.New(apperror.ErrUpstreamDataShape, MsgNoCandleData)
	}

	r := body.Chart.Result[0]
	n := len(r.Timestamp)
	if n == 0 {
		return []entity.Candle{}, nil
	}
	if len(r.Indicators.Quote) == 0 {
		return nil, apperror.Wrap(apperror.ErrUpstreamDataShape, MsgNoCandleData,
			fmt.Errorf("indicators.quote is empty"))
	}

	q := r.Indicators.Quote[0]
	lengths := []struct {
		name string
		len  int
	}{
		{"open", len(q.Open)},
		{"high", len(q.High)},
		{"low", len(q.Low)},
		{"close", len(q.Close)},
		{"volume", len(q.Volume)},
	}
	for _, l := range lengths {
		if l.len != n {
			return nil, apperror.Wrap(apperror.ErrUpstreamDataShape, MsgNoCandleData,
				fmt.Errorf("%s has %d values, timestamp has %d", l.name, l.len, n))
		}
	}

	out := make([]entity.Candle, n)
	for i, ts := range r.Timestamp {
		out[i] = entity.Candle{
			Timestamp: ts,
			Open:      q.Open[i],
			High:      q.High[i],
			Low:       q.Low[i],
			Close:     q.Close[i],
			Volume:    q.Volume[i],
		}
	}
	return out, nil
}

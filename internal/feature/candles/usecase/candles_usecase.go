// Package usecase はローソク足データ取得のビジネスロジックを実装します。
package usecase

import (
	"context"
	"strings"

	"github.com/sujalsuyash/NASDAQ-stock-market/internal/feature/candles/domain/entity"
	"github.com/sujalsuyash/NASDAQ-stock-market/internal/shared/apperror"
)

const (
	// HistoryInterval はローソク足1本あたりの時間幅です（日足）。
	HistoryInterval = "1d"
	// HistoryRange は取得する期間です（直近6か月）。
	HistoryRange = "6mo"
)

// MarketRepository は外部APIから時系列データを取得するリポジトリのインターフェイスです。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type MarketRepository interface {
	// GetCandles は指定銘柄・時間幅・期間のローソク足を上流の並び順で返します。
	GetCandles(ctx context.Context, symbol, interval, rng string) ([]entity.Candle, error)
}

// candlesUsecase はローソク足データ取得のユースケースを定義します。
type candlesUsecase struct {
	market MarketRepository
}

// NewCandlesUsecase はcandlesUsecaseの新しいインスタンスを生成します。
func NewCandlesUsecase(market MarketRepository) *candlesUsecase {
	return &candlesUsecase{market: market}
}

// GetCandles は指定された銘柄の直近6か月分の日足を取得します。
// 銘柄が空の場合は外部APIを呼ばずにErrMissingParameterを返します。
func (cu *candlesUsecase) GetCandles(ctx context.Context, symbol string) ([]entity.Candle, error) {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return nil, apperror.New(apperror.ErrMissingParameter, "missing symbol")
	}

	cs, err := cu.market.GetCandles(ctx, symbol, HistoryInterval, HistoryRange)
	if err != nil {
		return nil, err
	}
	return cs, nil
}

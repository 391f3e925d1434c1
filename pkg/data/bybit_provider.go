package data

import (
	"context"
	"fmt"
	"time"

	"dca-strategy-planner/internal/exchange/bybit"
	"dca-strategy-planner/internal/logger"
	"dca-strategy-planner/internal/monitoring"
	"dca-strategy-planner/pkg/types"
	"github.com/rs/zerolog"
)

const (
	bybitPageLimit = 1000
	// Hard cap on pages per request so a bad date range cannot spin forever
	bybitMaxPages = 200
)

// BybitProvider implements HistoryProvider on top of the Bybit public
// market-data API, paging through kline history in 1000-bar chunks.
type BybitProvider struct {
	client   *bybit.Client
	category string
	log      zerolog.Logger
}

// NewBybitProvider creates a Bybit-backed history provider for the given
// market category ("spot" or "linear").
func NewBybitProvider(client *bybit.Client, category string) *BybitProvider {
	if category == "" {
		category = "spot"
	}
	return &BybitProvider{
		client:   client,
		category: category,
		log:      logger.New("bybit-provider"),
	}
}

// GetName returns the name of the history provider
func (p *BybitProvider) GetName() string {
	return "Bybit Provider"
}

// FetchHistory returns candles for [start, end), oldest first. Each page
// resumes one bar after the last candle of the previous page.
func (p *BybitProvider) FetchHistory(ctx context.Context, symbol, interval string, start, end time.Time) ([]types.OHLCV, error) {
	klineInterval, step, err := resolveInterval(interval)
	if err != nil {
		return nil, err
	}
	if !start.Before(end) {
		return nil, fmt.Errorf("invalid time range: start %s is not before end %s",
			start.Format(time.RFC3339), end.Format(time.RFC3339))
	}

	var candles []types.OHLCV
	cursor := start

	for page := 0; page < bybitMaxPages && cursor.Before(end); page++ {
		var klines []bybit.Kline
		fetchErr := p.client.Retry(ctx, func() error {
			var err error
			klines, err = p.client.GetKlines(ctx, bybit.KlineParams{
				Category: p.category,
				Symbol:   symbol,
				Interval: klineInterval,
				Start:    &cursor,
				End:      &end,
				Limit:    bybitPageLimit,
			})
			return err
		})
		if fetchErr != nil {
			monitoring.RecordError("kline_fetch")
			return nil, fmt.Errorf("failed to fetch klines for %s: %w", symbol, fetchErr)
		}
		if len(klines) == 0 {
			break
		}

		monitoring.RecordKlinePage("bybit")
		p.log.Debug().
			Str("symbol", symbol).
			Int("page", page).
			Int("bars", len(klines)).
			Time("cursor", cursor).
			Msg("fetched kline page")

		for _, k := range klines {
			if k.StartTime.Before(cursor) || !k.StartTime.Before(end) {
				continue
			}
			candles = append(candles, types.OHLCV{
				Timestamp: k.StartTime.UTC(),
				Open:      k.OpenPrice,
				High:      k.HighPrice,
				Low:       k.LowPrice,
				Close:     k.ClosePrice,
				Volume:    k.Volume,
			})
		}

		next := klines[len(klines)-1].StartTime.Add(step)
		if !next.After(cursor) {
			break
		}
		cursor = next
	}

	p.log.Info().
		Str("symbol", symbol).
		Str("interval", interval).
		Int("bars", len(candles)).
		Msg("history fetch complete")

	return candles, nil
}

// LatestPrice returns the last traded price for the symbol
func (p *BybitProvider) LatestPrice(ctx context.Context, symbol string) (float64, error) {
	var price float64
	err := p.client.Retry(ctx, func() error {
		var err error
		price, err = p.client.GetLatestPrice(ctx, p.category, symbol)
		return err
	})
	if err != nil {
		monitoring.RecordError("ticker_fetch")
		return 0, err
	}
	return price, nil
}

func resolveInterval(interval string) (bybit.KlineInterval, time.Duration, error) {
	switch interval {
	case "1m":
		return bybit.Interval1m, time.Minute, nil
	case "5m":
		return bybit.Interval5m, 5 * time.Minute, nil
	case "15m":
		return bybit.Interval15m, 15 * time.Minute, nil
	case "30m":
		return bybit.Interval30m, 30 * time.Minute, nil
	case "1h":
		return bybit.Interval1h, time.Hour, nil
	case "4h":
		return bybit.Interval4h, 4 * time.Hour, nil
	case "1d":
		return bybit.Interval1d, 24 * time.Hour, nil
	case "1w":
		return bybit.Interval1w, 7 * 24 * time.Hour, nil
	}
	return "", 0, fmt.Errorf("unsupported interval %q", interval)
}

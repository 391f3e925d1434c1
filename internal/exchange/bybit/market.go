package bybit

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"dca-strategy-planner/pkg/types"
	bybit_api "github.com/bybit-exchange/bybit.go.api"
)

// KlineInterval represents the time interval for kline data
type KlineInterval string

const (
	Interval1m  KlineInterval = "1"
	Interval5m  KlineInterval = "5"
	Interval15m KlineInterval = "15"
	Interval30m KlineInterval = "30"
	Interval1h  KlineInterval = "60"
	Interval4h  KlineInterval = "240"
	Interval1d  KlineInterval = "D"
	Interval1w  KlineInterval = "W"
)

// Kline represents a single kline/candlestick data point
type Kline struct {
	StartTime  time.Time
	OpenPrice  float64
	HighPrice  float64
	LowPrice   float64
	ClosePrice float64
	Volume     float64
	Turnover   float64
}

// KlineParams holds parameters for fetching kline data
type KlineParams struct {
	Category string        // "spot", "linear", "inverse"
	Symbol   string        // Trading pair symbol (e.g., "BTCUSDT")
	Interval KlineInterval // Time interval
	Start    *time.Time    // Start time (optional)
	End      *time.Time    // End time (optional)
	Limit    int           // Number of records to return (max 1000, default 200)
}

// GetKlines fetches kline/candlestick data from Bybit. Bybit returns klines
// newest-first; the result here is reordered oldest-first.
func (c *Client) GetKlines(ctx context.Context, params KlineParams) ([]Kline, error) {
	if params.Category == "" {
		params.Category = "spot"
	}
	if params.Limit == 0 {
		params.Limit = 200
	}
	if params.Limit > 1000 {
		params.Limit = 1000
	}

	reqParams := map[string]interface{}{
		"category": params.Category,
		"symbol":   params.Symbol,
		"interval": string(params.Interval),
		"limit":    params.Limit,
	}
	if params.Start != nil {
		reqParams["start"] = params.Start.UnixMilli()
	}
	if params.End != nil {
		reqParams["end"] = params.End.UnixMilli()
	}

	result, err := c.httpClient.NewUtaBybitServiceWithParams(reqParams).GetMarketKline(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get klines: %w", err)
	}

	klines, err := parseKlineResponse(result)
	if err != nil {
		return nil, fmt.Errorf("failed to parse kline response: %w", err)
	}

	// Oldest first so consumers can append pages directly
	for i, j := 0, len(klines)-1; i < j; i, j = i+1, j-1 {
		klines[i], klines[j] = klines[j], klines[i]
	}

	return klines, nil
}

// GetTicker fetches the current market snapshot for a symbol
func (c *Client) GetTicker(ctx context.Context, category, symbol string) (*types.Ticker, error) {
	if category == "" {
		category = "spot"
	}

	params := map[string]interface{}{
		"category": category,
		"symbol":   symbol,
	}

	result, err := c.httpClient.NewUtaBybitServiceWithParams(params).GetMarketTickers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get ticker: %w", err)
	}

	ticker, err := parseTickerResponse(result)
	if err != nil {
		return nil, fmt.Errorf("failed to parse ticker response: %w", err)
	}

	return ticker, nil
}

// GetLatestPrice gets the latest traded price for a symbol
func (c *Client) GetLatestPrice(ctx context.Context, category, symbol string) (float64, error) {
	ticker, err := c.GetTicker(ctx, category, symbol)
	if err != nil {
		return 0, err
	}
	return ticker.Price, nil
}

func parseKlineResponse(response interface{}) ([]Kline, error) {
	serverResp, ok := response.(*bybit_api.ServerResponse)
	if !ok {
		return nil, fmt.Errorf("invalid response type")
	}
	if serverResp.RetCode != 0 {
		return nil, NewAPIError(serverResp.RetCode, serverResp.RetMsg)
	}

	resultBytes, err := json.Marshal(serverResp.Result)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	var klineResult struct {
		Symbol   string     `json:"symbol"`
		Category string     `json:"category"`
		List     [][]string `json:"list"`
	}
	if err := json.Unmarshal(resultBytes, &klineResult); err != nil {
		return nil, fmt.Errorf("failed to unmarshal kline result: %w", err)
	}

	var klines []Kline
	for _, item := range klineResult.List {
		if len(item) < 7 {
			continue // Skip incomplete data
		}

		// Bybit kline format: [startTime, open, high, low, close, volume, turnover]
		klines = append(klines, Kline{
			StartTime:  time.UnixMilli(parseInt64(item[0])),
			OpenPrice:  parseFloat64(item[1]),
			HighPrice:  parseFloat64(item[2]),
			LowPrice:   parseFloat64(item[3]),
			ClosePrice: parseFloat64(item[4]),
			Volume:     parseFloat64(item[5]),
			Turnover:   parseFloat64(item[6]),
		})
	}

	return klines, nil
}

func parseTickerResponse(response interface{}) (*types.Ticker, error) {
	serverResp, ok := response.(*bybit_api.ServerResponse)
	if !ok {
		return nil, fmt.Errorf("invalid response type")
	}
	if serverResp.RetCode != 0 {
		return nil, NewAPIError(serverResp.RetCode, serverResp.RetMsg)
	}

	resultBytes, err := json.Marshal(serverResp.Result)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	var tickerResult struct {
		Category string `json:"category"`
		List     []struct {
			Symbol    string `json:"symbol"`
			LastPrice string `json:"lastPrice"`
			Volume24h string `json:"volume24h"`
		} `json:"list"`
	}
	if err := json.Unmarshal(resultBytes, &tickerResult); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ticker result: %w", err)
	}

	if len(tickerResult.List) == 0 {
		return nil, fmt.Errorf("no ticker data found")
	}

	item := tickerResult.List[0]
	return &types.Ticker{
		Symbol:    item.Symbol,
		Price:     parseFloat64(item.LastPrice),
		Volume:    parseFloat64(item.Volume24h),
		Timestamp: time.UnixMilli(serverResp.Time),
	}, nil
}

func parseFloat64(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

func parseInt64(s string) int64 {
	v, _ := strconv.ParseInt(s, 10, 64)
	return v
}

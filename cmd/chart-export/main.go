package main

import (
	"context"
	"flag"
	"time"

	"dca-strategy-planner/cmd/common"
	"dca-strategy-planner/internal/exchange/bybit"
	"dca-strategy-planner/internal/indicators"
	"dca-strategy-planner/internal/logger"
	"dca-strategy-planner/pkg/config"
	"dca-strategy-planner/pkg/data"
	"dca-strategy-planner/pkg/reporting"
	"dca-strategy-planner/pkg/types"
)

func main() {
	var (
		dataFile = flag.String("data", "", "Path to historical data CSV (empty = fetch from exchange)")
		symbol   = flag.String("symbol", "BTCUSDT", "Trading symbol")
		interval = flag.String("interval", "1d", "Data interval (5m, 15m, 1h, 4h, 1d)")
		category = flag.String("category", "spot", "Market category (spot, linear)")
		days     = flag.Int("days", 365, "History length in days when fetching from exchange")
		envFile  = flag.String("env", ".env", "Environment file with exchange credentials")

		withSMA       = flag.Bool("sma", true, "Include SMA series")
		withBollinger = flag.Bool("bollinger", true, "Include Bollinger Bands series")
		withIchimoku  = flag.Bool("ichimoku", false, "Include Ichimoku series")
		withRSI       = flag.Bool("rsi", true, "Include RSI series")
		withMACD      = flag.Bool("macd", true, "Include MACD series")
		smaPeriod     = flag.Int("sma-period", indicators.DefaultSMAPeriod, "SMA period")
		rsiPeriod     = flag.Int("rsi-period", indicators.DefaultRSIPeriod, "RSI period")

		output      = flag.String("output", "chart.xlsx", "Output workbook path")
		showVersion = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	if *showVersion {
		common.PrintVersion("Chart Export")
		return
	}

	log := logger.New("chart-export")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	bars, err := loadBars(ctx, *dataFile, *symbol, *interval, *category, *days, *envFile)
	if err != nil {
		log.Fatal().Err(err).Str("symbol", *symbol).Msg("failed to load historical data")
	}
	log.Info().Str("symbol", *symbol).Int("bars", len(bars)).Msg("historical data loaded")

	set := indicators.ComputeAll(bars, indicators.Config{
		SMA:       *withSMA,
		SMAPeriod: *smaPeriod,
		Bollinger: *withBollinger,
		Ichimoku:  *withIchimoku,
		RSI:       *withRSI,
		RSIPeriod: *rsiPeriod,
		MACD:      *withMACD,
	})

	path := common.ResolvePath(*output, reporting.DefaultOutputDir(*symbol, *interval), ".xlsx")
	if err := reporting.WriteChartXLSX(*symbol, bars, set, path); err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("failed to write chart workbook")
	}
	log.Info().Str("path", path).Msg("chart workbook written")
}

func loadBars(ctx context.Context, dataFile, symbol, interval, category string, days int, envFile string) ([]types.OHLCV, error) {
	if dataFile != "" {
		provider := data.NewCSVProvider()
		bars, err := provider.LoadData(dataFile)
		if err != nil {
			return nil, err
		}
		filter := data.NewFilter()
		return filter.RemoveDuplicates(filter.SortByTimestamp(bars)), nil
	}

	if err := common.LoadEnvFile(envFile); err != nil {
		return nil, err
	}
	exchangeCfg := config.LoadExchangeConfig()
	client := bybit.NewClient(bybit.Config{
		APIKey:    exchangeCfg.APIKey,
		APISecret: exchangeCfg.APISecret,
		Testnet:   exchangeCfg.Testnet,
	})
	provider := data.NewBybitProvider(client, category)

	end := time.Now().UTC()
	start := end.AddDate(0, 0, -days)
	return provider.FetchHistory(ctx, symbol, interval, start, end)
}

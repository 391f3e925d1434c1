package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"dca-strategy-planner/cmd/common"
	"dca-strategy-planner/internal/backtest"
	"dca-strategy-planner/internal/exchange/bybit"
	"dca-strategy-planner/internal/logger"
	"dca-strategy-planner/internal/monitoring"
	"dca-strategy-planner/pkg/config"
	"dca-strategy-planner/pkg/data"
	"dca-strategy-planner/pkg/reporting"
	"dca-strategy-planner/pkg/types"
)

func main() {
	flags := NewBacktestFlags()
	flag.Parse()

	if *flags.ShowHelp {
		PrintUsage()
		return
	}
	if *flags.ShowVersion {
		common.PrintVersion("Recurring Purchase Backtest")
		return
	}

	log := logger.New("dca-backtest")

	cfg, err := buildConfig(flags)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	if *flags.MetricsPort > 0 {
		go serveMetrics(*flags.MetricsPort)
		log.Info().Int("port", *flags.MetricsPort).Msg("metrics endpoint started")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	bars, err := loadBars(ctx, cfg, *flags.EnvFile)
	if err != nil {
		log.Fatal().Err(err).Str("symbol", cfg.Symbol).Msg("failed to load historical data")
	}
	log.Info().Str("symbol", cfg.Symbol).Int("bars", len(bars)).Msg("historical data loaded")

	engine := backtest.NewEngine(cfg.AmountUSD)
	session := backtest.NewSession()
	epoch := session.Begin()

	started := time.Now()
	result, err := engine.Run(ctx, cfg.Symbol, bars, cfg.Rule)
	if err != nil {
		log.Fatal().Err(err).Msg("backtest failed")
	}
	if !session.Commit(epoch, result) {
		log.Fatal().Msg("backtest result superseded before commit")
	}
	monitoring.RecordBacktest(cfg.Symbol, time.Since(started).Seconds())
	log.Info().
		Str("pnl", common.FormatCurrency(result.PnL)).
		Str("roe", common.FormatPercent(result.ROE/100, 2)).
		Int("buys", result.BuyCount).
		Msg("backtest complete")

	reporting.OutputConsole(result)

	if *flags.ConsoleOnly || *flags.Output == "" {
		return
	}

	path := common.ResolvePath(*flags.Output, reporting.DefaultOutputDir(cfg.Symbol, cfg.Interval), "")
	if err := writeResult(result, path); err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("failed to write result")
	}
	log.Info().Str("path", path).Msg("result written")
}

// buildConfig assembles the backtest config from a file or from flags
func buildConfig(flags *BacktestFlags) (*config.BacktestConfig, error) {
	if *flags.ConfigFile != "" {
		return config.LoadBacktestConfig(*flags.ConfigFile)
	}

	cfg := &config.BacktestConfig{
		Symbol:    strings.ToUpper(*flags.Symbol),
		Interval:  *flags.Interval,
		AmountUSD: *flags.Amount,
		Category:  *flags.Category,
		DataFile:  *flags.DataFile,
		StartDate: *flags.StartDate,
		EndDate:   *flags.EndDate,
		Rule: backtest.PurchaseRule{
			Frequency:     backtest.Frequency(strings.ToUpper(*flags.Frequency)),
			TargetHour:    *flags.TargetHour,
			TargetWeekday: time.Weekday(*flags.Weekday),
			TargetDay:     *flags.MonthDay,
		},
	}
	if cfg.StartDate == "" {
		cfg.StartDate = time.Now().UTC().AddDate(0, 0, -*flags.Days).Format("2006-01-02")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadBars reads candles from the configured CSV file or fetches them from
// the exchange over the configured date range.
func loadBars(ctx context.Context, cfg *config.BacktestConfig, envFile string) ([]types.OHLCV, error) {
	filter := data.NewFilter()

	if cfg.DataFile != "" {
		if !common.FileExists(cfg.DataFile) {
			return nil, fmt.Errorf("data file not found: %s", cfg.DataFile)
		}
		provider := data.NewCSVProvider()
		bars, err := provider.LoadData(cfg.DataFile)
		if err != nil {
			return nil, err
		}
		bars = filter.RemoveDuplicates(filter.SortByTimestamp(bars))
		if err := provider.ValidateData(bars); err != nil {
			return nil, err
		}
		return bars, nil
	}

	start, err := time.Parse("2006-01-02", cfg.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %q: %w", cfg.StartDate, err)
	}
	end := time.Now().UTC()
	if cfg.EndDate != "" {
		end, err = time.Parse("2006-01-02", cfg.EndDate)
		if err != nil {
			return nil, fmt.Errorf("invalid end date %q: %w", cfg.EndDate, err)
		}
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
	provider := data.NewBybitProvider(client, cfg.Category)

	bars, err := provider.FetchHistory(ctx, cfg.Symbol, cfg.Interval, start, end)
	if err != nil {
		return nil, err
	}
	if err := filter.ValidateTimeSequence(bars); err != nil {
		bars = filter.RemoveDuplicates(filter.SortByTimestamp(bars))
	}
	return bars, nil
}

func serveMetrics(port int) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", monitoring.Handler())
	_ = http.ListenAndServe(fmt.Sprintf(":%d", port), mux)
}

func writeResult(result *backtest.Result, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return reporting.WriteBacktestXLSX(result, path)
	case ".csv":
		return reporting.WriteHistoryCSV(result, path)
	default:
		return reporting.WriteBacktestJSON(result, path)
	}
}

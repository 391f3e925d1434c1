package main

import (
	"context"
	"flag"
	"path/filepath"
	"strings"
	"time"

	"dca-strategy-planner/cmd/common"
	"dca-strategy-planner/internal/exchange/bybit"
	"dca-strategy-planner/internal/logger"
	"dca-strategy-planner/internal/monitoring"
	"dca-strategy-planner/internal/planner"
	"dca-strategy-planner/pkg/config"
	"dca-strategy-planner/pkg/data"
	"dca-strategy-planner/pkg/reporting"
	"github.com/jedib0t/go-pretty/v6/text"
)

func main() {
	flags := NewPlannerFlags()
	flag.Parse()

	if *flags.ShowHelp {
		PrintUsage()
		return
	}
	if *flags.ShowVersion {
		common.PrintVersion("DCA Strategy Planner")
		return
	}

	log := logger.New("planner")

	cfg, fileCfg, err := buildConfig(flags)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	if cfg.ReferencePrice == 0 {
		price, err := fetchLivePrice(flags)
		if err != nil {
			log.Fatal().Err(err).Str("symbol", *flags.Symbol).Msg("failed to fetch live price")
		}
		log.Info().Str("symbol", *flags.Symbol).Float64("price", price).Msg("using live reference price")
		cfg.ReferencePrice = price
	}

	if fileCfg != nil && !fileCfg.ConsoleColor {
		text.DisableColors()
	}

	result, err := planner.Calculate(*cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("ladder computation failed")
	}
	monitoring.RecordLadderComputation(string(cfg.Mode), string(cfg.Direction))

	reporting.OutputPlan(cfg, result)

	if *flags.ConsoleOnly {
		return
	}

	path := *flags.Output
	if path == "" {
		if fileCfg == nil || !fileCfg.ExcelReport {
			return
		}
		path = filepath.Join(fileCfg.OutputDir, "plan.xlsx")
	} else if fileCfg != nil {
		path = common.ResolvePath(path, fileCfg.OutputDir, "")
	}
	if err := writePlan(cfg, result, path); err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("failed to write plan")
	}
	log.Info().Str("path", path).Msg("plan written")
}

// buildConfig assembles the planner config from a file or from flags. Flag
// values win over file values only when the file is absent.
func buildConfig(flags *PlannerFlags) (*planner.Config, *config.PlannerConfig, error) {
	if *flags.ConfigFile != "" {
		fileCfg, err := config.LoadPlannerConfig(*flags.ConfigFile)
		if err != nil {
			return nil, nil, err
		}
		return &fileCfg.Strategy, fileCfg, nil
	}

	cfg := &planner.Config{
		Capital:        *flags.Capital,
		Leverage:       *flags.Leverage,
		Direction:      planner.Direction(strings.ToUpper(*flags.Direction)),
		Mode:           planner.Mode(strings.ToUpper(*flags.Mode)),
		ReferencePrice: *flags.Price,
		Classic: planner.ClassicParams{
			Entries: *flags.Entries,
		},
		Range: planner.RangeParams{
			Min:        *flags.RangeMin,
			Max:        *flags.RangeMax,
			GridCount:  *flags.GridCount,
			Multiplier: *flags.Multiplier,
		},
	}

	// Validation needs a reference price; a zero price means live lookup, so
	// defer full validation to Calculate and only check the rest here.
	if cfg.ReferencePrice != 0 {
		if err := cfg.Validate(); err != nil {
			return nil, nil, err
		}
	}
	return cfg, nil, nil
}

func fetchLivePrice(flags *PlannerFlags) (float64, error) {
	if err := common.LoadEnvFile(*flags.EnvFile); err != nil {
		return 0, err
	}
	exchangeCfg := config.LoadExchangeConfig()
	client := bybit.NewClient(bybit.Config{
		APIKey:    exchangeCfg.APIKey,
		APISecret: exchangeCfg.APISecret,
		Testnet:   exchangeCfg.Testnet,
	})
	provider := data.NewBybitProvider(client, *flags.Category)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return provider.LatestPrice(ctx, *flags.Symbol)
}

func writePlan(cfg *planner.Config, result *planner.Result, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return reporting.WritePlanXLSX(cfg, result, path)
	case ".csv":
		return reporting.WritePlanCSV(cfg, result, path)
	default:
		return reporting.WritePlanJSON(cfg, result, path)
	}
}

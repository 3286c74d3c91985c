package pipeline

import (
	"context"
	"fmt"
	"log"

	"bizscan/internal/config"
	"bizscan/internal/export"
	"bizscan/internal/rank"
	"bizscan/internal/report"
	"bizscan/internal/scrape"
)

type PricesRequest struct {
	Config      config.PriceConfig
	NumProducts int
	// Threshold is the significant-change ratio. Zero falls back to the
	// configured price_change_threshold, then to the report default.
	Threshold float64
	Output    string
}

func RunPrices(ctx context.Context, env Env, req PricesRequest) (Result, error) {
	cfg := req.Config
	cfg.RunConfig = env.apply(cfg.RunConfig)
	res := Result{RunID: newRunID()}

	format, err := export.ParseFormat(cfg.OutputFormat)
	if err != nil {
		return res, err
	}

	threshold := req.Threshold
	if threshold <= 0 {
		threshold = cfg.PriceChangeThreshold
	}
	if threshold <= 0 {
		threshold = rank.DefaultReportThreshold
	}
	log.Printf("[prices] run %s: configured products: %d, check interval: %ds",
		res.RunID, len(cfg.Products), cfg.CheckInterval)

	obs, err := scrape.Prices(ctx, env.generator(cfg.RunConfig), scrape.PriceParams{
		NumProducts: req.NumProducts,
		Products:    cfg.Products,
		Sites:       cfg.Sites,
	})
	if err != nil {
		return res, err
	}
	res.Records = len(obs)
	log.Printf("[prices] significant price changes (>= %g%%): %d",
		threshold*100, len(rank.SignificantChanges(obs, threshold)))

	res.Path, err = export.ToFile(obs, export.Target{
		Format: format,
		Path:   req.Output,
		Dir:    cfg.DataDir,
		Kind:   export.KindPrices,
	}, env.now)
	if err != nil {
		return res, fmt.Errorf("export prices: %w", err)
	}

	res.Report, err = report.Prices(ctx, obs, report.Options{RunID: res.RunID, Threshold: threshold})
	return res, present(env, "prices", res.Report, err)
}

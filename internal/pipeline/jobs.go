package pipeline

import (
	"context"
	"fmt"
	"log"

	"bizscan/internal/config"
	"bizscan/internal/export"
	"bizscan/internal/report"
	"bizscan/internal/scrape"
	"bizscan/internal/sites"
)

type JobsRequest struct {
	Config config.JobConfig
	// Location defaults to the first configured location.
	Location string
	// Output is an explicit export path; empty means auto-named in the data dir.
	Output string
}

func RunJobs(ctx context.Context, env Env, req JobsRequest) (Result, error) {
	cfg := req.Config
	cfg.RunConfig = env.apply(cfg.RunConfig)
	res := Result{RunID: newRunID()}

	format, err := export.ParseFormat(cfg.OutputFormat)
	if err != nil {
		return res, err
	}

	targets, err := targetSites(cfg)
	if err != nil {
		return res, err
	}
	log.Printf("[jobs] run %s: target sites: %d, rate limit: %gs", res.RunID, len(targets), cfg.RateLimit)

	location := req.Location
	if location == "" && len(cfg.Locations) > 0 {
		location = cfg.Locations[0]
	}

	jobs, err := scrape.Jobs(ctx, env.generator(cfg.RunConfig), scrape.JobParams{
		Keywords:   cfg.Keywords,
		Location:   location,
		MaxResults: cfg.MaxResults,
	})
	if err != nil {
		return res, err
	}
	res.Records = len(jobs)

	res.Path, err = export.ToFile(jobs, export.Target{
		Format: format,
		Path:   req.Output,
		Dir:    cfg.DataDir,
		Kind:   export.KindJobs,
	}, env.now)
	if err != nil {
		return res, fmt.Errorf("export jobs: %w", err)
	}

	res.Report, err = report.Jobs(ctx, jobs, report.Options{RunID: res.RunID})
	return res, present(env, "jobs", res.Report, err)
}

// targetSites lists the active registry URLs when a registry is
// configured, else the inline target_sites list.
func targetSites(cfg config.JobConfig) ([]string, error) {
	if cfg.TargetSitesCSV == "" {
		return cfg.TargetSites, nil
	}
	reg, err := sites.Open(cfg.TargetSitesCSV, sites.FilterFromConfig(cfg.SiteFilter))
	if err != nil {
		return nil, fmt.Errorf("load target sites: %w", err)
	}
	return reg.Active(), nil
}

package pipeline

import (
	"context"
	"fmt"
	"log"

	"bizscan/internal/config"
	"bizscan/internal/domain"
	"bizscan/internal/export"
	"bizscan/internal/rank"
	"bizscan/internal/report"
	"bizscan/internal/scrape"
)

type LeadsRequest struct {
	Config config.LeadConfig
	// Industry and Location default to the first configured entries.
	Industry string
	Location string
	// QualifiedOnly exports only leads at or above Config.MinScore.
	QualifiedOnly bool
	Output        string
}

func RunLeads(ctx context.Context, env Env, req LeadsRequest) (Result, error) {
	cfg := req.Config
	cfg.RunConfig = env.apply(cfg.RunConfig)
	res := Result{RunID: newRunID()}

	format, err := export.ParseFormat(cfg.OutputFormat)
	if err != nil {
		return res, err
	}

	industry := firstOr(req.Industry, cfg.Industries)
	location := firstOr(req.Location, cfg.Locations)
	log.Printf("[leads] run %s: industries: %d, locations: %d, rate limit: %gs",
		res.RunID, len(cfg.Industries), len(cfg.Locations), cfg.RateLimit)

	leads, err := scrape.Leads(ctx, env.generator(cfg.RunConfig), scrape.LeadParams{
		Industry:     industry,
		Location:     location,
		MaxResults:   cfg.MaxResults,
		CompanySizes: cfg.CompanySize,
	})
	if err != nil {
		return res, err
	}
	res.Records = len(leads)

	toExport, kind := leads, export.KindLeads
	if req.QualifiedOnly {
		toExport, kind = qualify(leads, cfg.MinScore), export.KindLeadsQualified
	}

	res.Path, err = export.ToFile(toExport, export.Target{
		Format: format,
		Path:   req.Output,
		Dir:    cfg.DataDir,
		Kind:   kind,
	}, env.now)
	if err != nil {
		return res, fmt.Errorf("export leads: %w", err)
	}

	res.Report, err = report.Leads(ctx, leads, report.Options{RunID: res.RunID, MinScore: cfg.MinScore})
	return res, present(env, "leads", res.Report, err)
}

func qualify(leads []domain.Lead, minScore int) []domain.Lead {
	q := rank.QualifyLeads(leads, minScore)
	log.Printf("[leads] qualified leads (score >= %d): %d", minScore, len(q))
	return q
}

func firstOr(v string, xs []string) string {
	if v != "" || len(xs) == 0 {
		return v
	}
	return xs[0]
}

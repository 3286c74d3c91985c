package config

import (
	"errors"
	"fmt"
	"strings"

	"bizscan/internal/domain"
	"bizscan/internal/export"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// Err folds the collected errors into one, or nil when OK.
func (v Validation) Err() error {
	if v.OK() {
		return nil
	}
	return errors.New("config validation failed:\n- " + strings.Join(v.Errors, "\n- "))
}

func trimList(xs []string) []string {
	seen := map[string]bool{}
	var ys []string
	for _, x := range xs {
		x = strings.TrimSpace(x)
		if x == "" {
			continue
		}
		key := strings.ToLower(x)
		if seen[key] {
			continue
		}
		seen[key] = true
		ys = append(ys, x)
	}
	return ys
}

func checkRun(res *Validation, rc RunConfig) {
	if rc.DelayMinMS < 0 || rc.DelayMaxMS < 0 {
		res.addErr("delay_min_ms and delay_max_ms must be >= 0")
	} else if rc.DelayMaxMS < rc.DelayMinMS {
		res.addErr("delay_max_ms (%d) must be >= delay_min_ms (%d)", rc.DelayMaxMS, rc.DelayMinMS)
	}
	if strings.TrimSpace(rc.DataDir) == "" {
		res.addErr("data_dir cannot be empty")
	}
}

func checkFormat(res *Validation, f string) {
	if _, err := export.ParseFormat(f); err != nil {
		res.addErr("output_format: %v", err)
	}
}

func NormalizeJobs(cfg JobConfig) (JobConfig, Validation) {
	out := cfg
	var res Validation

	out.Keywords = trimList(out.Keywords)
	out.Locations = trimList(out.Locations)
	out.TargetSites = trimList(out.TargetSites)
	out.TargetCategories = trimList(out.TargetCategories)
	out.MinPriority = strings.ToLower(strings.TrimSpace(out.MinPriority))

	if out.MaxResults < 0 {
		res.addErr("max_results must be >= 0")
	}
	if out.RateLimit < 0 {
		res.addErr("rate_limit must be >= 0")
	}
	if len(out.Keywords) == 0 {
		res.addWarn("keywords is empty; job descriptions will not mention any skills.")
	}
	if out.MinPriority == "" {
		out.MinPriority = string(domain.PriorityLow)
	} else if domain.Priority(out.MinPriority).Rank() == 0 {
		res.addWarn("min_priority %q is not low/medium/high; treating it as low.", out.MinPriority)
		out.MinPriority = string(domain.PriorityLow)
	}
	checkFormat(&res, out.OutputFormat)
	checkRun(&res, out.RunConfig)

	return out, res
}

func NormalizeLeads(cfg LeadConfig) (LeadConfig, Validation) {
	out := cfg
	var res Validation

	out.Industries = trimList(out.Industries)
	out.Locations = trimList(out.Locations)
	out.CompanySize = trimList(out.CompanySize)

	if out.MaxResults < 0 {
		res.addErr("max_results must be >= 0")
	}
	if out.RateLimit < 0 {
		res.addErr("rate_limit must be >= 0")
	}
	if out.MinScore < 0 || out.MinScore > 100 {
		res.addWarn("min_score is %d; lead scores range 1..100.", out.MinScore)
	}
	if len(out.Industries) == 0 {
		res.addWarn("industries is empty; the technology pool will be used.")
	}
	checkFormat(&res, out.OutputFormat)
	checkRun(&res, out.RunConfig)

	return out, res
}

func NormalizePrices(cfg PriceConfig) (PriceConfig, Validation) {
	out := cfg
	var res Validation

	out.Sites = trimList(out.Sites)

	if out.PriceChangeThreshold < 0 {
		res.addErr("price_change_threshold must be >= 0")
	}
	if out.CheckInterval < 0 {
		res.addErr("check_interval must be >= 0")
	}
	for i, p := range out.Products {
		if strings.TrimSpace(p.Name) == "" {
			res.addErr("products[%d].name is required", i)
		}
		if p.BasePrice <= 0 {
			res.addErr("products[%d].base_price must be > 0", i)
		}
		if strings.TrimSpace(p.Category) == "" {
			res.addWarn("products[%d].category is empty", i)
		}
	}
	checkFormat(&res, out.OutputFormat)
	checkRun(&res, out.RunConfig)

	return out, res
}

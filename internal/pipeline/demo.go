package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"bizscan/internal/config"
	"bizscan/internal/domain"
	"bizscan/internal/export"
)

// DemoConfigs are the configs the quick-start demo runs with.
type DemoConfigs struct {
	Jobs   config.JobConfig
	Leads  config.LeadConfig
	Prices config.PriceConfig
}

type DemoStep struct {
	Name   string
	Result Result
	Err    error
}

type DemoResult struct {
	Steps []DemoStep
	// DataDir is where the artifacts were written.
	DataDir string
}

func (d DemoResult) Passed() int {
	n := 0
	for _, s := range d.Steps {
		if s.Err == nil {
			n++
		}
	}
	return n
}

func (d DemoResult) Failed() int { return len(d.Steps) - d.Passed() }

var demoProducts = []domain.Product{
	{Name: `MacBook Pro 13"`, Category: "Electronics", BasePrice: 1299.99},
	{Name: "iPhone 14", Category: "Electronics", BasePrice: 899.99},
}

// RunDemo runs the three pipelines with spreadsheet output. A failing step
// is logged and counted; the remaining steps still run.
func RunDemo(ctx context.Context, env Env, cfgs DemoConfigs) DemoResult {
	jobs := cfgs.Jobs
	jobs.Keywords = []string{"python developer", "data scientist", "machine learning"}
	jobs.MaxResults = 50
	jobs.OutputFormat = string(export.Excel)

	leads := cfgs.Leads
	leads.MaxResults = 100
	leads.OutputFormat = string(export.Excel)

	prices := cfgs.Prices
	prices.Products = demoProducts
	prices.OutputFormat = string(export.Excel)

	dataDir := env.apply(jobs.RunConfig).DataDir
	steps := []struct {
		name string
		run  func() (Result, error)
	}{
		{"Job Market Intelligence", func() (Result, error) {
			return RunJobs(ctx, env, JobsRequest{Config: jobs, Location: "remote"})
		}},
		{"Lead Generation", func() (Result, error) {
			return RunLeads(ctx, env, LeadsRequest{Config: leads, Industry: "technology", Location: "usa"})
		}},
		{"Price Monitoring", func() (Result, error) {
			return RunPrices(ctx, env, PricesRequest{Config: prices, NumProducts: len(demoProducts)})
		}},
	}

	out := DemoResult{DataDir: dataDir}
	for _, s := range steps {
		log.Printf("[demo] %s", s.name)
		res, err := s.run()
		if err != nil {
			log.Printf("[demo] %s failed: %v", s.name, err)
		} else {
			log.Printf("[demo] %s completed: %s", s.name, res.Path)
		}
		out.Steps = append(out.Steps, DemoStep{Name: s.name, Result: res, Err: err})
		if errors.Is(err, context.Canceled) {
			break
		}
	}
	return out
}

// Artifact is one exported file found in the data directory.
type Artifact struct {
	Name    string
	Size    int64
	ModTime time.Time
}

// Artifacts lists exported files in dir, newest first. A missing directory
// yields no artifacts.
func Artifacts(dir string) ([]Artifact, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}

	var out []Artifact
	for _, e := range entries {
		if e.IsDir() || !isArtifact(e.Name()) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, err
		}
		out = append(out, Artifact{Name: e.Name(), Size: info.Size(), ModTime: info.ModTime()})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ModTime.After(out[j].ModTime) })
	return out, nil
}

func isArtifact(name string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	for _, f := range export.Formats {
		if ext == f.Ext() {
			return true
		}
	}
	return false
}

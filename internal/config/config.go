// internal/config/config.go
package config

import (
	"bizscan/internal/domain"
	"bizscan/internal/rank"
)

// RunConfig holds the knobs shared by every pipeline.
type RunConfig struct {
	Seed       uint64 `yaml:"seed,omitempty" json:"seed,omitempty"`
	DataDir    string `yaml:"data_dir,omitempty" json:"data_dir,omitempty"`
	DelayMinMS int    `yaml:"delay_min_ms,omitempty" json:"delay_min_ms,omitempty"`
	DelayMaxMS int    `yaml:"delay_max_ms,omitempty" json:"delay_max_ms,omitempty"`
}

// SiteFilter configures the site registry and which of its rows are active.
type SiteFilter struct {
	TargetSitesCSV   string   `yaml:"target_sites_csv,omitempty" json:"target_sites_csv,omitempty"`
	TargetCategories []string `yaml:"target_categories,omitempty" json:"target_categories,omitempty"`
	MinPriority      string   `yaml:"min_priority,omitempty" json:"min_priority,omitempty"`
}

type JobConfig struct {
	Keywords     []string `yaml:"keywords" json:"keywords"`
	Locations    []string `yaml:"locations" json:"locations"`
	RateLimit    float64  `yaml:"rate_limit" json:"rate_limit"`
	MaxResults   int      `yaml:"max_results" json:"max_results"`
	OutputFormat string   `yaml:"output_format" json:"output_format"`
	TargetSites  []string `yaml:"target_sites,omitempty" json:"target_sites,omitempty"`

	SiteFilter `yaml:",inline"`
	RunConfig  `yaml:",inline"`
}

type LeadConfig struct {
	Industries   []string `yaml:"industries" json:"industries"`
	Locations    []string `yaml:"locations" json:"locations"`
	CompanySize  []string `yaml:"company_size" json:"company_size"`
	RateLimit    float64  `yaml:"rate_limit" json:"rate_limit"`
	MaxResults   int      `yaml:"max_results" json:"max_results"`
	OutputFormat string   `yaml:"output_format" json:"output_format"`
	MinScore     int      `yaml:"min_score" json:"min_score"`

	RunConfig `yaml:",inline"`
}

type PriceConfig struct {
	Products             []domain.Product `yaml:"products" json:"products"`
	CheckInterval        int              `yaml:"check_interval" json:"check_interval"`
	PriceChangeThreshold float64          `yaml:"price_change_threshold" json:"price_change_threshold"`
	OutputFormat         string           `yaml:"output_format" json:"output_format"`
	Sites                []string         `yaml:"sites,omitempty" json:"sites,omitempty"`

	RunConfig `yaml:",inline"`
}

const DefaultDataDir = "data"

// Default config file locations, relative to the working directory.
const (
	JobConfigPath   = "config/job_scraper_config.json"
	LeadConfigPath  = "config/lead_scraper_config.json"
	PriceConfigPath = "config/price_monitor_config.json"
	SitesPath       = "config/target_sites.csv"
)

func DefaultJobs() JobConfig {
	return JobConfig{
		Keywords:     []string{"python", "developer"},
		Locations:    []string{"remote", "usa"},
		RateLimit:    2,
		MaxResults:   100,
		OutputFormat: "csv",
		SiteFilter:   SiteFilter{MinPriority: "low"},
		RunConfig:    RunConfig{DataDir: DefaultDataDir, DelayMinMS: 50, DelayMaxMS: 150},
	}
}

func DefaultLeads() LeadConfig {
	return LeadConfig{
		Industries:   []string{"technology", "healthcare", "finance"},
		Locations:    []string{"usa", "canada", "uk"},
		CompanySize:  []string{"startup", "small", "medium", "large"},
		RateLimit:    2,
		MaxResults:   100,
		OutputFormat: "csv",
		MinScore:     rank.DefaultMinScore,
		RunConfig:    RunConfig{DataDir: DefaultDataDir, DelayMinMS: 20, DelayMaxMS: 80},
	}
}

func DefaultPrices() PriceConfig {
	return PriceConfig{
		Products:             []domain.Product{},
		CheckInterval:        300,
		PriceChangeThreshold: 0.05,
		OutputFormat:         "csv",
		RunConfig:            RunConfig{DataDir: DefaultDataDir, DelayMinMS: 10, DelayMaxMS: 30},
	}
}

// LoadJobs never fails: a missing or invalid file yields DefaultJobs.
func LoadJobs(path string) JobConfig {
	return load(path, DefaultJobs(), NormalizeJobs)
}

func LoadLeads(path string) LeadConfig {
	return load(path, DefaultLeads(), NormalizeLeads)
}

func LoadPrices(path string) PriceConfig {
	return load(path, DefaultPrices(), NormalizePrices)
}

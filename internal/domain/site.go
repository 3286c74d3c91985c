package domain

import "strings"

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Rank orders priorities low=1, medium=2, high=3. Unknown values rank 0.
func (p Priority) Rank() int {
	switch Priority(strings.ToLower(strings.TrimSpace(string(p)))) {
	case PriorityLow:
		return 1
	case PriorityMedium:
		return 2
	case PriorityHigh:
		return 3
	default:
		return 0
	}
}

// Site is one row of the site registry. URL is the identity key.
type Site struct {
	URL      string   `csv:"site_url" json:"site_url"`
	Category string   `csv:"category" json:"category"`
	Priority Priority `csv:"priority" json:"priority"`
	Enabled  bool     `csv:"enabled" json:"enabled"`
}

var siteColumns = []string{"site_url", "category", "priority", "enabled"}

func (Site) Columns() []string { return siteColumns }

func (s Site) Values() []any {
	return []any{s.URL, s.Category, string(s.Priority), s.Enabled}
}

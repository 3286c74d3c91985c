package report

import (
	"context"
	"strings"

	"bizscan/internal/domain"
	"bizscan/internal/store"
)

// Sites summarises a registry table. active is the size of the filtered
// projection, which depends on the filter and not only on the table.
// Priorities are grouped case-insensitively.
func Sites(ctx context.Context, sites []domain.Site, active int, opts Options) (Report, error) {
	rows := make([]domain.Site, len(sites))
	for i, s := range sites {
		s.Priority = domain.Priority(strings.ToLower(strings.TrimSpace(string(s.Priority))))
		rows[i] = s
	}
	return build(ctx, store.Sites, "Site Registry", rows, opts, func(b *builder) {
		b.count("total_sites", "Total sites")
		b.metric("active_sites", "Active sites", active)
		b.metric("disabled_sites", "Disabled sites", len(sites)-countEnabled(sites))
		b.valueCounts("Sites by Category", "Category", "category", 0)
		b.valueCounts("Sites by Priority", "Priority", "priority", 0)
	})
}

func countEnabled(sites []domain.Site) int {
	n := 0
	for _, s := range sites {
		if s.Enabled {
			n++
		}
	}
	return n
}

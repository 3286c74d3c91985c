package sites

import (
	"strings"

	"bizscan/internal/config"
	"bizscan/internal/domain"
)

// Filter decides which registry rows are active.
type Filter struct {
	// Categories is an allow-list; empty allows every category.
	Categories  []string
	MinPriority domain.Priority
}

func FilterFromConfig(c config.SiteFilter) Filter {
	return Filter{
		Categories:  c.TargetCategories,
		MinPriority: domain.Priority(c.MinPriority),
	}
}

// ShouldKeepSite applies enabled, category and priority checks in that
// order. reason names the first check that rejected the site.
func ShouldKeepSite(f Filter, s domain.Site) (keep bool, reason string) {
	if !s.Enabled {
		return false, "disabled"
	}
	if !passesCategory(f, s) {
		return false, "category"
	}
	if !passesPriority(f, s) {
		return false, "priority"
	}
	return true, ""
}

func passesCategory(f Filter, s domain.Site) bool {
	if len(f.Categories) == 0 {
		return true
	}
	cat := strings.TrimSpace(s.Category)
	for _, c := range f.Categories {
		if strings.TrimSpace(c) == cat {
			return true
		}
	}
	return false
}

// Unknown minimums mean low; unknown site priorities rank 0 and never pass.
func passesPriority(f Filter, s domain.Site) bool {
	min := f.MinPriority.Rank()
	if min == 0 {
		min = domain.PriorityLow.Rank()
	}
	return s.Priority.Rank() >= min
}

package rank

import (
	"math"

	"bizscan/internal/domain"

	"github.com/samber/lo"
)

const DefaultMinScore = 70

// DefaultReportThreshold is the change ratio the price report counts as
// significant.
const DefaultReportThreshold = 0.10

// Filter keeps the items for which keep returns true, in input order.
// The result is never nil.
func Filter[T any](in []T, keep func(T) bool) []T {
	return lo.Filter(in, func(item T, _ int) bool { return keep(item) })
}

// QualifyLeads keeps leads scoring at least minScore.
func QualifyLeads(leads []domain.Lead, minScore int) []domain.Lead {
	return Filter(leads, func(l domain.Lead) bool { return l.LeadScore >= minScore })
}

// SignificantChanges keeps observations whose price moved by at least
// threshold (a ratio: 0.05 means 5%) in either direction.
func SignificantChanges(obs []domain.PriceObservation, threshold float64) []domain.PriceObservation {
	return Filter(obs, func(p domain.PriceObservation) bool {
		return math.Abs(p.PriceChangePercent)/100 >= threshold
	})
}

package report

import (
	"context"

	"bizscan/internal/domain"
	"bizscan/internal/rank"
	"bizscan/internal/store"
)

// QualityBins buckets lead scores for the quality distribution.
var QualityBins = []store.Bin{
	{Label: "Low (0-29)", Lo: 0, Hi: 30},
	{Label: "Medium (30-59)", Lo: 30, Hi: 60},
	{Label: "High (60-79)", Lo: 60, Hi: 80},
	{Label: "Premium (80-100)", Lo: 80, Hi: 100, Closed: true},
}

// Leads counts qualified leads against opts.MinScore as given; zero
// qualifies every lead.
func Leads(ctx context.Context, leads []domain.Lead, opts Options) (Report, error) {
	return build(ctx, store.Leads, "Lead Generation Report", leads, opts, func(b *builder) {
		b.count("total_leads", "Total leads")
		b.metric("qualified_leads", "Qualified leads", len(rank.QualifyLeads(leads, opts.MinScore)))
		b.countTrue("valid_emails", "Valid emails", "email_valid")
		b.countTrue("verified_contacts", "Verified contacts", "contact_verified")
		b.countDistinct("unique_companies", "Unique companies", "company_name")
		b.countDistinct("locations_covered", "Locations covered", "location")

		b.valueCounts("Leads by Industry", "Industry", "industry", 0)
		b.valueCounts("Leads by Company Size", "Company size", "company_size", 0)
		b.top("Top Leads", []string{"Company", "Contact", "Score"},
			"lead_score", true, "company_name", "contact_name", "lead_score")

		if b.err != nil {
			return
		}
		bins, err := store.Histogram(b.ctx, b.db.Pool, b.table, "lead_score", QualityBins)
		b.fail(err)
		b.counts("Lead Quality", "Tier", bins)
	})
}

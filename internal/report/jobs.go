package report

import (
	"context"

	"bizscan/internal/domain"
	"bizscan/internal/store"
)

func Jobs(ctx context.Context, jobs []domain.Job, opts Options) (Report, error) {
	return build(ctx, store.Jobs, "Job Scraping Report", jobs, opts, func(b *builder) {
		b.count("total_jobs", "Total jobs")
		b.countDistinct("unique_companies", "Unique companies", "company")
		b.countDistinct("locations_covered", "Locations covered", "location")
		b.distinct("job_types", "Job types", "job_type")
		b.distinct("experience_levels", "Experience levels", "experience_level")
		b.valueCounts("Top Companies", "Company", "company", topN)
		b.valueCounts("Top Locations", "Location", "location", topN)
	})
}

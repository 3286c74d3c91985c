package scrape

import (
	"context"
	"fmt"
	"log"
	"strings"

	"bizscan/internal/domain"
)

type JobParams struct {
	Keywords   []string
	Location   string
	MaxResults int
}

// Jobs generates min(MaxResults, MaxJobs) synthetic postings dated today.
func Jobs(ctx context.Context, g *Generator, p JobParams) ([]domain.Job, error) {
	n := capCount(p.MaxResults, MaxJobs)
	log.Printf("[jobs] searching for jobs: %s in %s", strings.Join(p.Keywords, ", "), p.Location)

	postedDate := g.Now().Format("2006-01-02")
	jobs := make([]domain.Job, 0, n)

	for i := 0; i < n; i++ {
		j := domain.Job{
			Title:           pick(g.Rng, jobTitles),
			Company:         pick(g.Rng, jobCompanies),
			Location:        pick(g.Rng, jobLocations),
			Salary:          pick(g.Rng, salaryRanges),
			Description:     describeJob(g, p.Keywords),
			PostedDate:      postedDate,
			JobType:         pick(g.Rng, jobTypes),
			ExperienceLevel: pick(g.Rng, experienceLevels),
			ScrapedAt:       g.stamp(),
		}
		jobs = append(jobs, j)

		if (i+1)%10 == 0 {
			log.Printf("[jobs] scraped %d jobs...", i+1)
		}
		if err := g.Pacer.Wait(ctx); err != nil {
			return nil, fmt.Errorf("generate jobs: %w", err)
		}
	}

	log.Printf("[jobs] successfully scraped %d jobs", len(jobs))
	return jobs, nil
}

func describeJob(g *Generator, keywords []string) string {
	title := strings.ToLower(pick(g.Rng, jobTitles))
	years := 2 + g.Rng.IntN(4)
	skills := sample(g.Rng, keywords, 2)
	if len(skills) == 0 {
		return fmt.Sprintf("Looking for experienced %s with %d years experience.", title, years)
	}
	return fmt.Sprintf("Looking for experienced %s with %d years experience in %s.",
		title, years, strings.Join(skills, ", "))
}

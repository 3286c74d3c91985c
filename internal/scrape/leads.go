package scrape

import (
	"context"
	"fmt"
	"log"
	"strings"

	"bizscan/internal/domain"
	"bizscan/internal/rank"
	"bizscan/internal/scrape/util"
)

type LeadParams struct {
	Industry   string
	Location   string
	MaxResults int
	// CompanySizes narrows the size pool; empty or all-unknown means every size.
	CompanySizes []string
	// Scorer defaults to rank.UniformScorer on the generator's source.
	Scorer rank.Scorer
}

// Leads generates min(MaxResults, MaxLeads) synthetic contacts. Unknown
// industries draw from the technology pool, unknown regions from usa.
func Leads(ctx context.Context, g *Generator, p LeadParams) ([]domain.Lead, error) {
	industry := strings.TrimSpace(p.Industry)
	if industry == "" {
		industry = defaultIndustry
	}
	region := strings.ToLower(strings.TrimSpace(p.Location))
	if region == "" {
		region = defaultRegion
	}
	log.Printf("[leads] generating leads for %s industry in %s", industry, region)

	companies, ok := companiesByIndustry[strings.ToLower(industry)]
	if !ok {
		companies = companiesByIndustry[defaultIndustry]
	}
	cities, ok := citiesByRegion[region]
	if !ok {
		cities = citiesByRegion[defaultRegion]
	}
	sizes := allowedSizes(p.CompanySizes)

	scorer := p.Scorer
	if scorer == nil {
		scorer = rank.UniformScorer{Rng: g.Rng}
	}

	n := capCount(p.MaxResults, MaxLeads)
	leads := make([]domain.Lead, 0, n)

	for i := 0; i < n; i++ {
		company := pick(g.Rng, companies)
		first := pick(g.Rng, firstNames)
		last := pick(g.Rng, lastNames)
		dom := util.DomainSlug(company)
		email := fmt.Sprintf("%s@%s.com", util.PersonSlug(first, last, "."), dom)
		size := pick(g.Rng, sizes)

		l := domain.Lead{
			CompanyName:     company,
			ContactName:     first + " " + last,
			Title:           pick(g.Rng, contactTitles),
			Email:           email,
			Phone:           fmt.Sprintf("+1-%d-%d-%d", 200+g.Rng.IntN(800), 100+g.Rng.IntN(900), 1000+g.Rng.IntN(9000)),
			Industry:        industry,
			Location:        pick(g.Rng, cities),
			CompanySize:     size.Key,
			Employees:       pick(g.Rng, companySizes).Employees,
			Website:         "https://www." + dom + ".com",
			LinkedInCompany: "https://linkedin.com/company/" + dom,
			LinkedInProfile: "https://linkedin.com/in/" + util.PersonSlug(first, last, "-"),
			ContactVerified: g.Rng.IntN(2) == 1,
			EmailValid:      util.ValidEmail(email),
			ScrapedAt:       g.stamp(),
		}
		l.LeadScore = scorer.Score(l)
		leads = append(leads, l)

		if (i+1)%20 == 0 {
			log.Printf("[leads] generated %d leads...", i+1)
		}
		if err := g.Pacer.Wait(ctx); err != nil {
			return nil, fmt.Errorf("generate leads: %w", err)
		}
	}

	log.Printf("[leads] successfully generated %d leads", len(leads))
	return leads, nil
}

func allowedSizes(keys []string) []companySize {
	want := map[string]bool{}
	for _, k := range keys {
		want[strings.ToLower(strings.TrimSpace(k))] = true
	}
	var out []companySize
	for _, s := range companySizes {
		if want[s.Key] {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return companySizes
	}
	return out
}

package scrape

import (
	"context"
	"reflect"
	"strings"
	"testing"
	"time"

	"bizscan/internal/domain"
	"bizscan/internal/scrape/util"

	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)

func testGenerator(seed uint64) *Generator {
	g := NewGenerator(seed, util.NoPacing())
	g.Now = func() time.Time { return fixedNow }
	return g
}

func requireNoEmptyStrings(t *testing.T, v any) {
	t.Helper()
	rv := reflect.ValueOf(v)
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if f.Kind() == reflect.String {
			require.NotEmpty(t, f.String(), "field %s", rv.Type().Field(i).Name)
		}
	}
}

func TestJobsCount(t *testing.T) {
	tests := []struct {
		requested int
		want      int
	}{
		{200, MaxJobs},
		{50, 50},
		{7, 7},
		{0, 0},
		{-3, 0},
	}
	for _, tt := range tests {
		jobs, err := Jobs(context.Background(), testGenerator(1), JobParams{
			Keywords:   []string{"python", "developer"},
			Location:   "remote",
			MaxResults: tt.requested,
		})
		require.NoError(t, err)
		require.Len(t, jobs, tt.want, "requested %d", tt.requested)
	}
}

func TestJobsFields(t *testing.T) {
	jobs, err := Jobs(context.Background(), testGenerator(7), JobParams{
		Keywords:   []string{"python", "developer", "go"},
		MaxResults: 200,
	})
	require.NoError(t, err)
	require.Len(t, jobs, 50)

	for _, j := range jobs {
		requireNoEmptyStrings(t, j)
		require.Equal(t, "2024-03-15", j.PostedDate)
		require.Contains(t, jobTitles, j.Title)
		require.Contains(t, jobCompanies, j.Company)
		require.Contains(t, jobTypes, j.JobType)
		require.Contains(t, experienceLevels, j.ExperienceLevel)
		require.True(t, strings.HasPrefix(j.Description, "Looking for experienced "))
		require.True(t, strings.HasSuffix(j.Description, "."))
	}
}

func TestJobsWithoutKeywords(t *testing.T) {
	jobs, err := Jobs(context.Background(), testGenerator(3), JobParams{MaxResults: 5})
	require.NoError(t, err)
	for _, j := range jobs {
		require.NotContains(t, j.Description, " in .")
	}
}

func TestSameSeedSameRecords(t *testing.T) {
	p := LeadParams{Industry: "finance", Location: "uk", MaxResults: 30}
	a, err := Leads(context.Background(), testGenerator(42), p)
	require.NoError(t, err)
	b, err := Leads(context.Background(), testGenerator(42), p)
	require.NoError(t, err)
	require.Equal(t, a, b)

	c, err := Leads(context.Background(), testGenerator(43), p)
	require.NoError(t, err)
	require.NotEqual(t, a, c)
}

func TestLeads(t *testing.T) {
	leads, err := Leads(context.Background(), testGenerator(5), LeadParams{
		Industry:   "healthcare",
		Location:   "canada",
		MaxResults: 500,
	})
	require.NoError(t, err)
	require.Len(t, leads, MaxLeads)

	for _, l := range leads {
		requireNoEmptyStrings(t, l)
		require.Contains(t, companiesByIndustry["healthcare"], l.CompanyName)
		require.Contains(t, citiesByRegion["canada"], l.Location)
		require.GreaterOrEqual(t, l.LeadScore, 1)
		require.LessOrEqual(t, l.LeadScore, 100)
		require.True(t, l.EmailValid, l.Email)
		require.Regexp(t, `^\+1-\d{3}-\d{3}-\d{4}$`, l.Phone)

		dom := util.DomainSlug(l.CompanyName)
		require.True(t, strings.HasSuffix(l.Email, "@"+dom+".com"), l.Email)
		require.Equal(t, "https://www."+dom+".com", l.Website)
	}
}

func TestLeadsFallbacks(t *testing.T) {
	leads, err := Leads(context.Background(), testGenerator(9), LeadParams{
		Industry:   "aerospace",
		Location:   "mars",
		MaxResults: 20,
	})
	require.NoError(t, err)
	for _, l := range leads {
		require.Equal(t, "aerospace", l.Industry)
		require.Contains(t, companiesByIndustry[defaultIndustry], l.CompanyName)
		require.Contains(t, citiesByRegion[defaultRegion], l.Location)
	}
}

func TestLeadsCompanySizes(t *testing.T) {
	leads, err := Leads(context.Background(), testGenerator(11), LeadParams{
		MaxResults:   40,
		CompanySizes: []string{"startup", "nonsense"},
	})
	require.NoError(t, err)
	for _, l := range leads {
		require.Equal(t, "startup", l.CompanySize)
		require.Contains(t, employeeRanges(), l.Employees)
	}
}

func employeeRanges() []string {
	var out []string
	for _, s := range companySizes {
		out = append(out, s.Employees)
	}
	return out
}

func TestLeadsEmployeesDrawnSeparately(t *testing.T) {
	leads, err := Leads(context.Background(), testGenerator(5), LeadParams{MaxResults: 100})
	require.NoError(t, err)

	employees := make(map[string]string, len(companySizes))
	for _, s := range companySizes {
		employees[s.Key] = s.Employees
	}
	matched := 0
	for _, l := range leads {
		require.Contains(t, employeeRanges(), l.Employees)
		if employees[l.CompanySize] == l.Employees {
			matched++
		}
	}
	require.Less(t, matched, len(leads))
}

type fixedScorer int

func (s fixedScorer) Score(domain.Lead) int { return int(s) }

func TestLeadsCustomScorer(t *testing.T) {
	leads, err := Leads(context.Background(), testGenerator(1), LeadParams{MaxResults: 3, Scorer: fixedScorer(77)})
	require.NoError(t, err)
	for _, l := range leads {
		require.Equal(t, 77, l.LeadScore)
	}
}

func TestPrices(t *testing.T) {
	obs, err := Prices(context.Background(), testGenerator(2), PriceParams{NumProducts: 20})
	require.NoError(t, err)
	require.Len(t, obs, len(defaultProducts)*len(defaultSites))

	for _, o := range obs {
		requireNoEmptyStrings(t, o)
		require.GreaterOrEqual(t, o.CurrentPrice, round(o.OriginalPrice*0.8, 2)-0.01)
		require.LessOrEqual(t, o.CurrentPrice, round(o.OriginalPrice*1.3, 2)+0.01)
		require.GreaterOrEqual(t, o.DiscountPercentage, 0.0)
		require.LessOrEqual(t, o.DiscountPercentage, 25.0)
		require.InDelta(t, o.CurrentPrice-o.OriginalPrice, o.PriceChange, 0.011)
		if o.Availability {
			require.Equal(t, domain.InStock, o.StockStatus)
		} else {
			require.Equal(t, domain.OutOfStock, o.StockStatus)
		}
	}
}

func TestPricesCustomTables(t *testing.T) {
	obs, err := Prices(context.Background(), testGenerator(2), PriceParams{
		NumProducts: 2,
		Products: []domain.Product{
			{Name: "Widget", Category: "Tools", BasePrice: 10},
			{Name: "Gadget", Category: "Tools", BasePrice: 20},
			{Name: "Gizmo", Category: "Tools", BasePrice: 30},
		},
		Sites: []string{"Shop A", "Shop B"},
	})
	require.NoError(t, err)
	require.Len(t, obs, 4)
	require.Equal(t, "Widget", obs[0].ProductName)
	require.Equal(t, "Shop A", obs[0].Site)
	require.Equal(t, "Gadget", obs[3].ProductName)
	require.Equal(t, "Shop B", obs[3].Site)
}

func TestCancelledRunReturnsNoRecords(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	jobs, err := Jobs(ctx, testGenerator(1), JobParams{MaxResults: 10})
	require.ErrorIs(t, err, context.Canceled)
	require.Nil(t, jobs)
}

package sites

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bizscan/internal/config"
	"bizscan/internal/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

const registryCSV = `site_url,category,priority,enabled
https://a.example,jobs,low,true
https://b.example,jobs,high,false
https://c.example,leads,medium,true
https://d.example,jobs,urgent,true
https://e.example,jobs,High,True
`

func writeRegistry(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sites.csv")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestShouldKeepSite(t *testing.T) {
	tests := []struct {
		name       string
		filter     Filter
		site       domain.Site
		wantKeep   bool
		wantReason string
	}{
		{"disabled wins", Filter{}, domain.Site{Priority: "high"}, false, "disabled"},
		{"category miss", Filter{Categories: []string{"leads"}}, domain.Site{Category: "jobs", Priority: "high", Enabled: true}, false, "category"},
		{"priority below min", Filter{MinPriority: "medium"}, domain.Site{Priority: "low", Enabled: true}, false, "priority"},
		{"unknown entry priority", Filter{MinPriority: "low"}, domain.Site{Priority: "urgent", Enabled: true}, false, "priority"},
		{"unknown min means low", Filter{MinPriority: "bogus"}, domain.Site{Priority: "low", Enabled: true}, true, ""},
		{"all pass", Filter{Categories: []string{"jobs"}, MinPriority: "high"}, domain.Site{Category: "jobs", Priority: "HIGH", Enabled: true}, true, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keep, reason := ShouldKeepSite(tt.filter, tt.site)
			require.Equal(t, tt.wantKeep, keep)
			require.Equal(t, tt.wantReason, reason)
		})
	}
}

func TestOpenFilters(t *testing.T) {
	path := writeRegistry(t, registryCSV)

	reg, err := Open(path, Filter{MinPriority: domain.PriorityLow})
	require.NoError(t, err)
	require.Len(t, reg.Sites(), 5)
	require.Equal(t, []string{"https://a.example", "https://c.example", "https://e.example"}, reg.Active())

	reg, err = Open(path, Filter{Categories: []string{"jobs"}, MinPriority: domain.PriorityMedium})
	require.NoError(t, err)
	require.Equal(t, []string{"https://e.example"}, reg.Active())
}

func TestEnabledLowOnly(t *testing.T) {
	reg, err := Open("", Filter{MinPriority: domain.PriorityLow})
	require.NoError(t, err)
	require.NoError(t, reg.BulkAdd([]domain.Site{
		{URL: "a", Priority: domain.PriorityLow, Enabled: true},
		{URL: "b", Priority: domain.PriorityHigh, Enabled: false},
	}))
	require.Equal(t, []string{"a"}, reg.Active())
}

// The three checks are independent, so any evaluation order gives the same
// active set as ShouldKeepSite.
func TestFilterOrderIndependent(t *testing.T) {
	f := Filter{Categories: []string{"jobs", "leads"}, MinPriority: domain.PriorityMedium}
	checks := []func(domain.Site) bool{
		func(s domain.Site) bool { return s.Enabled },
		func(s domain.Site) bool { return passesCategory(f, s) },
		func(s domain.Site) bool { return passesPriority(f, s) },
	}
	orders := [][]int{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}}

	var all []domain.Site
	for _, cat := range []string{"jobs", "leads", "news"} {
		for _, p := range []domain.Priority{"low", "medium", "high", "??"} {
			for _, en := range []bool{true, false} {
				all = append(all, domain.Site{URL: cat + string(p), Category: cat, Priority: p, Enabled: en})
			}
		}
	}

	var want []string
	for _, s := range all {
		if keep, _ := ShouldKeepSite(f, s); keep {
			want = append(want, s.URL)
		}
	}

	for _, order := range orders {
		var got []string
		for _, s := range all {
			ok := true
			for _, i := range order {
				if !checks[i](s) {
					ok = false
					break
				}
			}
			if ok {
				got = append(got, s.URL)
			}
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("order %v mismatch (-want +got):\n%s", order, diff)
		}
	}
}

func TestMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "sites.csv")
	reg, err := Open(path, Filter{})
	require.NoError(t, err)
	require.Empty(t, reg.Sites())
	require.Empty(t, reg.Active())
}

func TestBulkAddKeepsLast(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sites.csv")
	reg, err := Open(path, Filter{})
	require.NoError(t, err)

	require.NoError(t, reg.BulkAdd([]domain.Site{
		{URL: "x", Category: "jobs", Priority: "low", Enabled: true},
		{URL: "y", Category: "jobs", Priority: "low", Enabled: true},
	}))
	require.NoError(t, reg.BulkAdd([]domain.Site{
		{URL: "z", Category: "leads", Priority: "high", Enabled: true},
		{URL: "x", Category: "news", Priority: "high", Enabled: false},
	}))

	urls := []string{}
	for _, s := range reg.Sites() {
		urls = append(urls, s.URL)
	}
	require.Equal(t, []string{"y", "z", "x"}, urls)
	require.Equal(t, "news", reg.Sites()[2].Category)
	require.Equal(t, []string{"y", "z"}, reg.Active())

	reopened, err := Open(path, Filter{})
	require.NoError(t, err)
	require.Equal(t, reg.Sites(), reopened.Sites())

	_, err = os.Stat(path + ".tmp")
	require.True(t, os.IsNotExist(err))
}

func TestSetEnabledPersists(t *testing.T) {
	path := writeRegistry(t, registryCSV)
	reg, err := Open(path, Filter{})
	require.NoError(t, err)

	n, err := reg.SetEnabled([]string{"https://b.example", "https://missing.example"}, true)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Contains(t, reg.Active(), "https://b.example")

	n, err = reg.SetEnabled([]string{"https://a.example"}, false)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	reopened, err := Open(path, Filter{})
	require.NoError(t, err)
	require.Equal(t, []string{"https://b.example", "https://c.example", "https://e.example"}, reopened.Active())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(b), "site_url,category,priority,enabled\n"))
}

func TestListingsAndStats(t *testing.T) {
	reg, err := Open(writeRegistry(t, registryCSV), Filter{})
	require.NoError(t, err)

	require.Len(t, reg.ByCategory("jobs"), 3)
	require.Len(t, reg.ByCategory("leads"), 1)
	require.Len(t, reg.ByPriority(domain.PriorityHigh), 1)
	require.Empty(t, reg.ByPriority("urgent"))

	st := reg.Stats()
	require.Equal(t, 5, st.Total)
	require.Equal(t, 3, st.Active)
	require.Equal(t, 1, st.Disabled)
}

func TestFilterFromConfig(t *testing.T) {
	f := FilterFromConfig(config.SiteFilter{TargetCategories: []string{"jobs"}, MinPriority: "high"})
	require.Equal(t, Filter{Categories: []string{"jobs"}, MinPriority: domain.PriorityHigh}, f)
}

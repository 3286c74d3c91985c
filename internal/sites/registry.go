// Package sites manages the CSV registry of target sites and the filtered
// list of active site URLs derived from it.
package sites

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"bizscan/internal/domain"

	"github.com/samber/lo"
)

// Registry is a site table plus its active projection. It is not safe for
// concurrent use; the file lock only guards against other processes.
type Registry struct {
	path   string
	filter Filter
	sites  []domain.Site
	active []string
}

// Open loads the registry at path. A missing file yields an empty table.
// An empty path gives a registry that is never persisted.
func Open(path string, f Filter) (*Registry, error) {
	r := &Registry{path: path, filter: f}
	if path == "" {
		r.refilter()
		return r, nil
	}

	sites, found, err := readTable(path)
	if err != nil {
		return nil, err
	}
	if !found {
		log.Printf("[sites] registry %s not found, starting empty", path)
	}
	r.sites = sites
	r.refilter()
	log.Printf("[sites] loaded %d active sites of %d", len(r.active), len(r.sites))
	return r, nil
}

func (r *Registry) Path() string { return r.path }

// Active returns the URLs of the sites passing the filter, in table order.
func (r *Registry) Active() []string {
	return append([]string{}, r.active...)
}

// Sites returns a copy of the full table.
func (r *Registry) Sites() []domain.Site {
	return append([]domain.Site{}, r.sites...)
}

// ByCategory lists enabled sites in category c.
func (r *Registry) ByCategory(c string) []domain.Site {
	c = strings.TrimSpace(c)
	return lo.Filter(r.sites, func(s domain.Site, _ int) bool {
		return s.Enabled && strings.TrimSpace(s.Category) == c
	})
}

// ByPriority lists enabled sites of exactly priority p.
func (r *Registry) ByPriority(p domain.Priority) []domain.Site {
	want := p.Rank()
	return lo.Filter(r.sites, func(s domain.Site, _ int) bool {
		return s.Enabled && want != 0 && s.Priority.Rank() == want
	})
}

type Stats struct {
	Total    int
	Active   int
	Disabled int
}

func (r *Registry) Stats() Stats {
	return Stats{
		Total:    len(r.sites),
		Active:   len(r.active),
		Disabled: lo.CountBy(r.sites, func(s domain.Site) bool { return !s.Enabled }),
	}
}

// BulkAdd appends entries, then drops duplicate URLs keeping the last
// occurrence at its own position. The table is persisted before the
// active list is rebuilt.
func (r *Registry) BulkAdd(entries []domain.Site) error {
	next := dedupeKeepLast(append(r.Sites(), entries...))
	if err := r.save(next); err != nil {
		return err
	}
	log.Printf("[sites] added %d entries, table now has %d sites", len(entries), len(next))
	return nil
}

// SetEnabled flips the enabled flag on every row whose URL is listed and
// reports how many rows matched.
func (r *Registry) SetEnabled(urls []string, enabled bool) (int, error) {
	want := lo.SliceToMap(urls, func(u string) (string, struct{}) {
		return strings.TrimSpace(u), struct{}{}
	})

	next := r.Sites()
	matched := 0
	for i := range next {
		if _, ok := want[next[i].URL]; ok {
			next[i].Enabled = enabled
			matched++
		}
	}
	if err := r.save(next); err != nil {
		return 0, err
	}
	log.Printf("[sites] set enabled=%t on %d sites", enabled, matched)
	return matched, nil
}

// Reload rereads the table from disk and reapplies the filter.
func (r *Registry) Reload() error {
	if r.path == "" {
		return nil
	}
	sites, _, err := readTable(r.path)
	if err != nil {
		return err
	}
	r.sites = sites
	r.refilter()
	return nil
}

func (r *Registry) save(next []domain.Site) error {
	if r.path != "" {
		if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
			return err
		}
		if err := writeTable(r.path, next); err != nil {
			return fmt.Errorf("save registry %s: %w", r.path, err)
		}
	}
	r.sites = next
	r.refilter()
	return nil
}

func (r *Registry) refilter() {
	r.active = []string{}
	for _, s := range r.sites {
		if keep, _ := ShouldKeepSite(r.filter, s); keep {
			r.active = append(r.active, s.URL)
		}
	}
}

func dedupeKeepLast(in []domain.Site) []domain.Site {
	last := make(map[string]int, len(in))
	for i, s := range in {
		last[s.URL] = i
	}
	out := make([]domain.Site, 0, len(last))
	for i, s := range in {
		if last[s.URL] == i {
			out = append(out, s)
		}
	}
	return out
}

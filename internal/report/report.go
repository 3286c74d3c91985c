// Package report computes summary aggregates over generated records and
// renders them as tables. Aggregates are computed by loading the records
// into a throwaway in-memory SQLite database.
package report

import (
	"context"
	"errors"
	"fmt"
	"math"

	"bizscan/internal/domain"
	"bizscan/internal/store"
)

// ErrNoRecords is returned for an empty collection. Callers treat it as a
// diagnostic, not a failure.
var ErrNoRecords = errors.New("no records to report")

const topN = 5

type Metric struct {
	Name  string
	Label string
	Value any
}

type Section struct {
	Title  string
	Header []string
	Rows   [][]any
}

type Report struct {
	Title    string
	RunID    string
	Metrics  []Metric
	Sections []Section
}

type Options struct {
	RunID string
	// MinScore is the lead qualification cutoff.
	MinScore int
	// Threshold is the price change ratio counted as significant.
	Threshold float64
}

// Values maps aggregate name to value.
func (r Report) Values() map[string]any {
	out := make(map[string]any, len(r.Metrics))
	for _, m := range r.Metrics {
		out[m.Name] = m.Value
	}
	return out
}

func (r Report) Lookup(name string) (any, bool) {
	for _, m := range r.Metrics {
		if m.Name == name {
			return m.Value, true
		}
	}
	return nil, false
}

func (r Report) Section(title string) (Section, bool) {
	for _, s := range r.Sections {
		if s.Title == title {
			return s, true
		}
	}
	return Section{}, false
}

// builder accumulates metrics and sections. After the first failed query
// later queries are skipped and build returns that error.
type builder struct {
	ctx   context.Context
	db    *store.DB
	table string
	r     Report
	err   error
}

func (b *builder) metric(name, label string, v any) {
	b.r.Metrics = append(b.r.Metrics, Metric{Name: name, Label: label, Value: v})
}

func (b *builder) count(name, label string) {
	if b.err != nil {
		return
	}
	n, err := store.Count(b.ctx, b.db.Pool, b.table)
	b.fail(err)
	b.metric(name, label, n)
}

func (b *builder) countDistinct(name, label, col string) {
	if b.err != nil {
		return
	}
	n, err := store.CountDistinct(b.ctx, b.db.Pool, b.table, col)
	b.fail(err)
	b.metric(name, label, n)
}

func (b *builder) countTrue(name, label, col string) {
	if b.err != nil {
		return
	}
	n, err := store.CountTrue(b.ctx, b.db.Pool, b.table, col)
	b.fail(err)
	b.metric(name, label, n)
}

func (b *builder) distinct(name, label, col string) {
	if b.err != nil {
		return
	}
	vals, err := store.Distinct(b.ctx, b.db.Pool, b.table, col)
	b.fail(err)
	b.metric(name, label, vals)
}

func (b *builder) valueCounts(title, keyHeader, col string, limit int) {
	if b.err != nil {
		return
	}
	groups, err := store.ValueCounts(b.ctx, b.db.Pool, b.table, col, limit)
	b.fail(err)
	b.counts(title, keyHeader, groups)
}

func (b *builder) counts(title, keyHeader string, groups []store.GroupCount) {
	s := Section{Title: title, Header: []string{keyHeader, "Count"}}
	for _, g := range groups {
		s.Rows = append(s.Rows, []any{g.Key, g.Count})
	}
	b.r.Sections = append(b.r.Sections, s)
}

func (b *builder) groupMeans(title, keyHeader, valHeader, key, val string, places int) {
	if b.err != nil {
		return
	}
	groups, err := store.GroupMeans(b.ctx, b.db.Pool, b.table, key, val)
	b.fail(err)
	s := Section{Title: title, Header: []string{keyHeader, valHeader}}
	for _, g := range groups {
		s.Rows = append(s.Rows, []any{g.Key, round(g.Mean, places)})
	}
	b.r.Sections = append(b.r.Sections, s)
}

func (b *builder) top(title string, header []string, orderBy string, desc bool, cols ...string) {
	if b.err != nil {
		return
	}
	rows, err := store.TopN(b.ctx, b.db.Pool, b.table, orderBy, desc, topN, cols...)
	b.fail(err)
	b.r.Sections = append(b.r.Sections, Section{Title: title, Header: header, Rows: rows})
}

func (b *builder) fail(err error) {
	if err != nil && b.err == nil {
		b.err = err
	}
}

// build loads recs into a fresh store and hands a builder to body.
func build[T domain.Record](ctx context.Context, table, title string, recs []T, opts Options, body func(b *builder)) (Report, error) {
	if len(recs) == 0 {
		return Report{}, ErrNoRecords
	}

	db, err := store.OpenMemory(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("open report store: %w", err)
	}
	defer db.Close()

	if err := store.Migrate(ctx, db.Pool); err != nil {
		return Report{}, fmt.Errorf("migrate report store: %w", err)
	}
	if err := store.Insert(ctx, db.Pool, table, recs); err != nil {
		return Report{}, err
	}

	b := &builder{ctx: ctx, db: db, table: table, r: Report{Title: title, RunID: opts.RunID}}
	body(b)
	if b.err != nil {
		return Report{}, fmt.Errorf("%s: %w", title, b.err)
	}
	return b.r, nil
}

func round(x float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(x*p) / p
}

package store

import (
	"context"
	"testing"

	"bizscan/internal/domain"

	"github.com/stretchr/testify/require"
)

func openTest(t *testing.T) *DB {
	t.Helper()
	db, err := OpenMemory(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, Migrate(context.Background(), db.Pool))
	return db
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := openTest(t)
	require.NoError(t, Migrate(context.Background(), db.Pool))

	var v int
	require.NoError(t, db.Pool.QueryRow(`PRAGMA user_version;`).Scan(&v))
	require.Equal(t, 1, v)
}

func TestAggregates(t *testing.T) {
	ctx := context.Background()
	db := openTest(t)

	jobs := []domain.Job{
		{Title: "Go Dev", Company: "B", Location: "Remote", JobType: "Contract"},
		{Title: "Go Dev", Company: "A", Location: "Austin, TX", JobType: "Full-time"},
		{Title: "Go Dev", Company: "A", Location: "Remote", JobType: "Full-time"},
		{Title: "Go Dev", Company: "B", Location: "Boston, MA", JobType: "Remote"},
		{Title: "Go Dev", Company: "C", Location: "Remote", JobType: "Contract"},
	}
	require.NoError(t, Insert(ctx, db.Pool, Jobs, jobs))

	n, err := Count(ctx, db.Pool, Jobs)
	require.NoError(t, err)
	require.Equal(t, 5, n)

	n, err = CountDistinct(ctx, db.Pool, Jobs, "company")
	require.NoError(t, err)
	require.Equal(t, 3, n)

	types, err := Distinct(ctx, db.Pool, Jobs, "job_type")
	require.NoError(t, err)
	require.Equal(t, []string{"Contract", "Full-time", "Remote"}, types)

	// A and B tie on 2; B was seen first.
	counts, err := ValueCounts(ctx, db.Pool, Jobs, "company", 2)
	require.NoError(t, err)
	require.Equal(t, []GroupCount{{"B", 2}, {"A", 2}}, counts)

	all, err := ValueCounts(ctx, db.Pool, Jobs, "location", 0)
	require.NoError(t, err)
	require.Equal(t, []GroupCount{{"Remote", 3}, {"Austin, TX", 1}, {"Boston, MA", 1}}, all)
}

func TestNumericQueries(t *testing.T) {
	ctx := context.Background()
	db := openTest(t)

	leads := []domain.Lead{
		{CompanyName: "a", ContactName: "x", LeadScore: 10, EmailValid: true},
		{CompanyName: "b", ContactName: "y", LeadScore: 95, EmailValid: true, ContactVerified: true},
		{CompanyName: "c", ContactName: "z", LeadScore: 60},
		{CompanyName: "d", ContactName: "w", LeadScore: 95},
		{CompanyName: "e", ContactName: "v", LeadScore: 100},
		{CompanyName: "f", ContactName: "u", LeadScore: 30},
	}
	require.NoError(t, Insert(ctx, db.Pool, Leads, leads))

	n, err := CountTrue(ctx, db.Pool, Leads, "email_valid")
	require.NoError(t, err)
	require.Equal(t, 2, n)

	mean, err := Mean(ctx, db.Pool, Leads, "lead_score")
	require.NoError(t, err)
	require.InDelta(t, 65.0, mean, 1e-9)

	top, err := TopN(ctx, db.Pool, Leads, "lead_score", true, 3, "company_name", "lead_score")
	require.NoError(t, err)
	require.Len(t, top, 3)
	require.Equal(t, "e", top[0][0])
	require.Equal(t, "b", top[1][0])
	require.Equal(t, "d", top[2][0])

	bins := []Bin{
		{Label: "low", Lo: 0, Hi: 30},
		{Label: "mid", Lo: 30, Hi: 60},
		{Label: "high", Lo: 60, Hi: 80},
		{Label: "top", Lo: 80, Hi: 100, Closed: true},
	}
	hist, err := Histogram(ctx, db.Pool, Leads, "lead_score", bins)
	require.NoError(t, err)
	require.Equal(t, []GroupCount{{"low", 1}, {"mid", 1}, {"high", 1}, {"top", 3}}, hist)
}

func TestGroupMeans(t *testing.T) {
	ctx := context.Background()
	db := openTest(t)

	obs := []domain.PriceObservation{
		{ProductName: "p1", Category: "Footwear", Site: "Amazon", CurrentPrice: 100},
		{ProductName: "p2", Category: "Apparel", Site: "Target", CurrentPrice: 50},
		{ProductName: "p3", Category: "Footwear", Site: "Amazon", CurrentPrice: 200},
	}
	require.NoError(t, Insert(ctx, db.Pool, Prices, obs))

	got, err := GroupMeans(ctx, db.Pool, Prices, "site", "current_price")
	require.NoError(t, err)
	require.Equal(t, []GroupMean{{"Amazon", 150}, {"Target", 50}}, got)
}

func TestUnknownIdentifiersRejected(t *testing.T) {
	ctx := context.Background()
	db := openTest(t)

	_, err := Count(ctx, db.Pool, "jobs; DROP TABLE jobs")
	require.Error(t, err)
	_, err = CountDistinct(ctx, db.Pool, Jobs, "salary) FROM jobs; --")
	require.Error(t, err)
	_, err = ValueCounts(ctx, db.Pool, Leads, "company", 0)
	require.Error(t, err)
}

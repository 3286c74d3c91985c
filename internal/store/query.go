package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// GroupCount is one row of a value-count query.
type GroupCount struct {
	Key   string
	Count int
}

// GroupMean is one row of a grouped average.
type GroupMean struct {
	Key  string
	Mean float64
}

// Bin is a half-open range [Lo, Hi). Closed makes it [Lo, Hi].
type Bin struct {
	Label  string
	Lo, Hi float64
	Closed bool
}

func Count(ctx context.Context, db *sql.DB, table string) (int, error) {
	if _, ok := tables[table]; !ok {
		return 0, fmt.Errorf("store: unknown table %q", table)
	}
	var n int
	err := db.QueryRowContext(ctx, fmt.Sprintf(`SELECT COUNT(*) FROM %s;`, table)).Scan(&n)
	return n, err
}

func CountDistinct(ctx context.Context, db *sql.DB, table, col string) (int, error) {
	c, err := column(table, col)
	if err != nil {
		return 0, err
	}
	var n int
	err = db.QueryRowContext(ctx, fmt.Sprintf(`SELECT COUNT(DISTINCT %s) FROM %s;`, c, table)).Scan(&n)
	return n, err
}

// CountTrue counts rows whose boolean column is set.
func CountTrue(ctx context.Context, db *sql.DB, table, col string) (int, error) {
	c, err := column(table, col)
	if err != nil {
		return 0, err
	}
	var n int
	err = db.QueryRowContext(ctx, fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE %s != 0;`, table, c)).Scan(&n)
	return n, err
}

// Mean returns the column average, 0 for an empty table.
func Mean(ctx context.Context, db *sql.DB, table, col string) (float64, error) {
	c, err := column(table, col)
	if err != nil {
		return 0, err
	}
	var m sql.NullFloat64
	if err := db.QueryRowContext(ctx, fmt.Sprintf(`SELECT AVG(%s) FROM %s;`, c, table)).Scan(&m); err != nil {
		return 0, err
	}
	return m.Float64, nil
}

// Distinct lists the values of col in first-seen order.
func Distinct(ctx context.Context, db *sql.DB, table, col string) ([]string, error) {
	c, err := column(table, col)
	if err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(ctx, fmt.Sprintf(
		`SELECT %[1]s FROM %[2]s GROUP BY %[1]s ORDER BY MIN(rowid);`, c, table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// ValueCounts counts rows per value of col, most frequent first. Ties keep
// first-seen order. limit <= 0 means all groups.
func ValueCounts(ctx context.Context, db *sql.DB, table, col string, limit int) ([]GroupCount, error) {
	c, err := column(table, col)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = -1
	}
	rows, err := db.QueryContext(ctx, fmt.Sprintf(`
SELECT %[1]s, COUNT(*) AS n
FROM %[2]s
GROUP BY %[1]s
ORDER BY n DESC, MIN(rowid)
LIMIT ?;`, c, table), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []GroupCount{}
	for rows.Next() {
		var g GroupCount
		if err := rows.Scan(&g.Key, &g.Count); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

// GroupMeans averages val per value of key, groups in first-seen order.
func GroupMeans(ctx context.Context, db *sql.DB, table, key, val string) ([]GroupMean, error) {
	k, err := column(table, key)
	if err != nil {
		return nil, err
	}
	v, err := column(table, val)
	if err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(ctx, fmt.Sprintf(`
SELECT %[1]s, AVG(%[2]s)
FROM %[3]s
GROUP BY %[1]s
ORDER BY MIN(rowid);`, k, v, table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []GroupMean{}
	for rows.Next() {
		var g GroupMean
		if err := rows.Scan(&g.Key, &g.Mean); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

// TopN returns cols of the first n rows ordered by orderBy, ties broken by
// insertion order.
func TopN(ctx context.Context, db *sql.DB, table, orderBy string, desc bool, n int, cols ...string) ([][]any, error) {
	ob, err := column(table, orderBy)
	if err != nil {
		return nil, err
	}
	sel := make([]string, 0, len(cols))
	for _, c := range cols {
		cc, err := column(table, c)
		if err != nil {
			return nil, err
		}
		sel = append(sel, cc)
	}
	dir := "ASC"
	if desc {
		dir = "DESC"
	}

	rows, err := db.QueryContext(ctx, fmt.Sprintf(`
SELECT %s
FROM %s
ORDER BY %s %s, rowid
LIMIT ?;`, strings.Join(sel, ", "), table, ob, dir), n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out [][]any
	for rows.Next() {
		row := make([]any, len(sel))
		ptrs := make([]any, len(sel))
		for i := range row {
			ptrs[i] = &row[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// Histogram counts rows of col falling in each bin. Every bin is reported,
// empty ones with zero.
func Histogram(ctx context.Context, db *sql.DB, table, col string, bins []Bin) ([]GroupCount, error) {
	c, err := column(table, col)
	if err != nil {
		return nil, err
	}
	out := make([]GroupCount, 0, len(bins))
	for _, b := range bins {
		op := "<"
		if b.Closed {
			op = "<="
		}
		var n int
		q := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE %s >= ? AND %s %s ?;`, table, c, c, op)
		if err := db.QueryRowContext(ctx, q, b.Lo, b.Hi).Scan(&n); err != nil {
			return nil, err
		}
		out = append(out, GroupCount{Key: b.Label, Count: n})
	}
	return out, nil
}

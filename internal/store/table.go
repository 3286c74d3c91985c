package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"bizscan/internal/domain"
)

// Table names.
const (
	Jobs   = "jobs"
	Leads  = "leads"
	Prices = "prices"
	Sites  = "sites"
)

// tables is the allow-list every query is checked against. Identifiers
// never come from anywhere else.
var tables = map[string][]string{
	Jobs:   domain.Job{}.Columns(),
	Leads:  domain.Lead{}.Columns(),
	Prices: domain.PriceObservation{}.Columns(),
	Sites:  domain.Site{}.Columns(),
}

func Migrate(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var v int
	if err := tx.QueryRowContext(ctx, `PRAGMA user_version;`).Scan(&v); err != nil {
		return err
	}
	if v >= 1 {
		return tx.Commit()
	}

	// ---- Schema v1: one untyped table per record kind ----
	for _, name := range []string{Jobs, Leads, Prices, Sites} {
		q := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (%s);`, name, strings.Join(tables[name], ", "))
		if _, err := tx.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("create %s: %w", name, err)
		}
	}

	if _, err := tx.ExecContext(ctx, `PRAGMA user_version = 1;`); err != nil {
		return err
	}
	return tx.Commit()
}

func column(table, col string) (string, error) {
	cols, ok := tables[table]
	if !ok {
		return "", fmt.Errorf("store: unknown table %q", table)
	}
	for _, c := range cols {
		if c == col {
			return c, nil
		}
	}
	return "", fmt.Errorf("store: unknown column %s.%s", table, col)
}

// Insert loads recs into table inside a single transaction.
func Insert[T domain.Record](ctx context.Context, db *sql.DB, table string, recs []T) error {
	cols, ok := tables[table]
	if !ok {
		return fmt.Errorf("store: unknown table %q", table)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	marks := strings.TrimSuffix(strings.Repeat("?,", len(cols)), ",")
	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf(
		`INSERT INTO %s (%s) VALUES (%s);`, table, strings.Join(cols, ", "), marks))
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, r := range recs {
		vals := r.Values()
		if len(vals) != len(cols) {
			return fmt.Errorf("store: %s row %d has %d values, want %d", table, i, len(vals), len(cols))
		}
		for j, v := range vals {
			if b, ok := v.(bool); ok {
				vals[j] = boolInt(b)
			}
		}
		if _, err := stmt.ExecContext(ctx, vals...); err != nil {
			return fmt.Errorf("insert %s row %d: %w", table, i, err)
		}
	}
	return tx.Commit()
}

func boolInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

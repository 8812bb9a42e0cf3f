package store

import (
	"context"
	"database/sql"
	"fmt"

	"jobcatalog/internal/domain"
)

// InsertJobIgnore writes j at position unless its job key is already stored.
func InsertJobIgnore(ctx context.Context, tx *sql.Tx, position int, j domain.Job) (added bool, err error) {
	// relies on unique index on job_key WHERE job_key != ''
	_, err = tx.ExecContext(ctx, `
INSERT OR IGNORE INTO jobs (position, title, company, city, state, snippet, caption, posted_at, job_key, url)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`,
		position, j.Title, j.Company, j.City, j.State, j.Snippet, j.Caption, j.PostedAt, j.Key, j.URL,
	)
	if err != nil {
		return false, fmt.Errorf("insert job: %w", err)
	}

	var changes int
	if err := tx.QueryRowContext(ctx, `SELECT changes();`).Scan(&changes); err != nil {
		return false, fmt.Errorf("insert job: %w", err)
	}
	return changes > 0, nil
}

// ReplaceJobs swaps the stored record set for jobs in one transaction and
// returns how many were written. Repeated job keys keep the first record.
func ReplaceJobs(ctx context.Context, db *sql.DB, jobs []domain.Job) (added int, err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM jobs;`); err != nil {
		return 0, fmt.Errorf("clear jobs: %w", err)
	}

	for i, j := range jobs {
		ok, err := InsertJobIgnore(ctx, tx, i, j)
		if err != nil {
			return 0, err
		}
		if ok {
			added++
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return added, nil
}

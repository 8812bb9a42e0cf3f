package store

import (
	"context"
	"database/sql"
	"time"
)

type Refresh struct {
	Source      string
	Jobs        int
	RefreshedAt time.Time
}

func RecordRefresh(ctx context.Context, db *sql.DB, source string, jobs int, at time.Time) error {
	_, err := db.ExecContext(ctx, `
INSERT INTO refreshes(source, jobs, refreshed_at)
VALUES(?,?,?);
`, source, jobs, at.UTC().Format(time.RFC3339))
	return err
}

// LastRefresh returns the most recent refresh, or ok=false if there is none.
func LastRefresh(ctx context.Context, db *sql.DB) (r Refresh, ok bool, err error) {
	var at string
	err = db.QueryRowContext(ctx, `
SELECT source, jobs, refreshed_at
FROM refreshes
ORDER BY id DESC
LIMIT 1;
`).Scan(&r.Source, &r.Jobs, &at)

	if err == sql.ErrNoRows {
		return Refresh{}, false, nil
	}
	if err != nil {
		return Refresh{}, false, err
	}
	r.RefreshedAt, _ = time.Parse(time.RFC3339, at)
	return r, true, nil
}

package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"jobcatalog/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "jobs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTemp(t)
	require.NoError(t, Migrate(db.Pool))

	var v int
	require.NoError(t, db.Pool.QueryRow(`PRAGMA user_version;`).Scan(&v))
	assert.Equal(t, schemaVersion, v)
}

func TestReplaceJobs_KeepsOrderAndDedupesKeys(t *testing.T) {
	db := openTemp(t)
	ctx := context.Background()

	jobs := []domain.Job{
		{Title: "Zeta", Company: "Acme", Key: "k1"},
		{Title: "Alpha", Company: "Globex", Key: "k2"},
		{Title: "Dup", Company: "Acme", Key: "k1"},
		{Title: "NoKey A", Company: "Initech"},
		{Title: "NoKey B", Company: "Initech"},
	}
	added, err := ReplaceJobs(ctx, db.Pool, jobs)
	require.NoError(t, err)
	assert.Equal(t, 4, added)

	got, err := LoadJobs(ctx, db.Pool)
	require.NoError(t, err)
	titles := make([]string, 0, len(got))
	for _, j := range got {
		titles = append(titles, j.Title)
	}
	assert.Equal(t, []string{"Zeta", "Alpha", "NoKey A", "NoKey B"}, titles)

	n, err := CountJobs(ctx, db.Pool)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestReplaceJobs_ReplacesPreviousSet(t *testing.T) {
	db := openTemp(t)
	ctx := context.Background()

	_, err := ReplaceJobs(ctx, db.Pool, []domain.Job{{Title: "Old", Key: "a"}})
	require.NoError(t, err)
	_, err = ReplaceJobs(ctx, db.Pool, []domain.Job{{Title: "New", Key: "a"}})
	require.NoError(t, err)

	got, err := LoadJobs(ctx, db.Pool)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "New", got[0].Title)
}

func TestLoadJobs_EmptyIsNonNil(t *testing.T) {
	db := openTemp(t)
	got, err := LoadJobs(context.Background(), db.Pool)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestLoadJobs_RoundTripsFields(t *testing.T) {
	db := openTemp(t)
	ctx := context.Background()

	want := domain.NewJob("Java Dev", "Acme", "Portland", "OR", "Build things", "", "Wed, 14 Sep 2016 19:03:12 GMT")
	want.Key = "abc"
	want.URL = "https://example.com/job/abc"

	_, err := ReplaceJobs(ctx, db.Pool, []domain.Job{want})
	require.NoError(t, err)

	got, err := LoadJobs(ctx, db.Pool)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, want, got[0])
}

func TestLastRefresh(t *testing.T) {
	db := openTemp(t)
	ctx := context.Background()

	_, ok, err := LastRefresh(ctx, db.Pool)
	require.NoError(t, err)
	assert.False(t, ok)

	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, RecordRefresh(ctx, db.Pool, "remote", 10, at.Add(-time.Hour)))
	require.NoError(t, RecordRefresh(ctx, db.Pool, "remote", 42, at))

	r, ok, err := LastRefresh(ctx, db.Pool)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "remote", r.Source)
	assert.Equal(t, 42, r.Jobs)
	assert.True(t, at.Equal(r.RefreshedAt))
}

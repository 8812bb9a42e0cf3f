package source

import (
	"context"
	"path/filepath"
	"testing"

	"jobcatalog/internal/config"
	"jobcatalog/internal/domain"
	"jobcatalog/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func testConfig(t *testing.T) config.Config {
	cfg := config.Default()
	cfg.App.DataDir = t.TempDir()
	return cfg
}

func TestService_LoadJobs_Cache(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, SaveCache(cfg.CachePath(), []domain.Job{job("a", "1")}))

	svc, err := NewService(cfg, zaptest.NewLogger(t))
	require.NoError(t, err)
	defer svc.Close()

	got, err := svc.LoadJobs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, titles(got))
}

func TestService_LoadJobs_NoCache(t *testing.T) {
	svc, err := NewService(testConfig(t), nil)
	require.NoError(t, err)

	_, err = svc.LoadJobs(context.Background())
	assert.ErrorIs(t, err, ErrNoCache)
}

func TestService_LoadJobs_PrefersStore(t *testing.T) {
	cfg := testConfig(t)
	cfg.Source.DBFile = "jobs.db"
	require.NoError(t, SaveCache(cfg.CachePath(), []domain.Job{job("from cache", "")}))

	svc, err := NewService(cfg, nil)
	require.NoError(t, err)
	defer svc.Close()

	// empty store falls back to the cache
	got, err := svc.LoadJobs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"from cache"}, titles(got))

	_, err = store.ReplaceJobs(context.Background(), svc.db.Pool, []domain.Job{job("from store", "")})
	require.NoError(t, err)

	got, err = svc.LoadJobs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"from store"}, titles(got))
}

func TestService_Refresh_Guards(t *testing.T) {
	cfg := testConfig(t)
	svc, err := NewService(cfg, nil)
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), "key")
	assert.ErrorIs(t, err, ErrRemoteDisabled)

	cfg.Source.Remote.Enabled = true
	svc, err = NewService(cfg, nil)
	require.NoError(t, err)
	_, err = svc.Refresh(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrNoAPIKey)
}

func TestService_Refresh(t *testing.T) {
	srv, _ := listingsServer(t, 4)
	cfg := testConfig(t)
	cfg.Source.DBFile = filepath.Join(cfg.App.DataDir, "jobs.db")
	cfg.Source.Remote = testRemote(srv.URL)

	svc, err := NewService(cfg, zaptest.NewLogger(t))
	require.NoError(t, err)
	defer svc.Close()

	got, err := svc.Refresh(context.Background(), "secret")
	require.NoError(t, err)
	assert.Len(t, got, 4)

	loaded, err := svc.LoadJobs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, got, loaded)

	last, ok, err := svc.LastRefresh(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 4, last.Jobs)
}

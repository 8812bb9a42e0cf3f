package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	_, res := NormalizeAndValidate(Default())
	assert.True(t, res.OK(), res.Errors)
	assert.NoError(t, Validate(Default()))
}

func TestLoad_KeepsDefaultsForMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("report:\n  search_term: Go\n  page_size: 10\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Go", cfg.Report.SearchTerm)
	assert.Equal(t, 10, cfg.Report.PageSize)
	assert.Equal(t, "Portland", cfg.Report.City)
	assert.Equal(t, "jobs.json", cfg.Source.CacheFile)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNormalizeAndValidate(t *testing.T) {
	cfg := Default()
	cfg.Report.Style = " LOOP "
	cfg.Report.State = "or"
	cfg.App.LogLevel = ""

	out, res := NormalizeAndValidate(cfg)
	require.True(t, res.OK(), res.Errors)
	assert.Equal(t, StyleLoop, out.Report.Style)
	assert.Equal(t, "OR", out.Report.State)
	assert.Equal(t, "info", out.App.LogLevel)

	cfg = Default()
	cfg.Report.Style = "streams"
	cfg.Report.DateFormat = "rfc"
	cfg.Report.PageSize = 0
	cfg.App.LogLevel = "loud"
	cfg.Source.CacheFile = ""
	_, res = NormalizeAndValidate(cfg)
	assert.False(t, res.OK())
	assert.Len(t, res.Errors, 5)
}

func TestNormalizeAndValidate_Remote(t *testing.T) {
	cfg := Default()
	cfg.Source.Remote.Enabled = true
	_, res := NormalizeAndValidate(cfg)
	assert.True(t, res.OK(), res.Errors)
	assert.NotEmpty(t, res.Warnings)

	cfg.Source.Remote.BaseURL = "not a url"
	cfg.Source.Remote.Pages = 0
	_, res = NormalizeAndValidate(cfg)
	assert.Len(t, res.Errors, 2)
}

func TestEnsureUserConfig(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")

	path, err := EnsureUserConfig(dir, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.yml"), path)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	// existing file is left alone
	require.NoError(t, os.WriteFile(path, []byte("report:\n  city: Bend\n"), 0o644))
	path, err = EnsureUserConfig(dir, "")
	require.NoError(t, err)
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Bend", cfg.Report.City)
}

func TestEnsureUserConfig_CopiesDefaultFile(t *testing.T) {
	tmp := t.TempDir()
	def := filepath.Join(tmp, "default.yml")
	require.NoError(t, os.WriteFile(def, []byte("report:\n  city: Eugene\n"), 0o644))

	path, err := EnsureUserConfig(filepath.Join(tmp, "data"), def)
	require.NoError(t, err)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Eugene", cfg.Report.City)
}

func TestSaveAtomic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")

	cfg := Default()
	cfg.Report.City = "Salem"
	require.NoError(t, SaveAtomic(path, cfg))

	cfg.Report.City = "Medford"
	require.NoError(t, SaveAtomic(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Medford", got.Report.City)

	bak, err := Load(path + ".bak")
	require.NoError(t, err)
	assert.Equal(t, "Salem", bak.Report.City)

	cfg.Report.PageSize = -1
	assert.Error(t, SaveAtomic(path, cfg))
}

func TestOverlayReport(t *testing.T) {
	dir := t.TempDir()
	cfg := Default()

	require.NoError(t, OverlayReport(&cfg, filepath.Join(dir, "report.yml")))
	assert.Equal(t, Default().Report, cfg.Report)

	path := filepath.Join(dir, "report.yml")
	require.NoError(t, os.WriteFile(path, []byte("report:\n  state: WA\n  city: Seattle\n"), 0o644))
	require.NoError(t, OverlayReport(&cfg, path))
	assert.Equal(t, "WA", cfg.Report.State)
	assert.Equal(t, "Seattle", cfg.Report.City)
	assert.Equal(t, "Java", cfg.Report.SearchTerm)
}

func TestResolvePath(t *testing.T) {
	cfg := Default()
	cfg.App.DataDir = "/var/lib/jobs"
	cfg.Source.DBFile = "jobs.db"
	assert.Equal(t, filepath.Join("/var/lib/jobs", "jobs.json"), cfg.CachePath())
	assert.Equal(t, filepath.Join("/var/lib/jobs", "jobs.db"), cfg.DBPath())

	cfg.Source.DBFile = ""
	assert.Equal(t, "", cfg.DBPath())
	cfg.Source.CacheFile = "/tmp/x.json"
	assert.Equal(t, "/tmp/x.json", cfg.CachePath())
}

func TestSet(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Set("report.style", "loop"))
	require.NoError(t, cfg.Set(" Report.Page_Size ", "7"))
	require.NoError(t, cfg.Set("source.remote.enabled", "true"))
	assert.Equal(t, StyleLoop, cfg.Report.Style)
	assert.Equal(t, 7, cfg.Report.PageSize)
	assert.True(t, cfg.Source.Remote.Enabled)

	assert.ErrorContains(t, cfg.Set("report.nope", "x"), "unknown config key")
	assert.Error(t, cfg.Set("report.page_size", "seven"))
	assert.Equal(t, 7, cfg.Report.PageSize)

	assert.Contains(t, SettableKeys(), "app.log_level")
	assert.IsIncreasing(t, SettableKeys())
}

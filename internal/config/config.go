// internal/config/config.go
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	StylePipeline = "pipeline"
	StyleLoop     = "loop"

	DateFormatSite = "site"
	DateFormatISO  = "iso"
)

// Remote describes the listings search API used by refresh.
type Remote struct {
	Enabled        bool    `yaml:"enabled"`
	BaseURL        string  `yaml:"base_url"`
	Query          string  `yaml:"query"`
	Location       string  `yaml:"location"`
	Country        string  `yaml:"country"`
	PageSize       int     `yaml:"page_size"`
	Pages          int     `yaml:"pages"`
	ReqPerSec      float64 `yaml:"req_per_sec"`
	Burst          int     `yaml:"burst"`
	TimeoutSeconds int     `yaml:"timeout_seconds"`
	KeyringAccount string  `yaml:"keyring_account"`
}

// Report holds the defaults the CLI feeds into catalog queries.
type Report struct {
	Style         string `yaml:"style"` // pipeline | loop
	State         string `yaml:"state"`
	City          string `yaml:"city"`
	SearchTerm    string `yaml:"search_term"`
	JuniorLimit   int    `yaml:"junior_limit"`
	PageSize      int    `yaml:"page_size"`
	MenuSize      int    `yaml:"menu_size"`
	CompanyPrefix string `yaml:"company_prefix"`
	NotifyState   string `yaml:"notify_state"`
	DateLimit     int    `yaml:"date_limit"`
	DateFormat    string `yaml:"date_format"` // site | iso
	WordShards    int    `yaml:"word_shards"`
}

type Config struct {
	App struct {
		DataDir  string `yaml:"data_dir"`
		LogLevel string `yaml:"log_level"`
	} `yaml:"app"`

	Source struct {
		CacheFile string `yaml:"cache_file"`
		DBFile    string `yaml:"db_file"` // optional sqlite mirror of the cache
		Remote    Remote `yaml:"remote"`
	} `yaml:"source"`

	Report Report `yaml:"report"`
}

func Default() Config {
	var cfg Config
	cfg.App.DataDir = "."
	cfg.App.LogLevel = "info"

	cfg.Source.CacheFile = "jobs.json"
	cfg.Source.Remote = Remote{
		BaseURL:        "https://api.indeed.com/ads/apisearch",
		Query:          "java",
		Country:        "us",
		PageSize:       25,
		Pages:          4,
		ReqPerSec:      1.0,
		Burst:          2,
		TimeoutSeconds: 30,
	}

	cfg.Report = Report{
		Style:         StylePipeline,
		State:         "OR",
		City:          "Portland",
		SearchTerm:    "Java",
		JuniorLimit:   3,
		PageSize:      20,
		MenuSize:      20,
		CompanyPrefix: "N",
		NotifyState:   "CA",
		DateLimit:     5,
		DateFormat:    DateFormatSite,
		WordShards:    1,
	}
	return cfg
}

// Load reads path over Default, so keys missing from the file keep their
// default values.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}

// ResolvePath anchors a relative file name in the data dir.
func (c Config) ResolvePath(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.App.DataDir, p)
}

func (c Config) CachePath() string { return c.ResolvePath(c.Source.CacheFile) }

func (c Config) DBPath() string { return c.ResolvePath(c.Source.DBFile) }

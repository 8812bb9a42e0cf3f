package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/thoas/go-funk"
	"go.uber.org/zap"
)

var (
	legalStyles      = []string{StylePipeline, StyleLoop}
	legalDateFormats = []string{DateFormatSite, DateFormatISO}
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate returns a normalized copy of cfg and what is wrong with it.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	var out = cfg
	var res Validation

	out.App.LogLevel = strings.ToLower(strings.TrimSpace(out.App.LogLevel))
	if out.App.LogLevel == "" {
		out.App.LogLevel = "info"
	}
	out.Report.Style = strings.ToLower(strings.TrimSpace(out.Report.Style))
	out.Report.DateFormat = strings.ToLower(strings.TrimSpace(out.Report.DateFormat))
	out.Report.State = strings.ToUpper(strings.TrimSpace(out.Report.State))
	out.Report.NotifyState = strings.ToUpper(strings.TrimSpace(out.Report.NotifyState))
	out.Source.CacheFile = strings.TrimSpace(out.Source.CacheFile)
	out.Source.DBFile = strings.TrimSpace(out.Source.DBFile)

	// ---- Validation rules ----

	if _, err := zap.ParseAtomicLevel(out.App.LogLevel); err != nil {
		res.addErr("app.log_level %q is not a log level", out.App.LogLevel)
	}
	if out.Source.CacheFile == "" {
		res.addErr("source.cache_file is required")
	}

	if !funk.ContainsString(legalStyles, out.Report.Style) {
		res.addErr("report.style must be one of %s", strings.Join(legalStyles, ", "))
	}
	if !funk.ContainsString(legalDateFormats, out.Report.DateFormat) {
		res.addErr("report.date_format must be one of %s", strings.Join(legalDateFormats, ", "))
	}
	if out.Report.PageSize <= 0 {
		res.addErr("report.page_size must be > 0")
	}
	if out.Report.JuniorLimit < 0 {
		res.addErr("report.junior_limit must be >= 0")
	}
	if out.Report.MenuSize < 0 {
		res.addErr("report.menu_size must be >= 0")
	}
	if out.Report.DateLimit < 0 {
		res.addErr("report.date_limit must be >= 0")
	}
	if out.Report.WordShards < 0 {
		res.addErr("report.word_shards must be >= 0")
	}
	if len(out.Report.State) != 2 {
		res.addWarn("report.state %q is not a two-letter code; location queries may match nothing.", out.Report.State)
	}

	r := out.Source.Remote
	if r.Enabled {
		if u, err := url.Parse(r.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
			res.addErr("source.remote.base_url must be an absolute URL")
		}
		if r.PageSize <= 0 {
			res.addErr("source.remote.page_size must be > 0")
		}
		if r.Pages <= 0 {
			res.addErr("source.remote.pages must be > 0")
		}
		if r.ReqPerSec <= 0 {
			res.addErr("source.remote.req_per_sec must be > 0")
		} else if r.ReqPerSec > 10 {
			res.addWarn("source.remote.req_per_sec is very high (%.1f) and may cause rate limits.", r.ReqPerSec)
		}
		if r.Burst <= 0 {
			res.addErr("source.remote.burst must be > 0")
		}
		if strings.TrimSpace(r.Query) == "" {
			res.addWarn("source.remote.query is empty; the search may return everything or nothing.")
		}
		if strings.TrimSpace(r.KeyringAccount) == "" {
			res.addWarn("source.remote.keyring_account is empty; the API key must come from JOBCATALOG_API_KEY.")
		}
	}

	return out, res
}

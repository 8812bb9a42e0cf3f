package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

type setter func(cfg *Config, value string) error

func setString(field func(*Config) *string) setter {
	return func(cfg *Config, v string) error {
		*field(cfg) = v
		return nil
	}
}

func setInt(field func(*Config) *int) setter {
	return func(cfg *Config, v string) error {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return err
		}
		*field(cfg) = n
		return nil
	}
}

func setBool(field func(*Config) *bool) setter {
	return func(cfg *Config, v string) error {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return err
		}
		*field(cfg) = b
		return nil
	}
}

// settable maps dotted yaml keys to their fields.
var settable = map[string]setter{
	"app.log_level":                 setString(func(c *Config) *string { return &c.App.LogLevel }),
	"source.cache_file":             setString(func(c *Config) *string { return &c.Source.CacheFile }),
	"source.db_file":                setString(func(c *Config) *string { return &c.Source.DBFile }),
	"source.remote.enabled":         setBool(func(c *Config) *bool { return &c.Source.Remote.Enabled }),
	"source.remote.query":           setString(func(c *Config) *string { return &c.Source.Remote.Query }),
	"source.remote.location":        setString(func(c *Config) *string { return &c.Source.Remote.Location }),
	"source.remote.pages":           setInt(func(c *Config) *int { return &c.Source.Remote.Pages }),
	"source.remote.keyring_account": setString(func(c *Config) *string { return &c.Source.Remote.KeyringAccount }),
	"report.style":                  setString(func(c *Config) *string { return &c.Report.Style }),
	"report.state":                  setString(func(c *Config) *string { return &c.Report.State }),
	"report.city":                   setString(func(c *Config) *string { return &c.Report.City }),
	"report.search_term":            setString(func(c *Config) *string { return &c.Report.SearchTerm }),
	"report.junior_limit":           setInt(func(c *Config) *int { return &c.Report.JuniorLimit }),
	"report.page_size":              setInt(func(c *Config) *int { return &c.Report.PageSize }),
	"report.menu_size":              setInt(func(c *Config) *int { return &c.Report.MenuSize }),
	"report.company_prefix":         setString(func(c *Config) *string { return &c.Report.CompanyPrefix }),
	"report.notify_state":           setString(func(c *Config) *string { return &c.Report.NotifyState }),
	"report.date_limit":             setInt(func(c *Config) *int { return &c.Report.DateLimit }),
	"report.date_format":            setString(func(c *Config) *string { return &c.Report.DateFormat }),
	"report.word_shards":            setInt(func(c *Config) *int { return &c.Report.WordShards }),
}

// SettableKeys lists the keys Set accepts, sorted.
func SettableKeys() []string {
	keys := make([]string, 0, len(settable))
	for k := range settable {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Set assigns value to the field named by a dotted key such as
// "report.style". Unknown keys and unparseable values are errors.
func (c *Config) Set(key, value string) error {
	set, ok := settable[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		return fmt.Errorf("unknown config key %q", key)
	}
	if err := set(c, value); err != nil {
		return fmt.Errorf("config key %s: %w", key, err)
	}
	return nil
}

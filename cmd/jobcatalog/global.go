package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"jobcatalog/internal/catalog"
	"jobcatalog/internal/config"
	"jobcatalog/internal/logging"
	"jobcatalog/internal/secrets"
	"jobcatalog/internal/source"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thoas/go-funk"
	"go.uber.org/zap"
)

const envDataDir = "JOBCATALOG_DATA_DIR"

// GlobalOptions are the persistent flags every command shares, plus the
// state Complete derives from them.
type GlobalOptions struct {
	DataDir    string
	ConfigPath string
	Style      string
	Refresh    bool
	LogLevel   string

	cfg config.Config
	log *zap.Logger
}

func DefaultGlobalOptions() *GlobalOptions {
	dataDir := os.Getenv(envDataDir)
	if dataDir == "" {
		dataDir = "."
	}
	return &GlobalOptions{DataDir: dataDir}
}

func (o *GlobalOptions) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&o.DataDir, "data-dir", "d", o.DataDir, "Directory holding config.yml, report.yml and the job cache (env "+envDataDir+")")
	fs.StringVarP(&o.ConfigPath, "config", "c", o.ConfigPath, "Path to configuration file (default <data-dir>/config.yml)")
	fs.StringVar(&o.Style, "style", o.Style, "Query rendition: pipeline or loop (default from config)")
	fs.BoolVar(&o.Refresh, "refresh", o.Refresh, "Refresh listings from the remote API before querying")
	fs.StringVar(&o.LogLevel, "log-level", o.LogLevel, "Override app.log_level")
}

// Complete loads and validates the configuration and builds the logger.
func (o *GlobalOptions) Complete(cmd *cobra.Command, args []string) error {
	path, err := o.configPath()
	if err != nil {
		return err
	}

	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("reading configuration: %w", err)
	}
	if cfg.App.DataDir == "" || cfg.App.DataDir == "." {
		cfg.App.DataDir = o.DataDir
	}
	if err := config.OverlayReport(&cfg, filepath.Join(cfg.App.DataDir, "report.yml")); err != nil {
		return fmt.Errorf("reading report overlay: %w", err)
	}

	if o.Style != "" {
		cfg.Report.Style = o.Style
	}
	if o.LogLevel != "" {
		cfg.App.LogLevel = o.LogLevel
	}

	cfg, res := config.NormalizeAndValidate(cfg)
	if !res.OK() {
		return errors.New("config validation failed:\n- " + strings.Join(res.Errors, "\n- "))
	}

	o.cfg = cfg
	o.log = logging.New(cfg.App.LogLevel)
	for _, w := range res.Warnings {
		o.log.Warn("config", zap.String("warning", w))
	}
	o.log.Debug("using config", zap.String("path", path), zap.String("style", cfg.Report.Style))
	return nil
}

// configPath is --config, or <data-dir>/config.yml created on first use.
func (o *GlobalOptions) configPath() (string, error) {
	if o.ConfigPath != "" {
		return o.ConfigPath, nil
	}
	path, err := config.EnsureUserConfig(o.DataDir, filepath.Join("config", "config.yml"))
	if err != nil {
		return "", fmt.Errorf("config bootstrap failed: %w", err)
	}
	return path, nil
}

func (o *GlobalOptions) Validate(args []string) error {
	if o.Style != "" && !funk.ContainsString([]string{config.StylePipeline, config.StyleLoop}, strings.ToLower(o.Style)) {
		return fmt.Errorf("--style must be %s or %s", config.StylePipeline, config.StyleLoop)
	}
	return nil
}

func (o *GlobalOptions) service() (*source.Service, error) {
	return source.NewService(o.cfg, o.log.Named("source"))
}

func (o *GlobalOptions) apiKey() (string, error) {
	key, err := secrets.GetAPIKey(o.cfg.Source.Remote.KeyringAccount)
	if errors.Is(err, secrets.ErrNotFound) {
		return "", source.ErrNoAPIKey
	}
	return key, err
}

// Catalog loads the record set, refreshing it first when asked.
func (o *GlobalOptions) Catalog(ctx context.Context) (*catalog.Catalog, error) {
	svc, err := o.service()
	if err != nil {
		return nil, err
	}
	defer svc.Close()

	if o.Refresh {
		key, err := o.apiKey()
		if err != nil {
			return nil, err
		}
		jobs, err := svc.Refresh(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("refresh: %w", err)
		}
		return catalog.New(jobs), nil
	}

	jobs, err := svc.LoadJobs(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading jobs: %w", err)
	}
	o.log.Debug("catalog loaded", zap.Int("jobs", len(jobs)))
	return catalog.New(jobs), nil
}

// Queries picks the rendition named by report.style.
func (o *GlobalOptions) Queries(c *catalog.Catalog) catalog.Queries {
	if o.loopStyle() {
		return c.Loops()
	}
	return c
}

func (o *GlobalOptions) loopStyle() bool {
	return o.cfg.Report.Style == config.StyleLoop
}

// queryCommand wires the Complete/Validate/Run sequence shared by every
// query command.
func queryCommand(o *GlobalOptions, cmd *cobra.Command, run func(ctx context.Context, out *printer, c *catalog.Catalog, q catalog.Queries, args []string) error) *cobra.Command {
	cmd.SilenceUsage = true
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if err := o.Validate(args); err != nil {
			return err
		}
		if err := o.Complete(cmd, args); err != nil {
			return err
		}
		defer func() { _ = o.log.Sync() }()

		c, err := o.Catalog(cmd.Context())
		if err != nil {
			return err
		}
		return run(cmd.Context(), &printer{w: cmd.OutOrStdout()}, c, o.Queries(c), args)
	}
	return cmd
}

package source

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"jobcatalog/internal/config"
	"jobcatalog/internal/domain"
	"jobcatalog/internal/store"

	"go.uber.org/zap"
)

var (
	ErrNoAPIKey       = errors.New("listings API key not configured")
	ErrRemoteDisabled = errors.New("remote listings source is disabled")
)

// Service loads the record set the catalog is built from.
type Service struct {
	cfg config.Config
	db  *store.DB
	log *zap.Logger
}

// NewService opens the sqlite store when the config names one.
func NewService(cfg config.Config, log *zap.Logger) (*Service, error) {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Service{cfg: cfg, log: log}

	if cfg.Source.DBFile != "" {
		db, err := store.Open(cfg.DBPath())
		if err != nil {
			return nil, fmt.Errorf("open store: %w", err)
		}
		s.db = db
	}
	return s, nil
}

func (s *Service) Close() error {
	return s.db.Close()
}

// LoadJobs reads the store when it is configured and holds records,
// otherwise the cache file.
func (s *Service) LoadJobs(ctx context.Context) ([]domain.Job, error) {
	if s.db != nil {
		n, err := store.CountJobs(ctx, s.db.Pool)
		if err != nil {
			return nil, fmt.Errorf("count jobs: %w", err)
		}
		if n > 0 {
			s.log.Debug("loading from store", zap.Int("jobs", n))
			return store.LoadJobs(ctx, s.db.Pool)
		}
	}

	path := s.cfg.CachePath()
	s.log.Debug("loading from cache", zap.String("path", path))
	return LoadCache(path)
}

// Refresh replaces the stored record set with a fresh pull from the remote
// listings API.
func (s *Service) Refresh(ctx context.Context, apiKey string) ([]domain.Job, error) {
	remote := s.cfg.Source.Remote
	if !remote.Enabled {
		return nil, ErrRemoteDisabled
	}
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrNoAPIKey
	}

	r := &Refresher{
		Fetcher:   NewClient(remote, apiKey, NewHostLimiter(remote.ReqPerSec, remote.Burst)),
		PageSize:  remote.PageSize,
		Pages:     remote.Pages,
		CachePath: s.cfg.CachePath(),
		Log:       s.log.Named("refresh"),
	}
	if s.db != nil {
		r.DB = s.db.Pool
	}
	return r.Refresh(ctx)
}

// LastRefresh reports the most recent refresh recorded in the store.
func (s *Service) LastRefresh(ctx context.Context) (store.Refresh, bool, error) {
	if s.db == nil {
		return store.Refresh{}, false, nil
	}
	return store.LastRefresh(ctx, s.db.Pool)
}

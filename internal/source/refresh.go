package source

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"jobcatalog/internal/domain"
	"jobcatalog/internal/store"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// PageFetcher returns one page of listings starting at an offset.
type PageFetcher interface {
	FetchPage(ctx context.Context, start int) ([]domain.Job, error)
}

// Refresher pulls a fresh record set from a PageFetcher and persists it.
type Refresher struct {
	Fetcher   PageFetcher
	PageSize  int
	Pages     int
	CachePath string
	DB        *sql.DB // optional
	Log       *zap.Logger

	// Parallel caps concurrent page fetches. Zero means one per page.
	Parallel int
}

// Refresh fetches every page concurrently, keeps page order, drops repeated
// job keys and writes the result to the cache file and the store. A page
// that fails is logged and skipped; the refresh fails only when every page
// does.
func (r *Refresher) Refresh(ctx context.Context) ([]domain.Job, error) {
	log := r.Log
	if log == nil {
		log = zap.NewNop()
	}
	pages := max(r.Pages, 1)
	pageSize := max(r.PageSize, 1)

	results := make([][]domain.Job, pages)
	errs := make([]error, pages)

	var g errgroup.Group
	if r.Parallel > 0 {
		g.SetLimit(r.Parallel)
	}
	for i := range pages {
		g.Go(func() error {
			start := i * pageSize
			jobs, err := r.Fetcher.FetchPage(ctx, start)
			if err != nil {
				log.Warn("page failed", zap.Int("start", start), zap.Error(err))
				errs[i] = err
				return nil
			}
			log.Debug("page fetched", zap.Int("start", start), zap.Int("jobs", len(jobs)))
			results[i] = jobs
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for _, err := range errs {
		if err != nil {
			failed++
		}
	}
	if failed == pages {
		return nil, fmt.Errorf("refresh: all %d pages failed: %w", pages, errors.Join(errs...))
	}

	jobs := mergePages(results)
	log.Info("refresh fetched",
		zap.Int("pages", pages), zap.Int("failed", failed), zap.Int("jobs", len(jobs)))

	if err := SaveCache(r.CachePath, jobs); err != nil {
		return nil, err
	}

	if r.DB != nil {
		added, err := store.ReplaceJobs(ctx, r.DB, jobs)
		if err != nil {
			return nil, err
		}
		if err := store.RecordRefresh(ctx, r.DB, "remote", added, time.Now()); err != nil {
			return nil, fmt.Errorf("record refresh: %w", err)
		}
		log.Info("store updated", zap.Int("added", added))
	}

	return jobs, nil
}

// mergePages concatenates pages in order. A job key seen earlier wins; jobs
// without a key are always kept.
func mergePages(pages [][]domain.Job) []domain.Job {
	seen := map[string]bool{}
	out := []domain.Job{}
	for _, page := range pages {
		for _, j := range page {
			if j.Key != "" {
				if seen[j.Key] {
					continue
				}
				seen[j.Key] = true
			}
			out = append(out, j)
		}
	}
	return out
}

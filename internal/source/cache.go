package source

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"jobcatalog/internal/domain"

	"github.com/gofrs/flock"
)

var ErrNoCache = errors.New("job cache not found")

func lockFor(path string) *flock.Flock {
	return flock.New(path + ".lock")
}

// LoadCache reads the JSON job list at path under a shared lock.
func LoadCache(path string) ([]domain.Job, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNoCache, path)
	}

	lock := lockFor(path)
	if err := lock.RLock(); err != nil {
		return nil, fmt.Errorf("lock cache: %w", err)
	}
	defer func() { _ = lock.Unlock() }()

	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNoCache, path)
	}
	if err != nil {
		return nil, fmt.Errorf("read cache: %w", err)
	}

	var raw []domain.Job
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("decode cache %s: %w", path, err)
	}

	out := make([]domain.Job, 0, len(raw))
	for _, r := range raw {
		j := domain.NewJob(r.Title, r.Company, r.City, r.State, r.Snippet, r.Caption, r.PostedAt)
		j.Key = r.Key
		j.URL = r.URL
		out = append(out, j)
	}
	return out, nil
}

// SaveCache replaces the file at path with jobs under an exclusive lock.
func SaveCache(path string, jobs []domain.Job) error {
	if jobs == nil {
		jobs = []domain.Job{}
	}
	b, err := json.MarshalIndent(jobs, "", "  ")
	if err != nil {
		return fmt.Errorf("encode cache: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	lock := lockFor(path)
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("lock cache: %w", err)
	}
	defer func() { _ = lock.Unlock() }()

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("write cache: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace cache: %w", err)
	}
	return nil
}

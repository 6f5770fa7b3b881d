package corpus

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/Suphian/quran-art/internal/cache"
	"github.com/Suphian/quran-art/internal/model"
)

// Fetcher downloads the corpus from a list of mirrors, trying each in order.
// Successful downloads are cached so a deleted dataset file does not force
// another trip to the mirrors.
type Fetcher struct {
	httpClient *http.Client
	cache      cache.Cache // nil when caching is disabled
	robots     *robotsChecker
	limiter    *hostLimiter
	mirrors    []string
	userAgent  string
	maxBytes   int64
}

// NewFetcher creates a fetcher from the dataset, HTTP and cache configuration
func NewFetcher(cfg *model.Config) *Fetcher {
	var c cache.Cache
	if cfg.Cache.Enabled {
		c = cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
	}

	return &Fetcher{
		httpClient: &http.Client{Timeout: cfg.HTTP.Timeout},
		cache:      c,
		robots:     newRobotsChecker(cfg.HTTP.UserAgent, cfg.HTTP.Timeout),
		limiter:    newHostLimiter(cfg.HTTP.RequestsPerSecond, cfg.HTTP.Burst),
		mirrors:    cfg.Dataset.Mirrors,
		userAgent:  cfg.HTTP.UserAgent,
		maxBytes:   cfg.HTTP.MaxBodyBytes,
	}
}

// Fetch returns the corpus bytes, from cache when possible, otherwise from
// the first mirror that answers.
func (f *Fetcher) Fetch(ctx context.Context) ([]byte, error) {
	if len(f.mirrors) == 0 {
		return nil, errors.New("no corpus mirrors configured")
	}

	var attempts []error
	for _, mirror := range f.mirrors {
		key := cache.Key(mirror)
		if f.cache != nil {
			if data, found := f.cache.Get(key); found {
				return data, nil
			}
		}

		data, err := f.fetchMirror(ctx, mirror)
		if err != nil {
			attempts = append(attempts, fmt.Errorf("%s: %w", mirror, err))
			continue
		}

		if f.cache != nil {
			if err := f.cache.Set(key, data, 0); err != nil {
				// Cache failure never fails the download
				fmt.Fprintf(os.Stderr, "Warning: cache corpus: %v\n", err)
			}
		}
		return data, nil
	}

	return nil, fmt.Errorf("all corpus mirrors failed: %w", errors.Join(attempts...))
}

// Download fetches the corpus and writes it to path, creating parent
// directories. It is a no-op when path already exists.
func (f *Fetcher) Download(ctx context.Context, path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	data, err := f.Fetch(ctx)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create data dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write dataset: %w", err)
	}
	return nil
}

func (f *Fetcher) fetchMirror(ctx context.Context, mirror string) ([]byte, error) {
	allowed, err := f.robots.canFetch(ctx, mirror)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, errors.New("disallowed by robots.txt")
	}

	if err := f.limiter.wait(ctx, mirror); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, mirror, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/tab-separated-values,text/plain;q=0.9,*/*;q=0.8")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return data, nil
}

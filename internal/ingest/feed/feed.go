// Package feed pulls job batches that scraping projects publish as
// JSON: either a bare array or a {"jobs": [...]} wrapper.
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"reboot-engine/internal/config"
	"reboot-engine/internal/domain"
	"reboot-engine/internal/fetch"
	"reboot-engine/internal/ingest"
)

const maxFeedBytes = 32 << 20

type Fetcher struct {
	feed    config.Feed
	hc      *http.Client
	limiter *fetch.HostLimiter
}

func New(f config.Feed, limiter *fetch.HostLimiter) *Fetcher {
	return &Fetcher{
		feed:    f,
		hc:      &http.Client{Timeout: 30 * time.Second},
		limiter: limiter,
	}
}

func (f *Fetcher) Name() string { return f.feed.Name }

func (f *Fetcher) Fetch(ctx context.Context) (ingest.Batch, error) {
	batch := ingest.Batch{Source: f.feed.Name}

	if err := f.limiter.WaitURL(ctx, f.feed.URL); err != nil {
		return batch, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.feed.URL, nil)
	if err != nil {
		return batch, fmt.Errorf("feed %s: %w", f.feed.Name, err)
	}
	req.Header.Set("User-Agent", "REBOOT/1.0 (+local)")
	req.Header.Set("Accept", "application/json")

	res, err := f.hc.Do(req)
	if err != nil {
		return batch, fmt.Errorf("feed %s get: %w", f.feed.Name, err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return batch, fmt.Errorf("feed %s status %d", f.feed.Name, res.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, maxFeedBytes))
	if err != nil {
		return batch, fmt.Errorf("feed %s read: %w", f.feed.Name, err)
	}

	jobs, err := Decode(body)
	if err != nil {
		return batch, fmt.Errorf("feed %s: %w", f.feed.Name, err)
	}
	batch.Jobs = jobs
	return batch, nil
}

// Decode accepts both batch shapes the scraping projects produce.
func Decode(body []byte) ([]domain.RawJob, error) {
	var jobs []domain.RawJob
	if err := json.Unmarshal(body, &jobs); err == nil {
		return jobs, nil
	}

	var wrapped struct {
		Jobs []domain.RawJob `json:"jobs"`
	}
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, fmt.Errorf("decode batch: %w", err)
	}
	return wrapped.Jobs, nil
}

package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"resume-assist/internal/queue"
	"resume-assist/internal/shared/metrics"
	"resume-assist/internal/shared/storage/cache"
	"resume-assist/internal/shared/telemetry"
)

const (
	// DefaultFreshness is how old a queue batch may be before it is
	// discarded. Matches the hourly cadence of the upstream producer.
	DefaultFreshness = time.Hour

	// DefaultCacheTTL bounds how long a feed snapshot is served.
	DefaultCacheTTL = time.Hour

	maxMessagesPerDrain = 10
	triggerTimeout      = 10 * time.Second
)

// HourKey returns the cache key for the feed snapshot covering t's hour.
func HourKey(t time.Time) string {
	return "jobs:" + t.UTC().Format("2006-01-02-15")
}

// Feed serves job postings from an hourly cache, refilled from the queue.
type Feed struct {
	Receiver   queue.Receiver
	Cache      cache.KV
	Freshness  time.Duration
	CacheTTL   time.Duration
	TriggerURL string
	HTTPClient *http.Client

	// Now is the clock used for hour keys and staleness checks. Tests
	// may override it.
	Now func() time.Time
}

// NewFeed constructs a Feed with default freshness and TTL.
func NewFeed(receiver queue.Receiver, kv cache.KV, triggerURL string) *Feed {
	return &Feed{
		Receiver:   receiver,
		Cache:      kv,
		Freshness:  DefaultFreshness,
		CacheTTL:   DefaultCacheTTL,
		TriggerURL: triggerURL,
		HTTPClient: &http.Client{Timeout: triggerTimeout},
		Now:        time.Now,
	}
}

// Jobs returns the current hour's postings as a JSON array. A cache hit
// is served verbatim; a miss triggers the producer, drains the queue,
// and caches the result for the rest of the hour.
func (f *Feed) Jobs(ctx context.Context) ([]byte, error) {
	key := HourKey(f.Now())

	cached, err := f.Cache.Get(ctx, key)
	if err == nil {
		metrics.IncJobsCacheHit()
		return []byte(cached), nil
	}
	metrics.IncJobsCacheMiss()

	postings, err := f.Refresh(ctx)
	if err != nil {
		return nil, err
	}
	return encodeJobs(postings)
}

// Refresh pings the producer, drains one poll's worth of batches,
// discards stale ones, and caches the accepted postings under the
// current hour key.
func (f *Feed) Refresh(ctx context.Context) ([]json.RawMessage, error) {
	f.trigger(ctx)

	batches, err := f.Receiver.Receive(ctx, maxMessagesPerDrain)
	if err != nil {
		return nil, fmt.Errorf("drain job queue: %w", err)
	}

	freshness := f.Freshness
	if freshness <= 0 {
		freshness = DefaultFreshness
	}
	cutoff := f.Now().Add(-freshness)

	postings := make([]json.RawMessage, 0)
	accepted, skipped := 0, 0
	for _, batch := range batches {
		ts, ok := batch.Time()
		if !ok || !ts.After(cutoff) {
			skipped++
			continue
		}
		postings = append(postings, batch.Jobs...)
		accepted++
	}
	telemetry.Info("jobs.refresh", map[string]any{
		"batches_accepted": accepted,
		"batches_skipped":  skipped,
		"postings":         len(postings),
	})

	if accepted > 0 {
		payload, err := encodeJobs(postings)
		if err != nil {
			return nil, err
		}
		ttl := f.CacheTTL
		if ttl <= 0 {
			ttl = DefaultCacheTTL
		}
		if err := f.Cache.SetTTL(ctx, HourKey(f.Now()), string(payload), ttl); err != nil {
			telemetry.Warn("jobs.cache.write_failed", map[string]any{
				"err": err.Error(),
			})
		}
	}
	return postings, nil
}

// trigger nudges the upstream producer to publish a fresh batch. The ping
// is best effort; the drain proceeds regardless of the outcome.
func (f *Feed) trigger(ctx context.Context) {
	if f.TriggerURL == "" || f.HTTPClient == nil {
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.TriggerURL, nil)
	if err != nil {
		telemetry.Warn("jobs.trigger.bad_request", map[string]any{"err": err.Error()})
		return
	}
	resp, err := f.HTTPClient.Do(req)
	if err != nil {
		telemetry.Warn("jobs.trigger.failed", map[string]any{"err": err.Error()})
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		telemetry.Warn("jobs.trigger.unexpected_status", map[string]any{
			"status": resp.StatusCode,
		})
	}
}

func encodeJobs(postings []json.RawMessage) ([]byte, error) {
	if postings == nil {
		postings = []json.RawMessage{}
	}
	payload, err := json.Marshal(postings)
	if err != nil {
		return nil, fmt.Errorf("encode postings: %w", err)
	}
	return payload, nil
}

package jobs

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"resume-assist/internal/queue"
	"resume-assist/internal/shared/storage/cache"
)

type fakeReceiver struct {
	batches []queue.Batch
	calls   int
}

func (f *fakeReceiver) Receive(ctx context.Context, maxMessages int32) ([]queue.Batch, error) {
	f.calls++
	return f.batches, nil
}

func rawJobs(t *testing.T, titles ...string) []json.RawMessage {
	t.Helper()
	out := make([]json.RawMessage, 0, len(titles))
	for _, title := range titles {
		job, err := json.Marshal(map[string]string{"title": title})
		if err != nil {
			t.Fatalf("marshal job: %v", err)
		}
		out = append(out, job)
	}
	return out
}

func newTestFeed(receiver *fakeReceiver, kv *cache.MemoryKV, now time.Time) *Feed {
	feed := NewFeed(receiver, kv, "")
	feed.Now = func() time.Time { return now }
	kv.Now = feed.Now
	return feed
}

func decodeTitles(t *testing.T, payload []byte) []string {
	t.Helper()
	var postings []struct {
		Title string `json:"title"`
	}
	if err := json.Unmarshal(payload, &postings); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	titles := make([]string, 0, len(postings))
	for _, p := range postings {
		titles = append(titles, p.Title)
	}
	return titles
}

func TestHourKeyUsesUTCHour(t *testing.T) {
	loc := time.FixedZone("CET", 2*60*60)
	at := time.Date(2026, 8, 28, 1, 30, 0, 0, loc)
	if got := HourKey(at); got != "jobs:2026-08-27-23" {
		t.Fatalf("unexpected hour key: %s", got)
	}
}

func TestJobsDiscardsStaleBatches(t *testing.T) {
	now := time.Date(2026, 8, 28, 14, 30, 0, 0, time.UTC)
	receiver := &fakeReceiver{
		batches: []queue.Batch{
			{Jobs: rawJobs(t, "fresh"), Timestamp: now.Add(-10 * time.Minute).Format(time.RFC3339)},
			{Jobs: rawJobs(t, "stale"), Timestamp: now.Add(-2 * time.Hour).Format(time.RFC3339)},
			{Jobs: rawJobs(t, "untimestamped")},
		},
	}
	feed := newTestFeed(receiver, cache.NewMemory(), now)

	payload, err := feed.Jobs(context.Background())
	if err != nil {
		t.Fatalf("Jobs: %v", err)
	}

	titles := decodeTitles(t, payload)
	if len(titles) != 1 || titles[0] != "fresh" {
		t.Fatalf("unexpected titles: %v", titles)
	}
}

func TestJobsServesCacheWithoutDraining(t *testing.T) {
	now := time.Date(2026, 8, 28, 14, 30, 0, 0, time.UTC)
	receiver := &fakeReceiver{
		batches: []queue.Batch{
			{Jobs: rawJobs(t, "fresh"), Timestamp: now.Format(time.RFC3339)},
		},
	}
	kv := cache.NewMemory()
	feed := newTestFeed(receiver, kv, now)

	if _, err := feed.Jobs(context.Background()); err != nil {
		t.Fatalf("first Jobs: %v", err)
	}
	if receiver.calls != 1 {
		t.Fatalf("expected 1 drain, got %d", receiver.calls)
	}

	payload, err := feed.Jobs(context.Background())
	if err != nil {
		t.Fatalf("second Jobs: %v", err)
	}
	if receiver.calls != 1 {
		t.Fatalf("cache hit should not drain, calls=%d", receiver.calls)
	}

	titles := decodeTitles(t, payload)
	if len(titles) != 1 || titles[0] != "fresh" {
		t.Fatalf("unexpected titles: %v", titles)
	}
}

func TestJobsCacheExpiresAfterTTL(t *testing.T) {
	start := time.Date(2026, 8, 28, 14, 0, 0, 0, time.UTC)
	now := start
	receiver := &fakeReceiver{
		batches: []queue.Batch{
			{Jobs: rawJobs(t, "fresh"), Timestamp: start.Format(time.RFC3339)},
		},
	}
	kv := cache.NewMemory()
	feed := NewFeed(receiver, kv, "")
	feed.Now = func() time.Time { return now }
	kv.Now = feed.Now

	if _, err := feed.Jobs(context.Background()); err != nil {
		t.Fatalf("Jobs: %v", err)
	}
	if receiver.calls != 1 {
		t.Fatalf("expected 1 drain, got %d", receiver.calls)
	}

	// Past the TTL the snapshot is gone even within the same hour key.
	now = start.Add(feed.CacheTTL + time.Minute)
	receiver.batches = nil
	if _, err := feed.Jobs(context.Background()); err != nil {
		t.Fatalf("Jobs after expiry: %v", err)
	}
	if receiver.calls != 2 {
		t.Fatalf("expected re-drain after expiry, calls=%d", receiver.calls)
	}
}

func TestJobsEmptyDrainReturnsEmptyArray(t *testing.T) {
	now := time.Date(2026, 8, 28, 14, 30, 0, 0, time.UTC)
	feed := newTestFeed(&fakeReceiver{}, cache.NewMemory(), now)

	payload, err := feed.Jobs(context.Background())
	if err != nil {
		t.Fatalf("Jobs: %v", err)
	}
	if string(payload) != "[]" {
		t.Fatalf("expected empty array, got %s", payload)
	}
}

func TestRefreshSkipsCacheWriteWhenNothingAccepted(t *testing.T) {
	now := time.Date(2026, 8, 28, 14, 30, 0, 0, time.UTC)
	receiver := &fakeReceiver{
		batches: []queue.Batch{
			{Jobs: rawJobs(t, "stale"), Timestamp: now.Add(-3 * time.Hour).Format(time.RFC3339)},
		},
	}
	kv := cache.NewMemory()
	feed := newTestFeed(receiver, kv, now)

	if _, err := feed.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if _, err := kv.Get(context.Background(), HourKey(now)); err == nil {
		t.Fatalf("expected no cached snapshot")
	}
}

package queue

import (
	"testing"
	"time"
)

func TestDecodeBatchKeepsJobsVerbatim(t *testing.T) {
	payload := `{
		"jobs": [
			{"title": "Backend Engineer", "company": "Acme"},
			{"title": "SRE", "company": "Initech"}
		],
		"timestamp": "2026-08-28T14:05:00Z"
	}`

	batch, err := DecodeBatch([]byte(payload))
	if err != nil {
		t.Fatalf("DecodeBatch: %v", err)
	}
	if len(batch.Jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(batch.Jobs))
	}

	ts, ok := batch.Time()
	if !ok {
		t.Fatalf("expected parsable timestamp")
	}
	want := time.Date(2026, 8, 28, 14, 5, 0, 0, time.UTC)
	if !ts.Equal(want) {
		t.Fatalf("unexpected timestamp: %v", ts)
	}
}

func TestBatchTimeAcceptsNumericOffset(t *testing.T) {
	batch := Batch{Timestamp: "2026-08-28T14:05:00+00:00"}
	ts, ok := batch.Time()
	if !ok {
		t.Fatalf("expected parsable timestamp")
	}
	if !ts.Equal(time.Date(2026, 8, 28, 14, 5, 0, 0, time.UTC)) {
		t.Fatalf("unexpected timestamp: %v", ts)
	}
}

func TestBatchTimeMissingOrGarbage(t *testing.T) {
	if _, ok := (Batch{}).Time(); ok {
		t.Fatalf("expected ok=false for missing timestamp")
	}
	if _, ok := (Batch{Timestamp: "yesterday"}).Time(); ok {
		t.Fatalf("expected ok=false for garbage timestamp")
	}
}

func TestDecodeBatchRejectsMalformedJSON(t *testing.T) {
	if _, err := DecodeBatch([]byte(`{"jobs": [`)); err == nil {
		t.Fatalf("expected error")
	}
}

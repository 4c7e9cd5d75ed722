package queue

import (
	"encoding/json"
	"strings"
	"time"
)

// Batch is one queue message produced by the upstream job search. Each
// job is kept as raw JSON; the feed serves postings verbatim and never
// inspects their fields.
type Batch struct {
	Jobs      []json.RawMessage `json:"jobs"`
	Timestamp string            `json:"timestamp"`
}

// DecodeBatch parses a JSON payload into a Batch.
func DecodeBatch(payload []byte) (Batch, error) {
	var batch Batch
	if err := json.Unmarshal(payload, &batch); err != nil {
		return Batch{}, err
	}
	return batch, nil
}

// Time parses the batch timestamp. Producers emit RFC 3339 with either a
// Z or a numeric offset. A missing or unparsable timestamp yields ok=false.
func (b Batch) Time() (time.Time, bool) {
	ts := strings.TrimSpace(b.Timestamp)
	if ts == "" {
		return time.Time{}, false
	}
	parsed, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

package resumes

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-assist/internal/shared/storage/cache"
	"resume-assist/internal/shared/telemetry"
)

// Store is the cache-aside access layer for resumes. Postgres is the
// source of truth; the cache holds raw text keyed by resume id with no
// expiry. Cache failures degrade to the durable path and are never
// surfaced to callers.
type Store struct {
	Repo  Repo
	Cache cache.KV
}

// NewStore constructs a Store.
func NewStore(repo Repo, kv cache.KV) *Store {
	return &Store{Repo: repo, Cache: kv}
}

func cacheKey(id string) string {
	return "resume:" + id
}

// Put persists a resume and best-effort populates the cache. The durable
// write happens first; a cache write failure is logged and ignored.
func (s *Store) Put(ctx context.Context, text, filename string) (Resume, error) {
	if strings.TrimSpace(text) == "" {
		return Resume{}, ErrInvalidInput
	}

	resume := Resume{
		ID:        uuid.NewString(),
		RawText:   text,
		Filename:  filename,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, resume); err != nil {
		return Resume{}, err
	}

	if err := s.Cache.Set(ctx, cacheKey(resume.ID), resume.RawText); err != nil {
		telemetry.Warn("resume cache write failed", map[string]any{
			"resume_id": resume.ID,
			"error":     err.Error(),
		})
	}
	return resume, nil
}

// Get returns the raw text for a resume id. A cache hit is returned
// verbatim; on miss the durable store is read and the cache repopulated.
func (s *Store) Get(ctx context.Context, id string) (string, error) {
	if strings.TrimSpace(id) == "" {
		return "", ErrInvalidInput
	}

	text, err := s.Cache.Get(ctx, cacheKey(id))
	if err == nil {
		return text, nil
	}
	if !errors.Is(err, cache.ErrMiss) {
		telemetry.Warn("resume cache read failed", map[string]any{
			"resume_id": id,
			"error":     err.Error(),
		})
	}

	resume, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}

	if err := s.Cache.Set(ctx, cacheKey(id), resume.RawText); err != nil {
		telemetry.Warn("resume cache repopulate failed", map[string]any{
			"resume_id": id,
			"error":     err.Error(),
		})
	}
	return resume.RawText, nil
}

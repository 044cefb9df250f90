package calclog

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryRepo is a bounded in-memory Repository used when no database is
// configured, and by tests. Oldest records are dropped past the cap.
type MemoryRepo struct {
	mu      sync.Mutex
	records []*Record
	cap     int
}

func NewMemoryRepo(capacity int) *MemoryRepo {
	if capacity <= 0 {
		capacity = 1000
	}
	return &MemoryRepo{cap: capacity}
}

func (r *MemoryRepo) Create(_ context.Context, rec *Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	cp := *rec
	r.records = append(r.records, &cp)
	if len(r.records) > r.cap {
		r.records = r.records[len(r.records)-r.cap:]
	}
	return nil
}

func (r *MemoryRepo) Search(_ context.Context, params map[string]string, limit, offset int) ([]*Record, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []*Record
	// Newest first.
	for i := len(r.records) - 1; i >= 0; i-- {
		rec := r.records[i]
		if v, ok := params["score_id"]; ok && rec.ScoreID != v {
			continue
		}
		if v, ok := params["outcome"]; ok && rec.Outcome != v {
			continue
		}
		matched = append(matched, rec)
	}

	total := len(matched)
	if offset >= total {
		return nil, total, nil
	}
	matched = matched[offset:]
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	out := make([]*Record, len(matched))
	for i, rec := range matched {
		cp := *rec
		out[i] = &cp
	}
	return out, total, nil
}

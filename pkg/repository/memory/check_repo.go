package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/parun-tech/resume-checker/pkg/analysis"
)

// CheckRepository keeps check history in process memory. History is lost on
// restart; it backs local runs without a database and tests.
type CheckRepository struct {
	mu     sync.RWMutex
	checks []analysis.Check
}

func NewCheckRepository() *CheckRepository {
	return &CheckRepository{}
}

func (r *CheckRepository) Create(_ context.Context, c analysis.Check) (analysis.Check, error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	c.MissingKeywords = append([]string{}, c.MissingKeywords...)

	r.mu.Lock()
	r.checks = append(r.checks, c)
	r.mu.Unlock()
	return c, nil
}

func (r *CheckRepository) GetByID(_ context.Context, id uuid.UUID) (analysis.Check, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.checks {
		if c.ID == id {
			return clone(c), nil
		}
	}
	return analysis.Check{}, analysis.ErrNotFound
}

func (r *CheckRepository) ListRecent(_ context.Context, limit, offset int) ([]analysis.Check, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}
	r.mu.RLock()
	sorted := make([]analysis.Check, 0, len(r.checks))
	for i := len(r.checks) - 1; i >= 0; i-- {
		sorted = append(sorted, r.checks[i])
	}
	r.mu.RUnlock()

	// newest first; on equal timestamps the later insert wins
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	res := []analysis.Check{}
	if offset >= len(sorted) {
		return res, nil
	}
	end := offset + limit
	if end > len(sorted) {
		end = len(sorted)
	}
	for _, c := range sorted[offset:end] {
		res = append(res, clone(c))
	}
	return res, nil
}

func clone(c analysis.Check) analysis.Check {
	c.MissingKeywords = append([]string{}, c.MissingKeywords...)
	return c
}

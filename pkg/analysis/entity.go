package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned by repositories when a check does not exist.
var ErrNotFound = errors.New("check not found")

// Check is a persisted comparison, shown in the history list.
type Check struct {
	ID              uuid.UUID `json:"id"`
	JobTitle        string    `json:"jobTitle"`
	FileName        string    `json:"fileName"`
	Score           int       `json:"score"`
	MissingKeywords []string  `json:"missingKeywords"`
	CreatedAt       time.Time `json:"date"`
}

// MarshalJSON also writes the id under "_id", the key the web client reads
// history rows by.
func (c Check) MarshalJSON() ([]byte, error) {
	type check Check
	return json.Marshal(struct {
		check
		LegacyID uuid.UUID `json:"_id"`
	}{check(c), c.ID})
}

// Repository persists and reads check history.
type Repository interface {
	Create(ctx context.Context, c Check) (Check, error)
	GetByID(ctx context.Context, id uuid.UUID) (Check, error)
	// ListRecent returns checks newest first.
	ListRecent(ctx context.Context, limit, offset int) ([]Check, error)
}

package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/parun-tech/resume-checker/pkg/analysis"
)

// CheckRepository stores check history in a SQLite database.
type CheckRepository struct {
	db *sql.DB
}

func NewCheckRepository(db *sql.DB) *CheckRepository {
	return &CheckRepository{db: db}
}

func (r *CheckRepository) Create(ctx context.Context, c analysis.Check) (analysis.Check, error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	if c.MissingKeywords == nil {
		c.MissingKeywords = []string{}
	}
	missing, err := json.Marshal(c.MissingKeywords)
	if err != nil {
		return analysis.Check{}, err
	}
	_, err = r.db.ExecContext(ctx, `
INSERT INTO resume_checks (id, job_title, file_name, score, missing_keywords, created_at)
VALUES (?, ?, ?, ?, ?, ?)
`, c.ID.String(), c.JobTitle, c.FileName, c.Score, string(missing), c.CreatedAt.UnixNano())
	if err != nil {
		return analysis.Check{}, err
	}
	return c, nil
}

func (r *CheckRepository) GetByID(ctx context.Context, id uuid.UUID) (analysis.Check, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, job_title, file_name, score, missing_keywords, created_at
FROM resume_checks WHERE id = ?
`, id.String())
	c, err := scanCheck(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return analysis.Check{}, analysis.ErrNotFound
		}
		return analysis.Check{}, err
	}
	return c, nil
}

func (r *CheckRepository) ListRecent(ctx context.Context, limit, offset int) ([]analysis.Check, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := r.db.QueryContext(ctx, `
SELECT id, job_title, file_name, score, missing_keywords, created_at
FROM resume_checks
ORDER BY created_at DESC, rowid DESC
LIMIT ? OFFSET ?
`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := []analysis.Check{}
	for rows.Next() {
		c, err := scanCheck(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, c)
	}
	return res, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCheck(row scanner) (analysis.Check, error) {
	var (
		c       analysis.Check
		id      string
		missing string
		created int64
	)
	if err := row.Scan(&id, &c.JobTitle, &c.FileName, &c.Score, &missing, &created); err != nil {
		return analysis.Check{}, err
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return analysis.Check{}, fmt.Errorf("bad check id %q: %w", id, err)
	}
	c.ID = parsed
	if err := json.Unmarshal([]byte(missing), &c.MissingKeywords); err != nil {
		return analysis.Check{}, fmt.Errorf("decode missing keywords: %w", err)
	}
	if c.MissingKeywords == nil {
		c.MissingKeywords = []string{}
	}
	c.CreatedAt = time.Unix(0, created).UTC()
	return c, nil
}

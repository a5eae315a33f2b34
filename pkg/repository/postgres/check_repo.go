package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/parun-tech/resume-checker/pkg/analysis"
)

// CheckRepository хранит историю проверок в PostgreSQL.
type CheckRepository struct {
	pool *pgxpool.Pool
}

// NewCheckRepository expects the schema to be migrated already.
func NewCheckRepository(pool *pgxpool.Pool) *CheckRepository {
	return &CheckRepository{pool: pool}
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
	_, err := r.pool.Exec(ctx, `
INSERT INTO resume_checks (id, job_title, file_name, score, missing_keywords, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
`, c.ID, c.JobTitle, c.FileName, c.Score, c.MissingKeywords, c.CreatedAt)
	if err != nil {
		return analysis.Check{}, err
	}
	return c, nil
}

func (r *CheckRepository) GetByID(ctx context.Context, id uuid.UUID) (analysis.Check, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, job_title, file_name, score, missing_keywords, created_at
FROM resume_checks WHERE id = $1
`, id)
	c, err := scanCheck(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
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
	rows, err := r.pool.Query(ctx, `
SELECT id, job_title, file_name, score, missing_keywords, created_at
FROM resume_checks
ORDER BY created_at DESC, seq DESC
LIMIT $1 OFFSET $2
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

func scanCheck(row pgx.Row) (analysis.Check, error) {
	var c analysis.Check
	var created time.Time
	if err := row.Scan(&c.ID, &c.JobTitle, &c.FileName, &c.Score, &c.MissingKeywords, &created); err != nil {
		return analysis.Check{}, err
	}
	if c.MissingKeywords == nil {
		c.MissingKeywords = []string{}
	}
	c.CreatedAt = created.UTC()
	return c, nil
}

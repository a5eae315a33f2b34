package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parun-tech/resume-checker/pkg/analysis"
	pgstore "github.com/parun-tech/resume-checker/pkg/storage/postgres"
)

// Runs only against a live database: TEST_DATABASE_URL=postgres://...
func TestCheckRepository(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	pool, err := pgstore.Connect(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()
	_, err = pgstore.Migrate(ctx, pool)
	require.NoError(t, err)

	r := NewCheckRepository(pool)
	saved, err := r.Create(ctx, analysis.Check{
		JobTitle:        "Data Engineer",
		FileName:        "cv.docx",
		Score:           67,
		MissingKeywords: []string{"spark", "airflow"},
		CreatedAt:       time.Now().UTC().Truncate(time.Microsecond),
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = pool.Exec(context.Background(), `DELETE FROM resume_checks WHERE id = $1`, saved.ID)
	})

	got, err := r.GetByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved, got)

	items, err := r.ListRecent(ctx, 1, 0)
	require.NoError(t, err)
	require.Len(t, items, 1)

	_, err = r.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, analysis.ErrNotFound)
}

func TestCheckRepositoryListRecentSameTimestamp(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	pool, err := pgstore.Connect(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()
	_, err = pgstore.Migrate(ctx, pool)
	require.NoError(t, err)

	r := NewCheckRepository(pool)
	// far in the future so rows from other tests sort after these
	at := time.Date(2999, 1, 1, 0, 0, 0, 0, time.UTC)
	var ids []uuid.UUID
	for _, title := range []string{"a", "b", "c"} {
		saved, err := r.Create(ctx, analysis.Check{JobTitle: title, CreatedAt: at})
		require.NoError(t, err)
		ids = append(ids, saved.ID)
	}
	t.Cleanup(func() {
		_, _ = pool.Exec(context.Background(), `DELETE FROM resume_checks WHERE id = ANY($1)`, ids)
	})

	items, err := r.ListRecent(ctx, 3, 0)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, []string{"c", "b", "a"}, []string{items[0].JobTitle, items[1].JobTitle, items[2].JobTitle})
}

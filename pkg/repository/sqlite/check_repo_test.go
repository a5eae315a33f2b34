package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parun-tech/resume-checker/pkg/analysis"
	sqlitestore "github.com/parun-tech/resume-checker/pkg/storage/sqlite"
)

func newRepo(t *testing.T) *CheckRepository {
	t.Helper()
	ctx := context.Background()
	db, err := sqlitestore.Open(ctx, filepath.Join(t.TempDir(), "checks.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	applied, err := sqlitestore.Migrate(ctx, db)
	require.NoError(t, err)
	require.Equal(t, 1, applied)
	return NewCheckRepository(db)
}

func TestCheckRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	r := newRepo(t)
	created := time.Date(2026, 10, 17, 9, 30, 0, 123, time.UTC)

	saved, err := r.Create(ctx, analysis.Check{
		JobTitle:        "Platform Engineer",
		FileName:        "cv.pdf",
		Score:           42,
		MissingKeywords: []string{"terraform", "kafka"},
		CreatedAt:       created,
	})
	require.NoError(t, err)

	got, err := r.GetByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, got.ID)
	assert.Equal(t, "Platform Engineer", got.JobTitle)
	assert.Equal(t, "cv.pdf", got.FileName)
	assert.Equal(t, 42, got.Score)
	assert.Equal(t, []string{"terraform", "kafka"}, got.MissingKeywords)
	assert.True(t, created.Equal(got.CreatedAt))

	_, err = r.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, analysis.ErrNotFound)
}

func TestCheckRepositoryListRecent(t *testing.T) {
	ctx := context.Background()
	r := newRepo(t)
	base := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	for i, title := range []string{"old", "mid", "new"} {
		_, err := r.Create(ctx, analysis.Check{JobTitle: title, CreatedAt: base.Add(time.Duration(i) * time.Minute)})
		require.NoError(t, err)
	}

	items, err := r.ListRecent(ctx, 2, 0)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "new", items[0].JobTitle)
	assert.Equal(t, "mid", items[1].JobTitle)
	assert.Equal(t, []string{}, items[0].MissingKeywords)

	items, err = r.ListRecent(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "old", items[0].JobTitle)
}

func TestCheckRepositoryListRecentSameTimestamp(t *testing.T) {
	ctx := context.Background()
	r := newRepo(t)
	at := time.Date(2026, 10, 17, 8, 0, 0, 0, time.UTC)
	for _, title := range []string{"a", "b", "c"} {
		_, err := r.Create(ctx, analysis.Check{JobTitle: title, CreatedAt: at})
		require.NoError(t, err)
	}

	items, err := r.ListRecent(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, []string{"c", "b", "a"}, []string{items[0].JobTitle, items[1].JobTitle, items[2].JobTitle})
}

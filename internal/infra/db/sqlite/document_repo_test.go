package sqlite

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bryanwahyu/global-sentinel/internal/domain/document"
)

func openRepo(t *testing.T) *DocumentRepository {
	t.Helper()
	conn, err := Open(context.Background(), filepath.Join(t.TempDir(), "data", "sentinel.db"))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return NewDocumentRepository(conn)
}

func TestSetGetRoundTrip(t *testing.T) {
	repo := openRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, document.CollectionValidations, "v1", map[string]any{"vote": "credible"}))
	rec, err := repo.Get(ctx, document.CollectionValidations, "v1")
	require.NoError(t, err)
	assert.Equal(t, "v1", rec.ID)

	var got map[string]string
	require.NoError(t, json.Unmarshal(rec.Payload, &got))
	assert.Equal(t, "credible", got["vote"])
}

func TestSetUpsertKeepsCreatedAt(t *testing.T) {
	repo := openRepo(t)
	ctx := context.Background()
	t0 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return t0 }
	require.NoError(t, repo.Set(ctx, "c", "a", map[string]int{"n": 1}))

	repo.now = func() time.Time { return t0.Add(time.Hour) }
	require.NoError(t, repo.Set(ctx, "c", "a", map[string]int{"n": 2}))

	rec, err := repo.Get(ctx, "c", "a")
	require.NoError(t, err)
	assert.JSONEq(t, `{"n":2}`, string(rec.Payload))
	assert.True(t, rec.CreatedAt.Equal(t0))
}

func TestGetMissing(t *testing.T) {
	repo := openRepo(t)
	_, err := repo.Get(context.Background(), "c", "nope")
	assert.ErrorIs(t, err, document.ErrNotFound)
}

func TestLatestOrdersNewestFirst(t *testing.T) {
	repo := openRepo(t)
	ctx := context.Background()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"first", "second", "third"} {
		ts := base.Add(time.Duration(i) * time.Minute)
		repo.now = func() time.Time { return ts }
		require.NoError(t, repo.Set(ctx, document.CollectionSimulations, id, map[string]string{"id": id}))
	}
	require.NoError(t, repo.Set(ctx, document.CollectionVerifications, "other", nil))

	recs, err := repo.Latest(ctx, document.CollectionSimulations, 2)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "third", recs[0].ID)
	assert.Equal(t, "second", recs[1].ID)
}

func TestSetRejectsBlankKey(t *testing.T) {
	repo := openRepo(t)
	assert.Error(t, repo.Set(context.Background(), "c", " ", nil))
	assert.NoError(t, repo.Ping(context.Background()))
}

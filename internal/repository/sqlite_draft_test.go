package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vasco-fernandes21/starsoftflow/internal/testutil"
)

func TestDraftRepo_CreateAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteDraftRepo(db)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	d := &DraftRecord{
		ID:        "d1",
		Title:     "Q3 proposal",
		Content:   []byte(`{"id":"p1"}`),
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, repo.Create(ctx, d))

	fetched, err := repo.Get(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, "Q3 proposal", fetched.Title)
	assert.Equal(t, []byte(`{"id":"p1"}`), fetched.Content, "content bytes round-trip unmodified")
	assert.Equal(t, now, fetched.CreatedAt.UTC())
}

func TestDraftRepo_Get_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteDraftRepo(db)

	_, err := repo.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDraftRepo_Update(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteDraftRepo(db)
	ctx := context.Background()

	now := time.Now().UTC()
	require.NoError(t, repo.Create(ctx, &DraftRecord{ID: "d1", Title: "old", Content: []byte(`{}`), CreatedAt: now, UpdatedAt: now}))

	require.NoError(t, repo.Update(ctx, "d1", "new title", []byte(`{"id":"p2"}`)))

	fetched, err := repo.Get(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, "new title", fetched.Title)
	assert.Equal(t, []byte(`{"id":"p2"}`), fetched.Content)
}

func TestDraftRepo_Update_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteDraftRepo(db)
	assert.ErrorIs(t, repo.Update(context.Background(), "missing", "t", nil), ErrNotFound)
}

func TestDraftRepo_ListNewestFirst(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteDraftRepo(db)
	ctx := context.Background()

	older := time.Now().UTC().Add(-time.Hour)
	newer := time.Now().UTC()
	require.NoError(t, repo.Create(ctx, &DraftRecord{ID: "d1", Title: "older", Content: []byte(`{}`), CreatedAt: older, UpdatedAt: older}))
	require.NoError(t, repo.Create(ctx, &DraftRecord{ID: "d2", Title: "newer", Content: []byte(`{}`), CreatedAt: newer, UpdatedAt: newer}))

	drafts, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, drafts, 2)
	assert.Equal(t, "newer", drafts[0].Title)
}

func TestDraftRepo_Delete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteDraftRepo(db)
	ctx := context.Background()

	now := time.Now().UTC()
	require.NoError(t, repo.Create(ctx, &DraftRecord{ID: "d1", Title: "t", Content: []byte(`{}`), CreatedAt: now, UpdatedAt: now}))
	require.NoError(t, repo.Delete(ctx, "d1"))

	_, err := repo.Get(ctx, "d1")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "d1"), ErrNotFound)
}

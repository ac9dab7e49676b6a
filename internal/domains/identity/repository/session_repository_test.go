package repository

import (
	"context"
	"testing"
	"time"

	"bakery-storefront/internal/domains/identity/model"
	infraCache "bakery-storefront/internal/infrastructure/cache"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) (RepositoryInterface, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := infraCache.NewRedisClient(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = client.Close() })
	return NewSessionRepository(infraCache.NewRedisCache(client), time.Hour), mr
}

func TestSessionRepository_RoundTrip(t *testing.T) {
	repo, mr := newRepo(t)
	ctx := context.Background()

	got, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, repo.Save(ctx, &model.Session{SessionID: "s1", UserID: "maria"}))
	assert.True(t, mr.Exists("session:s1"))
	assert.Equal(t, time.Hour, mr.TTL("session:s1"))

	got, err = repo.Get(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "maria", got.UserID)

	require.NoError(t, repo.Delete(ctx, "s1"))
	got, err = repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSessionRepository_Expiry(t *testing.T) {
	repo, mr := newRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &model.Session{SessionID: "s1", UserID: "maria"}))
	mr.FastForward(2 * time.Hour)

	got, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSessionRepository_StoreDown(t *testing.T) {
	repo, mr := newRepo(t)
	mr.Close()

	_, err := repo.Get(context.Background(), "s1")
	assert.Error(t, err)
}

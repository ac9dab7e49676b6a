package service

import (
	"context"
	"testing"
	"time"

	"bakery-storefront/internal/domains/identity/model"
	"bakery-storefront/internal/domains/identity/repository"
	infraCache "bakery-storefront/internal/infrastructure/cache"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	sessionID string
	userID    string
}

type recorder struct {
	signIns  []call
	signOuts []call
}

func newTestService(t *testing.T) (*IdentityService, *recorder, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := infraCache.NewRedisClient(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = client.Close() })

	svc := NewIdentityService(repository.NewSessionRepository(infraCache.NewRedisCache(client), 24*time.Hour))
	rec := &recorder{}
	svc.OnSignIn(func(_ context.Context, sessionID, userID string) {
		rec.signIns = append(rec.signIns, call{sessionID, userID})
	})
	svc.OnSignOut(func(_ context.Context, sessionID, userID string) {
		rec.signOuts = append(rec.signOuts, call{sessionID, userID})
	})
	return svc, rec, mr
}

func TestSignIn(t *testing.T) {
	svc, rec, _ := newTestService(t)
	ctx := context.Background()

	session, err := svc.SignIn(ctx, "s1", "  maria ")
	require.NoError(t, err)
	assert.Equal(t, "maria", session.UserID)
	assert.Equal(t, []call{{"s1", "maria"}}, rec.signIns)

	identity := svc.Current(ctx, "s1")
	assert.Equal(t, "maria", identity.UserID)
	assert.False(t, identity.IsAnonymous())
}

func TestSignIn_SameUserTwiceMergesOnce(t *testing.T) {
	svc, rec, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.SignIn(ctx, "s1", "maria")
	require.NoError(t, err)
	_, err = svc.SignIn(ctx, "s1", "maria")
	require.NoError(t, err)

	assert.Len(t, rec.signIns, 1)
}

func TestSignIn_DifferentUserRejected(t *testing.T) {
	svc, rec, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.SignIn(ctx, "s1", "maria")
	require.NoError(t, err)

	_, err = svc.SignIn(ctx, "s1", "joao")
	assert.ErrorIs(t, err, model.ErrAlreadySignedIn)
	assert.Len(t, rec.signIns, 1)
	assert.Equal(t, "maria", svc.Current(ctx, "s1").UserID)
}

func TestSignIn_InvalidInput(t *testing.T) {
	svc, rec, _ := newTestService(t)
	ctx := context.Background()

	for _, id := range []string{"", "   ", "a:b", "two words"} {
		_, err := svc.SignIn(ctx, "s1", id)
		assert.ErrorIs(t, err, model.ErrInvalidUserID, id)
	}

	_, err := svc.SignIn(ctx, "", "maria")
	assert.ErrorIs(t, err, model.ErrInvalidSession)
	assert.Empty(t, rec.signIns)
}

func TestSignOut(t *testing.T) {
	svc, rec, mr := newTestService(t)
	ctx := context.Background()

	_, err := svc.SignIn(ctx, "s1", "maria")
	require.NoError(t, err)

	require.NoError(t, svc.SignOut(ctx, "s1"))
	assert.Equal(t, []call{{"s1", "maria"}}, rec.signOuts)
	assert.False(t, mr.Exists("session:s1"))
	assert.True(t, svc.Current(ctx, "s1").IsAnonymous())

	assert.ErrorIs(t, svc.SignOut(ctx, "s1"), model.ErrNotSignedIn)
	assert.Len(t, rec.signOuts, 1)
}

func TestSignOut_ThenSignInAgain(t *testing.T) {
	svc, rec, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.SignIn(ctx, "s1", "maria")
	require.NoError(t, err)
	require.NoError(t, svc.SignOut(ctx, "s1"))
	_, err = svc.SignIn(ctx, "s1", "joao")
	require.NoError(t, err)

	assert.Equal(t, []call{{"s1", "maria"}, {"s1", "joao"}}, rec.signIns)
}

func TestCurrent_StoreDownIsAnonymous(t *testing.T) {
	svc, _, mr := newTestService(t)
	mr.Close()

	identity := svc.Current(context.Background(), "s1")
	assert.Equal(t, "s1", identity.SessionID)
	assert.True(t, identity.IsAnonymous())
}

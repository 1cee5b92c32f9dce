package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpaque_IssueAndVerify(t *testing.T) {
	store := NewMemory()
	mgr := NewOpaque(store, time.Hour)
	ctx := context.Background()

	token, err := mgr.Issue(ctx, "alice", "user")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	identity, err := mgr.Verify(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "alice", identity.Username)
	assert.Equal(t, "user", identity.Role)
}

func TestOpaque_VerifyUnknownToken(t *testing.T) {
	mgr := NewOpaque(NewMemory(), time.Hour)

	identity, err := mgr.Verify(context.Background(), "never-issued-token")
	assert.Nil(t, identity)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestOpaque_VerifyExpiredToken(t *testing.T) {
	current := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	now := func() time.Time { return current }

	store := NewMemory()
	store.now = now
	mgr := NewOpaqueWithClock(store, time.Hour, now)
	ctx := context.Background()

	token, err := mgr.Issue(ctx, "alice", "user")
	require.NoError(t, err)

	// до истечения TTL токен принимается
	current = current.Add(59 * time.Minute)
	identity, err := mgr.Verify(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "alice", identity.Username)

	// после истечения TTL токен отклоняется и запись вычищается
	current = current.Add(2 * time.Minute)
	identity, err = mgr.Verify(ctx, token)
	assert.Nil(t, identity)
	assert.ErrorIs(t, err, ErrTokenInvalid)
	assert.Equal(t, 0, store.Len())
}

func TestOpaque_Revoke(t *testing.T) {
	store := NewMemory()
	mgr := NewOpaque(store, time.Hour)
	ctx := context.Background()

	token, err := mgr.Issue(ctx, "alice", "admin")
	require.NoError(t, err)

	require.NoError(t, mgr.Revoke(ctx, token))

	identity, err := mgr.Verify(ctx, token)
	assert.Nil(t, identity)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestOpaque_RevokeUnknownToken_NoError(t *testing.T) {
	mgr := NewOpaque(NewMemory(), time.Hour)

	assert.NoError(t, mgr.Revoke(context.Background(), "never-issued-token"))
	// повторный отзыв тоже no-op
	assert.NoError(t, mgr.Revoke(context.Background(), "never-issued-token"))
}

func TestOpaque_TokensAreUnique(t *testing.T) {
	store := NewMemory()
	mgr := NewOpaque(store, time.Hour)
	ctx := context.Background()

	seen := make(map[string]bool)
	for range 100 {
		token, err := mgr.Issue(ctx, "alice", "user")
		require.NoError(t, err)
		assert.False(t, seen[token])
		seen[token] = true
	}
}

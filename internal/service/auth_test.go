package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ticklist/ticklist/internal/repository"
)

func TestRegister(t *testing.T) {
	auth := newTestAuthService(t, newTestDB(t))

	user, err := auth.Register("alice@example.com", "alice", "secret")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.False(t, user.Confirmed)

	require.NoError(t, auth.ComparePassword("secret", user.PasswordHash))
	assert.Error(t, auth.ComparePassword("wrong", user.PasswordHash))
}

func TestRegisterNormalizesEmail(t *testing.T) {
	auth := newTestAuthService(t, newTestDB(t))

	user, err := auth.Register("  Alice@Example.COM ", "alice", "secret")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
}

func TestRegisterDuplicates(t *testing.T) {
	auth := newTestAuthService(t, newTestDB(t))

	_, err := auth.Register("alice@example.com", "alice", "secret")
	require.NoError(t, err)

	_, err = auth.Register("alice@example.com", "other", "secret")
	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)

	_, err = auth.Register("other@example.com", "alice", "secret")
	assert.ErrorIs(t, err, repository.ErrDuplicateUsername)
}

func TestRegisterRejectsInvalidInput(t *testing.T) {
	auth := newTestAuthService(t, newTestDB(t))

	_, err := auth.Register("not-an-email", "alice", "secret")
	assert.ErrorIs(t, err, ErrInvalidEmail)

	_, err = auth.Register("alice@example.com", "", "secret")
	assert.Error(t, err)

	_, err = auth.Register("alice@example.com", "alice", "abc")
	assert.Error(t, err)
}

func TestLogin(t *testing.T) {
	auth := newTestAuthService(t, newTestDB(t))

	registered, err := auth.Register("alice@example.com", "alice", "secret")
	require.NoError(t, err)

	user, err := auth.Login("alice@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	// Unconfirmed users still authenticate
	assert.False(t, user.Confirmed)

	_, err = auth.Login("alice@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = auth.Login("nobody@example.com", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestConfirm(t *testing.T) {
	database := newTestDB(t)
	auth := newTestAuthService(t, database)

	user, err := auth.Register("alice@example.com", "alice", "secret")
	require.NoError(t, err)

	codec := NewTokenCodec("test-secret")
	token, err := codec.Generate(user.ID, time.Hour)
	require.NoError(t, err)

	assert.True(t, auth.Confirm(user, token))
	assert.True(t, user.Confirmed)

	stored, err := auth.UserByID(user.ID)
	require.NoError(t, err)
	assert.True(t, stored.Confirmed)

	// Re-confirming with the same token is a no-op success
	assert.True(t, auth.Confirm(user, token))
}

func TestConfirmRejectsForeignToken(t *testing.T) {
	auth := newTestAuthService(t, newTestDB(t))

	alice, err := auth.Register("alice@example.com", "alice", "secret")
	require.NoError(t, err)
	bob, err := auth.Register("bob@example.com", "bob", "secret")
	require.NoError(t, err)

	codec := NewTokenCodec("test-secret")
	bobToken, err := codec.Generate(bob.ID, time.Hour)
	require.NoError(t, err)

	assert.False(t, auth.Confirm(alice, bobToken))
	assert.False(t, alice.Confirmed)

	assert.False(t, auth.Confirm(alice, "garbage"))
}

func TestSessionLifecycle(t *testing.T) {
	auth := newTestAuthService(t, newTestDB(t))

	user, err := auth.Register("alice@example.com", "alice", "secret")
	require.NoError(t, err)

	session, err := auth.CreateSession(user)
	require.NoError(t, err)
	assert.Len(t, session.Token, 64)
	assert.True(t, session.ExpiresAt.After(time.Now()))

	gotUser, gotSession, err := auth.SessionUser(session.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, gotUser.ID)
	assert.Equal(t, session.ID, gotSession.ID)

	require.NoError(t, auth.DestroySession(session.Token))

	_, _, err = auth.SessionUser(session.Token)
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestSessionTokensAreUnique(t *testing.T) {
	auth := newTestAuthService(t, newTestDB(t))

	user, err := auth.Register("alice@example.com", "alice", "secret")
	require.NoError(t, err)

	first, err := auth.CreateSession(user)
	require.NoError(t, err)
	second, err := auth.CreateSession(user)
	require.NoError(t, err)

	assert.NotEqual(t, first.Token, second.Token)
}

package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ticklist/ticklist/internal/model"
)

func newUser(email, username string) *model.User {
	return &model.User{
		Email:        email,
		Username:     username,
		PasswordHash: "$2a$10$fakefakefakefakefakefake",
		CreatedAt:    time.Now(),
	}
}

func TestUserRepositoryCreate(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	user := newUser("a@x.com", "alice")
	err := repo.Create(user)
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.False(t, user.Confirmed)
}

func TestUserRepositoryDuplicateEmail(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	require.NoError(t, repo.Create(newUser("a@x.com", "alice")))

	err := repo.Create(newUser("a@x.com", "bob"))
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestUserRepositoryDuplicateUsername(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	require.NoError(t, repo.Create(newUser("a@x.com", "alice")))

	err := repo.Create(newUser("b@x.com", "alice"))
	assert.ErrorIs(t, err, ErrDuplicateUsername)
}

func TestUserRepositoryLookups(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	user := newUser("a@x.com", "alice")
	require.NoError(t, repo.Create(user))

	byID, err := repo.ByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", byID.Email)

	byEmail, err := repo.ByEmail("a@x.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	byUsername, err := repo.ByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byUsername.ID)

	_, err = repo.ByEmail("missing@x.com")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = repo.ByID(9999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserRepositorySetConfirmed(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	user := newUser("a@x.com", "alice")
	require.NoError(t, repo.Create(user))

	require.NoError(t, repo.SetConfirmed(user.ID))

	got, err := repo.ByID(user.ID)
	require.NoError(t, err)
	assert.True(t, got.Confirmed)

	// Confirming again is a no-op success
	require.NoError(t, repo.SetConfirmed(user.ID))

	err = repo.SetConfirmed(9999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ticklist/ticklist/internal/model"
)

func TestSessionRepositoryRoundTrip(t *testing.T) {
	database := newTestDB(t)
	repo := NewSessionRepository(database)
	owner := seedUser(t, database, "a@x.com", "alice")

	session := &model.Session{
		UserID:    owner,
		Token:     "token-1",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, repo.Create(session))
	assert.NotEmpty(t, session.ID)

	got, err := repo.ByToken("token-1")
	require.NoError(t, err)
	assert.Equal(t, owner, got.UserID)

	require.NoError(t, repo.Delete("token-1"))

	_, err = repo.ByToken("token-1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionRepositoryExpired(t *testing.T) {
	database := newTestDB(t)
	repo := NewSessionRepository(database)
	owner := seedUser(t, database, "a@x.com", "alice")

	require.NoError(t, repo.Create(&model.Session{
		UserID:    owner,
		Token:     "stale",
		ExpiresAt: time.Now().Add(-time.Minute),
	}))

	_, err := repo.ByToken("stale")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	deleted, err := repo.DeleteExpired()
	require.NoError(t, err)
	assert.EqualValues(t, 1, deleted)
}

func TestSessionRepositoryDeleteByUser(t *testing.T) {
	database := newTestDB(t)
	repo := NewSessionRepository(database)
	owner := seedUser(t, database, "a@x.com", "alice")

	for _, token := range []string{"one", "two"} {
		require.NoError(t, repo.Create(&model.Session{
			UserID:    owner,
			Token:     token,
			ExpiresAt: time.Now().Add(time.Hour),
		}))
	}

	require.NoError(t, repo.DeleteByUser(owner))

	_, err := repo.ByToken("one")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = repo.ByToken("two")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

package service

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"github.com/ticklist/ticklist/internal/db"
	"github.com/ticklist/ticklist/internal/repository"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	database, err := db.Init("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = database.Close()
	})

	err = db.RunMigrations(database.DB, "sqlite")
	require.NoError(t, err)

	return database
}

func newTestAuthService(t *testing.T, database *sqlx.DB) *AuthService {
	t.Helper()

	emailService := NewEmailService("", "test@ticklist.dev", "http://localhost:8080", "Ticklist", true)
	mailer := NewMailer(emailService, 8, 1)
	t.Cleanup(mailer.Close)

	return NewAuthService(
		repository.NewUserRepository(database),
		repository.NewSessionRepository(database),
		NewTokenCodec("test-secret"),
		mailer,
		false,
		time.Hour,
		time.Hour,
	)
}

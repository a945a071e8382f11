package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/ticklist/ticklist/internal/model"
)

var (
	ErrSessionNotFound = errors.New("session not found")
)

type SessionRepository interface {
	Create(session *model.Session) error
	ByToken(token string) (*model.Session, error)
	Delete(token string) error
	DeleteByUser(userID int64) error
	DeleteExpired() (int64, error)
}

type sessionRepository struct {
	db *sqlx.DB
}

func NewSessionRepository(db *sqlx.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(session *model.Session) error {
	if session.ID == "" {
		session.ID = uuid.New().String()
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO sessions (id, user_id, token, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.Exec(query,
		session.ID,
		session.UserID,
		session.Token,
		session.ExpiresAt,
		session.CreatedAt,
	)
	return err
}

// ByToken returns the session for the given token if it has not expired.
// Expired or unknown tokens are indistinguishable to the caller.
func (r *sessionRepository) ByToken(token string) (*model.Session, error) {
	session := &model.Session{}
	query := `SELECT * FROM sessions WHERE token = $1 AND expires_at > $2`

	err := r.db.Get(session, query, token, time.Now())
	if err == sql.ErrNoRows {
		return nil, ErrSessionNotFound
	}

	return session, err
}

func (r *sessionRepository) Delete(token string) error {
	query := `DELETE FROM sessions WHERE token = $1`
	_, err := r.db.Exec(query, token)
	return err
}

func (r *sessionRepository) DeleteByUser(userID int64) error {
	query := `DELETE FROM sessions WHERE user_id = $1`
	_, err := r.db.Exec(query, userID)
	return err
}

// DeleteExpired removes sessions past their expiry. Optional maintenance
// operation, call periodically if session volume warrants it.
func (r *sessionRepository) DeleteExpired() (int64, error) {
	query := `DELETE FROM sessions WHERE expires_at <= $1`

	result, err := r.db.Exec(query, time.Now())
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}

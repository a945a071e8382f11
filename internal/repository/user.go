package repository

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/ticklist/ticklist/internal/model"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrDuplicateEmail    = errors.New("email already exists")
	ErrDuplicateUsername = errors.New("username already exists")
)

type UserRepository interface {
	Create(user *model.User) error
	ByID(id int64) (*model.User, error)
	ByEmail(email string) (*model.User, error)
	ByUsername(username string) (*model.User, error)
	SetConfirmed(id int64) error
}

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *model.User) error {
	query := `INSERT INTO users (email, username, password_hash, confirmed, created_at)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`

	err := r.db.QueryRow(query, user.Email, user.Username, user.PasswordHash, user.Confirmed, user.CreatedAt).Scan(&user.ID)
	if err != nil {
		return mapUniqueViolation(err)
	}

	return nil
}

// mapUniqueViolation translates unique constraint errors into sentinel errors
// (works for both SQLite and PostgreSQL error strings)
func mapUniqueViolation(err error) error {
	errStr := err.Error()
	if !strings.Contains(errStr, "UNIQUE constraint failed") && !strings.Contains(errStr, "duplicate key value") {
		return err
	}
	if strings.Contains(errStr, "username") {
		return ErrDuplicateUsername
	}
	return ErrDuplicateEmail
}

func (r *userRepository) ByID(id int64) (*model.User, error) {
	user := &model.User{}
	query := `SELECT * FROM users WHERE id = $1`

	err := r.db.Get(user, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}

	return user, err
}

func (r *userRepository) ByEmail(email string) (*model.User, error) {
	user := &model.User{}
	query := `SELECT * FROM users WHERE email = $1`

	err := r.db.Get(user, query, email)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}

	return user, err
}

func (r *userRepository) ByUsername(username string) (*model.User, error) {
	user := &model.User{}
	query := `SELECT * FROM users WHERE username = $1`

	err := r.db.Get(user, query, username)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}

	return user, err
}

func (r *userRepository) SetConfirmed(id int64) error {
	query := `UPDATE users SET confirmed = TRUE WHERE id = $1`

	result, err := r.db.Exec(query, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrUserNotFound
	}

	return nil
}

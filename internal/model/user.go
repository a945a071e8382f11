package model

import (
	"time"
)

type User struct {
	ID           int64     `db:"id"`
	Email        string    `db:"email"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	Confirmed    bool      `db:"confirmed"`
	CreatedAt    time.Time `db:"created_at"`
}

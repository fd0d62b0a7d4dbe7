package models

import "time"

// User is the database representation of an account row in usuarios.
type User struct {
	UserID       string    `db:"user_id"`
	Name         string    `db:"nome"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"senha_hash"`
	Role         string    `db:"role"`
	Active       bool      `db:"ativo"`
	CreatedAt    time.Time `db:"created_at"`
}

package models

import (
	"time"
)

// User represents a Discord user with a coin balance.
// Users are created lazily with a zero balance the first time they are
// referenced and are never deleted.
type User struct {
	UserID    string    `db:"user_id"`
	Balance   int64     `db:"balance"`
	LastClaim time.Time `db:"last_claim"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

package models

import (
	"database/sql"
	"time"
)

// User represents a user row. PasswordHash is empty for OAuth-only accounts.
type User struct {
	UserID       string `db:"user_id"`
	Name         string `db:"name"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
	AuthProvider string `db:"auth_provider"` // "local" or "google"
	ProviderID   string `db:"provider_id"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`

	// Refresh token state, hash only, never the raw token.
	RefreshTokenHash       sql.NullString `db:"refresh_token_hash"`
	RefreshTokenExpiryTime sql.NullTime   `db:"refresh_token_expiry_time"`
}

// Package models holds the gorm models of authors and settings.
package models

import (
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/rs/zerolog/log"
)

// Author represents a blog author account.
// Accounts are created by the registration flow, the settings area only edits them.
type Author struct {
	// ID is the unique identifier for the author.
	ID uint64 `gorm:"primaryKey"`
	// UserName is the unique login name and the identity stored in the session.
	UserName string `gorm:"uniqueIndex;size:100;not null"`
	// DisplayName is shown on posts and in the admin area.
	DisplayName string `gorm:"size:160;not null"`
	// Email is unique per author.
	Email string `gorm:"uniqueIndex;size:255;not null"`
	// Password is the Argon2id hashed password.
	Password string `gorm:"size:255" json:"-"`
	// IsAdmin grants access to the application settings and the author list.
	IsAdmin bool
	// Created is the timestamp when the author was registered.
	Created time.Time `gorm:"autoCreateTime;index"`
	// UpdatedAt is the timestamp when the author was last updated (managed by GORM).
	UpdatedAt time.Time
}

// HashPassword hashes a plaintext password using the Argon2id algorithm.
func HashPassword(password string) (string, error) {
	return argon2id.CreateHash(password, argon2id.DefaultParams) //nolint:wrapcheck
}

// VerifyPassword verifies a plaintext password against the author's stored hash.
// Returns true if the password matches, false otherwise.
func (a *Author) VerifyPassword(password string) bool {
	match, err := argon2id.ComparePasswordAndHash(password, a.Password)
	if err != nil {
		log.Error().Err(err).Str("user", a.UserName).Msg("failed to verify password")

		return false
	}

	return match
}

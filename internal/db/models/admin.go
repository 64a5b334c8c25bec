// Package models contains database model definitions.
package models

import (
	"github.com/alexedwards/argon2id"
	"github.com/rs/zerolog/log"
)

const (
	// RoleAdmin is the default role for admin accounts.
	RoleAdmin = "ADMIN"
	// RoleSuperAdmin marks the account that may manage other admins.
	RoleSuperAdmin = "SUPER_ADMIN"
)

// Admin represents an administrator account for the admin panel.
// Admins authenticate with email and password and are never deleted via the API.
type Admin struct {
	// ID is the unique identifier for the admin.
	ID uint64 `gorm:"primaryKey" json:"id"`
	// Email is the unique login email.
	Email string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	// Password is the Argon2id hashed password. Never serialized.
	Password string `gorm:"size:255;not null" json:"-"`
	// Name is the display name.
	Name string `gorm:"size:255;not null" json:"name"`
	// Role is a free-form role label (ADMIN or SUPER_ADMIN).
	Role string `gorm:"size:50;not null;default:'ADMIN'" json:"role"`
	// AvatarURL is an optional profile image URL.
	AvatarURL string `gorm:"size:500" json:"avatarUrl"`
	// IsSuperAdmin marks the super admin account.
	IsSuperAdmin bool `json:"isSuperAdmin"`
}

// HashPassword hashes a plaintext password using the Argon2id algorithm.
func HashPassword(password string) string {
	hashedPassword, err := argon2id.CreateHash(password, argon2id.DefaultParams)
	if err != nil {
		log.Fatal().Msgf("failed to hash password: %v", err)
	}

	return hashedPassword
}

// VerifyPassword verifies a plaintext password against the stored hash.
// It uses constant-time comparison to prevent timing attacks.
func (a *Admin) VerifyPassword(password string) bool {
	match, err := argon2id.ComparePasswordAndHash(password, a.Password)
	if err != nil {
		log.Error().Msgf("failed to verify password: %v", err)
		return false
	}

	return match
}

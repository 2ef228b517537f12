// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a back-office account that can sign in to the admin API.
// Storefront customers are not accounts; orders carry their contact info.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"` // Login identifier, also the token subject.
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"` // bcrypt hash, never serialized.
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

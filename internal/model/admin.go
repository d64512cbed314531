package model

import (
	"time"

	"github.com/google/uuid"
)

// Admin is an identity with no attributes beyond membership: presence of a
// row in the admins table grants access to every admin operation.
type Admin struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// LoginRequest represents the admin login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the session token issued on successful login.
type LoginResponse struct {
	Token string `json:"token"`
}

// ContactRequest represents a contact form submission relayed to the shop
// inbox.
type ContactRequest struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	OrderReference string `json:"orderReference,omitempty"`
	Message        string `json:"message"`
}

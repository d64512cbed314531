package model

import (
	"time"

	"github.com/google/uuid"
)

// Category represents a top-level furniture category (sofas, armchairs, ...).
type Category struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Slug      string    `json:"slug" db:"slug"`
	ImageURL  *string   `json:"imageUrl,omitempty" db:"image_url"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// CategoryRequest represents the payload for creating a category.
type CategoryRequest struct {
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	ImageURL string `json:"imageUrl,omitempty"`
}

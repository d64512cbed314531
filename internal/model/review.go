package model

import (
	"time"

	"github.com/google/uuid"
)

// Review moderation statuses. Only approved reviews are shown publicly.
const (
	ReviewPending  = "pending"
	ReviewApproved = "approved"
)

// Review represents a customer review of a product.
type Review struct {
	ID           uuid.UUID `json:"id" db:"id"`
	ProductID    uuid.UUID `json:"productId" db:"product_id"`
	CustomerName string    `json:"customerName" db:"customer_name"`
	Rating       int       `json:"rating" db:"rating"`
	Comment      string    `json:"comment" db:"comment"`
	Status       string    `json:"status" db:"status"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// ReviewRequest represents the payload for submitting a review.
type ReviewRequest struct {
	CustomerName string `json:"customerName"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
}

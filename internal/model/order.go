package model

import (
	"time"

	"github.com/google/uuid"
)

// Order statuses. pending_cod is the initial status of every order; any
// status may be set from any other (no transition state machine).
const (
	StatusPendingCOD = "pending_cod"
	StatusConfirmed  = "confirmed"
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

// OrderStatuses lists every valid order status in lifecycle order.
var OrderStatuses = []string{
	StatusPendingCOD,
	StatusConfirmed,
	StatusProcessing,
	StatusShipped,
	StatusDelivered,
	StatusCancelled,
}

// ValidOrderStatus reports whether s is a member of the fixed status set.
func ValidOrderStatus(s string) bool {
	for _, status := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Order represents a single customer transaction, paid cash on delivery.
type Order struct {
	ID                  uuid.UUID `json:"id" db:"id"`
	CustomerName        string    `json:"customerName" db:"customer_name"`
	CustomerEmail       string    `json:"customerEmail" db:"customer_email"`
	CustomerPhone       string    `json:"customerPhone" db:"customer_phone"`
	ShippingAddress     string    `json:"shippingAddress" db:"shipping_address"`
	SpecialInstructions *string   `json:"specialInstructions,omitempty" db:"special_instructions"`
	TotalAmount         float64   `json:"totalAmount" db:"total_amount"`
	Status              string    `json:"status" db:"status"`
	CreatedAt           time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt           time.Time `json:"updatedAt" db:"updated_at"`
}

// OrderItem is an immutable line item snapshotting the unit price at the
// time of purchase, decoupled from the variant's live price.
type OrderItem struct {
	ID              uuid.UUID `json:"-" db:"id"`
	OrderID         uuid.UUID `json:"-" db:"order_id"`
	VariantID       uuid.UUID `json:"variantId" db:"variant_id"`
	Quantity        int       `json:"quantity" db:"quantity"`
	PriceAtPurchase float64   `json:"priceAtPurchase" db:"price_at_purchase"`
}

// CartItem is one (variant, quantity, unit price) tuple handed over by the
// client-side cart at checkout.
type CartItem struct {
	VariantID uuid.UUID `json:"variantId"`
	Quantity  int       `json:"quantity"`
	UnitPrice float64   `json:"unitPrice"`
}

// CheckoutRequest represents the request payload for placing an order.
type CheckoutRequest struct {
	CustomerName        string     `json:"customerName"`
	CustomerEmail       string     `json:"customerEmail"`
	CustomerPhone       string     `json:"customerPhone"`
	ShippingAddress     string     `json:"shippingAddress"`
	SpecialInstructions string     `json:"specialInstructions,omitempty"`
	Items               []CartItem `json:"items"`
	TotalAmount         float64    `json:"totalAmount"`
}

// OrderConfirmation is returned on successful checkout. Reference is the
// upper-cased 8-character hex prefix of the order key, the customer-facing
// tracking handle.
type OrderConfirmation struct {
	OrderID   uuid.UUID `json:"orderId"`
	Reference string    `json:"reference"`
}

// TrackedItem is a line item enriched with display detail for tracking.
type TrackedItem struct {
	ProductTitle    string  `json:"productTitle"`
	Color           string  `json:"color"`
	Quantity        int     `json:"quantity"`
	PriceAtPurchase float64 `json:"priceAtPurchase"`
}

// TrackedOrder is the customer-facing view of an order resolved from a
// short reference code.
type TrackedOrder struct {
	Reference   string        `json:"reference"`
	Status      string        `json:"status"`
	TotalAmount float64       `json:"totalAmount"`
	CreatedAt   time.Time     `json:"createdAt"`
	Items       []TrackedItem `json:"items"`
}

// AdminOrder is an order with its line items, as listed in the admin console.
type AdminOrder struct {
	Order Order       `json:"order"`
	Items []OrderItem `json:"items"`
}

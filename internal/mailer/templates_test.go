package mailer

import (
	"strings"
	"testing"

	"sofa-shop/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testOrder() *model.Order {
	return &model.Order{
		ID:            uuid.MustParse("a1b2c3d4-1111-2222-3333-444444444444"),
		CustomerName:  "Jane Smith",
		CustomerEmail: "jane@example.com",
		TotalAmount:   499.99,
		Status:        model.StatusPendingCOD,
	}
}

func TestConfirmationEmail(t *testing.T) {
	subject, body := confirmationEmail("UK Sofa Shop", "https://shop.example.com/", testOrder())

	assert.Equal(t, "Action Required: Confirm Your Order - (#A1B2C3D4)", subject)
	// Confirm link carries the full order key, not the short code.
	assert.Contains(t, body, "https://shop.example.com/confirm-order/a1b2c3d4-1111-2222-3333-444444444444")
	assert.Contains(t, body, "A1B2C3D4")
	assert.Contains(t, body, "499.99")
	assert.Contains(t, body, "Jane Smith")
}

func TestStatusEmail_KnownStatuses(t *testing.T) {
	tests := []struct {
		status        string
		expectedTitle string
		trackLink     bool
	}{
		{model.StatusConfirmed, "Order Confirmed", true},
		{model.StatusProcessing, "Order Processing", true},
		{model.StatusShipped, "Order Shipped!", true},
		{model.StatusDelivered, "Order Delivered", false},
		{model.StatusCancelled, "Order Cancelled", false},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			subject, body := statusEmail("UK Sofa Shop", "https://shop.example.com", testOrder(), tt.status)

			assert.Equal(t, tt.expectedTitle+" - (#A1B2C3D4)", subject)
			if tt.trackLink {
				assert.Contains(t, body, "/track-order?code=A1B2C3D4")
			} else {
				assert.NotContains(t, body, "/track-order")
			}
		})
	}
}

func TestStatusEmail_UnknownStatusFallsBack(t *testing.T) {
	subject, body := statusEmail("UK Sofa Shop", "https://shop.example.com", testOrder(), "weird")

	assert.True(t, strings.HasPrefix(subject, "Order Status Updated"))
	assert.Contains(t, body, "There has been an update to your order.")
}

func TestContactEmail(t *testing.T) {
	req := &model.ContactRequest{
		FirstName:      "John",
		LastName:       "Doe",
		Email:          "john@example.com",
		OrderReference: "A1B2C3D4",
		Message:        "Where is my sofa?",
	}

	subject, body := contactEmail("UK Sofa Shop", req)

	assert.Equal(t, "Support Request: John Doe (#A1B2C3D4)", subject)
	assert.Contains(t, body, "john@example.com")
	assert.Contains(t, body, "Where is my sofa?")
}

func TestContactEmail_NoOrderReference(t *testing.T) {
	req := &model.ContactRequest{
		FirstName: "John",
		Email:     "john@example.com",
		Message:   "Hello",
	}

	subject, body := contactEmail("UK Sofa Shop", req)

	assert.Equal(t, "Support Request: John", subject)
	assert.Contains(t, body, "Not provided")
}

func TestContactEmail_EscapesHTML(t *testing.T) {
	req := &model.ContactRequest{
		FirstName: "<script>",
		Email:     "x@example.com",
		Message:   "<img src=x>",
	}

	_, body := contactEmail("UK Sofa Shop", req)

	assert.NotContains(t, body, "<script>")
	assert.NotContains(t, body, "<img src=x>")
}

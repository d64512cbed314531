package service

import (
	"context"

	"sofa-shop/internal/model"

	"github.com/google/uuid"
)

// OrderService defines the order workflow and lookup operations.
type OrderService interface {
	// PlaceOrder validates checkout input and creates an order with its
	// line items in a single transaction.
	PlaceOrder(ctx context.Context, req *model.CheckoutRequest) (*model.OrderConfirmation, error)

	// TrackOrder resolves a short reference code to the customer-facing
	// view of an order.
	TrackOrder(ctx context.Context, code string) (*model.TrackedOrder, error)

	// ConfirmOrder transitions an order to confirmed, unconditionally.
	ConfirmOrder(ctx context.Context, id uuid.UUID) error

	// UpdateStatus sets any member of the fixed status set on an order.
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error

	// List retrieves orders newest first with their items.
	List(ctx context.Context, limit, offset int) ([]model.AdminOrder, error)
}

// CatalogService defines category, product and variant operations.
type CatalogService interface {
	// ListCategories retrieves every category.
	ListCategories(ctx context.Context) ([]model.Category, error)

	// CreateCategory creates a new category.
	CreateCategory(ctx context.Context, req *model.CategoryRequest) (*model.Category, error)

	// DeleteCategory removes a category unless products reference it.
	DeleteCategory(ctx context.Context, id uuid.UUID) error

	// SearchProducts retrieves active products matching the query.
	SearchProducts(ctx context.Context, query model.ProductQuery) ([]model.Product, error)

	// GetProductBySlug retrieves an active product with its variants and
	// approved reviews.
	GetProductBySlug(ctx context.Context, slug string) (*model.ProductDetail, error)

	// CreateProduct creates a product and its variants in one transaction.
	CreateProduct(ctx context.Context, req *model.ProductRequest) (*model.Product, error)

	// UpdateProduct rewrites the editable fields of a product.
	UpdateProduct(ctx context.Context, id uuid.UUID, req *model.ProductRequest) error

	// SetProductActive flips the soft-deactivation marker.
	SetProductActive(ctx context.Context, id uuid.UUID, active bool) error

	// DeleteProduct removes a product that has never been ordered.
	DeleteProduct(ctx context.Context, id uuid.UUID) error

	// UpdateVariant edits a variant's stock and price adjustment.
	UpdateVariant(ctx context.Context, id uuid.UUID, update model.VariantUpdate) error
}

// ReviewService defines review submission and moderation operations.
type ReviewService interface {
	// Submit validates and stores a pending review.
	Submit(ctx context.Context, productID uuid.UUID, req *model.ReviewRequest) (*model.Review, error)

	// ListPending retrieves reviews awaiting moderation.
	ListPending(ctx context.Context) ([]model.Review, error)

	// Approve makes a review publicly visible.
	Approve(ctx context.Context, id uuid.UUID) error

	// Delete removes a review.
	Delete(ctx context.Context, id uuid.UUID) error
}

// AuthService defines admin authentication operations.
type AuthService interface {
	// Login verifies credentials and issues a session token.
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)

	// IsAdmin reports whether the identity is a member of the admins set.
	IsAdmin(ctx context.Context, id uuid.UUID) (bool, error)
}

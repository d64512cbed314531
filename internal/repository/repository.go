package repository

import (
	"context"

	"sofa-shop/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CategoryRepository defines the interface for category data access.
type CategoryRepository interface {
	// GetAll retrieves every category ordered by name.
	GetAll(ctx context.Context) ([]model.Category, error)

	// Create inserts a new category. Returns model.ErrDuplicateSlug when
	// the slug is already taken.
	Create(ctx context.Context, category *model.Category) error

	// Delete removes a category. Returns model.ErrCategoryInUse when
	// products still reference it and model.ErrCategoryNotFound when the
	// row does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProductRepository defines the interface for product and variant data access.
type ProductRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// Search retrieves active products matching the query with pagination.
	Search(ctx context.Context, query model.ProductQuery) ([]model.Product, error)

	// GetByID retrieves a product regardless of its active flag.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error)

	// GetBySlug retrieves an active product by its slug, or nil when absent.
	GetBySlug(ctx context.Context, slug string) (*model.Product, error)

	// GetVariants retrieves all variants of a product ordered by SKU.
	GetVariants(ctx context.Context, productID uuid.UUID) ([]model.Variant, error)

	// Create inserts a new product within the provided transaction.
	// Returns model.ErrDuplicateSlug when the slug is already taken.
	Create(ctx context.Context, tx pgx.Tx, product *model.Product) error

	// CreateVariants inserts multiple variants within the provided transaction.
	CreateVariants(ctx context.Context, tx pgx.Tx, variants []model.Variant) error

	// Update rewrites the editable fields of a product.
	Update(ctx context.Context, product *model.Product) error

	// SetActive flips the soft-deactivation marker.
	SetActive(ctx context.Context, id uuid.UUID, active bool) error

	// Delete removes a product and its variants. Returns
	// model.ErrProductOrdered when any variant appears in an order.
	Delete(ctx context.Context, id uuid.UUID) error

	// UpdateVariant sets a variant's stock quantity and price adjustment
	// without touching its siblings.
	UpdateVariant(ctx context.Context, id uuid.UUID, update model.VariantUpdate) error
}

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// CreateOrder inserts a new order within the provided transaction.
	CreateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error

	// CreateOrderItems inserts multiple order items within the provided transaction.
	CreateOrderItems(ctx context.Context, tx pgx.Tx, items []model.OrderItem) error

	// GetByID retrieves an order by its ID along with its items.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, []model.OrderItem, error)

	// FindInKeyRange retrieves at most one order whose primary key falls
	// within the inclusive [lo, hi] range, or nil when none matches.
	FindInKeyRange(ctx context.Context, lo, hi uuid.UUID) (*model.Order, error)

	// GetTrackedItems retrieves an order's line items joined with variant
	// colour and product title for customer-facing display.
	GetTrackedItems(ctx context.Context, orderID uuid.UUID) ([]model.TrackedItem, error)

	// UpdateStatus persists a new status. Returns model.ErrOrderNotFound
	// when the order does not exist.
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error

	// List retrieves orders newest first with their items.
	List(ctx context.Context, limit, offset int) ([]model.AdminOrder, error)
}

// ReviewRepository defines the interface for review data access.
type ReviewRepository interface {
	// Create inserts a new review.
	Create(ctx context.Context, review *model.Review) error

	// ListApproved retrieves the approved reviews of a product, newest first.
	ListApproved(ctx context.Context, productID uuid.UUID) ([]model.Review, error)

	// ListPending retrieves all reviews awaiting moderation, oldest first.
	ListPending(ctx context.Context) ([]model.Review, error)

	// SetStatus updates a review's moderation status. Returns
	// model.ErrReviewNotFound when the row does not exist.
	SetStatus(ctx context.Context, id uuid.UUID, status string) error

	// Delete removes a review. Returns model.ErrReviewNotFound when the
	// row does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// AdminRepository defines the interface for the admins membership set.
type AdminRepository interface {
	// GetByEmail retrieves an admin identity by email, or nil when absent.
	GetByEmail(ctx context.Context, email string) (*model.Admin, error)

	// Exists reports whether the given identity is a member of the admins set.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

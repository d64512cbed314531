package model

import (
	"time"

	"github.com/google/uuid"
)

// Specifications holds the recognised product specification keys.
// Stored as JSONB; unknown keys from older rows are dropped on scan.
type Specifications struct {
	Style      string `json:"style,omitempty"`
	Dimensions string `json:"dimensions,omitempty"`
	Material   string `json:"material,omitempty"`
}

// Product represents a furniture product in the catalogue.
type Product struct {
	ID             uuid.UUID      `json:"id" db:"id"`
	CategoryID     uuid.UUID      `json:"categoryId" db:"category_id"`
	Title          string         `json:"title" db:"title"`
	Slug           string         `json:"slug" db:"slug"`
	Description    string         `json:"description" db:"description"`
	BasePrice      float64        `json:"basePrice" db:"base_price"`
	IsActive       bool           `json:"isActive" db:"is_active"`
	Specifications Specifications `json:"specifications" db:"specifications"`
	CreatedAt      time.Time      `json:"createdAt" db:"created_at"`
}

// Variant represents a purchasable configuration of a product.
// Stock and price adjustment are editable per variant; variants referenced
// by past orders are never deleted, their stock is zeroed instead.
type Variant struct {
	ID              uuid.UUID `json:"id" db:"id"`
	ProductID       uuid.UUID `json:"productId" db:"product_id"`
	SKU             string    `json:"sku" db:"sku"`
	Color           string    `json:"color" db:"color"`
	StockQuantity   int       `json:"stockQuantity" db:"stock_quantity"`
	PriceAdjustment float64   `json:"priceAdjustment" db:"price_adjustment"`
	ImageURL        *string   `json:"imageUrl,omitempty" db:"image_url"`
}

// Price returns the effective unit price of the variant.
func (v *Variant) Price(basePrice float64) float64 {
	return basePrice + v.PriceAdjustment
}

// ProductRequest represents the payload for creating or updating a product.
type ProductRequest struct {
	CategoryID     uuid.UUID        `json:"categoryId"`
	Title          string           `json:"title"`
	Slug           string           `json:"slug"`
	Description    string           `json:"description"`
	BasePrice      float64          `json:"basePrice"`
	Specifications Specifications   `json:"specifications"`
	Variants       []VariantRequest `json:"variants"`
}

// VariantRequest represents a single variant in a product request.
type VariantRequest struct {
	SKU             string  `json:"sku"`
	Color           string  `json:"color"`
	StockQuantity   int     `json:"stockQuantity"`
	PriceAdjustment float64 `json:"priceAdjustment"`
	ImageURL        string  `json:"imageUrl,omitempty"`
}

// VariantUpdate holds the independently editable fields of a variant.
type VariantUpdate struct {
	StockQuantity   int     `json:"stockQuantity"`
	PriceAdjustment float64 `json:"priceAdjustment"`
}

// ProductDetail is a product together with its variants and approved reviews.
type ProductDetail struct {
	Product  Product   `json:"product"`
	Variants []Variant `json:"variants"`
	Reviews  []Review  `json:"reviews"`
}

// ProductQuery holds search, filter and pagination parameters for the
// public catalogue listing.
type ProductQuery struct {
	Search       string
	CategorySlug string
	Color        string
	MinPrice     float64
	MaxPrice     float64
	Sort         string // "newest", "price_asc" or "price_desc"
	Limit        int
	Offset       int
}

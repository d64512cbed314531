package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"sofa-shop/internal/model"
	"sofa-shop/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// catalogService implements CatalogService.
type catalogService struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	reviewRepo   repository.ReviewRepository
	logger       zerolog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(
	categoryRepo repository.CategoryRepository,
	productRepo repository.ProductRepository,
	reviewRepo repository.ReviewRepository,
	logger zerolog.Logger,
) CatalogService {
	return &catalogService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		reviewRepo:   reviewRepo,
		logger:       logger.With().Str("service", "catalog").Logger(),
	}
}

// ListCategories retrieves every category.
func (s *catalogService) ListCategories(ctx context.Context) ([]model.Category, error) {
	categories, err := s.categoryRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list categories")
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// CreateCategory creates a new category from the request.
func (s *catalogService) CreateCategory(ctx context.Context, req *model.CategoryRequest) (*model.Category, error) {
	name := strings.TrimSpace(req.Name)
	slug := strings.TrimSpace(req.Slug)
	if name == "" || slug == "" {
		return nil, model.ErrMissingFields
	}

	category := &model.Category{
		ID:        uuid.New(),
		Name:      name,
		Slug:      slug,
		CreatedAt: time.Now(),
	}
	if imageURL := strings.TrimSpace(req.ImageURL); imageURL != "" {
		category.ImageURL = &imageURL
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		s.logger.Error().Err(err).Str("slug", slug).Msg("failed to create category")
		return nil, err
	}

	s.logger.Info().Str("category_id", category.ID.String()).Str("slug", slug).Msg("category created")
	return category, nil
}

// DeleteCategory removes a category unless products still reference it.
func (s *catalogService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		s.logger.Warn().Err(err).Str("category_id", id.String()).Msg("failed to delete category")
		return err
	}

	s.logger.Info().Str("category_id", id.String()).Msg("category deleted")
	return nil
}

// SearchProducts retrieves active products matching the query.
func (s *catalogService) SearchProducts(ctx context.Context, query model.ProductQuery) ([]model.Product, error) {
	if query.Limit <= 0 {
		query.Limit = 24
	}
	if query.Limit > 100 {
		query.Limit = 100
	}
	if query.Offset < 0 {
		query.Offset = 0
	}

	products, err := s.productRepo.Search(ctx, query)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to search products")
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	return products, nil
}

// GetProductBySlug retrieves an active product with its variants and
// approved reviews.
func (s *catalogService) GetProductBySlug(ctx context.Context, slug string) (*model.ProductDetail, error) {
	product, err := s.productRepo.GetBySlug(ctx, slug)
	if err != nil {
		s.logger.Error().Err(err).Str("slug", slug).Msg("failed to get product")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if product == nil {
		return nil, model.ErrProductNotFound
	}

	variants, err := s.productRepo.GetVariants(ctx, product.ID)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", product.ID.String()).Msg("failed to get variants")
		return nil, fmt.Errorf("failed to get variants: %w", err)
	}

	reviews, err := s.reviewRepo.ListApproved(ctx, product.ID)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", product.ID.String()).Msg("failed to get reviews")
		return nil, fmt.Errorf("failed to get reviews: %w", err)
	}

	return &model.ProductDetail{
		Product:  *product,
		Variants: variants,
		Reviews:  reviews,
	}, nil
}

// CreateProduct creates a product and its variants in one transaction.
func (s *catalogService) CreateProduct(ctx context.Context, req *model.ProductRequest) (*model.Product, error) {
	if err := validateProduct(req); err != nil {
		return nil, err
	}

	tx, err := s.productRepo.BeginTx(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	product := &model.Product{
		ID:             uuid.New(),
		CategoryID:     req.CategoryID,
		Title:          strings.TrimSpace(req.Title),
		Slug:           strings.TrimSpace(req.Slug),
		Description:    strings.TrimSpace(req.Description),
		BasePrice:      req.BasePrice,
		IsActive:       true,
		Specifications: req.Specifications,
		CreatedAt:      time.Now(),
	}

	if err = s.productRepo.Create(ctx, tx, product); err != nil {
		s.logger.Error().Err(err).Str("slug", product.Slug).Msg("failed to create product")
		return nil, err
	}

	variants := make([]model.Variant, len(req.Variants))
	for i, v := range req.Variants {
		variants[i] = model.Variant{
			ID:              uuid.New(),
			ProductID:       product.ID,
			SKU:             strings.TrimSpace(v.SKU),
			Color:           strings.TrimSpace(v.Color),
			StockQuantity:   v.StockQuantity,
			PriceAdjustment: v.PriceAdjustment,
		}
		if imageURL := strings.TrimSpace(v.ImageURL); imageURL != "" {
			variants[i].ImageURL = &imageURL
		}
	}

	if err = s.productRepo.CreateVariants(ctx, tx, variants); err != nil {
		s.logger.Error().
			Err(err).
			Str("product_id", product.ID.String()).
			Int("variant_count", len(variants)).
			Msg("failed to create variants")
		return nil, fmt.Errorf("failed to create variants: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Str("product_id", product.ID.String()).Msg("failed to commit transaction")
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info().
		Str("product_id", product.ID.String()).
		Str("slug", product.Slug).
		Int("variant_count", len(variants)).
		Msg("product created")

	return product, nil
}

// UpdateProduct rewrites the editable fields of a product. Variants are
// edited individually through UpdateVariant and are untouched here.
func (s *catalogService) UpdateProduct(ctx context.Context, id uuid.UUID, req *model.ProductRequest) error {
	if err := validateProduct(req); err != nil {
		return err
	}

	existing, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id.String()).Msg("failed to get product")
		return fmt.Errorf("failed to get product: %w", err)
	}
	if existing == nil {
		return model.ErrProductNotFound
	}

	existing.CategoryID = req.CategoryID
	existing.Title = strings.TrimSpace(req.Title)
	existing.Slug = strings.TrimSpace(req.Slug)
	existing.Description = strings.TrimSpace(req.Description)
	existing.BasePrice = req.BasePrice
	existing.Specifications = req.Specifications

	if err := s.productRepo.Update(ctx, existing); err != nil {
		s.logger.Error().Err(err).Str("product_id", id.String()).Msg("failed to update product")
		return err
	}

	s.logger.Info().Str("product_id", id.String()).Msg("product updated")
	return nil
}

// SetProductActive flips the soft-deactivation marker. Deactivated
// products vanish from the public catalogue but their orders keep working.
func (s *catalogService) SetProductActive(ctx context.Context, id uuid.UUID, active bool) error {
	if err := s.productRepo.SetActive(ctx, id, active); err != nil {
		s.logger.Error().Err(err).Str("product_id", id.String()).Msg("failed to set product active flag")
		return err
	}

	s.logger.Info().Str("product_id", id.String()).Bool("active", active).Msg("product active flag set")
	return nil
}

// DeleteProduct removes a product that has never been ordered. Products
// with order history are rejected; they must be deactivated instead.
func (s *catalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		s.logger.Warn().Err(err).Str("product_id", id.String()).Msg("failed to delete product")
		return err
	}

	s.logger.Info().Str("product_id", id.String()).Msg("product deleted")
	return nil
}

// UpdateVariant edits a variant's stock and price adjustment.
func (s *catalogService) UpdateVariant(ctx context.Context, id uuid.UUID, update model.VariantUpdate) error {
	if update.StockQuantity < 0 {
		return model.ErrInvalidQuantity
	}

	if err := s.productRepo.UpdateVariant(ctx, id, update); err != nil {
		s.logger.Error().Err(err).Str("variant_id", id.String()).Msg("failed to update variant")
		return err
	}

	s.logger.Info().Str("variant_id", id.String()).Msg("variant updated")
	return nil
}

// validateProduct checks the shared create/update product rules.
func validateProduct(req *model.ProductRequest) error {
	if req == nil {
		return model.ErrMissingFields
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Slug) == "" {
		return model.ErrMissingFields
	}
	if req.CategoryID == uuid.Nil {
		return model.ErrMissingFields
	}
	if req.BasePrice < 0 {
		return model.ErrMissingFields
	}
	for _, v := range req.Variants {
		if strings.TrimSpace(v.SKU) == "" || strings.TrimSpace(v.Color) == "" {
			return model.ErrMissingFields
		}
		if v.StockQuantity < 0 {
			return model.ErrInvalidQuantity
		}
	}
	return nil
}

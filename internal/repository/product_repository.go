package repository

import (
	"context"
	"fmt"
	"strings"

	"sofa-shop/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const productColumns = `id, category_id, title, slug, description, base_price, is_active, specifications, created_at`

// productRepository implements ProductRepository using PostgreSQL.
type productRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

// BeginTx starts a new database transaction.
func (r *productRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

// Search retrieves active products matching the query with pagination.
// Filters compose with AND; absent filters are skipped.
func (r *productRepository) Search(ctx context.Context, q model.ProductQuery) ([]model.Product, error) {
	var (
		where = []string{"p.is_active"}
		args  []any
	)

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if q.Search != "" {
		p := arg("%" + q.Search + "%")
		where = append(where, fmt.Sprintf("(p.title ILIKE %s OR p.description ILIKE %s)", p, p))
	}
	if q.CategorySlug != "" {
		where = append(where, fmt.Sprintf(
			"p.category_id = (SELECT id FROM categories WHERE slug = %s)", arg(q.CategorySlug)))
	}
	if q.Color != "" {
		where = append(where, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM product_variants v WHERE v.product_id = p.id AND v.color ILIKE %s)",
			arg(q.Color)))
	}
	if q.MinPrice > 0 {
		where = append(where, fmt.Sprintf("p.base_price >= %s", arg(q.MinPrice)))
	}
	if q.MaxPrice > 0 {
		where = append(where, fmt.Sprintf("p.base_price <= %s", arg(q.MaxPrice)))
	}

	var orderBy string
	switch q.Sort {
	case "price_asc":
		orderBy = "p.base_price ASC"
	case "price_desc":
		orderBy = "p.base_price DESC"
	default:
		orderBy = "p.created_at DESC"
	}

	query := fmt.Sprintf(`
		SELECT p.id, p.category_id, p.title, p.slug, p.description, p.base_price, p.is_active, p.specifications, p.created_at
		FROM products p
		WHERE %s
		ORDER BY %s
		LIMIT %s OFFSET %s
	`, strings.Join(where, " AND "), orderBy, arg(q.Limit), arg(q.Offset))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error().Err(err).Str("search", q.Search).Msg("failed to search products")
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	defer rows.Close()

	products, err := scanProducts(rows)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to scan product rows")
		return nil, err
	}

	return products, nil
}

// GetByID retrieves a product regardless of its active flag.
func (r *productRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE id = $1`, productColumns)

	p, err := scanProduct(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("product_id", id.String()).Msg("product not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("product_id", id.String()).Msg("failed to query product")
		return nil, fmt.Errorf("failed to query product: %w", err)
	}

	return p, nil
}

// GetBySlug retrieves an active product by its slug. Inactive products are
// treated as absent so stale storefront links degrade to not-found.
func (r *productRepository) GetBySlug(ctx context.Context, slug string) (*model.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE slug = $1 AND is_active`, productColumns)

	p, err := scanProduct(r.pool.QueryRow(ctx, query, slug))
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("slug", slug).Msg("product not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("slug", slug).Msg("failed to query product by slug")
		return nil, fmt.Errorf("failed to query product by slug: %w", err)
	}

	return p, nil
}

// GetVariants retrieves all variants of a product ordered by SKU.
func (r *productRepository) GetVariants(ctx context.Context, productID uuid.UUID) ([]model.Variant, error) {
	query := `
		SELECT id, product_id, sku, color, stock_quantity, price_adjustment, image_url
		FROM product_variants
		WHERE product_id = $1
		ORDER BY sku
	`

	rows, err := r.pool.Query(ctx, query, productID)
	if err != nil {
		r.logger.Error().Err(err).Str("product_id", productID.String()).Msg("failed to query variants")
		return nil, fmt.Errorf("failed to query variants: %w", err)
	}
	defer rows.Close()

	var variants []model.Variant
	for rows.Next() {
		var v model.Variant
		err := rows.Scan(&v.ID, &v.ProductID, &v.SKU, &v.Color, &v.StockQuantity, &v.PriceAdjustment, &v.ImageURL)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan variant row")
			return nil, fmt.Errorf("failed to scan variant: %w", err)
		}
		variants = append(variants, v)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating variant rows")
		return nil, fmt.Errorf("error iterating variants: %w", err)
	}

	return variants, nil
}

// Create inserts a new product within the provided transaction.
func (r *productRepository) Create(ctx context.Context, tx pgx.Tx, product *model.Product) error {
	query := `
		INSERT INTO products (id, category_id, title, slug, description, base_price, is_active, specifications, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := tx.Exec(ctx, query,
		product.ID, product.CategoryID, product.Title, product.Slug, product.Description,
		product.BasePrice, product.IsActive, product.Specifications, product.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			r.logger.Warn().Str("slug", product.Slug).Msg("duplicate product slug")
			return model.ErrDuplicateSlug
		}
		r.logger.Error().Err(err).Str("slug", product.Slug).Msg("failed to create product")
		return fmt.Errorf("failed to create product: %w", err)
	}

	r.logger.Debug().Str("product_id", product.ID.String()).Msg("product created")
	return nil
}

// CreateVariants inserts multiple variants within the provided transaction.
func (r *productRepository) CreateVariants(ctx context.Context, tx pgx.Tx, variants []model.Variant) error {
	if len(variants) == 0 {
		return nil
	}

	query := `
		INSERT INTO product_variants (id, product_id, sku, color, stock_quantity, price_adjustment, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	batch := &pgx.Batch{}
	for _, v := range variants {
		batch.Queue(query, v.ID, v.ProductID, v.SKU, v.Color, v.StockQuantity, v.PriceAdjustment, v.ImageURL)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	for i := 0; i < len(variants); i++ {
		if _, err := results.Exec(); err != nil {
			r.logger.Error().
				Err(err).
				Str("product_id", variants[i].ProductID.String()).
				Str("sku", variants[i].SKU).
				Msg("failed to create variant")
			return fmt.Errorf("failed to create variant: %w", err)
		}
	}

	r.logger.Debug().Int("count", len(variants)).Msg("variants created")
	return nil
}

// Update rewrites the editable fields of a product.
func (r *productRepository) Update(ctx context.Context, product *model.Product) error {
	query := `
		UPDATE products
		SET category_id = $2, title = $3, slug = $4, description = $5, base_price = $6, specifications = $7
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		product.ID, product.CategoryID, product.Title, product.Slug,
		product.Description, product.BasePrice, product.Specifications)
	if err != nil {
		if isUniqueViolation(err) {
			return model.ErrDuplicateSlug
		}
		r.logger.Error().Err(err).Str("product_id", product.ID.String()).Msg("failed to update product")
		return fmt.Errorf("failed to update product: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrProductNotFound
	}

	return nil
}

// SetActive flips the soft-deactivation marker, preserving the row for
// order history.
func (r *productRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	tag, err := r.pool.Exec(ctx, `UPDATE products SET is_active = $2 WHERE id = $1`, id, active)
	if err != nil {
		r.logger.Error().Err(err).Str("product_id", id.String()).Msg("failed to set product active flag")
		return fmt.Errorf("failed to set product active flag: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrProductNotFound
	}

	r.logger.Debug().Str("product_id", id.String()).Bool("active", active).Msg("product active flag set")
	return nil
}

// Delete removes a product and its variants. Variants referenced by order
// items make the whole delete fail; deactivation is the supported path then.
func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM product_variants WHERE product_id = $1`, id); err != nil {
		if isForeignKeyViolation(err) {
			r.logger.Warn().Str("product_id", id.String()).Msg("product variants referenced by orders")
			return model.ErrProductOrdered
		}
		r.logger.Error().Err(err).Str("product_id", id.String()).Msg("failed to delete variants")
		return fmt.Errorf("failed to delete variants: %w", err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Str("product_id", id.String()).Msg("failed to delete product")
		return fmt.Errorf("failed to delete product: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrProductNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.Error().Err(err).Str("product_id", id.String()).Msg("failed to commit product delete")
		return fmt.Errorf("failed to commit product delete: %w", err)
	}

	return nil
}

// UpdateVariant sets a variant's stock quantity and price adjustment.
func (r *productRepository) UpdateVariant(ctx context.Context, id uuid.UUID, update model.VariantUpdate) error {
	query := `
		UPDATE product_variants
		SET stock_quantity = $2, price_adjustment = $3
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query, id, update.StockQuantity, update.PriceAdjustment)
	if err != nil {
		r.logger.Error().Err(err).Str("variant_id", id.String()).Msg("failed to update variant")
		return fmt.Errorf("failed to update variant: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrVariantNotFound
	}

	return nil
}

// scanProduct scans a single product row.
func scanProduct(row pgx.Row) (*model.Product, error) {
	var p model.Product
	err := row.Scan(&p.ID, &p.CategoryID, &p.Title, &p.Slug, &p.Description,
		&p.BasePrice, &p.IsActive, &p.Specifications, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// scanProducts drains a product result set.
func scanProducts(rows pgx.Rows) ([]model.Product, error) {
	var products []model.Product
	for rows.Next() {
		var p model.Product
		err := rows.Scan(&p.ID, &p.CategoryID, &p.Title, &p.Slug, &p.Description,
			&p.BasePrice, &p.IsActive, &p.Specifications, &p.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}
	return products, nil
}

package repository

import (
	"context"
	"fmt"

	"sofa-shop/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// reviewRepository implements ReviewRepository using PostgreSQL.
type reviewRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewReviewRepository creates a new PostgreSQL-backed review repository.
func NewReviewRepository(pool *pgxpool.Pool, logger zerolog.Logger) ReviewRepository {
	return &reviewRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "review").Logger(),
	}
}

// Create inserts a new review.
func (r *reviewRepository) Create(ctx context.Context, review *model.Review) error {
	query := `
		INSERT INTO reviews (id, product_id, customer_name, rating, comment, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		review.ID, review.ProductID, review.CustomerName,
		review.Rating, review.Comment, review.Status, review.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			r.logger.Warn().Str("product_id", review.ProductID.String()).Msg("review for unknown product")
			return model.ErrProductNotFound
		}
		r.logger.Error().Err(err).Str("product_id", review.ProductID.String()).Msg("failed to create review")
		return fmt.Errorf("failed to create review: %w", err)
	}

	r.logger.Debug().Str("review_id", review.ID.String()).Msg("review created")
	return nil
}

// ListApproved retrieves the approved reviews of a product, newest first.
func (r *reviewRepository) ListApproved(ctx context.Context, productID uuid.UUID) ([]model.Review, error) {
	query := `
		SELECT id, product_id, customer_name, rating, comment, status, created_at
		FROM reviews
		WHERE product_id = $1 AND status = $2
		ORDER BY created_at DESC
	`

	return r.list(ctx, query, productID, model.ReviewApproved)
}

// ListPending retrieves all reviews awaiting moderation, oldest first.
func (r *reviewRepository) ListPending(ctx context.Context) ([]model.Review, error) {
	query := `
		SELECT id, product_id, customer_name, rating, comment, status, created_at
		FROM reviews
		WHERE status = $1
		ORDER BY created_at
	`

	return r.list(ctx, query, model.ReviewPending)
}

// SetStatus updates a review's moderation status.
func (r *reviewRepository) SetStatus(ctx context.Context, id uuid.UUID, status string) error {
	tag, err := r.pool.Exec(ctx, `UPDATE reviews SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		r.logger.Error().Err(err).Str("review_id", id.String()).Msg("failed to update review status")
		return fmt.Errorf("failed to update review status: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrReviewNotFound
	}

	return nil
}

// Delete removes a review.
func (r *reviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Str("review_id", id.String()).Msg("failed to delete review")
		return fmt.Errorf("failed to delete review: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrReviewNotFound
	}

	return nil
}

// list runs a review query and drains the result set.
func (r *reviewRepository) list(ctx context.Context, query string, args ...any) ([]model.Review, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query reviews")
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}
	defer rows.Close()

	var reviews []model.Review
	for rows.Next() {
		var rev model.Review
		err := rows.Scan(&rev.ID, &rev.ProductID, &rev.CustomerName, &rev.Rating, &rev.Comment, &rev.Status, &rev.CreatedAt)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan review row")
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, rev)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating review rows")
		return nil, fmt.Errorf("error iterating reviews: %w", err)
	}

	return reviews, nil
}

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"sofa-shop/internal/metrics"
	"sofa-shop/internal/model"
	"sofa-shop/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// reviewService implements ReviewService.
type reviewService struct {
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewReviewService creates a new review service.
func NewReviewService(reviewRepo repository.ReviewRepository, productRepo repository.ProductRepository, logger zerolog.Logger) ReviewService {
	return &reviewService{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
		logger:      logger.With().Str("service", "review").Logger(),
	}
}

// Submit validates and stores a review in pending status. Reviews never
// appear publicly until approved by an admin.
func (s *reviewService) Submit(ctx context.Context, productID uuid.UUID, req *model.ReviewRequest) (*model.Review, error) {
	if err := validateReview(req); err != nil {
		s.logger.Warn().Err(err).Str("product_id", productID.String()).Msg("review validation failed")
		return nil, err
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", productID.String()).Msg("failed to get product")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if product == nil {
		return nil, model.ErrProductNotFound
	}

	review := &model.Review{
		ID:           uuid.New(),
		ProductID:    productID,
		CustomerName: strings.TrimSpace(req.CustomerName),
		Rating:       req.Rating,
		Comment:      strings.TrimSpace(req.Comment),
		Status:       model.ReviewPending,
		CreatedAt:    time.Now(),
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		s.logger.Error().Err(err).Str("product_id", productID.String()).Msg("failed to create review")
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	metrics.ReviewsSubmitted.Inc()

	s.logger.Info().
		Str("review_id", review.ID.String()).
		Str("product_id", productID.String()).
		Int("rating", review.Rating).
		Msg("review submitted")

	return review, nil
}

// ListPending retrieves reviews awaiting moderation, oldest first.
func (s *reviewService) ListPending(ctx context.Context) ([]model.Review, error) {
	reviews, err := s.reviewRepo.ListPending(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list pending reviews")
		return nil, fmt.Errorf("failed to list pending reviews: %w", err)
	}
	return reviews, nil
}

// Approve makes a review publicly visible.
func (s *reviewService) Approve(ctx context.Context, id uuid.UUID) error {
	if err := s.reviewRepo.SetStatus(ctx, id, model.ReviewApproved); err != nil {
		s.logger.Warn().Err(err).Str("review_id", id.String()).Msg("failed to approve review")
		return err
	}

	s.logger.Info().Str("review_id", id.String()).Msg("review approved")
	return nil
}

// Delete removes a review, pending or approved.
func (s *reviewService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.reviewRepo.Delete(ctx, id); err != nil {
		s.logger.Warn().Err(err).Str("review_id", id.String()).Msg("failed to delete review")
		return err
	}

	s.logger.Info().Str("review_id", id.String()).Msg("review deleted")
	return nil
}

// validateReview applies the review rules in order and returns the first
// violation.
func validateReview(req *model.ReviewRequest) error {
	if req == nil {
		return model.ErrMissingFields
	}
	if len(strings.TrimSpace(req.CustomerName)) < 2 {
		return model.ErrReviewNameTooShort
	}
	if req.Rating < 1 {
		return model.ErrRatingTooLow
	}
	if req.Rating > 5 {
		return model.ErrRatingTooHigh
	}
	if len(strings.TrimSpace(req.Comment)) < 5 {
		return model.ErrCommentTooShort
	}
	return nil
}

package service

import (
	"context"
	"testing"

	"sofa-shop/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReviewService_Submit_Success(t *testing.T) {
	ctx := context.Background()
	productID := uuid.New()
	product := &model.Product{ID: productID, Title: "Oslo 3-Seater Sofa", IsActive: true}

	mockReviewRepo := new(MockReviewRepository)
	mockProductRepo := new(MockProductRepository)

	service := NewReviewService(mockReviewRepo, mockProductRepo, zerolog.Nop())

	mockProductRepo.On("GetByID", ctx, productID).Return(product, nil)
	mockReviewRepo.On("Create", ctx, mock.AnythingOfType("*model.Review")).Return(nil)

	review, err := service.Submit(ctx, productID, &model.ReviewRequest{
		CustomerName: "Grace",
		Rating:       5,
		Comment:      "Very comfortable, arrived on time.",
	})

	require.NoError(t, err)
	require.NotNil(t, review)
	assert.Equal(t, model.ReviewPending, review.Status)
	assert.Equal(t, productID, review.ProductID)
	mockReviewRepo.AssertExpectations(t)
	mockProductRepo.AssertExpectations(t)
}

func TestReviewService_Submit_ValidationErrors(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		req     *model.ReviewRequest
		wantErr *model.DomainError
	}{
		{
			name:    "name too short",
			req:     &model.ReviewRequest{CustomerName: "G", Rating: 4, Comment: "Lovely sofa."},
			wantErr: model.ErrReviewNameTooShort,
		},
		{
			name:    "rating too low",
			req:     &model.ReviewRequest{CustomerName: "Grace", Rating: 0, Comment: "Lovely sofa."},
			wantErr: model.ErrRatingTooLow,
		},
		{
			name:    "rating too high",
			req:     &model.ReviewRequest{CustomerName: "Grace", Rating: 6, Comment: "Lovely sofa."},
			wantErr: model.ErrRatingTooHigh,
		},
		{
			name:    "comment too short",
			req:     &model.ReviewRequest{CustomerName: "Grace", Rating: 4, Comment: "Ok"},
			wantErr: model.ErrCommentTooShort,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReviewRepo := new(MockReviewRepository)
			mockProductRepo := new(MockProductRepository)

			service := NewReviewService(mockReviewRepo, mockProductRepo, zerolog.Nop())

			review, err := service.Submit(ctx, uuid.New(), tt.req)

			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err)
			assert.Nil(t, review)
			mockReviewRepo.AssertNotCalled(t, "Create")
			mockProductRepo.AssertNotCalled(t, "GetByID")
		})
	}
}

func TestReviewService_Submit_ProductNotFound(t *testing.T) {
	ctx := context.Background()
	productID := uuid.New()

	mockReviewRepo := new(MockReviewRepository)
	mockProductRepo := new(MockProductRepository)

	service := NewReviewService(mockReviewRepo, mockProductRepo, zerolog.Nop())

	mockProductRepo.On("GetByID", ctx, productID).Return(nil, nil)

	review, err := service.Submit(ctx, productID, &model.ReviewRequest{
		CustomerName: "Grace",
		Rating:       4,
		Comment:      "Lovely sofa.",
	})

	require.Error(t, err)
	assert.Equal(t, model.ErrProductNotFound, err)
	assert.Nil(t, review)
	mockReviewRepo.AssertNotCalled(t, "Create")
}

func TestReviewService_Approve(t *testing.T) {
	ctx := context.Background()
	reviewID := uuid.New()

	mockReviewRepo := new(MockReviewRepository)
	service := NewReviewService(mockReviewRepo, new(MockProductRepository), zerolog.Nop())

	mockReviewRepo.On("SetStatus", ctx, reviewID, model.ReviewApproved).Return(nil)

	require.NoError(t, service.Approve(ctx, reviewID))
	mockReviewRepo.AssertExpectations(t)
}

func TestReviewService_Approve_NotFound(t *testing.T) {
	ctx := context.Background()
	reviewID := uuid.New()

	mockReviewRepo := new(MockReviewRepository)
	service := NewReviewService(mockReviewRepo, new(MockProductRepository), zerolog.Nop())

	mockReviewRepo.On("SetStatus", ctx, reviewID, model.ReviewApproved).Return(model.ErrReviewNotFound)

	err := service.Approve(ctx, reviewID)

	require.Error(t, err)
	assert.Equal(t, model.ErrReviewNotFound, err)
}

func TestReviewService_Delete(t *testing.T) {
	ctx := context.Background()
	reviewID := uuid.New()

	mockReviewRepo := new(MockReviewRepository)
	service := NewReviewService(mockReviewRepo, new(MockProductRepository), zerolog.Nop())

	mockReviewRepo.On("Delete", ctx, reviewID).Return(nil)

	require.NoError(t, service.Delete(ctx, reviewID))
	mockReviewRepo.AssertExpectations(t)
}

func TestReviewService_ListPending(t *testing.T) {
	ctx := context.Background()

	pending := []model.Review{
		{ID: uuid.New(), Status: model.ReviewPending, CustomerName: "Grace", Rating: 5, Comment: "Great."},
	}

	mockReviewRepo := new(MockReviewRepository)
	service := NewReviewService(mockReviewRepo, new(MockProductRepository), zerolog.Nop())

	mockReviewRepo.On("ListPending", ctx).Return(pending, nil)

	got, err := service.ListPending(ctx)

	require.NoError(t, err)
	assert.Len(t, got, 1)
	mockReviewRepo.AssertExpectations(t)
}

package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"metroshelter/internal/domain/entity"
	domainerrors "metroshelter/internal/domain/errors"
	"metroshelter/internal/domain/repository"
	mockRepo "metroshelter/internal/mocks/repository"
	"metroshelter/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// reviewServiceFixtures holds all test dependencies for review service tests.
type reviewServiceFixtures struct {
	service      usecase.ReviewUsecase
	reviewRepo   *mockRepo.MockReviewRepository
	propertyRepo *mockRepo.MockPropertyRepository
}

func createTestReviewService(t *testing.T) reviewServiceFixtures {
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	propertyRepo := mockRepo.NewMockPropertyRepository(t)
	txManager := &mockRepo.StubTransactionManager{
		Factory: &mockRepo.StubRepositoryFactory{
			ReviewRepo:   reviewRepo,
			PropertyRepo: propertyRepo,
		},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewReviewService(txManager, logger)

	return reviewServiceFixtures{
		service:      service,
		reviewRepo:   reviewRepo,
		propertyRepo: propertyRepo,
	}
}

func TestReviewService_AddReview_Success(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	propertyID := uuid.New()

	fx.propertyRepo.On("FindByID", ctx, propertyID).
		Return(&entity.Property{ID: propertyID}, nil)
	fx.reviewRepo.On("Create", ctx, mock.AnythingOfType("*entity.Review")).Return(nil)

	review, err := fx.service.AddReview(ctx, &usecase.AddReviewInput{
		PropertyID:  propertyID,
		Name:        "Jordan",
		Email:       "jordan@example.com",
		Description: "Spacious and well lit.",
	})

	require.NoError(t, err)
	assert.Equal(t, propertyID, review.PropertyID)
	assert.Equal(t, "Jordan", review.Name)
}

func TestReviewService_AddReview_PropertyNotFound(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	propertyID := uuid.New()

	fx.propertyRepo.On("FindByID", ctx, propertyID).
		Return(nil, repository.ErrPropertyNotFound)

	_, err := fx.service.AddReview(ctx, &usecase.AddReviewInput{
		PropertyID:  propertyID,
		Name:        "Jordan",
		Email:       "jordan@example.com",
		Description: "Spacious and well lit.",
	})

	assert.ErrorIs(t, err, domainerrors.ErrPropertyNotFound)
	fx.reviewRepo.AssertNotCalled(t, "Create", ctx, mock.Anything)
}

func TestReviewService_DeleteReview_Success(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	reviewID := uuid.New()

	fx.reviewRepo.On("Delete", ctx, reviewID).Return(nil)

	err := fx.service.DeleteReview(ctx, reviewID)

	require.NoError(t, err)
}

func TestReviewService_DeleteReview_NotFound(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	reviewID := uuid.New()

	fx.reviewRepo.On("Delete", ctx, reviewID).Return(repository.ErrReviewNotFound)

	err := fx.service.DeleteReview(ctx, reviewID)

	assert.ErrorIs(t, err, domainerrors.ErrReviewNotFound)
}

func TestReviewService_ListReviews(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	expected := []*entity.Review{
		{ID: uuid.New(), Name: "Jordan"},
		{ID: uuid.New(), Name: "Casey"},
	}

	fx.reviewRepo.On("FindAll", ctx).Return(expected, nil)

	reviews, err := fx.service.ListReviews(ctx)

	require.NoError(t, err)
	assert.Equal(t, expected, reviews)
}

func TestReviewService_ListReviewsForProperty_Success(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	propertyID := uuid.New()
	expected := []*entity.Review{{ID: uuid.New(), PropertyID: propertyID}}

	fx.propertyRepo.On("FindByID", ctx, propertyID).
		Return(&entity.Property{ID: propertyID}, nil)
	fx.reviewRepo.On("FindByProperty", ctx, propertyID).Return(expected, nil)

	reviews, err := fx.service.ListReviewsForProperty(ctx, propertyID)

	require.NoError(t, err)
	assert.Equal(t, expected, reviews)
}

func TestReviewService_ListReviewsForProperty_PropertyNotFound(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	propertyID := uuid.New()

	fx.propertyRepo.On("FindByID", ctx, propertyID).
		Return(nil, repository.ErrPropertyNotFound)

	_, err := fx.service.ListReviewsForProperty(ctx, propertyID)

	assert.ErrorIs(t, err, domainerrors.ErrPropertyNotFound)
}

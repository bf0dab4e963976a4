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

// wishlistServiceFixtures holds all test dependencies for wishlist service tests.
type wishlistServiceFixtures struct {
	service      usecase.WishlistUsecase
	wishlistRepo *mockRepo.MockWishlistRepository
	propertyRepo *mockRepo.MockPropertyRepository
}

func createTestWishlistService(t *testing.T) wishlistServiceFixtures {
	wishlistRepo := mockRepo.NewMockWishlistRepository(t)
	propertyRepo := mockRepo.NewMockPropertyRepository(t)
	txManager := &mockRepo.StubTransactionManager{
		Factory: &mockRepo.StubRepositoryFactory{
			WishlistRepo: wishlistRepo,
			PropertyRepo: propertyRepo,
		},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewWishlistService(txManager, logger)

	return wishlistServiceFixtures{
		service:      service,
		wishlistRepo: wishlistRepo,
		propertyRepo: propertyRepo,
	}
}

func TestWishlistService_SaveEntry_Success(t *testing.T) {
	fx := createTestWishlistService(t)

	ctx := context.Background()
	propertyID := uuid.New()

	fx.propertyRepo.On("FindByID", ctx, propertyID).
		Return(&entity.Property{ID: propertyID}, nil)
	fx.wishlistRepo.On("Create", ctx, mock.AnythingOfType("*entity.WishlistEntry")).Return(nil)

	entry, err := fx.service.SaveEntry(ctx, &usecase.SaveWishlistInput{
		PropertyID:  propertyID,
		AuthorEmail: "user@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, propertyID, entry.PropertyID)
	assert.Equal(t, "user@example.com", entry.AuthorEmail)
}

func TestWishlistService_SaveEntry_DuplicateReturnsExisting(t *testing.T) {
	fx := createTestWishlistService(t)

	ctx := context.Background()
	propertyID := uuid.New()
	existing := &entity.WishlistEntry{
		ID:          uuid.New(),
		PropertyID:  propertyID,
		AuthorEmail: "user@example.com",
	}

	fx.propertyRepo.On("FindByID", ctx, propertyID).
		Return(&entity.Property{ID: propertyID}, nil)
	fx.wishlistRepo.On("Create", ctx, mock.AnythingOfType("*entity.WishlistEntry")).
		Return(repository.ErrDuplicateWishlistEntry)
	fx.wishlistRepo.On("FindByAuthor", ctx, "user@example.com").
		Return([]*entity.WishlistEntry{existing}, nil)

	entry, err := fx.service.SaveEntry(ctx, &usecase.SaveWishlistInput{
		PropertyID:  propertyID,
		AuthorEmail: "user@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, existing.ID, entry.ID)
}

func TestWishlistService_SaveEntry_PropertyNotFound(t *testing.T) {
	fx := createTestWishlistService(t)

	ctx := context.Background()
	propertyID := uuid.New()

	fx.propertyRepo.On("FindByID", ctx, propertyID).
		Return(nil, repository.ErrPropertyNotFound)

	_, err := fx.service.SaveEntry(ctx, &usecase.SaveWishlistInput{
		PropertyID:  propertyID,
		AuthorEmail: "user@example.com",
	})

	assert.ErrorIs(t, err, domainerrors.ErrPropertyNotFound)
}

func TestWishlistService_ListForAuthor(t *testing.T) {
	fx := createTestWishlistService(t)

	ctx := context.Background()
	expected := []*entity.WishlistEntry{
		{ID: uuid.New(), AuthorEmail: "user@example.com"},
	}

	fx.wishlistRepo.On("FindByAuthor", ctx, "user@example.com").Return(expected, nil)

	entries, err := fx.service.ListForAuthor(ctx, "user@example.com")

	require.NoError(t, err)
	assert.Equal(t, expected, entries)
}

func TestWishlistService_DeleteEntry_NotFound(t *testing.T) {
	fx := createTestWishlistService(t)

	ctx := context.Background()
	entryID := uuid.New()

	fx.wishlistRepo.On("Delete", ctx, entryID).Return(repository.ErrWishlistEntryNotFound)

	err := fx.service.DeleteEntry(ctx, entryID)

	assert.ErrorIs(t, err, domainerrors.ErrWishlistEntryNotFound)
}

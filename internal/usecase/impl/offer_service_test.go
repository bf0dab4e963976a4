package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"metroshelter/config"
	"metroshelter/internal/domain/entity"
	domainerrors "metroshelter/internal/domain/errors"
	"metroshelter/internal/domain/repository"
	mockRepo "metroshelter/internal/mocks/repository"
	"metroshelter/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// offerServiceFixtures holds all test dependencies for offer service tests.
type offerServiceFixtures struct {
	service      usecase.OfferUsecase
	txManager    *mockRepo.StubTransactionManager
	offerRepo    *mockRepo.MockOfferRepository
	propertyRepo *mockRepo.MockPropertyRepository
}

func createTestOfferService(t *testing.T, cfg *config.Config) offerServiceFixtures {
	offerRepo := mockRepo.NewMockOfferRepository(t)
	propertyRepo := mockRepo.NewMockPropertyRepository(t)
	txManager := &mockRepo.StubTransactionManager{
		Factory: &mockRepo.StubRepositoryFactory{
			OfferRepo:    offerRepo,
			PropertyRepo: propertyRepo,
		},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	if cfg == nil {
		cfg = &config.Config{}
	}
	service := NewOfferService(txManager, logger, cfg)

	return offerServiceFixtures{
		service:      service,
		txManager:    txManager,
		offerRepo:    offerRepo,
		propertyRepo: propertyRepo,
	}
}

func pendingOffer(offerID, propertyID uuid.UUID) *entity.Offer {
	return &entity.Offer{
		ID:          offerID,
		BuyerEmail:  "buyer@example.com",
		BuyerName:   "Buyer",
		OfferAmount: 250000,
		OfferDate:   time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Status:      entity.OfferStatusPending,
		PropertyID:  propertyID,
	}
}

func TestOfferService_CreateOffer_Success(t *testing.T) {
	fx := createTestOfferService(t, nil)

	ctx := context.Background()
	propertyID := uuid.New()
	property := &entity.Property{ID: propertyID, StartPrice: 200000, EndPrice: 300000}

	fx.propertyRepo.On("FindByID", ctx, propertyID).Return(property, nil)
	fx.offerRepo.On("Create", ctx, mock.AnythingOfType("*entity.Offer")).Return(nil)

	offer, err := fx.service.CreateOffer(ctx, &usecase.CreateOfferInput{
		PropertyID:  propertyID,
		BuyerEmail:  "buyer@example.com",
		BuyerName:   "Buyer",
		OfferAmount: 250000,
		OfferDate:   time.Now(),
	})

	require.NoError(t, err)
	assert.Equal(t, entity.OfferStatusPending, offer.Status)
	assert.Equal(t, propertyID, offer.PropertyID)
}

func TestOfferService_CreateOffer_PropertyNotFound(t *testing.T) {
	fx := createTestOfferService(t, nil)

	ctx := context.Background()
	propertyID := uuid.New()

	fx.propertyRepo.On("FindByID", ctx, propertyID).Return(nil, repository.ErrPropertyNotFound)

	_, err := fx.service.CreateOffer(ctx, &usecase.CreateOfferInput{
		PropertyID:  propertyID,
		BuyerEmail:  "buyer@example.com",
		BuyerName:   "Buyer",
		OfferAmount: 250000,
		OfferDate:   time.Now(),
	})

	assert.ErrorIs(t, err, domainerrors.ErrPropertyNotFound)
}

func TestOfferService_CreateOffer_AmountOutsideRange(t *testing.T) {
	fx := createTestOfferService(t, nil)

	ctx := context.Background()
	propertyID := uuid.New()
	property := &entity.Property{ID: propertyID, StartPrice: 200000, EndPrice: 300000}

	fx.propertyRepo.On("FindByID", ctx, propertyID).Return(property, nil)

	_, err := fx.service.CreateOffer(ctx, &usecase.CreateOfferInput{
		PropertyID:  propertyID,
		BuyerEmail:  "buyer@example.com",
		BuyerName:   "Buyer",
		OfferAmount: 150000,
		OfferDate:   time.Now(),
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOfferService_SetOfferStatus_AcceptRejectsSiblings(t *testing.T) {
	fx := createTestOfferService(t, nil)

	ctx := context.Background()
	offerID := uuid.New()
	propertyID := uuid.New()
	offer := pendingOffer(offerID, propertyID)

	fx.offerRepo.On("FindByID", ctx, offerID).Return(offer, nil)
	fx.propertyRepo.On("FindByIDForUpdate", ctx, propertyID).
		Return(&entity.Property{ID: propertyID}, nil)
	fx.offerRepo.On("RejectSiblings", ctx, propertyID, offerID).Return(nil)
	fx.offerRepo.On("UpdateStatus", ctx, offerID, entity.OfferStatusAccepted).Return(nil)

	updated, err := fx.service.SetOfferStatus(ctx, offerID, entity.OfferStatusAccepted)

	require.NoError(t, err)
	assert.Equal(t, entity.OfferStatusAccepted, updated.Status)
}

func TestOfferService_SetOfferStatus_RejectHasNoSideEffects(t *testing.T) {
	fx := createTestOfferService(t, nil)

	ctx := context.Background()
	offerID := uuid.New()
	offer := pendingOffer(offerID, uuid.New())

	fx.offerRepo.On("FindByID", ctx, offerID).Return(offer, nil)
	fx.offerRepo.On("UpdateStatus", ctx, offerID, entity.OfferStatusRejected).Return(nil)

	updated, err := fx.service.SetOfferStatus(ctx, offerID, entity.OfferStatusRejected)

	require.NoError(t, err)
	assert.Equal(t, entity.OfferStatusRejected, updated.Status)
	fx.offerRepo.AssertNotCalled(t, "RejectSiblings", ctx, offer.PropertyID, offerID)
}

func TestOfferService_SetOfferStatus_OfferNotFound(t *testing.T) {
	fx := createTestOfferService(t, nil)

	ctx := context.Background()
	offerID := uuid.New()

	fx.offerRepo.On("FindByID", ctx, offerID).Return(nil, repository.ErrOfferNotFound)

	_, err := fx.service.SetOfferStatus(ctx, offerID, entity.OfferStatusAccepted)

	assert.ErrorIs(t, err, domainerrors.ErrOfferNotFound)
}

func TestOfferService_SetOfferStatus_UnknownStatus(t *testing.T) {
	fx := createTestOfferService(t, nil)

	_, err := fx.service.SetOfferStatus(context.Background(), uuid.New(), entity.OfferStatus("haggling"))

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOfferService_SetOfferStatus_AcceptFailureSurfacesAsTransactionFailure(t *testing.T) {
	fx := createTestOfferService(t, nil)

	ctx := context.Background()
	offerID := uuid.New()
	propertyID := uuid.New()
	offer := pendingOffer(offerID, propertyID)

	fx.offerRepo.On("FindByID", ctx, offerID).Return(offer, nil)
	fx.propertyRepo.On("FindByIDForUpdate", ctx, propertyID).
		Return(&entity.Property{ID: propertyID}, nil)
	fx.offerRepo.On("RejectSiblings", ctx, propertyID, offerID).Return(nil)
	fx.offerRepo.On("UpdateStatus", ctx, offerID, entity.OfferStatusAccepted).
		Return(errors.New("connection reset"))

	_, err := fx.service.SetOfferStatus(ctx, offerID, entity.OfferStatusAccepted)

	assert.ErrorIs(t, err, domainerrors.ErrTransactionFailed)
}

func TestOfferService_MarkPaid_AcceptedOffer(t *testing.T) {
	fx := createTestOfferService(t, nil)

	ctx := context.Background()
	offerID := uuid.New()
	offer := pendingOffer(offerID, uuid.New())
	offer.Status = entity.OfferStatusAccepted

	fx.offerRepo.On("FindByID", ctx, offerID).Return(offer, nil)
	fx.offerRepo.On("MarkBought", ctx, offerID, "txn-123").Return(nil)

	updated, err := fx.service.MarkPaid(ctx, offerID, "txn-123")

	require.NoError(t, err)
	assert.Equal(t, entity.OfferStatusBought, updated.Status)
	assert.Equal(t, "txn-123", updated.TransactionID)
}

func TestOfferService_MarkPaid_PendingOfferRefusedByDefault(t *testing.T) {
	fx := createTestOfferService(t, nil)

	ctx := context.Background()
	offerID := uuid.New()
	offer := pendingOffer(offerID, uuid.New())

	fx.offerRepo.On("FindByID", ctx, offerID).Return(offer, nil)

	_, err := fx.service.MarkPaid(ctx, offerID, "txn-123")

	assert.ErrorIs(t, err, domainerrors.ErrInvalidOfferTransition)
	fx.offerRepo.AssertNotCalled(t, "MarkBought", ctx, offerID, "txn-123")
}

func TestOfferService_MarkPaid_PendingOfferAllowedWhenConfigured(t *testing.T) {
	fx := createTestOfferService(t, &config.Config{
		Offers: &config.OffersConfig{AllowUnacceptedPurchase: true},
	})

	ctx := context.Background()
	offerID := uuid.New()
	offer := pendingOffer(offerID, uuid.New())

	fx.offerRepo.On("FindByID", ctx, offerID).Return(offer, nil)
	fx.offerRepo.On("MarkBought", ctx, offerID, "txn-123").Return(nil)

	updated, err := fx.service.MarkPaid(ctx, offerID, "txn-123")

	require.NoError(t, err)
	assert.Equal(t, entity.OfferStatusBought, updated.Status)
}

func TestOfferService_MarkPaid_MissingTransactionID(t *testing.T) {
	fx := createTestOfferService(t, nil)

	_, err := fx.service.MarkPaid(context.Background(), uuid.New(), "")

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOfferService_ListOffersForBuyer(t *testing.T) {
	fx := createTestOfferService(t, nil)

	ctx := context.Background()
	expected := []*entity.Offer{pendingOffer(uuid.New(), uuid.New())}

	fx.offerRepo.On("FindByBuyer", ctx, "buyer@example.com").Return(expected, nil)

	offers, err := fx.service.ListOffersForBuyer(ctx, "buyer@example.com")

	require.NoError(t, err)
	assert.Equal(t, expected, offers)
}

func TestOfferService_ListAllOffers(t *testing.T) {
	fx := createTestOfferService(t, nil)

	ctx := context.Background()
	expected := []*entity.Offer{
		pendingOffer(uuid.New(), uuid.New()),
		pendingOffer(uuid.New(), uuid.New()),
	}

	fx.offerRepo.On("FindAll", ctx).Return(expected, nil)

	offers, err := fx.service.ListAllOffers(ctx)

	require.NoError(t, err)
	assert.Len(t, offers, 2)
}

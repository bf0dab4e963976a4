// Package usecase provides hand-written testify mocks for the use-case
// interfaces, used by handler tests.
package usecase

import (
	"context"
	"testing"

	"metroshelter/internal/domain/entity"
	"metroshelter/internal/domain/repository"
	domainusecase "metroshelter/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockOfferUsecase is a testify mock for usecase.OfferUsecase.
type MockOfferUsecase struct {
	mock.Mock
}

// NewMockOfferUsecase creates a mock bound to the test's lifecycle.
func NewMockOfferUsecase(t *testing.T) *MockOfferUsecase {
	m := &MockOfferUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockOfferUsecase) CreateOffer(ctx context.Context, input *domainusecase.CreateOfferInput) (*entity.Offer, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Offer), args.Error(1)
}

func (m *MockOfferUsecase) SetOfferStatus(ctx context.Context, offerID uuid.UUID, status entity.OfferStatus) (*entity.Offer, error) {
	args := m.Called(ctx, offerID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Offer), args.Error(1)
}

func (m *MockOfferUsecase) MarkPaid(ctx context.Context, offerID uuid.UUID, transactionID string) (*entity.Offer, error) {
	args := m.Called(ctx, offerID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Offer), args.Error(1)
}

func (m *MockOfferUsecase) ListOffersForBuyer(ctx context.Context, buyerEmail string) ([]*entity.Offer, error) {
	args := m.Called(ctx, buyerEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Offer), args.Error(1)
}

func (m *MockOfferUsecase) ListAllOffers(ctx context.Context) ([]*entity.Offer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Offer), args.Error(1)
}

// MockListingUsecase is a testify mock for usecase.ListingUsecase.
type MockListingUsecase struct {
	mock.Mock
}

// NewMockListingUsecase creates a mock bound to the test's lifecycle.
func NewMockListingUsecase(t *testing.T) *MockListingUsecase {
	m := &MockListingUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockListingUsecase) CreateProperty(ctx context.Context, input *domainusecase.CreatePropertyInput) (*entity.Property, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Property), args.Error(1)
}

func (m *MockListingUsecase) UpdateProperty(ctx context.Context, propertyID uuid.UUID, input *domainusecase.UpdatePropertyInput) (*entity.Property, error) {
	args := m.Called(ctx, propertyID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Property), args.Error(1)
}

func (m *MockListingUsecase) DeleteProperty(ctx context.Context, propertyID uuid.UUID) error {
	args := m.Called(ctx, propertyID)

	return args.Error(0)
}

func (m *MockListingUsecase) GetProperty(ctx context.Context, propertyID uuid.UUID) (*entity.Property, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Property), args.Error(1)
}

func (m *MockListingUsecase) ListProperties(ctx context.Context, filter *repository.PropertyFilter) ([]*entity.Property, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Property), args.Error(1)
}

func (m *MockListingUsecase) SetPropertyStatus(ctx context.Context, propertyID uuid.UUID, status entity.PropertyStatus) error {
	args := m.Called(ctx, propertyID, status)

	return args.Error(0)
}

func (m *MockListingUsecase) SetAdvertised(ctx context.Context, propertyID uuid.UUID, advertised bool) error {
	args := m.Called(ctx, propertyID, advertised)

	return args.Error(0)
}

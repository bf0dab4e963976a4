// Package repository provides hand-written testify mocks and stubs for the
// persistence interfaces.
package repository

import (
	"context"
	"testing"

	"metroshelter/internal/domain/entity"
	"metroshelter/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a testify mock for repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

// NewMockUserRepository creates a mock bound to the test's lifecycle.
func NewMockUserRepository(t *testing.T) *MockUserRepository {
	m := &MockUserRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) UpdateRole(ctx context.Context, id uuid.UUID, role entity.Role) error {
	return m.Called(ctx, id, role).Error(0)
}

func (m *MockUserRepository) UpdateFraudFlag(ctx context.Context, id uuid.UUID, isFraud bool) error {
	return m.Called(ctx, id, isFraud).Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockPropertyRepository is a testify mock for repository.PropertyRepository.
type MockPropertyRepository struct {
	mock.Mock
}

// NewMockPropertyRepository creates a mock bound to the test's lifecycle.
func NewMockPropertyRepository(t *testing.T) *MockPropertyRepository {
	m := &MockPropertyRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPropertyRepository) Create(ctx context.Context, property *entity.Property) error {
	return m.Called(ctx, property).Error(0)
}

func (m *MockPropertyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Property), args.Error(1)
}

func (m *MockPropertyRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Property), args.Error(1)
}

func (m *MockPropertyRepository) Find(ctx context.Context, filter repository.PropertyFilter) ([]*entity.Property, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Property), args.Error(1)
}

func (m *MockPropertyRepository) Update(ctx context.Context, property *entity.Property) error {
	return m.Called(ctx, property).Error(0)
}

func (m *MockPropertyRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.PropertyStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockPropertyRepository) UpdateAdvertised(ctx context.Context, id uuid.UUID, advertised bool) error {
	return m.Called(ctx, id, advertised).Error(0)
}

func (m *MockPropertyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockReviewRepository is a testify mock for repository.ReviewRepository.
type MockReviewRepository struct {
	mock.Mock
}

// NewMockReviewRepository creates a mock bound to the test's lifecycle.
func NewMockReviewRepository(t *testing.T) *MockReviewRepository {
	m := &MockReviewRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	return m.Called(ctx, review).Error(0)
}

func (m *MockReviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Review), args.Error(1)
}

func (m *MockReviewRepository) FindAll(ctx context.Context) ([]*entity.Review, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Review), args.Error(1)
}

func (m *MockReviewRepository) FindByProperty(ctx context.Context, propertyID uuid.UUID) ([]*entity.Review, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Review), args.Error(1)
}

func (m *MockReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockWishlistRepository is a testify mock for repository.WishlistRepository.
type MockWishlistRepository struct {
	mock.Mock
}

// NewMockWishlistRepository creates a mock bound to the test's lifecycle.
func NewMockWishlistRepository(t *testing.T) *MockWishlistRepository {
	m := &MockWishlistRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockWishlistRepository) Create(ctx context.Context, entry *entity.WishlistEntry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockWishlistRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.WishlistEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.WishlistEntry), args.Error(1)
}

func (m *MockWishlistRepository) FindByAuthor(ctx context.Context, authorEmail string) ([]*entity.WishlistEntry, error) {
	args := m.Called(ctx, authorEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.WishlistEntry), args.Error(1)
}

func (m *MockWishlistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockOfferRepository is a testify mock for repository.OfferRepository.
type MockOfferRepository struct {
	mock.Mock
}

// NewMockOfferRepository creates a mock bound to the test's lifecycle.
func NewMockOfferRepository(t *testing.T) *MockOfferRepository {
	m := &MockOfferRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockOfferRepository) Create(ctx context.Context, offer *entity.Offer) error {
	return m.Called(ctx, offer).Error(0)
}

func (m *MockOfferRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Offer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Offer), args.Error(1)
}

func (m *MockOfferRepository) FindByBuyer(ctx context.Context, buyerEmail string) ([]*entity.Offer, error) {
	args := m.Called(ctx, buyerEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Offer), args.Error(1)
}

func (m *MockOfferRepository) FindAll(ctx context.Context) ([]*entity.Offer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Offer), args.Error(1)
}

func (m *MockOfferRepository) FindByProperty(ctx context.Context, propertyID uuid.UUID) ([]*entity.Offer, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Offer), args.Error(1)
}

func (m *MockOfferRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OfferStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockOfferRepository) RejectSiblings(ctx context.Context, propertyID, acceptedID uuid.UUID) error {
	return m.Called(ctx, propertyID, acceptedID).Error(0)
}

func (m *MockOfferRepository) MarkBought(ctx context.Context, id uuid.UUID, transactionID string) error {
	return m.Called(ctx, id, transactionID).Error(0)
}

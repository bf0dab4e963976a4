// Package service provides hand-written testify mocks for the domain service
// interfaces.
package service

import (
	"context"
	"testing"

	"metroshelter/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
)

// MockTokenService is a testify mock for service.TokenService.
type MockTokenService struct {
	mock.Mock
}

// NewMockTokenService creates a mock bound to the test's lifecycle.
func NewMockTokenService(t *testing.T) *MockTokenService {
	m := &MockTokenService{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTokenService) GenerateToken(email string, role entity.Role) (string, error) {
	args := m.Called(email, role)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) ValidateToken(tokenString string) (*jwt.Token, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*jwt.Token), args.Error(1)
}

// MockBlobStore is a testify mock for service.BlobStore.
type MockBlobStore struct {
	mock.Mock
}

// NewMockBlobStore creates a mock bound to the test's lifecycle.
func NewMockBlobStore(t *testing.T) *MockBlobStore {
	m := &MockBlobStore{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockBlobStore) Store(ctx context.Context, data []byte, folder, filename string) (string, error) {
	args := m.Called(ctx, data, folder, filename)

	return args.String(0), args.Error(1)
}

func (m *MockBlobStore) Destroy(ctx context.Context, ref string) error {
	return m.Called(ctx, ref).Error(0)
}

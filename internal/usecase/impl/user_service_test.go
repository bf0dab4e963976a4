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

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service  usecase.UserUsecase
	userRepo *mockRepo.MockUserRepository
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	txManager := &mockRepo.StubTransactionManager{
		Factory: &mockRepo.StubRepositoryFactory{UserRepo: userRepo},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewUserService(txManager, logger)

	return userServiceFixtures{
		service:  service,
		userRepo: userRepo,
	}
}

func TestUserService_CreateUser_DefaultsToUserRole(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.On("FindByEmail", ctx, "new@example.com").Return(nil, repository.ErrUserNotFound)
	fx.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	user, err := fx.service.CreateUser(ctx, &usecase.CreateUserInput{
		UserName: "New User",
		Email:    "new@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, user.Role)
}

func TestUserService_CreateUser_ExistingEmailReturnsExisting(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	existing := &entity.User{ID: uuid.New(), UserName: "Existing", Email: "taken@example.com", Role: entity.RoleAgent}

	fx.userRepo.On("FindByEmail", ctx, "taken@example.com").Return(existing, nil)

	user, err := fx.service.CreateUser(ctx, &usecase.CreateUserInput{
		UserName: "Someone Else",
		Email:    "taken@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, existing, user)
	fx.userRepo.AssertNotCalled(t, "Create", ctx, mock.Anything)
}

func TestUserService_CreateUser_InvalidRole(t *testing.T) {
	fx := createTestUserService(t)

	_, err := fx.service.CreateUser(context.Background(), &usecase.CreateUserInput{
		UserName: "New User",
		Email:    "new@example.com",
		Role:     entity.Role("landlord"),
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidRole)
}

func TestUserService_GetUserByEmail_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.On("FindByEmail", ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.GetUserByEmail(ctx, "ghost@example.com")

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_ListUsers(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	expected := []*entity.User{
		{ID: uuid.New(), Email: "a@example.com"},
		{ID: uuid.New(), Email: "b@example.com"},
	}

	fx.userRepo.On("FindAll", ctx).Return(expected, nil)

	users, err := fx.service.ListUsers(ctx)

	require.NoError(t, err)
	assert.Equal(t, expected, users)
}

func TestUserService_DeleteUser_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.On("Delete", ctx, userID).Return(repository.ErrUserNotFound)

	err := fx.service.DeleteUser(ctx, userID)

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_SetUserRole_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.On("UpdateRole", ctx, userID, entity.RoleAgent).Return(nil)

	err := fx.service.SetUserRole(ctx, userID, entity.RoleAgent)

	require.NoError(t, err)
}

func TestUserService_SetUserRole_InvalidRole(t *testing.T) {
	fx := createTestUserService(t)

	err := fx.service.SetUserRole(context.Background(), uuid.New(), entity.Role("landlord"))

	assert.ErrorIs(t, err, domainerrors.ErrInvalidRole)
}

func TestUserService_FlagFraud_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.On("UpdateFraudFlag", ctx, userID, true).Return(nil)

	err := fx.service.FlagFraud(ctx, userID, true)

	require.NoError(t, err)
}

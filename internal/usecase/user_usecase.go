package usecase

import (
	"context"

	"metroshelter/internal/domain/entity"

	"github.com/google/uuid"
)

// UserUsecase defines the interface for user and role administration.
type UserUsecase interface {
	CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error)
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	ListUsers(ctx context.Context) ([]*entity.User, error)
	DeleteUser(ctx context.Context, userID uuid.UUID) error
	SetUserRole(ctx context.Context, userID uuid.UUID, role entity.Role) error
	FlagFraud(ctx context.Context, userID uuid.UUID, isFraud bool) error
}

// --- Input DTOs ---

// CreateUserInput defines the data required to register a user.
// Role is optional and defaults to a plain user.
type CreateUserInput struct {
	UserName string      `json:"userName" validate:"required"`
	Email    string      `json:"email" validate:"required,email"`
	Role     entity.Role `json:"role,omitempty"`
}

// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"metroshelter/internal/domain/entity"
	"metroshelter/internal/errors"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address. Duplicate
	// emails are tolerated by storage; the earliest record wins.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindAll retrieves every user, newest first.
	FindAll(ctx context.Context) ([]*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// UpdateRole sets the role tag on an existing user.
	UpdateRole(ctx context.Context, id uuid.UUID, role entity.Role) error

	// UpdateFraudFlag sets the fraud flag on an existing user.
	UpdateFraudFlag(ctx context.Context, id uuid.UUID, isFraud bool) error

	// Delete removes a user by ID.
	Delete(ctx context.Context, id uuid.UUID) error
}

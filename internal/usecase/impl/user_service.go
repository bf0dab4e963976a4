package impl

import (
	"context"
	"log/slog"

	"metroshelter/internal/domain/entity"
	domainerrors "metroshelter/internal/domain/errors"
	"metroshelter/internal/domain/repository"
	"metroshelter/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	fx.In

	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		txManager: txManager,
		logger:    logger,
	}
}

// CreateUser registers a user. Signup is idempotent on email: if a user with
// the same email already exists that record is returned and nothing is
// written. Email uniqueness is a business rule, not a database constraint.
func (srv *userService) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (*entity.User, error) {
	srv.logger.Info("Creating user", "email", input.Email)

	role := input.Role
	if role == "" {
		role = entity.RoleUser
	}
	if !role.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrInvalidRole, "unknown role")
	}

	user := &entity.User{
		UserName: input.UserName,
		Email:    input.Email,
		Role:     role,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		existing, err := userRepo.FindByEmail(ctx, input.Email)
		if err == nil {
			user = existing

			return nil
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to look up user")
		}

		if err := userRepo.Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create user")
		}

		return nil
	})

	if err != nil {
		srv.logger.Error("failed to create user", "email", input.Email, "error", err)

		return nil, errors.Wrap(err, "failed to create user")
	}

	return user, nil
}

// GetUserByEmail retrieves a user by email.
func (srv *userService) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	srv.logger.Debug("Getting user", "email", email)

	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewUserRepository().FindByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}
		user = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to get user")
	}

	return user, nil
}

// ListUsers returns every registered user.
func (srv *userService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	srv.logger.Debug("Listing users")

	var users []*entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewUserRepository().FindAll(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list users")
		}
		users = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// DeleteUser removes a user record.
func (srv *userService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	srv.logger.Info("Deleting user", "userID", userID)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewUserRepository().Delete(ctx, userID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to delete user")
		}

		return nil
	})

	if err != nil {
		srv.logger.Error("failed to delete user", "userID", userID, "error", err)

		return errors.Wrap(err, "failed to delete user")
	}

	return nil
}

// SetUserRole changes a user's role tag.
func (srv *userService) SetUserRole(ctx context.Context, userID uuid.UUID, role entity.Role) error {
	srv.logger.Info("Setting user role", "userID", userID, "role", role)

	if !role.IsValid() {
		return errors.Wrap(domainerrors.ErrInvalidRole, "unknown role")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewUserRepository().UpdateRole(ctx, userID, role); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to update role")
		}

		return nil
	})

	if err != nil {
		srv.logger.Error("failed to set user role", "userID", userID, "error", err)

		return errors.Wrap(err, "failed to set user role")
	}

	return nil
}

// FlagFraud sets or clears a user's fraud flag. The flag is a pure field
// update; its effect on what the user may do is enforced at the access layer.
func (srv *userService) FlagFraud(ctx context.Context, userID uuid.UUID, isFraud bool) error {
	srv.logger.Info("Setting fraud flag", "userID", userID, "isFraud", isFraud)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewUserRepository().UpdateFraudFlag(ctx, userID, isFraud); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to update fraud flag")
		}

		return nil
	})

	if err != nil {
		srv.logger.Error("failed to set fraud flag", "userID", userID, "error", err)

		return errors.Wrap(err, "failed to set fraud flag")
	}

	return nil
}

package impl

import (
	"context"
	"log/slog"

	domainerrors "metroshelter/internal/domain/errors"
	"metroshelter/internal/domain/repository"
	"metroshelter/internal/domain/service"
	"metroshelter/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// tokenService implements the TokenUsecase interface.
type tokenService struct {
	fx.In

	txManager    repository.TransactionManager
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewTokenUsecase is the constructor for tokenService.
func NewTokenUsecase(
	txManager repository.TransactionManager,
	tokenSvc service.TokenService,
	logger *slog.Logger,
) usecase.TokenUsecase {
	return &tokenService{
		txManager:    txManager,
		tokenService: tokenSvc,
		logger:       logger,
	}
}

// IssueToken signs a session token carrying the registered user's role. The
// role claim is a hint only; authorization re-reads the user record on every
// request.
func (srv *tokenService) IssueToken(ctx context.Context, email string) (string, error) {
	srv.logger.Info("Issuing token", "email", email)

	var token string

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := repoFactory.NewUserRepository().FindByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}

		signed, err := srv.tokenService.GenerateToken(user.Email, user.Role)
		if err != nil {
			return errors.Wrap(err, "failed to sign token")
		}
		token = signed

		return nil
	})

	if err != nil {
		srv.logger.Error("failed to issue token", "email", email, "error", err)

		return "", errors.Wrap(err, "failed to issue token")
	}

	return token, nil
}

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

// wishlistService implements the WishlistUsecase interface.
type wishlistService struct {
	fx.In

	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewWishlistService is the constructor for wishlistService.
func NewWishlistService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.WishlistUsecase {
	return &wishlistService{
		txManager: txManager,
		logger:    logger,
	}
}

// SaveEntry stores a property on a user's wishlist.
func (srv *wishlistService) SaveEntry(ctx context.Context, input *usecase.SaveWishlistInput) (*entity.WishlistEntry, error) {
	srv.logger.Info("Saving wishlist entry", "propertyID", input.PropertyID, "authorEmail", input.AuthorEmail)

	entry := &entity.WishlistEntry{
		PropertyID:  input.PropertyID,
		AuthorEmail: input.AuthorEmail,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		propertyRepo := repoFactory.NewPropertyRepository()
		wishlistRepo := repoFactory.NewWishlistRepository()

		if _, err := propertyRepo.FindByID(ctx, input.PropertyID); err != nil {
			if errors.Is(err, repository.ErrPropertyNotFound) {
				return errors.Wrap(domainerrors.ErrPropertyNotFound, "property not found")
			}

			return errors.Wrap(err, "failed to find property")
		}

		if err := wishlistRepo.Create(ctx, entry); err != nil {
			if errors.Is(err, repository.ErrDuplicateWishlistEntry) {
				// Saving twice is a no-op: hand back the existing entry.
				existing, findErr := wishlistRepo.FindByAuthor(ctx, input.AuthorEmail)
				if findErr != nil {
					return errors.Wrap(findErr, "failed to load existing wishlist entry")
				}
				for _, candidate := range existing {
					if candidate.PropertyID == input.PropertyID {
						entry = candidate

						return nil
					}
				}
			}

			return errors.Wrap(err, "failed to save wishlist entry")
		}

		return nil
	})

	if err != nil {
		srv.logger.Error("failed to save wishlist entry", "propertyID", input.PropertyID, "error", err)

		return nil, errors.Wrap(err, "failed to save wishlist entry")
	}

	return entry, nil
}

// ListForAuthor returns a user's wishlist, newest first, with each property
// populated.
func (srv *wishlistService) ListForAuthor(ctx context.Context, authorEmail string) ([]*entity.WishlistEntry, error) {
	srv.logger.Debug("Listing wishlist", "authorEmail", authorEmail)

	var entries []*entity.WishlistEntry

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewWishlistRepository().FindByAuthor(ctx, authorEmail)
		if err != nil {
			return errors.Wrap(err, "failed to list wishlist entries")
		}
		entries = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to list wishlist entries")
	}

	return entries, nil
}

// DeleteEntry removes a wishlist entry.
func (srv *wishlistService) DeleteEntry(ctx context.Context, entryID uuid.UUID) error {
	srv.logger.Info("Deleting wishlist entry", "entryID", entryID)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewWishlistRepository().Delete(ctx, entryID); err != nil {
			if errors.Is(err, repository.ErrWishlistEntryNotFound) {
				return errors.Wrap(domainerrors.ErrWishlistEntryNotFound, "wishlist entry not found")
			}

			return errors.Wrap(err, "failed to delete wishlist entry")
		}

		return nil
	})

	if err != nil {
		srv.logger.Error("failed to delete wishlist entry", "entryID", entryID, "error", err)

		return errors.Wrap(err, "failed to delete wishlist entry")
	}

	return nil
}

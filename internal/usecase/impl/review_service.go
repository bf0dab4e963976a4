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

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	fx.In

	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.ReviewUsecase {
	return &reviewService{
		txManager: txManager,
		logger:    logger,
	}
}

// AddReview attaches a review to a property. The review row and the property
// association are written in one transaction, so a review never exists without
// its owning property referencing it.
func (srv *reviewService) AddReview(ctx context.Context, input *usecase.AddReviewInput) (*entity.Review, error) {
	srv.logger.Info("Adding review", "propertyID", input.PropertyID, "email", input.Email)

	review := &entity.Review{
		Name:        input.Name,
		Email:       input.Email,
		ImageRef:    input.ImageRef,
		Description: input.Description,
		PropertyID:  input.PropertyID,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		propertyRepo := repoFactory.NewPropertyRepository()
		reviewRepo := repoFactory.NewReviewRepository()

		// 1. The target property must exist
		if _, err := propertyRepo.FindByID(ctx, input.PropertyID); err != nil {
			if errors.Is(err, repository.ErrPropertyNotFound) {
				return errors.Wrap(domainerrors.ErrPropertyNotFound, "property not found")
			}

			return errors.Wrap(err, "failed to find property")
		}

		// 2. Create the review row
		if err := reviewRepo.Create(ctx, review); err != nil {
			return errors.Wrap(err, "failed to create review")
		}

		return nil
	})

	if err != nil {
		srv.logger.Error("failed to add review", "propertyID", input.PropertyID, "error", err)

		return nil, errors.Wrap(err, "failed to add review")
	}

	return review, nil
}

// DeleteReview removes a review. The detachment from its property is implicit
// in the row deletion, so removing an already-detached reference is a no-op.
func (srv *reviewService) DeleteReview(ctx context.Context, reviewID uuid.UUID) error {
	srv.logger.Info("Deleting review", "reviewID", reviewID)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewReviewRepository().Delete(ctx, reviewID); err != nil {
			if errors.Is(err, repository.ErrReviewNotFound) {
				return errors.Wrap(domainerrors.ErrReviewNotFound, "review not found")
			}

			return errors.Wrap(err, "failed to delete review")
		}

		return nil
	})

	if err != nil {
		srv.logger.Error("failed to delete review", "reviewID", reviewID, "error", err)

		return errors.Wrap(err, "failed to delete review")
	}

	return nil
}

// ListReviews returns every review, newest first, for the testimonial feed.
func (srv *reviewService) ListReviews(ctx context.Context) ([]*entity.Review, error) {
	srv.logger.Debug("Listing reviews")

	var reviews []*entity.Review

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewReviewRepository().FindAll(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list reviews")
		}
		reviews = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return reviews, nil
}

// ListReviewsForProperty returns a property's reviews in the order they were
// written.
func (srv *reviewService) ListReviewsForProperty(ctx context.Context, propertyID uuid.UUID) ([]*entity.Review, error) {
	srv.logger.Debug("Listing reviews for property", "propertyID", propertyID)

	var reviews []*entity.Review

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		propertyRepo := repoFactory.NewPropertyRepository()
		reviewRepo := repoFactory.NewReviewRepository()

		if _, err := propertyRepo.FindByID(ctx, propertyID); err != nil {
			if errors.Is(err, repository.ErrPropertyNotFound) {
				return errors.Wrap(domainerrors.ErrPropertyNotFound, "property not found")
			}

			return errors.Wrap(err, "failed to find property")
		}

		found, err := reviewRepo.FindByProperty(ctx, propertyID)
		if err != nil {
			return errors.Wrap(err, "failed to list reviews")
		}
		reviews = found

		return nil
	})

	if err != nil {
		srv.logger.Error("failed to list reviews for property", "propertyID", propertyID, "error", err)

		return nil, errors.Wrap(err, "failed to list reviews for property")
	}

	return reviews, nil
}

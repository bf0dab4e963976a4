// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"metroshelter/config"
	"metroshelter/internal/domain/entity"
	domainerrors "metroshelter/internal/domain/errors"
	"metroshelter/internal/domain/repository"
	"metroshelter/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// offerService implements the OfferUsecase interface.
type offerService struct {
	fx.In

	txManager               repository.TransactionManager
	logger                  *slog.Logger
	allowUnacceptedPurchase bool
}

// NewOfferService is the constructor for offerService.
func NewOfferService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
	cfg *config.Config,
) usecase.OfferUsecase {
	allowUnaccepted := false
	if cfg.Offers != nil {
		allowUnaccepted = cfg.Offers.AllowUnacceptedPurchase
	}

	return &offerService{
		txManager:               txManager,
		logger:                  logger,
		allowUnacceptedPurchase: allowUnaccepted,
	}
}

// CreateOffer places a pending offer against a property. Repeat offers from
// the same buyer are allowed, and the buyer may be the property's own author.
func (srv *offerService) CreateOffer(ctx context.Context, input *usecase.CreateOfferInput) (*entity.Offer, error) {
	srv.logger.Info("Creating offer", "propertyID", input.PropertyID, "buyerEmail", input.BuyerEmail)

	offer := &entity.Offer{
		BuyerEmail:  input.BuyerEmail,
		BuyerName:   input.BuyerName,
		OfferAmount: input.OfferAmount,
		OfferDate:   input.OfferDate,
		Status:      entity.OfferStatusPending,
		PropertyID:  input.PropertyID,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		propertyRepo := repoFactory.NewPropertyRepository()
		offerRepo := repoFactory.NewOfferRepository()

		// 1. The target property must exist
		property, err := propertyRepo.FindByID(ctx, input.PropertyID)
		if err != nil {
			if errors.Is(err, repository.ErrPropertyNotFound) {
				return errors.Wrap(domainerrors.ErrPropertyNotFound, "property not found")
			}

			return errors.Wrap(err, "failed to find property")
		}

		// 2. The bid must fall inside the listed price range
		if input.OfferAmount < property.StartPrice || input.OfferAmount > property.EndPrice {
			return errors.Wrap(domainerrors.ErrValidationFailed, "offer amount outside the listed price range")
		}

		// 3. Persist the pending offer
		if err := offerRepo.Create(ctx, offer); err != nil {
			return errors.Wrap(err, "failed to create offer")
		}

		return nil
	})

	if err != nil {
		srv.logger.Error("failed to create offer", "propertyID", input.PropertyID, "error", err)

		return nil, errors.Wrap(err, "failed to create offer")
	}

	return offer, nil
}

// SetOfferStatus transitions an offer's status. Accepting an offer rejects
// every sibling offer on the same property inside one transaction, with the
// property row locked so two concurrent acceptances cannot both win.
func (srv *offerService) SetOfferStatus(ctx context.Context, offerID uuid.UUID, status entity.OfferStatus) (*entity.Offer, error) {
	srv.logger.Info("Setting offer status", "offerID", offerID, "status", status)

	if !status.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown offer status")
	}

	var updated *entity.Offer

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		offerRepo := repoFactory.NewOfferRepository()

		// 1. Find the offer
		offer, err := offerRepo.FindByID(ctx, offerID)
		if err != nil {
			if errors.Is(err, repository.ErrOfferNotFound) {
				return errors.Wrap(domainerrors.ErrOfferNotFound, "offer not found")
			}

			return errors.Wrap(err, "failed to find offer")
		}

		if status == entity.OfferStatusAccepted {
			propertyRepo := repoFactory.NewPropertyRepository()

			// 2. Lock the property row so concurrent acceptances on the same
			// property serialize here rather than both committing.
			if _, err := propertyRepo.FindByIDForUpdate(ctx, offer.PropertyID); err != nil {
				if errors.Is(err, repository.ErrPropertyNotFound) {
					return errors.Wrap(domainerrors.ErrPropertyNotFound, "property not found")
				}

				return errors.Wrap(err, "failed to lock property")
			}

			// 3. Reject the siblings before accepting, so no interleaving can
			// observe two accepted offers.
			if err := offerRepo.RejectSiblings(ctx, offer.PropertyID, offer.ID); err != nil {
				return errors.Wrap(err, "failed to reject sibling offers")
			}
		}

		// 4. Apply the requested status
		if err := offerRepo.UpdateStatus(ctx, offer.ID, status); err != nil {
			return errors.Wrap(err, "failed to update offer status")
		}

		offer.Status = status
		updated = offer

		return nil
	})

	if err != nil {
		srv.logger.Error("failed to set offer status", "offerID", offerID, "status", status, "error", err)

		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}

		// A failure mid-sequence leaves the outcome unknown to the caller.
		return nil, errors.Wrap(domainerrors.ErrTransactionFailed, "failed to set offer status")
	}

	return updated, nil
}

// MarkPaid records a completed purchase: status becomes bought and the payment
// transaction id is stored. Unless configured otherwise, the offer must have
// been accepted first.
func (srv *offerService) MarkPaid(ctx context.Context, offerID uuid.UUID, transactionID string) (*entity.Offer, error) {
	srv.logger.Info("Marking offer paid", "offerID", offerID)

	if transactionID == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "transaction id is required")
	}

	var updated *entity.Offer

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		offerRepo := repoFactory.NewOfferRepository()

		// 1. Find the offer
		offer, err := offerRepo.FindByID(ctx, offerID)
		if err != nil {
			if errors.Is(err, repository.ErrOfferNotFound) {
				return errors.Wrap(domainerrors.ErrOfferNotFound, "offer not found")
			}

			return errors.Wrap(err, "failed to find offer")
		}

		// 2. Guard the transition unless the permissive mode is on
		if !srv.allowUnacceptedPurchase && offer.Status != entity.OfferStatusAccepted {
			return errors.Wrap(domainerrors.ErrInvalidOfferTransition,
				"offer must be accepted before payment")
		}

		// 3. Record the purchase
		if err := offerRepo.MarkBought(ctx, offer.ID, transactionID); err != nil {
			return errors.Wrap(err, "failed to mark offer bought")
		}

		offer.Status = entity.OfferStatusBought
		offer.TransactionID = transactionID
		updated = offer

		return nil
	})

	if err != nil {
		srv.logger.Error("failed to mark offer paid", "offerID", offerID, "error", err)

		return nil, errors.Wrap(err, "failed to mark offer paid")
	}

	return updated, nil
}

// ListOffersForBuyer returns a buyer's offers, newest first, each with its
// property populated.
func (srv *offerService) ListOffersForBuyer(ctx context.Context, buyerEmail string) ([]*entity.Offer, error) {
	srv.logger.Debug("Listing offers for buyer", "buyerEmail", buyerEmail)

	var offers []*entity.Offer

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewOfferRepository().FindByBuyer(ctx, buyerEmail)
		if err != nil {
			return errors.Wrap(err, "failed to list offers")
		}
		offers = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to list offers for buyer")
	}

	return offers, nil
}

// ListAllOffers returns every offer, newest first, for the dashboard views.
func (srv *offerService) ListAllOffers(ctx context.Context) ([]*entity.Offer, error) {
	srv.logger.Debug("Listing all offers")

	var offers []*entity.Offer

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewOfferRepository().FindAll(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list offers")
		}
		offers = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to list all offers")
	}

	return offers, nil
}

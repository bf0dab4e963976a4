package postgres

import (
	"context"

	"metroshelter/internal/domain/entity"
	domainerrors "metroshelter/internal/domain/errors"
	"metroshelter/internal/domain/repository"
	"metroshelter/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// offerRepository implements the repository.OfferRepository interface using GORM.
type offerRepository struct {
	db *gorm.DB
}

// NewOfferRepository is the constructor for offerRepository.
func NewOfferRepository(db *gorm.DB) repository.OfferRepository {
	return &offerRepository{
		db: db,
	}
}

// Create persists a new offer against a property.
func (repo *offerRepository) Create(ctx context.Context, offer *entity.Offer) error {
	offerM := fromOfferDomain(offer)

	if err := repo.db.WithContext(ctx).Create(offerM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrPropertyNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required offer information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create offer")
	}

	offer.ID = offerM.ID
	offer.CreatedAt = offerM.CreatedAt
	offer.UpdatedAt = offerM.UpdatedAt

	return nil
}

// FindByID retrieves an offer by its unique ID.
func (repo *offerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Offer, error) {
	var offerM model.OfferModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&offerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOfferNotFound
		}

		return nil, errors.Wrap(err, "failed to find offer by id")
	}

	return toOfferDomain(&offerM), nil
}

// FindByBuyer retrieves a buyer's offers, newest first, with each property populated.
func (repo *offerRepository) FindByBuyer(ctx context.Context, buyerEmail string) ([]*entity.Offer, error) {
	var offerModels []*model.OfferModel

	if err := repo.db.WithContext(ctx).
		Preload("Property").
		Where("buyer_email = ?", buyerEmail).
		Order("created_at DESC").
		Find(&offerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find offers by buyer")
	}

	return toOfferDomainSlice(offerModels), nil
}

// FindAll retrieves every offer, newest first, with each property populated.
func (repo *offerRepository) FindAll(ctx context.Context) ([]*entity.Offer, error) {
	var offerModels []*model.OfferModel

	if err := repo.db.WithContext(ctx).
		Preload("Property").
		Order("created_at DESC").
		Find(&offerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find offers")
	}

	return toOfferDomainSlice(offerModels), nil
}

// FindByProperty retrieves all offers against a property.
func (repo *offerRepository) FindByProperty(ctx context.Context, propertyID uuid.UUID) ([]*entity.Offer, error) {
	var offerModels []*model.OfferModel

	if err := repo.db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Order("created_at DESC").
		Find(&offerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find offers by property")
	}

	return toOfferDomainSlice(offerModels), nil
}

// UpdateStatus sets an offer's lifecycle status.
func (repo *offerRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OfferStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OfferModel{}).
		Where("id = ?", id).
		Update("status", status.String())

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update offer status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOfferNotFound
	}

	return nil
}

// RejectSiblings marks every offer on the property except acceptedID as rejected.
// Zero affected rows is fine: the accepted offer may be the only one.
func (repo *offerRepository) RejectSiblings(ctx context.Context, propertyID, acceptedID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OfferModel{}).
		Where("property_id = ? AND id <> ?", propertyID, acceptedID).
		Update("status", entity.OfferStatusRejected.String())

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to reject sibling offers")
	}

	return nil
}

// MarkBought sets status bought and records the payment transaction id.
func (repo *offerRepository) MarkBought(ctx context.Context, id uuid.UUID, transactionID string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OfferModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":         entity.OfferStatusBought.String(),
			"transaction_id": transactionID,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark offer bought")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOfferNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toOfferDomain converts a GORM OfferModel to a domain Offer entity.
func toOfferDomain(data *model.OfferModel) *entity.Offer {
	if data == nil {
		return nil
	}

	return &entity.Offer{
		ID:            data.ID,
		BuyerEmail:    data.BuyerEmail,
		BuyerName:     data.BuyerName,
		OfferAmount:   data.OfferAmount,
		OfferDate:     data.OfferDate,
		Status:        entity.OfferStatus(data.Status),
		TransactionID: data.TransactionID,
		PropertyID:    data.PropertyID,
		Property:      toPropertyDomain(data.Property),
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func toOfferDomainSlice(models []*model.OfferModel) []*entity.Offer {
	offers := make([]*entity.Offer, 0, len(models))
	for _, offerM := range models {
		offers = append(offers, toOfferDomain(offerM))
	}

	return offers
}

// fromOfferDomain converts a domain Offer entity to a GORM OfferModel.
func fromOfferDomain(data *entity.Offer) *model.OfferModel {
	if data == nil {
		return nil
	}

	return &model.OfferModel{
		ID:            data.ID,
		BuyerEmail:    data.BuyerEmail,
		BuyerName:     data.BuyerName,
		OfferAmount:   data.OfferAmount,
		OfferDate:     data.OfferDate,
		Status:        data.Status.String(),
		TransactionID: data.TransactionID,
		PropertyID:    data.PropertyID,
	}
}

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
	"gorm.io/gorm/clause"
)

// propertyRepository implements the repository.PropertyRepository interface using GORM.
type propertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository is the constructor for propertyRepository.
func NewPropertyRepository(db *gorm.DB) repository.PropertyRepository {
	return &propertyRepository{
		db: db,
	}
}

// Create persists a new property.
func (repo *propertyRepository) Create(ctx context.Context, property *entity.Property) error {
	propertyM := fromPropertyDomain(property)

	if err := repo.db.WithContext(ctx).Create(propertyM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required property information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create property")
	}

	property.ID = propertyM.ID
	property.CreatedAt = propertyM.CreatedAt
	property.UpdatedAt = propertyM.UpdatedAt

	return nil
}

// FindByID retrieves a property with its reviews preloaded in creation order.
func (repo *propertyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Property, error) {
	var propertyM model.PropertyModel

	if err := repo.db.WithContext(ctx).
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Order("reviews.created_at ASC")
		}).
		Where("id = ?", id).
		First(&propertyM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPropertyNotFound
		}

		return nil, errors.Wrap(err, "failed to find property by id")
	}

	return toPropertyDomain(&propertyM), nil
}

// FindByIDForUpdate retrieves a property and takes a row lock on it. The lock
// scopes offer acceptance to one property at a time and is released on commit
// or rollback of the surrounding transaction.
func (repo *propertyRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Property, error) {
	var propertyM model.PropertyModel

	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("id = ?", id).
		First(&propertyM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPropertyNotFound
		}

		return nil, errors.Wrap(err, "failed to find property by id for update")
	}

	return toPropertyDomain(&propertyM), nil
}

// Find retrieves properties matching the filter, newest first.
func (repo *propertyRepository) Find(ctx context.Context, filter repository.PropertyFilter) ([]*entity.Property, error) {
	query := repo.db.WithContext(ctx).Model(&model.PropertyModel{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.AuthorEmail != "" {
		query = query.Where("author_email = ?", filter.AuthorEmail)
	}
	if filter.AdvertisedOnly {
		query = query.Where("is_advertised = ?", true)
	}

	var propertyModels []*model.PropertyModel
	if err := query.Order("created_at DESC").Find(&propertyModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find properties")
	}

	properties := make([]*entity.Property, 0, len(propertyModels))
	for _, propertyM := range propertyModels {
		properties = append(properties, toPropertyDomain(propertyM))
	}

	return properties, nil
}

// Update merges the given fields into an existing property record.
// Only non-association columns are written; the zero-valued CreatedAt is left alone.
func (repo *propertyRepository) Update(ctx context.Context, property *entity.Property) error {
	propertyM := fromPropertyDomain(property)

	result := repo.db.WithContext(ctx).
		Model(&model.PropertyModel{}).
		Where("id = ?", property.ID).
		Updates(map[string]any{
			"image_ref":    propertyM.ImageRef,
			"title":        propertyM.Title,
			"city_name":    propertyM.CityName,
			"country":      propertyM.Country,
			"lat":          propertyM.Lat,
			"lng":          propertyM.Lng,
			"full_address": propertyM.FullAddress,
			"start_price":  propertyM.StartPrice,
			"end_price":    propertyM.EndPrice,
			"description":  propertyM.Description,
		})

	if result.Error != nil {
		if isNotNullConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required property information")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update property")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPropertyNotFound
	}

	return nil
}

// UpdateStatus sets the verification status tag.
func (repo *propertyRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.PropertyStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PropertyModel{}).
		Where("id = ?", id).
		Update("status", status.String())

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update property status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPropertyNotFound
	}

	return nil
}

// UpdateAdvertised sets the advertisement flag.
func (repo *propertyRepository) UpdateAdvertised(ctx context.Context, id uuid.UUID, advertised bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PropertyModel{}).
		Where("id = ?", id).
		Update("is_advertised", advertised)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update property advertisement flag")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPropertyNotFound
	}

	return nil
}

// Delete removes a property by ID.
func (repo *propertyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PropertyModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete property")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPropertyNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toPropertyDomain converts a GORM PropertyModel to a domain Property entity.
func toPropertyDomain(data *model.PropertyModel) *entity.Property {
	if data == nil {
		return nil
	}

	reviews := make([]*entity.Review, 0, len(data.Reviews))
	for _, reviewM := range data.Reviews {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return &entity.Property{
		ID:           data.ID,
		ImageRef:     data.ImageRef,
		Title:        data.Title,
		CityName:     data.CityName,
		Country:      data.Country,
		Lat:          data.Lat,
		Lng:          data.Lng,
		FullAddress:  data.FullAddress,
		StartPrice:   data.StartPrice,
		EndPrice:     data.EndPrice,
		AuthorEmail:  data.AuthorEmail,
		Description:  data.Description,
		Status:       entity.PropertyStatus(data.Status),
		IsAdvertised: data.IsAdvertised,
		Reviews:      reviews,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromPropertyDomain converts a domain Property entity to a GORM PropertyModel.
// Associations are never written through this mapper; reviews have their own repository.
func fromPropertyDomain(data *entity.Property) *model.PropertyModel {
	if data == nil {
		return nil
	}

	return &model.PropertyModel{
		ID:           data.ID,
		ImageRef:     data.ImageRef,
		Title:        data.Title,
		CityName:     data.CityName,
		Country:      data.Country,
		Lat:          data.Lat,
		Lng:          data.Lng,
		FullAddress:  data.FullAddress,
		StartPrice:   data.StartPrice,
		EndPrice:     data.EndPrice,
		AuthorEmail:  data.AuthorEmail,
		Description:  data.Description,
		Status:       data.Status.String(),
		IsAdvertised: data.IsAdvertised,
	}
}

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

// wishlistRepository implements the repository.WishlistRepository interface using GORM.
type wishlistRepository struct {
	db *gorm.DB
}

// NewWishlistRepository is the constructor for wishlistRepository.
func NewWishlistRepository(db *gorm.DB) repository.WishlistRepository {
	return &wishlistRepository{
		db: db,
	}
}

// Create persists a new wishlist entry.
func (repo *wishlistRepository) Create(ctx context.Context, entry *entity.WishlistEntry) error {
	entryM := fromWishlistEntryDomain(entry)

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateWishlistEntry
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrPropertyNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required wishlist information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create wishlist entry")
	}

	entry.ID = entryM.ID
	entry.CreatedAt = entryM.CreatedAt

	return nil
}

// FindByID retrieves a wishlist entry by its unique ID.
func (repo *wishlistRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.WishlistEntry, error) {
	var entryM model.WishlistEntryModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&entryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWishlistEntryNotFound
		}

		return nil, errors.Wrap(err, "failed to find wishlist entry by id")
	}

	return toWishlistEntryDomain(&entryM), nil
}

// FindByAuthor retrieves a buyer's wishlist, newest first, with each property populated.
func (repo *wishlistRepository) FindByAuthor(ctx context.Context, authorEmail string) ([]*entity.WishlistEntry, error) {
	var entryModels []*model.WishlistEntryModel

	if err := repo.db.WithContext(ctx).
		Preload("Property").
		Where("author_email = ?", authorEmail).
		Order("created_at DESC").
		Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find wishlist entries by author")
	}

	entries := make([]*entity.WishlistEntry, 0, len(entryModels))
	for _, entryM := range entryModels {
		entries = append(entries, toWishlistEntryDomain(entryM))
	}

	return entries, nil
}

// Delete removes a wishlist entry by ID.
func (repo *wishlistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.WishlistEntryModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete wishlist entry")
	}
	if result.RowsAffected == 0 {
		return repository.ErrWishlistEntryNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toWishlistEntryDomain converts a GORM WishlistEntryModel to a domain WishlistEntry entity.
func toWishlistEntryDomain(data *model.WishlistEntryModel) *entity.WishlistEntry {
	if data == nil {
		return nil
	}

	return &entity.WishlistEntry{
		ID:          data.ID,
		AuthorEmail: data.AuthorEmail,
		PropertyID:  data.PropertyID,
		Property:    toPropertyDomain(data.Property),
		CreatedAt:   data.CreatedAt,
	}
}

// fromWishlistEntryDomain converts a domain WishlistEntry entity to a GORM WishlistEntryModel.
func fromWishlistEntryDomain(data *entity.WishlistEntry) *model.WishlistEntryModel {
	if data == nil {
		return nil
	}

	return &model.WishlistEntryModel{
		ID:          data.ID,
		AuthorEmail: data.AuthorEmail,
		PropertyID:  data.PropertyID,
	}
}

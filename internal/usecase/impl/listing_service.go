package impl

import (
	"context"
	"log/slog"

	"metroshelter/config"
	"metroshelter/internal/domain/entity"
	domainerrors "metroshelter/internal/domain/errors"
	"metroshelter/internal/domain/repository"
	"metroshelter/internal/domain/service"
	"metroshelter/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// listingService implements the ListingUsecase interface.
type listingService struct {
	fx.In

	txManager  repository.TransactionManager
	blobStore  service.BlobStore
	logger     *slog.Logger
	blobFolder string
}

// NewListingService is the constructor for listingService.
func NewListingService(
	txManager repository.TransactionManager,
	blobStore service.BlobStore,
	logger *slog.Logger,
	cfg *config.Config,
) usecase.ListingUsecase {
	folder := "properties"
	if cfg.Blob != nil && cfg.Blob.Folder != "" {
		folder = cfg.Blob.Folder
	}

	return &listingService{
		txManager:  txManager,
		blobStore:  blobStore,
		logger:     logger,
		blobFolder: folder,
	}
}

// CreateProperty stores the listing image and creates the record. If the
// record write fails the freshly stored blob is destroyed again, so a failed
// create leaves nothing behind in the bucket.
func (srv *listingService) CreateProperty(ctx context.Context, input *usecase.CreatePropertyInput) (*entity.Property, error) {
	srv.logger.Info("Creating property", "title", input.Title, "authorEmail", input.AuthorEmail)

	if input.Image == nil || len(input.Image.Data) == 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "listing image is required")
	}
	if input.Lat == nil || input.Lng == nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "listing coordinates are required")
	}

	imageRef, err := srv.blobStore.Store(ctx, input.Image.Data, srv.blobFolder, input.Image.Filename)
	if err != nil {
		return nil, errors.Wrap(err, "failed to store listing image")
	}

	property := &entity.Property{
		ImageRef:    imageRef,
		Title:       input.Title,
		CityName:    input.CityName,
		Country:     input.Country,
		Lat:         *input.Lat,
		Lng:         *input.Lng,
		FullAddress: input.FullAddress,
		StartPrice:  input.StartPrice,
		EndPrice:    input.EndPrice,
		AuthorEmail: input.AuthorEmail,
		Description: input.Description,
		Status:      entity.PropertyStatusPending,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewPropertyRepository().Create(ctx, property); err != nil {
			return errors.Wrap(err, "failed to create property")
		}

		return nil
	})

	if err != nil {
		srv.logger.Error("failed to create property", "title", input.Title, "error", err)

		// Compensate: the record never existed, so the blob must not either.
		if destroyErr := srv.blobStore.Destroy(ctx, imageRef); destroyErr != nil {
			srv.logger.Error("failed to destroy orphaned listing image", "imageRef", imageRef, "error", destroyErr)
		}

		return nil, errors.Wrap(err, "failed to create property")
	}

	return property, nil
}

// UpdateProperty merges the supplied fields into an existing listing. When a
// new image is uploaded it replaces the stored reference and the previous blob
// is released afterwards; a record-write failure destroys the new blob instead.
func (srv *listingService) UpdateProperty(ctx context.Context, propertyID uuid.UUID, input *usecase.UpdatePropertyInput) (*entity.Property, error) {
	srv.logger.Info("Updating property", "propertyID", propertyID)

	var newImageRef string
	if input.Image != nil && len(input.Image.Data) > 0 {
		ref, err := srv.blobStore.Store(ctx, input.Image.Data, srv.blobFolder, input.Image.Filename)
		if err != nil {
			return nil, errors.Wrap(err, "failed to store listing image")
		}
		newImageRef = ref
	}

	var updated *entity.Property
	var oldImageRef string

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		propertyRepo := repoFactory.NewPropertyRepository()

		// 1. Find the property
		property, err := propertyRepo.FindByID(ctx, propertyID)
		if err != nil {
			if errors.Is(err, repository.ErrPropertyNotFound) {
				return errors.Wrap(domainerrors.ErrPropertyNotFound, "property not found")
			}

			return errors.Wrap(err, "failed to find property")
		}

		// 2. Merge the supplied fields
		if input.Title != nil {
			property.Title = *input.Title
		}
		if input.CityName != nil {
			property.CityName = *input.CityName
		}
		if input.Country != nil {
			property.Country = *input.Country
		}
		if input.Lat != nil {
			property.Lat = *input.Lat
		}
		if input.Lng != nil {
			property.Lng = *input.Lng
		}
		if input.FullAddress != nil {
			property.FullAddress = *input.FullAddress
		}
		if input.StartPrice != nil {
			property.StartPrice = *input.StartPrice
		}
		if input.EndPrice != nil {
			property.EndPrice = *input.EndPrice
		}
		if input.Description != nil {
			property.Description = *input.Description
		}
		if newImageRef != "" {
			oldImageRef = property.ImageRef
			property.ImageRef = newImageRef
		}

		// 3. Save the updated record
		if err := propertyRepo.Update(ctx, property); err != nil {
			return errors.Wrap(err, "failed to update property")
		}
		updated = property

		return nil
	})

	if err != nil {
		srv.logger.Error("failed to update property", "propertyID", propertyID, "error", err)

		if newImageRef != "" {
			if destroyErr := srv.blobStore.Destroy(ctx, newImageRef); destroyErr != nil {
				srv.logger.Error("failed to destroy orphaned listing image", "imageRef", newImageRef, "error", destroyErr)
			}
		}

		return nil, errors.Wrap(err, "failed to update property")
	}

	// Release the replaced blob. The record already points at the new image,
	// so a failure here only leaks storage and is logged, never propagated.
	if oldImageRef != "" {
		if destroyErr := srv.blobStore.Destroy(ctx, oldImageRef); destroyErr != nil {
			srv.logger.Error("failed to release replaced listing image", "imageRef", oldImageRef, "error", destroyErr)
		}
	}

	return updated, nil
}

// DeleteProperty removes the record and then releases its image blob. Blob
// release is fire-and-forget relative to the record deletion.
func (srv *listingService) DeleteProperty(ctx context.Context, propertyID uuid.UUID) error {
	srv.logger.Info("Deleting property", "propertyID", propertyID)

	var imageRef string

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		propertyRepo := repoFactory.NewPropertyRepository()

		property, err := propertyRepo.FindByID(ctx, propertyID)
		if err != nil {
			if errors.Is(err, repository.ErrPropertyNotFound) {
				return errors.Wrap(domainerrors.ErrPropertyNotFound, "property not found")
			}

			return errors.Wrap(err, "failed to find property")
		}
		imageRef = property.ImageRef

		if err := propertyRepo.Delete(ctx, propertyID); err != nil {
			return errors.Wrap(err, "failed to delete property")
		}

		return nil
	})

	if err != nil {
		srv.logger.Error("failed to delete property", "propertyID", propertyID, "error", err)

		return errors.Wrap(err, "failed to delete property")
	}

	if imageRef != "" {
		if destroyErr := srv.blobStore.Destroy(ctx, imageRef); destroyErr != nil {
			srv.logger.Error("failed to release listing image", "propertyID", propertyID, "imageRef", imageRef, "error", destroyErr)
		}
	}

	return nil
}

// GetProperty returns a single listing with its reviews populated.
func (srv *listingService) GetProperty(ctx context.Context, propertyID uuid.UUID) (*entity.Property, error) {
	srv.logger.Debug("Getting property", "propertyID", propertyID)

	var property *entity.Property

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewPropertyRepository().FindByID(ctx, propertyID)
		if err != nil {
			if errors.Is(err, repository.ErrPropertyNotFound) {
				return errors.Wrap(domainerrors.ErrPropertyNotFound, "property not found")
			}

			return errors.Wrap(err, "failed to find property")
		}
		property = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to get property")
	}

	return property, nil
}

// ListProperties returns listings matching the filter, newest first.
func (srv *listingService) ListProperties(ctx context.Context, filter *repository.PropertyFilter) ([]*entity.Property, error) {
	srv.logger.Debug("Listing properties", "filter", filter)

	var appliedFilter repository.PropertyFilter
	if filter != nil {
		appliedFilter = *filter
	}

	if appliedFilter.Status != "" && !appliedFilter.Status.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown property status")
	}

	var properties []*entity.Property

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewPropertyRepository().Find(ctx, appliedFilter)
		if err != nil {
			return errors.Wrap(err, "failed to list properties")
		}
		properties = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to list properties")
	}

	return properties, nil
}

// SetPropertyStatus sets the verification status tag on a listing.
func (srv *listingService) SetPropertyStatus(ctx context.Context, propertyID uuid.UUID, status entity.PropertyStatus) error {
	srv.logger.Info("Setting property status", "propertyID", propertyID, "status", status)

	if !status.IsValid() {
		return errors.Wrap(domainerrors.ErrValidationFailed, "unknown property status")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewPropertyRepository().UpdateStatus(ctx, propertyID, status); err != nil {
			if errors.Is(err, repository.ErrPropertyNotFound) {
				return errors.Wrap(domainerrors.ErrPropertyNotFound, "property not found")
			}

			return errors.Wrap(err, "failed to update property status")
		}

		return nil
	})

	if err != nil {
		srv.logger.Error("failed to set property status", "propertyID", propertyID, "error", err)

		return errors.Wrap(err, "failed to set property status")
	}

	return nil
}

// SetAdvertised toggles the advertisement flag on a listing.
func (srv *listingService) SetAdvertised(ctx context.Context, propertyID uuid.UUID, advertised bool) error {
	srv.logger.Info("Setting property advertisement flag", "propertyID", propertyID, "advertised", advertised)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewPropertyRepository().UpdateAdvertised(ctx, propertyID, advertised); err != nil {
			if errors.Is(err, repository.ErrPropertyNotFound) {
				return errors.Wrap(domainerrors.ErrPropertyNotFound, "property not found")
			}

			return errors.Wrap(err, "failed to update advertisement flag")
		}

		return nil
	})

	if err != nil {
		srv.logger.Error("failed to set advertisement flag", "propertyID", propertyID, "error", err)

		return errors.Wrap(err, "failed to set advertisement flag")
	}

	return nil
}

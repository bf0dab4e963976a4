package repository

import (
	"context"

	"metroshelter/internal/domain/repository"
)

// StubRepositoryFactory hands out fixed repository instances, letting tests
// wire individual mocks into a transaction callback.
type StubRepositoryFactory struct {
	UserRepo     repository.UserRepository
	PropertyRepo repository.PropertyRepository
	ReviewRepo   repository.ReviewRepository
	WishlistRepo repository.WishlistRepository
	OfferRepo    repository.OfferRepository
}

func (f *StubRepositoryFactory) NewUserRepository() repository.UserRepository {
	return f.UserRepo
}

func (f *StubRepositoryFactory) NewPropertyRepository() repository.PropertyRepository {
	return f.PropertyRepo
}

func (f *StubRepositoryFactory) NewReviewRepository() repository.ReviewRepository {
	return f.ReviewRepo
}

func (f *StubRepositoryFactory) NewWishlistRepository() repository.WishlistRepository {
	return f.WishlistRepo
}

func (f *StubRepositoryFactory) NewOfferRepository() repository.OfferRepository {
	return f.OfferRepo
}

// StubTransactionManager executes the callback against a fixed factory,
// returning the callback's error the way a real transaction surfaces a
// rollback cause. Setting ExecuteErr simulates a transaction that cannot
// start or commit.
type StubTransactionManager struct {
	Factory    repository.RepositoryFactory
	ExecuteErr error
}

func (m *StubTransactionManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	if m.ExecuteErr != nil {
		return m.ExecuteErr
	}

	return fn(m.Factory)
}

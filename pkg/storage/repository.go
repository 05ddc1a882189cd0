package storage

import (
	"context"
	"pkgadmin/pkg/domain"
)

// RepositoryStorage defines operations on package repositories.
type RepositoryStorage interface {
	// Repositories returns every package repository ordered by name.
	Repositories(ctx context.Context) ([]domain.PackageRepository, error)
	// RepositoryByID fetches a repository by its ID. Returns nil when not found.
	RepositoryByID(ctx context.Context, ID domain.RepositoryID) (*domain.PackageRepository, error)
	// StoreRepository inserts a new repository and returns it as stored.
	StoreRepository(ctx context.Context, repo domain.PackageRepository) (*domain.PackageRepository, error)
}

package storage

import (
	"context"
	"pkgadmin/pkg/domain"
)

// PackageStorage defines CRUD and query operations on package definitions.
// Lookups return nil (and no error) when the package does not exist. Returned
// packages carry the id and name of their repository.
type PackageStorage interface {
	// Packages returns every package, ordered by creation time and id.
	Packages(ctx context.Context) ([]domain.PackageDefinition, error)
	// PackagesByRepository returns the packages of a single repository.
	PackagesByRepository(ctx context.Context, repositoryID domain.RepositoryID) ([]domain.PackageDefinition, error)
	// PackageByID fetches a package by its ID.
	PackageByID(ctx context.Context, ID domain.PackageID) (*domain.PackageDefinition, error)
	// LockPackageByID fetches a package by its ID and locks its row until the
	// surrounding transaction ends. It must be called inside a transaction.
	LockPackageByID(ctx context.Context, ID domain.PackageID) (*domain.PackageDefinition, error)
	// StorePackage inserts a new package and returns it as stored.
	StorePackage(ctx context.Context, pkg domain.PackageDefinition) (*domain.PackageDefinition, error)
	// UpdatePackage replaces the content of the package with pkg.ID and returns
	// the updated row.
	UpdatePackage(ctx context.Context, pkg domain.PackageDefinition) (*domain.PackageDefinition, error)
	// DeletePackage removes the package and reports whether it existed.
	DeletePackage(ctx context.Context, ID domain.PackageID) (bool, error)
}

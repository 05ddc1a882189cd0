// Package packages implements the package configuration service: validated,
// transactional writes of package definitions with optimistic concurrency,
// plus lookups of the package repositories that own them.
package packages

import (
	"context"
	"pkgadmin/pkg/domain"
)

//go:generate mockgen -package mockpackages -source=interface.go -destination=mock/mockpackages.go *
type Service interface {
	List(ctx context.Context) ([]domain.PackageDefinition, error)
	Find(ctx context.Context, ID domain.PackageID) (*domain.PackageDefinition, error)
	Create(ctx context.Context,
		pkg *domain.PackageDefinition,
		repositoryID domain.RepositoryID,
		actor domain.User) (*domain.PackageDefinition, error)
	Update(ctx context.Context,
		ID domain.PackageID,
		pkg *domain.PackageDefinition,
		expectedFingerprint string,
		actor domain.User) (*domain.PackageDefinition, error)
	Delete(ctx context.Context, pkg *domain.PackageDefinition, actor domain.User) error
	History(ctx context.Context, ID domain.PackageID, limit uint) ([]domain.Revision, error)
}

type RepositoryFinder interface {
	Find(ctx context.Context, ID domain.RepositoryID) (*domain.PackageRepository, error)
	List(ctx context.Context) ([]domain.PackageRepository, error)
	Add(ctx context.Context, repo domain.PackageRepository) (*domain.PackageRepository, error)
}

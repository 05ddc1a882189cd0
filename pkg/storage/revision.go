package storage

import (
	"context"
	"pkgadmin/pkg/domain"
)

// RevisionStorage persists the package config history.
type RevisionStorage interface {
	// StoreRevision appends a revision to the history.
	StoreRevision(ctx context.Context, rev domain.Revision) (*domain.Revision, error)
	// PackageRevisions returns the newest revisions of a package first, at most limit entries.
	PackageRevisions(ctx context.Context, ID domain.PackageID, limit uint) ([]domain.Revision, error)
}

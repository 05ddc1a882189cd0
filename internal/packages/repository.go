package packages

import (
	"context"
	"errors"
	"fmt"
	"pkgadmin/pkg/domain"
	"pkgadmin/pkg/serrors"
	"pkgadmin/pkg/storage"
	"strings"

	"github.com/google/uuid"
)

type repositoryFinder struct {
	storage storage.Storage
}

// Find returns the repository with the given ID or a not-found error.
func (r repositoryFinder) Find(ctx context.Context, ID domain.RepositoryID) (*domain.PackageRepository, error) {
	repo, err := r.storage.RepositoryByID(ctx, ID)
	if err != nil {
		return nil, fmt.Errorf("could not get package repository: %w", err)
	}
	if repo == nil {
		return nil, serrors.With(serrors.ErrNotFound, "package repository '%s' not found", ID)
	}

	return repo, nil
}

func (r repositoryFinder) List(ctx context.Context) ([]domain.PackageRepository, error) {
	repos, err := r.storage.Repositories(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list package repositories: %w", err)
	}

	return repos, nil
}

// Add validates and registers a new package repository. An id is assigned
// when repo has none.
func (r repositoryFinder) Add(ctx context.Context, repo domain.PackageRepository) (*domain.PackageRepository, error) {
	repo.Name = strings.TrimSpace(repo.Name)
	if repo.ID == "" {
		repo.ID = domain.RepositoryID(uuid.NewString())
	}
	if fields := ValidateRepository(&repo); !fields.Empty() {
		return nil, serrors.WithFields(serrors.ErrUnprocessable, fields,
			"Validations failed for package repository '%s'. Please correct and resubmit.", repo.Name)
	}

	stored, err := r.storage.StoreRepository(ctx, repo)
	if errors.Is(err, storage.ErrDuplicate) {
		return nil, serrors.Wrap(serrors.ErrConflict, err, "package repository '%s' already exists", repo.Name)
	}
	if err != nil {
		return nil, fmt.Errorf("could not add package repository: %w", err)
	}

	return stored, nil
}

// NewRepositoryFinder creates a RepositoryFinder backed by the provided storage.
func NewRepositoryFinder(storage storage.Storage) RepositoryFinder {
	return &repositoryFinder{storage: storage}
}

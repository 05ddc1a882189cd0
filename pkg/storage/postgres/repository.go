package postgres

import (
	"context"
	"fmt"
	"pkgadmin/pkg/domain"
	"pkgadmin/pkg/storage"

	"github.com/doug-martin/goqu/v9"
)

const (
	repositoriesTable = "package_repositories"
)

func (p *PgSQL) Repositories(ctx context.Context) ([]domain.PackageRepository, error) {
	var rows []PgRepository
	if err := p.Builder.From(repositoriesTable).
		Order(goqu.I("name").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch repositories from pg: %w", err)
	}

	return pgRepositoriesToDomain(rows)
}

// RepositoryByID returns a repository by its ID, or nil when it does not exist.
func (p *PgSQL) RepositoryByID(ctx context.Context, ID domain.RepositoryID) (*domain.PackageRepository, error) {
	var row PgRepository
	found, err := p.Builder.From(repositoriesTable).
		Where(goqu.I("id").Eq(string(ID))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch repository by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) StoreRepository(ctx context.Context,
	repo domain.PackageRepository) (*domain.PackageRepository, error) {
	var row PgRepository
	if err := row.FromDomain(repo); err != nil {
		return nil, err
	}

	var stored PgRepository
	if _, err := p.Builder.Insert(repositoriesTable).
		Rows(row).
		Returning(&PgRepository{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		if _, ok := uniqueViolation(err); ok {
			return nil, storage.ErrDuplicate
		}

		return nil, fmt.Errorf("could not store repository into pg: %w", err)
	}

	return stored.ToDomain()
}

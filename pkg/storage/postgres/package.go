package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"pkgadmin/pkg/domain"
	"pkgadmin/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	packagesTable      = "packages"
	packagesPrimaryKey = "packages_pkey"
)

// selectPackages selects packages joined with the name of their repository.
func (p *PgSQL) selectPackages() *goqu.SelectDataset {
	return p.Builder.From(goqu.T(packagesTable).As("p")).
		Join(goqu.T(repositoriesTable).As("r"), goqu.On(goqu.I("p.repository_id").Eq(goqu.I("r.id")))).
		Select(
			goqu.I("p.id"),
			goqu.I("p.repository_id"),
			goqu.I("p.name"),
			goqu.I("p.auto_update"),
			goqu.I("p.configuration"),
			goqu.I("p.created_at"),
			goqu.I("p.updated_at"),
			goqu.I("r.name").As("repository_name"),
		).
		Order(goqu.I("p.created_at").Asc(), goqu.I("p.id").Asc())
}

func (p *PgSQL) Packages(ctx context.Context) ([]domain.PackageDefinition, error) {
	var rows []PgPackage
	if err := p.selectPackages().Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch packages from pg: %w", err)
	}

	return pgPackagesToDomain(rows)
}

func (p *PgSQL) PackagesByRepository(ctx context.Context,
	repositoryID domain.RepositoryID) ([]domain.PackageDefinition, error) {
	var rows []PgPackage
	if err := p.selectPackages().
		Where(goqu.I("p.repository_id").Eq(string(repositoryID))).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch packages by repository from pg: %w", err)
	}

	return pgPackagesToDomain(rows)
}

// PackageByID returns a package by its ID, or nil when it does not exist.
func (p *PgSQL) PackageByID(ctx context.Context, ID domain.PackageID) (*domain.PackageDefinition, error) {
	return p.packageByID(ctx, p.selectPackages(), ID)
}

// LockPackageByID is like PackageByID but also takes a row lock on the package
// that is held until the transaction ends. Concurrent writers of the same
// package are serialized on that lock.
func (p *PgSQL) LockPackageByID(ctx context.Context, ID domain.PackageID) (*domain.PackageDefinition, error) {
	if _, ok := p.DB.(*sql.Tx); !ok {
		return nil, storage.ErrNotInTx
	}

	return p.packageByID(ctx, p.selectPackages().ForUpdate(exp.Wait, goqu.T("p")), ID)
}

func (p *PgSQL) packageByID(ctx context.Context,
	ds *goqu.SelectDataset,
	ID domain.PackageID) (*domain.PackageDefinition, error) {
	var row PgPackage
	found, err := ds.Where(goqu.I("p.id").Eq(string(ID))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch package by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) StorePackage(ctx context.Context, pkg domain.PackageDefinition) (*domain.PackageDefinition, error) {
	var row PgPackage
	if err := row.FromDomain(pkg); err != nil {
		return nil, err
	}

	if _, err := p.Builder.Insert(packagesTable).
		Rows(row).
		Executor().ExecContext(ctx); err != nil {
		if constraint, ok := uniqueViolation(err); ok {
			if constraint == packagesPrimaryKey {
				return nil, storage.ErrDuplicateID
			}

			return nil, storage.ErrDuplicate
		}

		return nil, fmt.Errorf("could not store package into pg: %w", err)
	}

	return p.PackageByID(ctx, pkg.ID)
}

// UpdatePackage overwrites name, repository, auto_update and configuration of
// the package and bumps updated_at. Returns nil when the package is gone.
func (p *PgSQL) UpdatePackage(ctx context.Context, pkg domain.PackageDefinition) (*domain.PackageDefinition, error) {
	props, err := marshalProperties(pkg.Configuration)
	if err != nil {
		return nil, fmt.Errorf("could not marshal package configuration: %w", err)
	}

	res, err := p.Builder.Update(packagesTable).
		Set(goqu.Record{
			"repository_id": string(pkg.Repository.ID),
			"name":          pkg.Name,
			"auto_update":   pkg.AutoUpdate,
			"configuration": props,
			"updated_at":    goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(goqu.I("id").Eq(string(pkg.ID))).
		Executor().ExecContext(ctx)
	if err != nil {
		if _, ok := uniqueViolation(err); ok {
			return nil, storage.ErrDuplicate
		}

		return nil, fmt.Errorf("could not update package in pg: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("could not read affected rows: %w", err)
	}
	if affected == 0 {
		return nil, nil
	}

	return p.PackageByID(ctx, pkg.ID)
}

func (p *PgSQL) DeletePackage(ctx context.Context, ID domain.PackageID) (bool, error) {
	res, err := p.Builder.Delete(packagesTable).
		Where(goqu.I("id").Eq(string(ID))).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not delete package in pg: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not read affected rows: %w", err)
	}

	return affected > 0, nil
}

// uniqueViolation reports whether err is a unique violation and, if so, the
// name of the violated constraint.
func uniqueViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return pgErr.ConstraintName, true
	}

	return "", false
}

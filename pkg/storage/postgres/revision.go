package postgres

import (
	"context"
	"fmt"
	"pkgadmin/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const (
	revisionsTable = "package_revisions"
)

func (p *PgSQL) StoreRevision(ctx context.Context, rev domain.Revision) (*domain.Revision, error) {
	var row PgRevision
	row.FromDomain(rev)

	var stored PgRevision
	if _, err := p.Builder.Insert(revisionsTable).
		Rows(row).
		Returning(&PgRevision{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, fmt.Errorf("could not store revision into pg: %w", err)
	}

	return stored.ToDomain(), nil
}

// PackageRevisions returns the history of a package, newest first.
func (p *PgSQL) PackageRevisions(ctx context.Context, ID domain.PackageID, limit uint) ([]domain.Revision, error) {
	var rows []PgRevision
	if err := p.Builder.From(revisionsTable).
		Where(goqu.I("package_id").Eq(string(ID))).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(limit).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch package revisions from pg: %w", err)
	}

	out := make([]domain.Revision, 0, len(rows))
	for _, row := range rows {
		out = append(out, *row.ToDomain())
	}

	return out, nil
}

package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"pkgadmin/pkg/domain"
	"time"
)

type PgPackage struct {
	ID            string          `db:"id"`
	RepositoryID  string          `db:"repository_id"`
	Name          string          `db:"name"`
	AutoUpdate    bool            `db:"auto_update"`
	Configuration json.RawMessage `db:"configuration"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert,skipupdate"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert,skipupdate"`

	// RepositoryName is joined from package_repositories.
	RepositoryName string `db:"repository_name" goqu:"skipinsert,skipupdate"`
}

func (p *PgPackage) ToDomain() (*domain.PackageDefinition, error) {
	var props []domain.ConfigurationProperty
	if err := json.Unmarshal(p.Configuration, &props); err != nil {
		return nil, fmt.Errorf("could not unmarshal package configuration: %w", err)
	}

	return &domain.PackageDefinition{
		ID:         domain.PackageID(p.ID),
		Name:       p.Name,
		AutoUpdate: p.AutoUpdate,
		Repository: domain.RepositoryRef{
			ID:   domain.RepositoryID(p.RepositoryID),
			Name: p.RepositoryName,
		},
		Configuration: props,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt.Time,
	}, nil
}

func (p *PgPackage) FromDomain(pkg domain.PackageDefinition) error {
	props, err := marshalProperties(pkg.Configuration)
	if err != nil {
		return fmt.Errorf("could not marshal package configuration: %w", err)
	}

	*p = PgPackage{
		ID:             string(pkg.ID),
		RepositoryID:   string(pkg.Repository.ID),
		Name:           pkg.Name,
		AutoUpdate:     pkg.AutoUpdate,
		Configuration:  props,
		CreatedAt:      pkg.CreatedAt,
		UpdatedAt:      sql.NullTime{Time: pkg.UpdatedAt, Valid: !pkg.UpdatedAt.IsZero()},
		RepositoryName: pkg.Repository.Name,
	}

	return nil
}

type PgRepository struct {
	ID            string          `db:"id"`
	Name          string          `db:"name"`
	PluginID      string          `db:"plugin_id"`
	Configuration json.RawMessage `db:"configuration"`
	CreatedAt     time.Time       `db:"created_at" goqu:"skipinsert"`
}

func (p *PgRepository) ToDomain() (*domain.PackageRepository, error) {
	var props []domain.ConfigurationProperty
	if err := json.Unmarshal(p.Configuration, &props); err != nil {
		return nil, fmt.Errorf("could not unmarshal repository configuration: %w", err)
	}

	return &domain.PackageRepository{
		ID:            domain.RepositoryID(p.ID),
		Name:          p.Name,
		PluginID:      p.PluginID,
		Configuration: props,
		CreatedAt:     p.CreatedAt,
	}, nil
}

func (p *PgRepository) FromDomain(repo domain.PackageRepository) error {
	props, err := marshalProperties(repo.Configuration)
	if err != nil {
		return fmt.Errorf("could not marshal repository configuration: %w", err)
	}

	*p = PgRepository{
		ID:            string(repo.ID),
		Name:          repo.Name,
		PluginID:      repo.PluginID,
		Configuration: props,
		CreatedAt:     repo.CreatedAt,
	}

	return nil
}

type PgRevision struct {
	ID          int64     `db:"id"           goqu:"skipinsert"`
	PackageID   string    `db:"package_id"`
	PackageName string    `db:"package_name"`
	Action      string    `db:"action"`
	Actor       string    `db:"actor"`
	Fingerprint string    `db:"fingerprint"`
	CreatedAt   time.Time `db:"created_at"   goqu:"skipinsert"`
}

func (p *PgRevision) ToDomain() *domain.Revision {
	return &domain.Revision{
		ID:          p.ID,
		PackageID:   domain.PackageID(p.PackageID),
		PackageName: p.PackageName,
		Action:      domain.RevisionAction(p.Action),
		Actor:       p.Actor,
		Fingerprint: p.Fingerprint,
		CreatedAt:   p.CreatedAt,
	}
}

func (p *PgRevision) FromDomain(rev domain.Revision) {
	*p = PgRevision{
		ID:          rev.ID,
		PackageID:   string(rev.PackageID),
		PackageName: rev.PackageName,
		Action:      string(rev.Action),
		Actor:       rev.Actor,
		Fingerprint: rev.Fingerprint,
		CreatedAt:   rev.CreatedAt,
	}
}

// marshalProperties encodes configuration for a JSONB column. A nil slice is
// stored as an empty array so that reads never see JSON null.
func marshalProperties(props []domain.ConfigurationProperty) (json.RawMessage, error) {
	if props == nil {
		props = []domain.ConfigurationProperty{}
	}

	return json.Marshal(props) //nolint: wrapcheck
}

func pgPackagesToDomain(rows []PgPackage) ([]domain.PackageDefinition, error) {
	out := make([]domain.PackageDefinition, 0, len(rows))
	for _, row := range rows {
		d, err := row.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}

func pgRepositoriesToDomain(rows []PgRepository) ([]domain.PackageRepository, error) {
	out := make([]domain.PackageRepository, 0, len(rows))
	for _, row := range rows {
		d, err := row.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}

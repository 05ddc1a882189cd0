package domain

import "time"

// RepositoryID identifies a package repository.
type RepositoryID string

// PackageRepository is a source of packages (e.g. a yum or maven repository)
// served through a package material plugin.
type PackageRepository struct {
	// ID is the unique identifier of the repository.
	ID RepositoryID
	// Name is the human-readable repository name.
	Name string
	// PluginID names the package material plugin handling this repository.
	PluginID string
	// Configuration is the ordered plugin configuration of the repository.
	Configuration []ConfigurationProperty

	// CreatedAt is the time when the repository was registered.
	CreatedAt time.Time
}

// Ref returns a reference to the repository suitable for embedding in a package.
func (r *PackageRepository) Ref() RepositoryRef {
	return RepositoryRef{ID: r.ID, Name: r.Name}
}

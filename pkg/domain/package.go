package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// PackageID identifies a package definition. It is an opaque string so that
// ids chosen by clients are kept as-is; generated ids are UUIDs.
type PackageID string

// ConfigurationProperty is a single key/value pair of plugin configuration.
// Secure properties carry EncryptedValue instead of Value.
type ConfigurationProperty struct {
	Key            string `json:"key"`
	Value          string `json:"value,omitempty"`
	EncryptedValue string `json:"encrypted_value,omitempty"`
}

// IsSecure reports whether the property holds an encrypted value.
func (c ConfigurationProperty) IsSecure() bool {
	return c.EncryptedValue != ""
}

// RepositoryRef points at the package repository owning a package.
type RepositoryRef struct {
	ID   RepositoryID
	Name string
}

// PackageDefinition is a package published by a package repository that
// pipelines can use as a material.
type PackageDefinition struct {
	// ID is the unique identifier of the package.
	ID PackageID
	// Name is unique (case-insensitively) within the owning repository.
	Name string
	// AutoUpdate controls whether the package is polled for new revisions.
	AutoUpdate bool
	// Repository references the owning package repository.
	Repository RepositoryRef
	// Configuration is the ordered plugin configuration of the package.
	Configuration []ConfigurationProperty

	// CreatedAt is the time when the package was created.
	CreatedAt time.Time
	// UpdatedAt is the time when the package was last updated.
	UpdatedAt time.Time
}

// EnsureIDExists assigns a random id to the package when it has none.
func (p *PackageDefinition) EnsureIDExists() {
	if p.ID == "" {
		p.ID = PackageID(uuid.NewString())
	}
}

const propertyFieldPrefix = "configuration."

// PropertyField names the validation field reported for the configuration
// property with the given key. Property fields never clash with the fields of
// the package itself.
func PropertyField(key string) string { return propertyFieldPrefix + key }

// PropertyKey returns the property key named by a field built with
// PropertyField.
func PropertyKey(field string) (string, bool) {
	return strings.CutPrefix(field, propertyFieldPrefix)
}

// Property returns the configuration property with the given key.
func (p *PackageDefinition) Property(key string) (ConfigurationProperty, bool) {
	for _, c := range p.Configuration {
		if c.Key == key {
			return c, true
		}
	}

	return ConfigurationProperty{}, false
}

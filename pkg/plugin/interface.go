// Package plugin defines the contract used to validate package configuration
// against the package material plugin that serves a package repository.
package plugin

import (
	"context"
	"pkgadmin/pkg/domain"
)

// ValidationError is a problem the plugin reported for one configuration key.
type ValidationError struct {
	Key     string `json:"key"`
	Message string `json:"message"`
}

// Validator checks a package configuration within the context of its repository.
//
//go:generate mockgen -package mockplugin -source=interface.go -destination=mock/mockplugin.go *
type Validator interface {
	// ValidatePackage returns the validation errors reported by the repository's
	// plugin. An empty result means the configuration is accepted.
	ValidatePackage(ctx context.Context,
		repo domain.PackageRepository,
		pkg domain.PackageDefinition) ([]ValidationError, error)
}

// Noop accepts every configuration. It is used when no plugin endpoint is configured.
type Noop struct{}

func (Noop) ValidatePackage(context.Context, domain.PackageRepository, domain.PackageDefinition) ([]ValidationError, error) {
	return nil, nil
}

var _ Validator = Noop{}

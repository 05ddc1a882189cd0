// Package domain contains the core domain entities and types used by the
// application. These types represent the business concepts (package
// definitions, the package repositories that own them, users and config
// revisions) and are intentionally free of infrastructure concerns so they can
// be shared across packages.
package domain

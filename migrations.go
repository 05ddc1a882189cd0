// Package pkgadmin holds assets shared by the whole module, such as the
// embedded database migrations.
package pkgadmin

import "embed"

// Migrations contains the goose SQL migrations applied by the migrate command.
//
//go:embed migrations/*.sql
var Migrations embed.FS

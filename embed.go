// Package petregistry holds assets embedded into the service binary.
package petregistry

import "embed"

// Migrations contains the goose SQL migrations for the PostgreSQL backend.
//
//go:embed migrations/*.sql
var Migrations embed.FS

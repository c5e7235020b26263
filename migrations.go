// Package gmao holds assets shared by every binary of the service.
package gmao

import "embed"

// Migrations contains the goose SQL migrations applied by the migrate command.
//
//go:embed migrations/*.sql
var Migrations embed.FS

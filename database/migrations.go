// Package database holds the PostgreSQL schema migrations, embedded so the
// binary does not depend on the working directory.
package database

import "embed"

//go:embed migration/*.sql
var Migrations embed.FS

const MigrationsDir = "migration"

// Package migrations registers the database schema migrations.
package migrations

import "github.com/uptrace/bun/migrate"

// Migrations holds all registered migrations in order.
var Migrations = migrate.NewMigrations()

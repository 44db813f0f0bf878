// Package migrations embeds the PostgreSQL schema migrations applied by goose.
package migrations

import "embed"

// Migrations holds the *.sql goose migrations.
//
//go:embed *.sql
var Migrations embed.FS

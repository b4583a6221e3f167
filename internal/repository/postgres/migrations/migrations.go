// Package migrations embeds the PostgreSQL schema applied at startup.
package migrations

import "embed"

// FS holds the goose SQL migrations.
//
//go:embed *.sql
var FS embed.FS

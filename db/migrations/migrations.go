// Package migrations embeds the SQL schema shared by the PostgreSQL and SQLite roster stores.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

// Package migrations embeds the SQL migrations goose applies at startup.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS

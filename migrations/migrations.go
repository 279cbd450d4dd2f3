// Package migrations embeds the SQL schema for the warehouse record
// stores consumed by the lookup engine.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

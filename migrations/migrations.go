// Package migrations embeds the database schema so the API binary can
// bootstrap an empty database without external tooling.
package migrations

import _ "embed"

//go:embed schema.sql
var Schema string

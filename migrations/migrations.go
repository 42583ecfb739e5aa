// Package migrations embeds the SQL schema so the migrate command and tests
// ship with the binary.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

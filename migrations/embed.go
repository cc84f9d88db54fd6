// Package migrations holds the schema shared by the postgres and sqlite stores.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

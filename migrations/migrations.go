// Package migrations embeds the schema migrations for each supported SQL dialect.
package migrations

import "embed"

// FS holds one directory of golang-migrate files per dialect: postgres/ and sqlite/.
//
//go:embed postgres/*.sql sqlite/*.sql
var FS embed.FS

const (
	PostgresDir = "postgres"
	SQLiteDir   = "sqlite"
)

package migrations

import "embed"

// Files holds the SQL migrations applied at startup and by cmd/migrate_apply.
//
//go:embed *.sql
var Files embed.FS

package postgres

import "embed"

// MigrationsFS содержит SQL миграции в формате goose
//
//go:embed migrations/*.sql
var MigrationsFS embed.FS

// MigrationsDir каталог миграций внутри MigrationsFS
const MigrationsDir = "migrations"

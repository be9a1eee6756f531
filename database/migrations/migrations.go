// Package migrations contains all database migration files.
// Each migration file uses init() to call migration.Register().
// This package is imported by cmd/nightcap/main.go so everything is
// registered at CLI startup.
package migrations

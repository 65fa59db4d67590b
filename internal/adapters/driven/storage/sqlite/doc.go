// Package sqlite provides a SQLite-based implementation of driven port interfaces.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO. It implements the run and override stores through a single database
// connection:
//
//   - RunStore: saved planning runs and their model digests
//   - OverrideStore: the override batch authored for each project
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql files.
//
// # Data Location
//
// By default, the database is stored at ~/.egress/data/egress.db
package sqlite

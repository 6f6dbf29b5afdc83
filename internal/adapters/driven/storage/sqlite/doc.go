// Package sqlite provides the SQLite-backed implementation of driven.ArtifactStore.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation.
//
// # Schema
//
// The three artifact tables are defined by the CREATE statements in the schema/
// directory. There is no migration history: every Replace drops the tables and
// recreates them from those files inside a single transaction, so a failed
// replace leaves the previous contents in place.
//
// # Data Location
//
// By default, the database is stored at ~/.museo/data/harvard_artifacts.db
//
// # Connections
//
// The database file is opened at the start of each Replace or Query call and
// closed before it returns. The store holds no connection between calls.
package sqlite

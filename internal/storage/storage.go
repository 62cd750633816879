// Package storage loads plate-appearance records into SQLite so splits can be
// recomputed and explored with plain SQL.
package storage

import (
	"database/sql"
	_ "embed"
	"fmt"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// DB wraps a sql.DB holding the plate_appearances table.
type DB struct {
	conn *sql.DB
}

// Open opens (or creates) the SQLite database at the given path and applies the schema.
func Open(path string) (*DB, error) {
	dsn := path
	if path != MemoryPath {
		dsn = fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)", path)
	}
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if path == MemoryPath {
		// Every new connection would get its own empty in-memory database.
		conn.SetMaxOpenConns(1)
	}
	if _, err := conn.Exec(schemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &DB{conn: conn}, nil
}

// Close closes the underlying connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// Package database opens and initializes the SQLite message store.
package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // sqlite3 driver
)

const schema = `
	CREATE TABLE IF NOT EXISTS messages (
		id              INTEGER PRIMARY KEY AUTOINCREMENT,
		mensagem        TEXT NOT NULL,
		categoria       TEXT NOT NULL,
		explicacao      TEXT NOT NULL,
		solucao_cliente TEXT NOT NULL,
		solucao_tecnica TEXT NOT NULL,
		confianca       TEXT NOT NULL
	);`

// NewSQLite opens the database at path and ensures the schema exists.
func NewSQLite(path string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	// SQLite allows a single writer; one connection avoids SQLITE_BUSY
	// under concurrent inserts while keeping row commits serialized.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return db, nil
}

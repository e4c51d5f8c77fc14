// Package postgres provides PostgreSQL-backed implementations of the store
// interfaces using the pgx driver through database/sql. Schema management is
// handled by goose migrations embedded in the binary.
package postgres

import (
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the pgx driver
)

// Open opens a connection pool to the PostgreSQL database at url. The caller
// owns the returned handle and is expected to run Migrate before using it.
func Open(url string) (*sql.DB, error) {
	db, err := sql.Open("pgx", url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

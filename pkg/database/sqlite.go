package database

import (
	"database/sql"
	"log"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// InitSQLite opens (creating if needed) the embedded store file. The
// pure-Go driver keeps the binary cgo-free.
func InitSQLite(path string) (*sql.DB, error) {
	dir := filepath.Dir(path)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// One writer at a time, matching the store's synchronous model.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		return nil, err
	}

	log.Println("SQLite store opened at", path)
	return db, nil
}

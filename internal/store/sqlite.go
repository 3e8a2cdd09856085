package store

import (
	"database/sql"
	"errors"
	"strings"
)

// SQLiteBackend persists keys into a single-file embedded database, a
// durable local store with the same synchronous, single-writer profile
// as the browser storage it replaces. The *sql.DB comes from
// database.InitSQLite (pure-Go driver, no cgo).
type SQLiteBackend struct {
	db *sql.DB
}

func NewSQLiteBackend(db *sql.DB) (*SQLiteBackend, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv_entries (
		key   TEXT PRIMARY KEY,
		value BLOB NOT NULL
	)`)
	if err != nil {
		return nil, err
	}
	return &SQLiteBackend{db: db}, nil
}

func (b *SQLiteBackend) Get(key string) ([]byte, error) {
	var value []byte
	err := b.db.QueryRow(`SELECT value FROM kv_entries WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (b *SQLiteBackend) Set(key string, value []byte) error {
	_, err := b.db.Exec(
		`INSERT INTO kv_entries (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil && isDiskFull(err) {
		return ErrQuotaExceeded
	}
	return err
}

func (b *SQLiteBackend) Delete(key string) error {
	_, err := b.db.Exec(`DELETE FROM kv_entries WHERE key = ?`, key)
	return err
}

func (b *SQLiteBackend) Close() error {
	return b.db.Close()
}

// isDiskFull matches the SQLITE_FULL family of errors so callers get
// the typed quota failure instead of a driver string.
func isDiskFull(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "database or disk is full") ||
		strings.Contains(msg, "disk i/o error")
}

// Package sqlite binds nanorm to SQLite through github.com/mattn/go-sqlite3.
//
// SQLite accepts ? placeholders and native :name arguments, so no dialect
// rewriting is needed; [Dialect] exists for symmetry with the postgres
// binding and for statements written against another placeholder style.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	sqlite3 "github.com/mattn/go-sqlite3"

	nanorm "github.com/bugzyGeek/Nanorm"
)

// Open opens (creating if needed) the database file at path, with foreign
// keys enforced and a 5s busy timeout. The handle is caller-owned; nanorm
// never closes it.
func Open(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path)
	return sql.Open("sqlite3", dsn)
}

// OpenMemory opens a private in-memory database.
func OpenMemory() (*sql.DB, error) {
	return sql.Open("sqlite3", "file::memory:?mode=memory&_foreign_keys=on")
}

// Dialect is the rebinding option for SQLite. PlaceholderQuestion leaves ?
// placeholders alone; named tokens are still resolved textually, which lets
// the same statement text run against drivers without native named support.
func Dialect() nanorm.Option {
	return nanorm.Dialect(nanorm.PlaceholderQuestion)
}

// IsConstraint reports whether err is any SQLite constraint violation
// (unique, foreign key, check, not-null).
func IsConstraint(err error) bool {
	var se sqlite3.Error
	return errors.As(err, &se) && se.Code == sqlite3.ErrConstraint
}

// IsBusy reports whether err is a lock contention error (SQLITE_BUSY or
// SQLITE_LOCKED), the signal to back off and retry.
func IsBusy(err error) bool {
	var se sqlite3.Error
	return errors.As(err, &se) && (se.Code == sqlite3.ErrBusy || se.Code == sqlite3.ErrLocked)
}

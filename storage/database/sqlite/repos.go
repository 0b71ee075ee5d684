// Package sqliterepos implements the core repositories on the sqlite
// database file, via sqlx. Every mutation is a single statement or an
// explicit transaction; partial writes are never visible.
package sqliterepos

import (
	"github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

// isUniqueViolation reports whether err is a sqlite UNIQUE constraint failure.
func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}

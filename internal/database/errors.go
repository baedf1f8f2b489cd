package database

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

// Sentinel errors returned by the repositories. Controllers map these
// to HTTP status codes; anything else is a server error.
var (
	ErrAuthorNotFound = errors.New("author not found")
	ErrTagNotFound    = errors.New("tag not found")
	ErrNameTaken      = errors.New("name already taken")
)

// IsUniqueViolation reports whether err is a sqlite UNIQUE constraint
// failure, which is how duplicate names surface from the datastore.
func IsUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}

// Package repository wraps the GORM store behind per-model repositories
// and the sentinel errors handlers use to classify failures. Anything a
// repository returns that is not one of these sentinels is a gateway
// failure and maps to a generic 500.
package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotFound is returned when a referenced record does not exist, or
// exists but is outside the caller's ownership scope. Handlers translate
// it into HTTP 404.
var ErrNotFound = errors.New("record not found")

// IsDuplicate reports whether err is a Postgres unique violation.
// The gorm driver is pgx-based, so these surface as *pgconn.PgError
// with SQLSTATE 23505. Handlers translate it into HTTP 409.
func IsDuplicate(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

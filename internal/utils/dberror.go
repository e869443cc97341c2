package utils

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// IsUniqueViolation reports whether err is a Postgres unique_violation, optionally
// restricted to the given constraint names.
func IsUniqueViolation(err error, constraints ...string) bool {
	return hasCode(err, pgUniqueViolation, constraints)
}

// IsForeignKeyViolation reports whether err is a Postgres foreign_key_violation.
func IsForeignKeyViolation(err error, constraints ...string) bool {
	return hasCode(err, pgForeignKeyViolation, constraints)
}

func hasCode(err error, code string, constraints []string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != code {
		return false
	}
	if len(constraints) == 0 {
		return true
	}
	for _, c := range constraints {
		if pgErr.ConstraintName == c {
			return true
		}
	}
	return false
}

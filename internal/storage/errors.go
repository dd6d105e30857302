package storage

import (
	"database/sql"
	"errors"
)

// ErrNotFound is returned when a record does not exist or belongs to a
// different user. Callers cannot tell the two cases apart.
var ErrNotFound = errors.New("storage: record not found")

func notFoundOr(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

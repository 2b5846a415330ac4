package apperr

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// FromStorage classifies a storage error: unique violations become
// Duplicate, foreign key violations become Reference, missing rows become
// NotFound; anything else is Internal. The messages are the user-facing
// text for the duplicate/reference/not-found cases.
func FromStorage(err error, dupMsg, refMsg, notFoundMsg string) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	if errors.Is(err, sql.ErrNoRows) {
		return NotFound(notFoundMsg)
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pgUniqueViolation:
			return Duplicate(dupMsg)
		case pgForeignKeyViolation:
			return Reference(refMsg)
		}
	}
	return Internal(err)
}

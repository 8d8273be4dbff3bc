package repositories

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var ErrPlaceNotFound = errors.New("place not found")

// ErrorKind tells callers why a persistence call failed.
type ErrorKind string

const (
	KindNotFound    ErrorKind = "not_found"
	KindConstraint  ErrorKind = "constraint"
	KindUnavailable ErrorKind = "unavailable"
	KindInternal    ErrorKind = "internal"
)

type PersistenceError struct {
	Op   string
	Kind ErrorKind
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to %s place: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func newPersistenceError(op string, err error) *PersistenceError {
	return &PersistenceError{Op: op, Kind: classify(err), Err: err}
}

// KindOf returns the kind of a PersistenceError anywhere in err's chain,
// or KindInternal for any other error.
func KindOf(err error) ErrorKind {
	var pe *PersistenceError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return KindInternal
}

func classify(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrPlaceNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		return KindNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey), errors.Is(err, gorm.ErrForeignKeyViolated):
		return KindConstraint
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, driver.ErrBadConn), errors.Is(err, sql.ErrConnDone):
		return KindUnavailable
	default:
		return KindInternal
	}
}

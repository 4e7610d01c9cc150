package store

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by repositories and storages. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrPersistence wraps every failure of the underlying backend. It is
	// always propagated to the caller.
	ErrPersistence = errors.New("persistence failure")

	// ErrCorruptCollection is returned together with an empty collection when
	// the stored blob cannot be decoded.
	ErrCorruptCollection = errors.New("stored note collection is corrupt")

	// ErrUnsupportedDialect is returned when a SQL backend is opened with a
	// dialect other than sqlite3 or pgx.
	ErrUnsupportedDialect = errors.New("unsupported sql dialect")
)

// Low-level database operation errors. These are wrapped into
// ErrPersistence by the SQL storage.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a value row fails.
	ErrScanningRow = errors.New("failed to scan preference row")
)

// wrapPersistence marks err as a backend failure unless it already is one.
func wrapPersistence(err error) error {
	if errors.Is(err, ErrPersistence) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrPersistence, err)
}

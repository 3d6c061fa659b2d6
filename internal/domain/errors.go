package domain

import (
	"errors"
	"fmt"
)

// DataAccessKind distinguishes the two failure classes surfaced by the graph
// data access layer.
type DataAccessKind string

const (
	// KindUnreachable means the graph store could not be reached or rejected
	// authentication. Every subsequent query will fail until the store is
	// available again.
	KindUnreachable DataAccessKind = "unreachable"

	// KindQuery means a single query failed mid-execution. The shared driver
	// is not poisoned; other calls may still succeed.
	KindQuery DataAccessKind = "query"
)

// DataAccessError wraps an error from the graph store. Callers receive either
// a fully materialized result set or a DataAccessError, never both.
type DataAccessError struct {
	Kind DataAccessKind
	Op   string
	Err  error
}

func (e *DataAccessError) Error() string {
	return fmt.Sprintf("graph %s: %s: %v", e.Kind, e.Op, e.Err)
}

func (e *DataAccessError) Unwrap() error {
	return e.Err
}

// NewUnreachableError wraps err as a connectivity-class DataAccessError.
func NewUnreachableError(op string, err error) *DataAccessError {
	return &DataAccessError{Kind: KindUnreachable, Op: op, Err: err}
}

// NewQueryError wraps err as an execution-class DataAccessError.
func NewQueryError(op string, err error) *DataAccessError {
	return &DataAccessError{Kind: KindQuery, Op: op, Err: err}
}

// AsDataAccessError reports whether err is (or wraps) a DataAccessError and
// returns it if so.
func AsDataAccessError(err error) (*DataAccessError, bool) {
	var dae *DataAccessError
	if errors.As(err, &dae) {
		return dae, true
	}
	return nil, false
}

// ValidationError reports a request parameter outside its accepted range. It
// is raised by the transport layer before an aggregation is invoked.
type ValidationError struct {
	Param  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid parameter %q: %s", e.Param, e.Reason)
}

// NewValidationError builds a ValidationError for the given parameter.
func NewValidationError(param, reason string) *ValidationError {
	return &ValidationError{Param: param, Reason: reason}
}

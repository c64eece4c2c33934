// ABOUTME: Error types returned by the gateway and query layer.
// ABOUTME: PersistenceError carries the failed operation and entity kind.
package storage

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a record or credential pair does not match.
	ErrNotFound = errors.New("not found")
	// ErrUnsupportedEntity is returned for entities the gateway cannot store.
	ErrUnsupportedEntity = errors.New("unsupported entity")
)

// PersistenceError wraps any storage failure. The unit-of-work it happened
// in has been rolled back.
type PersistenceError struct {
	Op   string // save, update, delete, query
	Kind string // user, workout, measurement
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Kind, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func persistErr(op, kind string, err error) error {
	if err == nil {
		return nil
	}
	var pe *PersistenceError
	if errors.As(err, &pe) {
		return err
	}
	return &PersistenceError{Op: op, Kind: kind, Err: err}
}

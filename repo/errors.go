// Package repo holds the typed data-access layer over the bun connection.
// Every helper issues one filtered statement and tags failures with the
// operation kind so handlers can map them to HTTP statuses without string
// matching.
package repo

import (
	"database/sql"
	"errors"
	"fmt"
)

// Kind classifies a data-access failure by the operation that produced it.
type Kind string

const (
	KindQuery  Kind = "query"
	KindInsert Kind = "insert"
	KindUpdate Kind = "update"
	KindDelete Kind = "delete"
)

// ErrNotFound marks a lookup or delete that matched no row.
var ErrNotFound = errors.New("not found")

// Error wraps a backend fault with the failing operation and its kind.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Kind, e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// IsNotFound reports whether err is, or wraps, a no-row result.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, sql.ErrNoRows)
}

// KindOf returns the kind of a repo error, or "" for anything else.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func wrap(kind Kind, op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		err = fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	return &Error{Kind: kind, Op: op, Err: err}
}

package nanorm

import (
	"context"
	"database/sql"
	"errors"
)

// Preparer is implemented by *sql.DB, *sql.Tx, *sql.Conn, and any wrapper
// that can prepare a statement for execution.
type Preparer interface {
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
}

// UnknownRowCount is returned by [Exec] when the driver or statement type
// cannot report an affected row count. It is distinct from 0, which means
// the statement ran and affected no rows.
const UnknownRowCount int64 = -1

// ErrNilPreparer is returned when a nil database handle is passed to any
// entry point. It is raised before any I/O is attempted.
var ErrNilPreparer = errors.New("nanorm: nil database handle")

// ErrEmptyQuery is returned when the statement text is empty. It is raised
// before any I/O is attempted.
var ErrEmptyQuery = errors.New("nanorm: empty statement text")

// ErrSequenceConsumed is yielded when a sequence returned by [Query] is
// ranged over a second time. A sequence is single-pass and never
// re-executes its statement; call Query again for a fresh execution.
var ErrSequenceConsumed = errors.New("nanorm: result sequence already consumed")

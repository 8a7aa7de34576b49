/*
Package nanorm is a minimal, stdlib-style data-access layer over database/sql.
You write plain SQL; nanorm binds parameters, executes the statement in the
result shape you ask for, and maps rows through a compile-time mapping
contract with no reflection on the data path.

# Overview

nanorm works with *sql.DB, *sql.Tx, and *sql.Conn through the [Preparer]
interface. Each call prepares a fresh statement, binds the parameters you
supplied, executes it once, and releases the statement and its cursor before
returning (or, for [Query], when the streamed sequence terminates). There is
no statement cache, no identity map, and no connection management beyond what
database/sql already does.

# Result shapes

  - [Exec] runs a statement that returns no rows and reports the affected row
    count, or [UnknownRowCount] when the driver cannot say.
  - [Scalar] reads column 0 of the first row; zero rows is an absent value,
    not an error.
  - [QuerySingle] maps at most one row into T; zero rows is absent.
  - [Query] returns a lazy, forward-only, single-pass iter.Seq2 of mapped
    rows. The cursor and statement stay open only while the sequence is
    being consumed and are released on exhaustion, error, early break, or
    cancellation, whichever comes first.
  - [QueryRaw] hands back the raw [Cursor] for callers that want column-level
    access; Close it when done.

# Row mapping

A mappable type implements [RowMapper] on its pointer receiver:

	type Widget struct {
		ID   int64
		Name string
	}

	func (w *Widget) MapRow(c *nanorm.Cursor) error {
		var err error
		if w.ID, err = c.Int64(0); err != nil {
			return err
		}
		w.Name, err = c.String(1)
		return err
	}

	ws := nanorm.Query[Widget](ctx, db, `SELECT id, name FROM widgets`)
	for w, err := range ws {
		...
	}

The mapper is resolved by the compiler for the concrete T; there is no type
registry and no reflection. MapRow reads the current row through the cursor's
typed, null-aware accessors and must not advance the cursor.

# Parameters

Three binding strategies, one per call: none, a positional/named list via
[Args], or a configuration callback via [Bind] that populates the command's
parameter collection programmatically. [Dialect] additionally resolves :name
tokens against named parameters and rewrites ? placeholders for drivers,
such as PostgreSQL, that take $1-style positional parameters only.

# Errors

Argument errors ([ErrNilPreparer], [ErrEmptyQuery]) are raised before any
I/O. Mapping errors ([ErrNoColumn], [ErrNullColumn], [ErrColumnType])
identify the offending column. Driver errors propagate unchanged. A fired
context surfaces as context.Canceled or context.DeadlineExceeded after all
locally acquired resources have been released. nanorm never logs and never
swallows an error.

Subpackages postgres and sqlite bind the layer to github.com/lib/pq and
github.com/mattn/go-sqlite3 respectively.
*/
package nanorm

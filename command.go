package nanorm

import (
	"context"
	"database/sql"
)

// command is one prepared, parameter-bound statement. It is created at the
// start of an executor call, executed at most once, and released at the end
// of that same call (or, for the streaming shape, when the sequence
// terminates). A command is never shared and never reused after Close.
type command struct {
	stmt *sql.Stmt
	args []any
}

// newCommand builds a command on p: resolves the binding strategy, rewrites
// the text when a dialect is set, and prepares the statement. The caller
// owns the returned command and must Close it. Preparation and driver
// errors propagate unchanged; the statement text has already been validated
// by the entry point.
func newCommand(ctx context.Context, p Preparer, query string, s *settings) (*command, error) {
	ps := s.collect()

	var args []any
	if s.hasStyle {
		var err error
		query, args, err = Rebind(query, s.dialect, ps)
		if err != nil {
			return nil, err
		}
	} else {
		args = ps.driverArgs()
	}

	stmt, err := p.PrepareContext(ctx, query)
	if err != nil {
		return nil, err
	}
	return &command{stmt: stmt, args: args}, nil
}

// exec runs the command without expecting rows.
func (c *command) exec(ctx context.Context) (sql.Result, error) {
	return c.stmt.ExecContext(ctx, c.args...)
}

// query runs the command and wraps its result set in a Cursor. The cursor
// is owned by the caller and must be closed before the command.
func (c *command) query(ctx context.Context) (*Cursor, error) {
	rows, err := c.stmt.QueryContext(ctx, c.args...)
	if err != nil {
		return nil, err
	}
	return newCursor(rows), nil
}

func (c *command) Close() error { return c.stmt.Close() }

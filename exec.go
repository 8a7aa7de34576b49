package nanorm

import "context"

// Exec executes a statement that returns no rows (INSERT, UPDATE, DELETE,
// DDL) and reports how many rows it affected. When the driver or statement
// type cannot report a count, Exec returns [UnknownRowCount]; that is not
// the same as 0, which means the statement ran and touched nothing.
//
// The statement is prepared, executed once, and released before Exec
// returns, on success and on error alike.
//
// Example:
//
//	n, err := nanorm.Exec(ctx, db,
//	    `UPDATE widgets SET name = ? WHERE id = ?`,
//	    nanorm.Args("gear", 7),
//	)
func Exec(ctx context.Context, p Preparer, query string, opts ...Option) (affected int64, err error) {
	if err := checkArgs(p, query); err != nil {
		return 0, err
	}
	cmd, err := newCommand(ctx, p, query, newSettings(opts))
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := cmd.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	res, err := cmd.exec(ctx)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		// Driver cannot report a count; that is a policy outcome, not a failure.
		return UnknownRowCount, nil
	}
	return n, nil
}

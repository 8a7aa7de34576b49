package nanorm

import "context"

// QuerySingle executes the query and maps at most one row into T. Zero rows
// yields ok == false with no error; with one or more rows the first is
// mapped and the rest are not fetched. Use LIMIT 1 (or equivalent) when the
// statement could match more rows than you mean to transfer.
//
// T must implement [RowMapper] on its pointer receiver; the mapper is
// resolved at compile time.
//
// Example:
//
//	w, ok, err := nanorm.QuerySingle[Widget](ctx, db,
//	    `SELECT id, name FROM widgets WHERE id = ?`,
//	    nanorm.Args(7),
//	)
func QuerySingle[T any, PT Mappable[T]](ctx context.Context, p Preparer, query string, opts ...Option) (val T, ok bool, err error) {
	var zero T
	if err := checkArgs(p, query); err != nil {
		return zero, false, err
	}
	cmd, err := newCommand(ctx, p, query, newSettings(opts))
	if err != nil {
		return zero, false, err
	}
	defer func() {
		if cerr := cmd.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	cur, err := cmd.query(ctx)
	if err != nil {
		return zero, false, err
	}
	defer func() {
		if cerr := cur.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if !cur.Next() {
		if nerr := cur.Err(); nerr != nil {
			return zero, false, nerr
		}
		return zero, false, nil
	}
	var v T
	if err := PT(&v).MapRow(cur); err != nil {
		return zero, false, err
	}
	return v, true, nil
}

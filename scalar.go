package nanorm

import "context"

// Scalar executes the query and returns column 0 of the first row converted
// to T. Zero rows yields ok == false with no error; further rows and
// columns are not read. A NULL in a present row surfaces [ErrNullColumn];
// for nullable scalars read through [QueryRaw] with a Null accessor.
//
// Example:
//
//	n, ok, err := nanorm.Scalar[int64](ctx, db,
//	    `SELECT COUNT(*) FROM widgets WHERE name = ?`,
//	    nanorm.Args("gear"),
//	)
func Scalar[T any](ctx context.Context, p Preparer, query string, opts ...Option) (val T, ok bool, err error) {
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
	v, err := columnAs[T](cur, 0)
	if err != nil {
		return zero, false, err
	}
	return v, true, nil
}

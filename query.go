package nanorm

import (
	"context"
	"iter"
)

// Query executes the query and returns a lazy, forward-only, single-pass
// sequence of mapped rows, in cursor order. Nothing is prepared or executed
// until the sequence is first pulled; the statement and its cursor then stay
// open only while the loop runs and are released, cursor first, on every
// exit: exhaustion, a driver or mapping error, an early break, or a fired
// context. Cancellation is checked before each fetch and surfaces as the
// context's error, after release.
//
// The sequence never re-executes the statement: ranging it a second time
// yields a single [ErrSequenceConsumed]. Call Query again for a fresh
// execution. Do not issue another call on the same connection while the
// sequence is still open; nanorm keeps one active statement per connection.
//
// Errors are delivered in the error position of the sequence, including
// argument errors, so a for-range loop observes every failure mode in one
// place:
//
//	for w, err := range nanorm.Query[Widget](ctx, db, `SELECT id, name FROM widgets`) {
//	    if err != nil {
//	        return err
//	    }
//	    use(w)
//	}
func Query[T any, PT Mappable[T]](ctx context.Context, p Preparer, query string, opts ...Option) iter.Seq2[T, error] {
	argErr := checkArgs(p, query)
	s := newSettings(opts)
	var consumed bool

	return func(yield func(T, error) bool) {
		var zero T
		if consumed {
			yield(zero, ErrSequenceConsumed)
			return
		}
		consumed = true
		if argErr != nil {
			yield(zero, argErr)
			return
		}

		cmd, err := newCommand(ctx, p, query, s)
		if err != nil {
			yield(zero, err)
			return
		}
		defer cmd.Close()

		cur, err := cmd.query(ctx)
		if err != nil {
			cmd.Close()
			yield(zero, err)
			return
		}
		defer cur.Close()

		// release frees cursor then command before a terminal error is
		// reported; the deferred closes are idempotent no-ops after it.
		release := func() {
			cur.Close()
			cmd.Close()
		}

		for {
			if err := ctx.Err(); err != nil {
				release()
				yield(zero, err)
				return
			}
			if !cur.Next() {
				break
			}
			var v T
			if err := PT(&v).MapRow(cur); err != nil {
				release()
				yield(zero, err)
				return
			}
			if !yield(v, nil) {
				return
			}
		}
		if err := cur.Err(); err != nil {
			release()
			yield(zero, err)
		}
	}
}

// QueryRaw executes the query and returns the raw [Cursor], for callers
// that want column-level access instead of the mapping contract. The cursor
// owns its statement: Close releases the cursor and then the statement, and
// must be called on every path. The caller advances with [Cursor.Next].
func QueryRaw(ctx context.Context, p Preparer, query string, opts ...Option) (*Cursor, error) {
	if err := checkArgs(p, query); err != nil {
		return nil, err
	}
	cmd, err := newCommand(ctx, p, query, newSettings(opts))
	if err != nil {
		return nil, err
	}
	cur, err := cmd.query(ctx)
	if err != nil {
		cmd.Close()
		return nil, err
	}
	cur.cmd = cmd
	return cur, nil
}

package nanorm

import (
	"database/sql"
	"fmt"
	"time"
)

// Cursor is a forward-only pointer into a result set. It exposes the
// current row through typed, null-aware accessors by ordinal or name.
// Advancing is the owner's job: the executor for the mapped shapes, the
// caller for cursors obtained from [QueryRaw].
//
// Accessor results are valid until the next Next or Close. A Cursor is
// consumed forward-only and is never reused after Close.
type Cursor struct {
	rows *sql.Rows
	cmd  *command // set for QueryRaw cursors; released after rows

	cols    []string // driver-reported names
	byName  map[string]int
	vals    []any
	ptrs    []any
	scanErr error
}

func newCursor(rows *sql.Rows) *Cursor {
	return &Cursor{rows: rows}
}

// Next advances to the next row, loading its values. It returns false at
// the end of the set or on error; check Err afterwards.
func (c *Cursor) Next() bool {
	if c.scanErr != nil {
		return false
	}
	if !c.rows.Next() {
		return false
	}
	if err := c.load(); err != nil {
		c.scanErr = err
		return false
	}
	if err := c.rows.Scan(c.ptrs...); err != nil {
		c.scanErr = err
		return false
	}
	return true
}

func (c *Cursor) load() error {
	if c.cols != nil {
		return nil
	}
	cols, err := c.rows.Columns()
	if err != nil {
		return err
	}
	c.cols = cols
	c.vals = make([]any, len(cols))
	c.ptrs = make([]any, len(cols))
	for i := range c.vals {
		c.ptrs[i] = &c.vals[i]
	}
	return nil
}

// Err reports the first error encountered while advancing.
func (c *Cursor) Err() error {
	if c.scanErr != nil {
		return c.scanErr
	}
	return c.rows.Err()
}

// Close releases the cursor and, for cursors that own their command, the
// command after it. Close is idempotent through database/sql.
func (c *Cursor) Close() error {
	err := c.rows.Close()
	if c.cmd != nil {
		if cerr := c.cmd.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// Columns returns the result set's column names in result order.
func (c *Cursor) Columns() []string {
	_ = c.load()
	return c.cols
}

// Ordinal resolves a column name, case-insensitively and ignoring quoting,
// to its ordinal.
func (c *Cursor) Ordinal(name string) (int, error) {
	if c.byName == nil {
		if err := c.load(); err != nil {
			return 0, err
		}
		c.byName = make(map[string]int, len(c.cols))
		for i, col := range c.cols {
			c.byName[normalizeCol(col)] = i
		}
	}
	if i, ok := c.byName[normalizeCol(name)]; ok {
		return i, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrNoColumn, name)
}

// IsNull reports whether the column at ordinal i holds SQL NULL.
func (c *Cursor) IsNull(i int) (bool, error) {
	v, err := c.value(i)
	if err != nil {
		return false, err
	}
	return v == nil, nil
}

// Value returns the raw driver value of column i; nil represents NULL.
func (c *Cursor) Value(i int) (any, error) { return c.value(i) }

func (c *Cursor) Bool(i int) (bool, error)       { return columnAs[bool](c, i) }
func (c *Cursor) Int(i int) (int, error)         { return columnAs[int](c, i) }
func (c *Cursor) Int32(i int) (int32, error)     { return columnAs[int32](c, i) }
func (c *Cursor) Int64(i int) (int64, error)     { return columnAs[int64](c, i) }
func (c *Cursor) Float64(i int) (float64, error) { return columnAs[float64](c, i) }
func (c *Cursor) String(i int) (string, error)   { return columnAs[string](c, i) }
func (c *Cursor) Bytes(i int) ([]byte, error)    { return columnAs[[]byte](c, i) }
func (c *Cursor) Time(i int) (time.Time, error)  { return columnAs[time.Time](c, i) }

// Null-aware accessors; NULL yields the invalid zero value, not an error.

func (c *Cursor) NullBool(i int) (sql.NullBool, error) {
	v, err := nullAs[bool](c, i)
	return sql.NullBool{Bool: v.V, Valid: v.Valid}, err
}

func (c *Cursor) NullInt64(i int) (sql.NullInt64, error) {
	v, err := nullAs[int64](c, i)
	return sql.NullInt64{Int64: v.V, Valid: v.Valid}, err
}

func (c *Cursor) NullFloat64(i int) (sql.NullFloat64, error) {
	v, err := nullAs[float64](c, i)
	return sql.NullFloat64{Float64: v.V, Valid: v.Valid}, err
}

func (c *Cursor) NullString(i int) (sql.NullString, error) {
	v, err := nullAs[string](c, i)
	return sql.NullString{String: v.V, Valid: v.Valid}, err
}

func (c *Cursor) NullTime(i int) (sql.NullTime, error) {
	v, err := nullAs[time.Time](c, i)
	return sql.NullTime{Time: v.V, Valid: v.Valid}, err
}

// Field reads the column named name as T. It is the name-based counterpart
// of the typed ordinal accessors.
func Field[T any](c *Cursor, name string) (T, error) {
	var zero T
	i, err := c.Ordinal(name)
	if err != nil {
		return zero, err
	}
	return columnAs[T](c, i)
}

// NullField reads the column named name as a nullable T.
func NullField[T any](c *Cursor, name string) (sql.Null[T], error) {
	i, err := c.Ordinal(name)
	if err != nil {
		return sql.Null[T]{}, err
	}
	return nullAs[T](c, i)
}

func (c *Cursor) value(i int) (any, error) {
	if i < 0 || i >= len(c.vals) {
		return nil, fmt.Errorf("%w: ordinal %d of %d", ErrNoColumn, i, len(c.vals))
	}
	return c.vals[i], nil
}

func columnAs[T any](c *Cursor, i int) (T, error) {
	var zero T
	v, err := c.value(i)
	if err != nil {
		return zero, err
	}
	out, err := convertTo[T](v)
	if err != nil {
		return zero, fmt.Errorf("column %d %q: %w", i, c.colName(i), err)
	}
	return out, nil
}

func nullAs[T any](c *Cursor, i int) (sql.Null[T], error) {
	v, err := c.value(i)
	if err != nil {
		return sql.Null[T]{}, err
	}
	if v == nil {
		return sql.Null[T]{}, nil
	}
	out, err := convertTo[T](v)
	if err != nil {
		return sql.Null[T]{}, fmt.Errorf("column %d %q: %w", i, c.colName(i), err)
	}
	return sql.Null[T]{V: out, Valid: true}, nil
}

func (c *Cursor) colName(i int) string {
	if i >= 0 && i < len(c.cols) {
		return c.cols[i]
	}
	return ""
}

// normalizeCol strips one layer of identifier quoting and lowercases
// ASCII letters.
func normalizeCol(s string) string {
	if l := len(s); l >= 2 {
		switch s[0] {
		case '"':
			if s[l-1] == '"' {
				s = s[1 : l-1]
			}
		case '`':
			if s[l-1] == '`' {
				s = s[1 : l-1]
			}
		case '[':
			if s[l-1] == ']' {
				s = s[1 : l-1]
			}
		}
	}
	return toLowerASCII(s)
}

func toLowerASCII(s string) string {
	var need bool
	for i := 0; i < len(s); i++ {
		if c := s[i]; 'A' <= c && c <= 'Z' {
			need = true
			break
		}
	}
	if !need {
		return s
	}
	b := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		b[i] = c
	}
	return string(b)
}

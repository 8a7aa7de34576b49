package nanorm

import (
	"errors"
	"fmt"
	"time"
)

// ErrNullColumn is returned by a non-nullable accessor when the column
// holds SQL NULL. Use the Null* accessors for nullable columns.
var ErrNullColumn = errors.New("nanorm: column is NULL")

// ErrNoColumn is returned when an ordinal is out of range or a column name
// does not appear in the result set.
var ErrNoColumn = errors.New("nanorm: no such column")

// ErrColumnType is returned when the stored value cannot convert to the
// requested Go type.
var ErrColumnType = errors.New("nanorm: incompatible column type")

// convertTo converts one driver-normalized value (int64, float64, bool,
// []byte, string, time.Time, or nil) into T. After a row scan into any,
// database/sql has already reduced every driver value to this closed set,
// so a type switch covers the whole space without reflection.
func convertTo[T any](v any) (T, error) {
	var out T
	d := any(&out)
	if v == nil {
		if p, ok := d.(*any); ok {
			*p = nil
			return out, nil
		}
		return out, ErrNullColumn
	}
	switch d := d.(type) {
	case *any:
		*d = v
		return out, nil
	case *int64:
		if n, ok := v.(int64); ok {
			*d = n
			return out, nil
		}
	case *int:
		if n, ok := v.(int64); ok {
			*d = int(n)
			return out, nil
		}
	case *int32:
		if n, ok := v.(int64); ok {
			*d = int32(n)
			return out, nil
		}
	case *float64:
		switch n := v.(type) {
		case float64:
			*d = n
			return out, nil
		case int64:
			*d = float64(n)
			return out, nil
		}
	case *bool:
		switch b := v.(type) {
		case bool:
			*d = b
			return out, nil
		case int64:
			// SQLite has no boolean storage class.
			*d = b != 0
			return out, nil
		}
	case *string:
		switch s := v.(type) {
		case string:
			*d = s
			return out, nil
		case []byte:
			*d = string(s)
			return out, nil
		}
	case *[]byte:
		switch b := v.(type) {
		case []byte:
			*d = b
			return out, nil
		case string:
			*d = []byte(b)
			return out, nil
		}
	case *time.Time:
		if t, ok := v.(time.Time); ok {
			*d = t
			return out, nil
		}
	}
	return out, fmt.Errorf("%w: %T into %T", ErrColumnType, v, out)
}

package nanorm

import (
	"context"
	"database/sql/driver"
	"errors"
	"testing"
	"time"
)

// rawCursor executes a one-off query against a fresh stub and returns the
// cursor advanced to the first row.
func rawCursor(t *testing.T, cols []string, row []driver.Value) *Cursor {
	t.Helper()
	db, s := newStubDB(t)
	s.onQuery = func(string, []driver.NamedValue) ([]string, [][]driver.Value, error) {
		return cols, [][]driver.Value{row}, nil
	}
	cur, err := QueryRaw(context.Background(), db, `SELECT *`)
	if err != nil {
		t.Fatalf("QueryRaw: %v", err)
	}
	t.Cleanup(func() { _ = cur.Close() })
	if !cur.Next() {
		t.Fatalf("no row: %v", cur.Err())
	}
	return cur
}

func TestCursor_TypedAccessors(t *testing.T) {
	when := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	cur := rawCursor(t,
		[]string{"i", "f", "b", "s", "bs", "ts"},
		[]driver.Value{int64(42), 3.5, true, "gear", []byte{0x1, 0x2}, when},
	)

	if v, err := cur.Int64(0); err != nil || v != 42 {
		t.Fatalf("Int64: %d, %v", v, err)
	}
	if v, err := cur.Int(0); err != nil || v != 42 {
		t.Fatalf("Int: %d, %v", v, err)
	}
	if v, err := cur.Int32(0); err != nil || v != 42 {
		t.Fatalf("Int32: %d, %v", v, err)
	}
	if v, err := cur.Float64(1); err != nil || v != 3.5 {
		t.Fatalf("Float64: %v, %v", v, err)
	}
	if v, err := cur.Bool(2); err != nil || !v {
		t.Fatalf("Bool: %v, %v", v, err)
	}
	if v, err := cur.String(3); err != nil || v != "gear" {
		t.Fatalf("String: %q, %v", v, err)
	}
	if v, err := cur.Bytes(4); err != nil || len(v) != 2 || v[0] != 1 {
		t.Fatalf("Bytes: %v, %v", v, err)
	}
	if v, err := cur.Time(5); err != nil || !v.Equal(when) {
		t.Fatalf("Time: %v, %v", v, err)
	}
	if v, err := cur.Value(0); err != nil || v != int64(42) {
		t.Fatalf("Value: %v, %v", v, err)
	}
}

func TestCursor_SQLiteConversions(t *testing.T) {
	// SQLite reports booleans as integers and text as []byte.
	cur := rawCursor(t,
		[]string{"flag", "name", "ratio"},
		[]driver.Value{int64(1), []byte("gear"), int64(2)},
	)

	if v, err := cur.Bool(0); err != nil || !v {
		t.Fatalf("Bool from int64: %v, %v", v, err)
	}
	if v, err := cur.String(1); err != nil || v != "gear" {
		t.Fatalf("String from []byte: %q, %v", v, err)
	}
	if v, err := cur.Float64(2); err != nil || v != 2 {
		t.Fatalf("Float64 from int64: %v, %v", v, err)
	}
}

func TestCursor_NullHandling(t *testing.T) {
	cur := rawCursor(t, []string{"a", "b"}, []driver.Value{nil, int64(9)})

	if null, err := cur.IsNull(0); err != nil || !null {
		t.Fatalf("IsNull(0): %v, %v", null, err)
	}
	if null, err := cur.IsNull(1); err != nil || null {
		t.Fatalf("IsNull(1): %v, %v", null, err)
	}
	if _, err := cur.Int64(0); !errors.Is(err, ErrNullColumn) {
		t.Fatalf("Int64 on NULL: %v", err)
	}
	if v, err := cur.NullInt64(0); err != nil || v.Valid {
		t.Fatalf("NullInt64 on NULL: %+v, %v", v, err)
	}
	if v, err := cur.NullInt64(1); err != nil || !v.Valid || v.Int64 != 9 {
		t.Fatalf("NullInt64: %+v, %v", v, err)
	}
	if v, err := cur.Value(0); err != nil || v != nil {
		t.Fatalf("Value on NULL: %v, %v", v, err)
	}
	if v, err := NullField[int64](cur, "b"); err != nil || !v.Valid || v.V != 9 {
		t.Fatalf("NullField: %+v, %v", v, err)
	}
}

func TestCursor_NameResolution(t *testing.T) {
	cur := rawCursor(t, []string{`"ID"`, "Name"}, []driver.Value{int64(7), "gear"})

	i, err := cur.Ordinal("id")
	if err != nil || i != 0 {
		t.Fatalf("Ordinal(id): %d, %v", i, err)
	}
	if v, err := Field[string](cur, "NAME"); err != nil || v != "gear" {
		t.Fatalf("Field(NAME): %q, %v", v, err)
	}
	if _, err := cur.Ordinal("missing"); !errors.Is(err, ErrNoColumn) {
		t.Fatalf("Ordinal(missing): %v", err)
	}
}

func TestCursor_OutOfRangeOrdinal(t *testing.T) {
	cur := rawCursor(t, []string{"a"}, []driver.Value{int64(1)})

	if _, err := cur.Int64(5); !errors.Is(err, ErrNoColumn) {
		t.Fatalf("want ErrNoColumn, got %v", err)
	}
	if _, err := cur.Int64(-1); !errors.Is(err, ErrNoColumn) {
		t.Fatalf("want ErrNoColumn, got %v", err)
	}
}

func TestCursor_TypeMismatch(t *testing.T) {
	cur := rawCursor(t, []string{"a"}, []driver.Value{"gear"})

	_, err := cur.Time(0)
	if !errors.Is(err, ErrColumnType) {
		t.Fatalf("want ErrColumnType, got %v", err)
	}
}

func TestCursor_Columns(t *testing.T) {
	cur := rawCursor(t, []string{"id", "name"}, []driver.Value{int64(1), "a"})

	cols := cur.Columns()
	if len(cols) != 2 || cols[0] != "id" || cols[1] != "name" {
		t.Fatalf("Columns: %v", cols)
	}
}

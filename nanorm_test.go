package nanorm

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"sync"
	"testing"
)

// The tests run against an in-memory database/sql driver that records every
// lifecycle event (connects, prepares, executions, statement and cursor
// closes), so resource-release guarantees are observable rather than
// assumed.

type rowsHandler func(query string, args []driver.NamedValue) (cols []string, data [][]driver.Value, err error)
type execHandler func(query string, args []driver.NamedValue) (driver.Result, error)

type stub struct {
	mu sync.Mutex

	onQuery rowsHandler
	onExec  execHandler

	connects   int
	prepares   int
	queries    int
	execs      int
	stmtCloses int
	rowsCloses int
	prepared   []string // statement texts, in prepare order
}

func (s *stub) record(f func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f()
}

func (s *stub) stats() (prepares, queries, execs, stmtCloses, rowsCloses int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prepares, s.queries, s.execs, s.stmtCloses, s.rowsCloses
}

func (s *stub) preparedTexts() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.prepared...)
}

// --- driver plumbing ---------------------------------------------------------

func (s *stub) Connect(context.Context) (driver.Conn, error) {
	s.record(func() { s.connects++ })
	return &stubConn{s: s}, nil
}

func (s *stub) Driver() driver.Driver { return stubDriver{} }

type stubDriver struct{}

func (stubDriver) Open(string) (driver.Conn, error) {
	return nil, errors.New("stubDriver.Open should not be called; use sql.OpenDB with connector")
}

type stubConn struct {
	s *stub
}

func (c *stubConn) Prepare(query string) (driver.Stmt, error) {
	return c.PrepareContext(context.Background(), query)
}

func (c *stubConn) PrepareContext(_ context.Context, query string) (driver.Stmt, error) {
	c.s.record(func() {
		c.s.prepares++
		c.s.prepared = append(c.s.prepared, query)
	})
	return &stubStmt{s: c.s, query: query}, nil
}

func (c *stubConn) Close() error              { return nil }
func (c *stubConn) Begin() (driver.Tx, error) { return nil, driver.ErrSkip }

type stubStmt struct {
	s     *stub
	query string
}

func (st *stubStmt) Close() error {
	st.s.record(func() { st.s.stmtCloses++ })
	return nil
}

func (st *stubStmt) NumInput() int { return -1 }

// CheckNamedValue accepts named arguments and applies the default
// conversions to everything else.
func (st *stubStmt) CheckNamedValue(nv *driver.NamedValue) error {
	v, err := driver.DefaultParameterConverter.ConvertValue(nv.Value)
	if err != nil {
		return err
	}
	nv.Value = v
	return nil
}

func (st *stubStmt) Exec([]driver.Value) (driver.Result, error) {
	return nil, errors.New("use ExecContext")
}

func (st *stubStmt) Query([]driver.Value) (driver.Rows, error) {
	return nil, errors.New("use QueryContext")
}

func (st *stubStmt) ExecContext(_ context.Context, args []driver.NamedValue) (driver.Result, error) {
	st.s.record(func() { st.s.execs++ })
	if st.s.onExec == nil {
		return nil, errors.New("stub: no exec handler")
	}
	return st.s.onExec(st.query, args)
}

func (st *stubStmt) QueryContext(_ context.Context, args []driver.NamedValue) (driver.Rows, error) {
	st.s.record(func() { st.s.queries++ })
	if st.s.onQuery == nil {
		return nil, errors.New("stub: no query handler")
	}
	cols, data, err := st.s.onQuery(st.query, args)
	if err != nil {
		return nil, err
	}
	return &stubRows{s: st.s, cols: cols, data: data}, nil
}

type stubRows struct {
	s    *stub
	cols []string
	data [][]driver.Value
	i    int
}

func (r *stubRows) Columns() []string { return append([]string(nil), r.cols...) }

func (r *stubRows) Close() error {
	r.s.record(func() { r.s.rowsCloses++ })
	return nil
}

func (r *stubRows) Next(dest []driver.Value) error {
	if r.i >= len(r.data) {
		return io.EOF
	}
	row := r.data[r.i]
	for i := range dest {
		if i < len(row) {
			dest[i] = row[i]
		} else {
			dest[i] = nil
		}
	}
	r.i++
	return nil
}

// newStubDB creates a *sql.DB backed by the instrumented in-memory driver.
func newStubDB(t *testing.T) (*sql.DB, *stub) {
	t.Helper()
	s := &stub{}
	db := sql.OpenDB(s)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db, s
}

// widget is the mappable type used across the executor tests.
type widget struct {
	ID   int64
	Name string
}

func (w *widget) MapRow(c *Cursor) error {
	var err error
	if w.ID, err = c.Int64(0); err != nil {
		return err
	}
	w.Name, err = c.String(1)
	return err
}

func widgetRows(rows ...[]driver.Value) rowsHandler {
	return func(string, []driver.NamedValue) ([]string, [][]driver.Value, error) {
		return []string{"id", "name"}, rows, nil
	}
}

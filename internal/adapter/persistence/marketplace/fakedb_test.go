package marketplace

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
)

// fakeTables maps table -> id -> row values in SELECT column order.
type fakeTables map[string]map[string][]driver.Value

var (
	fakeMu       sync.Mutex
	fakeDatasets = map[string]fakeTables{}
)

func init() {
	sql.Register("marketplace_fake", fakeDriver{})
}

// openFakeDB returns a *sql.DB backed by tables. A nil tables value makes
// every query fail.
func openFakeDB(t *testing.T, tables fakeTables) *sql.DB {
	t.Helper()
	fakeMu.Lock()
	fakeDatasets[t.Name()] = tables
	fakeMu.Unlock()

	db, err := sql.Open("marketplace_fake", t.Name())
	if err != nil {
		t.Fatalf("open fake db: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
		fakeMu.Lock()
		delete(fakeDatasets, t.Name())
		fakeMu.Unlock()
	})
	return db
}

type fakeDriver struct{}

func (fakeDriver) Open(name string) (driver.Conn, error) {
	fakeMu.Lock()
	defer fakeMu.Unlock()
	return &fakeConn{tables: fakeDatasets[name]}, nil
}

type fakeConn struct {
	tables fakeTables
}

func (c *fakeConn) Prepare(query string) (driver.Stmt, error) {
	return &fakeStmt{conn: c, query: query}, nil
}

func (c *fakeConn) Close() error { return nil }

func (c *fakeConn) Begin() (driver.Tx, error) {
	return nil, errors.New("transactions not supported")
}

type fakeStmt struct {
	conn  *fakeConn
	query string
}

func (s *fakeStmt) Close() error  { return nil }
func (s *fakeStmt) NumInput() int { return -1 }

func (s *fakeStmt) Exec(args []driver.Value) (driver.Result, error) {
	return nil, errors.New("read only")
}

func (s *fakeStmt) Query(args []driver.Value) (driver.Rows, error) {
	if s.conn.tables == nil {
		return nil, errors.New("connection refused")
	}
	for table, rows := range s.conn.tables {
		if !strings.Contains(s.query, "FROM "+table+" ") {
			continue
		}
		id, _ := args[0].(string)
		row, ok := rows[id]
		if !ok {
			return &fakeRows{}, nil
		}
		return &fakeRows{rows: [][]driver.Value{row}}, nil
	}
	return nil, errors.New("unknown table in query: " + s.query)
}

type fakeRows struct {
	rows [][]driver.Value
	pos  int
}

func (r *fakeRows) Columns() []string {
	if len(r.rows) == 0 {
		return nil
	}
	cols := make([]string, len(r.rows[0]))
	for i := range cols {
		cols[i] = "c"
	}
	return cols
}

func (r *fakeRows) Close() error { return nil }

func (r *fakeRows) Next(dest []driver.Value) error {
	if r.pos >= len(r.rows) {
		return io.EOF
	}
	copy(dest, r.rows[r.pos])
	r.pos++
	return nil
}

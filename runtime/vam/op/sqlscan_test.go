package op_test

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/brimdata/blockflow/runtime"
	"github.com/brimdata/blockflow/runtime/limits"
	"github.com/brimdata/blockflow/runtime/vam/op"
	"github.com/brimdata/blockflow/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tableDriver is a database/sql driver serving fixed result sets keyed by
// data source name.  Every query returns the table of its connection.
type tableDriver struct {
	mu      sync.Mutex
	tables  map[string]*table
	queries int
}

type table struct {
	columns []string
	rows    [][]driver.Value
}

var testDriver = &tableDriver{tables: make(map[string]*table)}

func init() {
	sql.Register("blockflowtest", testDriver)
}

var errBadQuery = errors.New("bad query")

func openTable(t *testing.T, columns []string, rows ...[]driver.Value) *sql.DB {
	t.Helper()
	testDriver.mu.Lock()
	testDriver.tables[t.Name()] = &table{columns, rows}
	testDriver.mu.Unlock()
	db, err := sql.Open("blockflowtest", t.Name())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func (d *tableDriver) Open(name string) (driver.Conn, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	tbl, ok := d.tables[name]
	if !ok {
		return nil, errors.New("no such table")
	}
	return &tableConn{tbl}, nil
}

type tableConn struct {
	table *table
}

func (c *tableConn) Prepare(query string) (driver.Stmt, error) {
	if query == "bad" {
		return nil, errBadQuery
	}
	return &tableStmt{c.table}, nil
}

func (*tableConn) Close() error { return nil }

func (*tableConn) Begin() (driver.Tx, error) {
	return nil, errors.New("transactions not supported")
}

type tableStmt struct {
	table *table
}

func (*tableStmt) Close() error  { return nil }
func (*tableStmt) NumInput() int { return -1 }

func (*tableStmt) Exec([]driver.Value) (driver.Result, error) {
	return nil, errors.New("exec not supported")
}

func (s *tableStmt) Query([]driver.Value) (driver.Rows, error) {
	testDriver.mu.Lock()
	testDriver.queries++
	testDriver.mu.Unlock()
	return &tableRows{table: s.table}, nil
}

type tableRows struct {
	table *table
	next  int
}

func (r *tableRows) Columns() []string { return r.table.columns }
func (*tableRows) Close() error        { return nil }

func (r *tableRows) Next(dest []driver.Value) error {
	if r.next >= len(r.table.rows) {
		return io.EOF
	}
	copy(dest, r.table.rows[r.next])
	r.next++
	return nil
}

func TestSQLScanKinds(t *testing.T) {
	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	db := openTable(t, []string{"id", "score", "ok", "name", "at", "empty"},
		[]driver.Value{nil, 1.5, true, []byte("a"), ts, nil},
		[]driver.Value{int64(2), 2.5, false, []byte("b"), ts, nil},
	)
	scan := op.NewSQLScan(runtime.DefaultContext(), db, "blockflowtest", "select", nil, 0)
	blocks := drain(t, scan)
	require.Len(t, blocks, 1)
	block := blocks[0]
	kinds := []vector.Kind{vector.KindInt64, vector.KindFloat64, vector.KindBool, vector.KindString, vector.KindString, vector.KindString}
	for k, kind := range kinds {
		assert.Equal(t, kind, block.Column(k).Kind(), block.Names[k])
	}
	assert.Equal(t, []int64{0, 2}, ints(block, "id"))
	assert.Equal(t, []string{"a", "b"}, strs(block, "name"))
	assert.Equal(t, []string{"2024-03-01T12:00:00Z", "2024-03-01T12:00:00Z"}, strs(block, "at"))
	assert.Equal(t, []string{"", ""}, strs(block, "empty"))
	assert.Equal(t, "SQLScan(blockflowtest)", scan.Describe())
}

func TestSQLScanUnsignedAndFloat32(t *testing.T) {
	db := openTable(t, []string{"id", "ratio"},
		[]driver.Value{uint64(math.MaxUint64), float32(1.5)},
		[]driver.Value{uint64(7), float32(2)},
		[]driver.Value{uint64(math.MaxUint64), float32(1.5)},
	)
	rctx := runtime.DefaultContext()
	scan := op.NewSQLScan(rctx, db, "blockflowtest", "select", nil, 0)
	blocks := drain(t, op.NewDistinct(rctx, scan, limits.Limits{}, 0, nil))
	require.Len(t, blocks, 1)
	block := blocks[0]
	id, _ := block.Lookup("id")
	ratio, _ := block.Lookup("ratio")
	assert.Equal(t, vector.KindUint64, id.Kind())
	assert.Equal(t, vector.KindFloat64, ratio.Kind())
	require.Equal(t, uint32(2), block.Len())
	assert.Equal(t, uint64(math.MaxUint64), vector.ValueAt(id, 0).Uint())
	assert.Equal(t, uint64(7), vector.ValueAt(id, 1).Uint())
	assert.Equal(t, 1.5, vector.ValueAt(ratio, 0).Float())
	assert.Equal(t, 2.0, vector.ValueAt(ratio, 1).Float())
}

func TestSQLScanDistinct(t *testing.T) {
	var rows [][]driver.Value
	for k := range 10 {
		rows = append(rows, []driver.Value{int64(k % 4), []byte("x")})
	}
	db := openTable(t, []string{"k", "v"}, rows...)
	rctx := runtime.DefaultContext()
	d := op.NewDistinct(rctx, op.NewSQLScan(rctx, db, "blockflowtest", "select", nil, 3), limits.Limits{}, 0, nil)
	var keys []int64
	for _, block := range drain(t, d) {
		keys = append(keys, ints(block, "k")...)
	}
	assert.Equal(t, []int64{0, 1, 2, 3}, keys)
	assert.Equal(t, "Distinct(SQLScan(blockflowtest))", d.Describe())
}

func TestSQLScanBatches(t *testing.T) {
	var rows [][]driver.Value
	for k := range 5 {
		rows = append(rows, []driver.Value{int64(k)})
	}
	db := openTable(t, []string{"k"}, rows...)
	scan := op.NewSQLScan(runtime.DefaultContext(), db, "blockflowtest", "select", nil, 2)
	blocks := drain(t, scan)
	require.Len(t, blocks, 3)
	assert.Equal(t, []int64{4}, ints(blocks[2], "k"))
}

func TestSQLScanConversionError(t *testing.T) {
	db := openTable(t, []string{"k"},
		[]driver.Value{int64(1)},
		[]driver.Value{[]byte("one")},
	)
	scan := op.NewSQLScan(runtime.DefaultContext(), db, "blockflowtest", "select", nil, 1)
	_, err := scan.Pull(false)
	require.NoError(t, err)
	_, err = scan.Pull(false)
	assert.ErrorContains(t, err, `column "k"`)
}

func TestSQLScanQueryError(t *testing.T) {
	db := openTable(t, []string{"k"})
	scan := op.NewSQLScan(runtime.DefaultContext(), db, "blockflowtest", "bad", nil, 0)
	_, err := scan.Pull(false)
	require.ErrorIs(t, err, errBadQuery)
	block, err := scan.Pull(false)
	require.NoError(t, err)
	assert.Nil(t, block)
}

func TestSQLScanDoneBeforeQuery(t *testing.T) {
	db := openTable(t, []string{"k"}, []driver.Value{int64(1)})
	testDriver.mu.Lock()
	before := testDriver.queries
	testDriver.mu.Unlock()
	scan := op.NewSQLScan(runtime.DefaultContext(), db, "blockflowtest", "select", nil, 0)
	block, err := scan.Pull(true)
	require.NoError(t, err)
	assert.Nil(t, block)
	block, err = scan.Pull(false)
	require.NoError(t, err)
	assert.Nil(t, block)
	testDriver.mu.Lock()
	assert.Equal(t, before, testDriver.queries)
	testDriver.mu.Unlock()
}

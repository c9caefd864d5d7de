package op

import (
	"database/sql"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"time"

	"github.com/brimdata/blockflow/runtime"
	"github.com/brimdata/blockflow/vector"
	"go.uber.org/zap"
)

const sqlScanName = "sqlscan"

// SQLScan runs a query against a database and emits the result set as
// blocks of at most batchSize rows.  The query is issued on the first
// Pull.  SQL NULL is read as the zero value of the column kind.
type SQLScan struct {
	rctx      *runtime.Context
	db        *sql.DB
	driver    string
	query     string
	args      []any
	batchSize int

	rows  *sql.Rows
	names []string
	kinds []vector.Kind
	done  bool
}

var _ Operator = (*SQLScan)(nil)

func NewSQLScan(rctx *runtime.Context, db *sql.DB, driver, query string, args []any, batchSize int) *SQLScan {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &SQLScan{
		rctx:      rctx,
		db:        db,
		driver:    driver,
		query:     query,
		args:      args,
		batchSize: batchSize,
	}
}

func (s *SQLScan) Pull(done bool) (*vector.Block, error) {
	if s.done {
		return nil, nil
	}
	if done {
		return nil, s.close()
	}
	if s.rows == nil {
		if err := s.open(); err != nil {
			s.done = true
			return nil, err
		}
	}
	var batch [][]any
	for len(batch) < s.batchSize && s.rows.Next() {
		row := make([]any, len(s.names))
		ptrs := make([]any, len(row))
		for k := range row {
			ptrs[k] = &row[k]
		}
		if err := s.rows.Scan(ptrs...); err != nil {
			s.close()
			return nil, err
		}
		batch = append(batch, row)
	}
	if err := s.rows.Err(); err != nil {
		s.close()
		return nil, err
	}
	if len(batch) == 0 {
		return nil, s.close()
	}
	if s.kinds == nil {
		s.inferKinds(batch)
	}
	cols := make([]vector.Any, len(s.names))
	for k, kind := range s.kinds {
		col, err := convertColumn(kind, batch, k)
		if err != nil {
			s.close()
			return nil, fmt.Errorf("%s: column %q: %w", s.driver, s.names[k], err)
		}
		cols[k] = col
	}
	block, err := vector.NewBlock(s.names, cols)
	if err != nil {
		s.close()
		return nil, err
	}
	s.rctx.Metrics.Read(sqlScanName, block.Len())
	return block, nil
}

func (s *SQLScan) open() error {
	rows, err := s.db.QueryContext(s.rctx, s.query, s.args...)
	if err != nil {
		return err
	}
	names, err := rows.Columns()
	if err != nil {
		rows.Close()
		return err
	}
	s.rows = rows
	s.names = names
	if types, err := rows.ColumnTypes(); err == nil {
		s.kinds = kindsFromColumnTypes(types)
	}
	s.rctx.Logger.Debug("query started", zap.String("driver", s.driver), zap.Strings("columns", names))
	return nil
}

func (s *SQLScan) close() error {
	s.done = true
	if s.rows == nil {
		return nil
	}
	return s.rows.Close()
}

func (s *SQLScan) inferKinds(batch [][]any) {
	s.kinds = make([]vector.Kind, len(s.names))
	for k := range s.kinds {
		s.kinds[k] = vector.KindString
		for _, row := range batch {
			if kind, ok := kindOf(row[k]); ok {
				s.kinds[k] = kind
				break
			}
		}
	}
}

func (s *SQLScan) Describe() string {
	return fmt.Sprintf("SQLScan(%s)", s.driver)
}

// kindsFromColumnTypes maps driver scan types to kinds.  It returns nil
// if any column has a scan type that does not determine its kind.
func kindsFromColumnTypes(types []*sql.ColumnType) []vector.Kind {
	kinds := make([]vector.Kind, len(types))
	for k, typ := range types {
		kind, ok := kindOfType(typ.ScanType())
		if !ok {
			return nil
		}
		kinds[k] = kind
	}
	return kinds
}

var (
	nullInt64Type   = reflect.TypeOf(sql.NullInt64{})
	nullInt32Type   = reflect.TypeOf(sql.NullInt32{})
	nullInt16Type   = reflect.TypeOf(sql.NullInt16{})
	nullFloat64Type = reflect.TypeOf(sql.NullFloat64{})
	nullBoolType    = reflect.TypeOf(sql.NullBool{})
	nullStringType  = reflect.TypeOf(sql.NullString{})
	nullTimeType    = reflect.TypeOf(sql.NullTime{})
	timeType        = reflect.TypeOf(time.Time{})
)

func kindOfType(typ reflect.Type) (vector.Kind, bool) {
	if typ == nil {
		return vector.KindInvalid, false
	}
	switch typ {
	case nullInt64Type, nullInt32Type, nullInt16Type:
		return vector.KindInt64, true
	case nullFloat64Type:
		return vector.KindFloat64, true
	case nullBoolType:
		return vector.KindBool, true
	case nullStringType, nullTimeType, timeType:
		return vector.KindString, true
	}
	switch typ.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return vector.KindInt64, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return vector.KindUint64, true
	case reflect.Float32, reflect.Float64:
		return vector.KindFloat64, true
	case reflect.Bool:
		return vector.KindBool, true
	case reflect.String:
		return vector.KindString, true
	case reflect.Slice:
		if typ.Elem().Kind() == reflect.Uint8 {
			return vector.KindString, true
		}
	}
	return vector.KindInvalid, false
}

func kindOf(v any) (vector.Kind, bool) {
	switch v.(type) {
	case nil:
		return vector.KindInvalid, false
	case int64:
		return vector.KindInt64, true
	case uint64:
		return vector.KindUint64, true
	case float32, float64:
		return vector.KindFloat64, true
	case bool:
		return vector.KindBool, true
	}
	return vector.KindString, true
}

func convertColumn(kind vector.Kind, batch [][]any, k int) (vector.Any, error) {
	n := uint32(len(batch))
	switch kind {
	case vector.KindInt64:
		vec := vector.NewIntEmpty(kind, n)
		for _, row := range batch {
			v, err := asInt(row[k])
			if err != nil {
				return nil, err
			}
			vec.Append(v)
		}
		return vec, nil
	case vector.KindUint64:
		vec := vector.NewUintEmpty(kind, n)
		for _, row := range batch {
			v, err := asUint(row[k])
			if err != nil {
				return nil, err
			}
			vec.Append(v)
		}
		return vec, nil
	case vector.KindFloat64:
		vec := vector.NewFloatEmpty(kind, n)
		for _, row := range batch {
			v, err := asFloat(row[k])
			if err != nil {
				return nil, err
			}
			vec.Append(v)
		}
		return vec, nil
	case vector.KindBool:
		vals := make([]bool, n)
		for i, row := range batch {
			v, err := asBool(row[k])
			if err != nil {
				return nil, err
			}
			vals[i] = v
		}
		return vector.NewBoolFromSlice(vals), nil
	case vector.KindString:
		vec := vector.NewStringEmpty(n)
		for _, row := range batch {
			vec.Append(asString(row[k]))
		}
		return vec, nil
	}
	return nil, fmt.Errorf("unsupported column kind %s", kind)
}

func asInt(v any) (int64, error) {
	switch v := v.(type) {
	case nil:
		return 0, nil
	case int64:
		return v, nil
	case uint64:
		if v > math.MaxInt64 {
			return 0, fmt.Errorf("value %d overflows int64", v)
		}
		return int64(v), nil
	case []byte:
		return strconv.ParseInt(string(v), 10, 64)
	case string:
		return strconv.ParseInt(v, 10, 64)
	}
	return 0, fmt.Errorf("cannot read %T as int64", v)
}

func asUint(v any) (uint64, error) {
	switch v := v.(type) {
	case nil:
		return 0, nil
	case uint64:
		return v, nil
	case int64:
		if v < 0 {
			return 0, fmt.Errorf("negative value %d read as uint64", v)
		}
		return uint64(v), nil
	case []byte:
		return strconv.ParseUint(string(v), 10, 64)
	case string:
		return strconv.ParseUint(v, 10, 64)
	}
	return 0, fmt.Errorf("cannot read %T as uint64", v)
}

func asFloat(v any) (float64, error) {
	switch v := v.(type) {
	case nil:
		return 0, nil
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case []byte:
		return strconv.ParseFloat(string(v), 64)
	case string:
		return strconv.ParseFloat(v, 64)
	}
	return 0, fmt.Errorf("cannot read %T as float64", v)
}

func asBool(v any) (bool, error) {
	switch v := v.(type) {
	case nil:
		return false, nil
	case bool:
		return v, nil
	case int64:
		return v != 0, nil
	case []byte:
		return strconv.ParseBool(string(v))
	case string:
		return strconv.ParseBool(v)
	}
	return false, fmt.Errorf("cannot read %T as bool", v)
}

func asString(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case time.Time:
		return v.Format(time.RFC3339Nano)
	}
	return fmt.Sprint(v)
}

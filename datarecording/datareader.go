package datarecording

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"os"
	"reflect"
	"strings"
)

// ErrNoTable is returned when reading a table the export does not hold.
var ErrNoTable = errors.New("datarecording: no such table")

// Reader reads back the tables of an export. Float columns that hold NULL,
// which is how SQLite stores NaN, come back as NaN.
type Reader struct {
	db *sql.DB
}

// NewReader opens an existing export read-only.
func NewReader(path string) (*Reader, error) {
	_, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, err
	}

	err = db.Ping()
	if err != nil {
		db.Close()
		return nil, err
	}

	return NewReaderWithDB(db), nil
}

// NewReaderWithDB reads from an already open database.
func NewReaderWithDB(db *sql.DB) *Reader {
	return &Reader{db: db}
}

// Close closes the underlying database.
func (r *Reader) Close() error {
	return r.db.Close()
}

// Tables lists the tables of the export by name.
func (r *Reader) Tables(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT name FROM sqlite_master WHERE type = 'table' ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string

	for rows.Next() {
		var name string

		err = rows.Scan(&name)
		if err != nil {
			return nil, err
		}

		names = append(names, name)
	}

	return names, rows.Err()
}

// Count returns the number of rows in a table.
func (r *Reader) Count(ctx context.Context, table string) (int, error) {
	err := r.checkTable(ctx, table)
	if err != nil {
		return 0, err
	}

	var n int

	err = r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM "+quote(table)).Scan(&n)
	if err != nil {
		return 0, err
	}

	return n, nil
}

// checkTable makes sure a table exists before its name is spliced into SQL.
func (r *Reader) checkTable(ctx context.Context, table string) error {
	var n int

	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?",
		table).Scan(&n)
	if err != nil {
		return err
	}

	if n == 0 {
		return fmt.Errorf("%w: %q", ErrNoTable, table)
	}

	return nil
}

func quote(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

type selection struct {
	where   string
	args    []any
	orderBy string
}

// A ReadOption narrows or orders the rows returned by ReadAll.
type ReadOption func(*selection)

// Where keeps the rows matching cond, a SQL condition with ? placeholders.
func Where(cond string, args ...any) ReadOption {
	return func(s *selection) {
		s.where = cond
		s.args = args
	}
}

// OrderBy sorts the rows by a field of the row type, ascending.
func OrderBy(field string) ReadOption {
	return func(s *selection) {
		s.orderBy = field
	}
}

// ReadAll reads the rows of a table into values of the struct type T.
// Columns are matched to fields by name; columns without a field are
// skipped.
func ReadAll[T any](
	ctx context.Context,
	r *Reader,
	table string,
	opts ...ReadOption,
) ([]T, error) {
	rowType := reflect.TypeOf((*T)(nil)).Elem()
	if rowType.Kind() != reflect.Struct {
		return nil, fmt.Errorf("datarecording: %s is not a struct", rowType)
	}

	var sel selection
	for _, o := range opts {
		o(&sel)
	}

	err := r.checkTable(ctx, table)
	if err != nil {
		return nil, err
	}

	query := "SELECT * FROM " + quote(table)

	if sel.where != "" {
		query += " WHERE " + sel.where
	}

	if sel.orderBy != "" {
		if _, ok := rowType.FieldByName(sel.orderBy); !ok {
			return nil, fmt.Errorf("datarecording: %s has no field %q",
				rowType, sel.orderBy)
		}

		query += " ORDER BY " + quote(sel.orderBy)
	}

	rows, err := r.db.QueryContext(ctx, query, sel.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRows[T](rows, rowType)
}

func scanRows[T any](rows *sql.Rows, rowType reflect.Type) ([]T, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var out []T

	for rows.Next() {
		var row T

		v := reflect.ValueOf(&row).Elem()
		targets := make([]any, len(columns))
		floats := make(map[int]*sql.NullFloat64)

		for i, col := range columns {
			field, ok := rowType.FieldByName(col)
			if !ok || !field.IsExported() {
				targets[i] = new(any)
				continue
			}

			fv := v.FieldByIndex(field.Index)

			switch fv.Kind() {
			case reflect.Float32, reflect.Float64:
				nf := new(sql.NullFloat64)
				floats[i] = nf
				targets[i] = nf
			default:
				targets[i] = fv.Addr().Interface()
			}
		}

		err = rows.Scan(targets...)
		if err != nil {
			return nil, err
		}

		for i, nf := range floats {
			f := math.NaN()
			if nf.Valid {
				f = nf.Float64
			}

			field, _ := rowType.FieldByName(columns[i])
			v.FieldByIndex(field.Index).SetFloat(f)
		}

		out = append(out, row)
	}

	return out, rows.Err()
}

// Package table maps typed records onto display columns.
//
// A Table is built once from an ordered set of columns and then turns any number of
// records into a Grid: the column headers plus one row of formatted cells per record,
// in record order. Renderers (HTML, spreadsheet, terminal) only ever see Grids.
package table

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// DateLayout is the layout used for time.Time cells.
const DateLayout = "02/01/2006"

var (
	// errors
	ErrNoColumns    = errors.New("table needs at least one column")
	ErrEmptyKey     = errors.New("column key cannot be empty")
	ErrEmptyLabel   = errors.New("column label cannot be empty")
	ErrNilValue     = errors.New("column value selector cannot be nil")
	ErrDuplicateKey = errors.New("duplicate column key")
)

// Column maps one attribute of T to a display label.
type Column[T any] struct {
	Key    string           // stable identifier, unique within a Table
	Label  string           // header shown to users
	Value  func(T) any      // selects the attribute from a record
	Format func(any) string // optional; FormatValue is used when nil
}

// Table is an immutable, validated set of columns for records of type T.
type Table[T any] struct {
	cols []Column[T]
}

// Grid is the rendered form of a Table: headers plus formatted rows.
type Grid struct {
	Keys    []string   `json:"keys"`
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// New validates cols and returns a Table using them in the given order.
func New[T any](cols ...Column[T]) (*Table[T], error) {
	if len(cols) == 0 {
		return nil, ErrNoColumns
	}
	seen := make(map[string]struct{}, len(cols))
	for i, col := range cols {
		switch {
		case strings.TrimSpace(col.Key) == "":
			return nil, errors.Wrapf(ErrEmptyKey, "column %d", i)
		case strings.TrimSpace(col.Label) == "":
			return nil, errors.Wrapf(ErrEmptyLabel, "column %q", col.Key)
		case col.Value == nil:
			return nil, errors.Wrapf(ErrNilValue, "column %q", col.Key)
		}
		if _, ok := seen[col.Key]; ok {
			return nil, errors.Wrapf(ErrDuplicateKey, "column %q", col.Key)
		}
		seen[col.Key] = struct{}{}
	}

	c := make([]Column[T], len(cols))
	copy(c, cols)
	return &Table[T]{cols: c}, nil
}

// MustNew is like New but panics if the columns are invalid.
// It simplifies the declaration of package level tables.
func MustNew[T any](cols ...Column[T]) *Table[T] {
	t, err := New(cols...)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Table[T]) Keys() []string {
	keys := make([]string, len(t.cols))
	for i, col := range t.cols {
		keys[i] = col.Key
	}
	return keys
}

func (t *Table[T]) Headers() []string {
	headers := make([]string, len(t.cols))
	for i, col := range t.cols {
		headers[i] = col.Label
	}
	return headers
}

// Row formats a single record.
func (t *Table[T]) Row(record T) []string {
	cells := make([]string, len(t.cols))
	for i, col := range t.cols {
		val := col.Value(record)
		if col.Format != nil {
			cells[i] = col.Format(val)
		} else {
			cells[i] = FormatValue(val)
		}
	}
	return cells
}

// Grid formats records in the order they are given.
func (t *Table[T]) Grid(records []T) Grid {
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, t.Row(rec))
	}
	return Grid{
		Keys:    t.Keys(),
		Headers: t.Headers(),
		Rows:    rows,
	}
}

// FormatValue is the default cell formatter.
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []string:
		return strings.Join(val, ", ")
	case time.Time:
		if val.IsZero() {
			return ""
		}
		return val.Format(DateLayout)
	case int:
		return strconv.Itoa(val)
	case bool:
		if val {
			return "Sim"
		}
		return "Não"
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}

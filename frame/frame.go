package frame

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingColumn reports a requested column absent from a frame.
	ErrMissingColumn = errors.New("missing column")
	// ErrTypeMismatch reports a column that cannot be coerced to numeric.
	ErrTypeMismatch = errors.New("column is not numeric")
)

// Frame is the tabular boundary kernels evaluate against: a row count and
// numeric column lookup by name.
type Frame interface {
	// Len returns the number of rows.
	Len() int
	// Numeric returns the named column as float64s. It fails with
	// ErrMissingColumn when the column does not exist and with
	// ErrTypeMismatch when it exists but is not numeric.
	Numeric(name string) ([]float64, error)
}

// Table is an in-memory Frame with named float64 or string columns. All
// columns share the row count fixed at construction; zero rows is legal.
type Table struct {
	n     int
	cols  map[string]any
	order []string
}

func NewTable(n int) *Table {
	return &Table{n: n, cols: make(map[string]any)}
}

func (t *Table) Len() int { return t.n }

// Columns returns the column names in insertion order.
func (t *Table) Columns() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// AddFloats adds a numeric column, replacing any column of the same name.
func (t *Table) AddFloats(name string, values []float64) *Table {
	t.set(name, values, len(values))
	return t
}

// AddStrings adds a string column, replacing any column of the same name.
func (t *Table) AddStrings(name string, values []string) *Table {
	t.set(name, values, len(values))
	return t
}

func (t *Table) set(name string, col any, n int) {
	if n != t.n {
		panic(fmt.Sprintf("frame: column %q has %d values, table has %d rows", name, n, t.n))
	}
	if _, ok := t.cols[name]; !ok {
		t.order = append(t.order, name)
	}
	t.cols[name] = col
}

func (t *Table) Numeric(name string) ([]float64, error) {
	col, ok := t.cols[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
	}
	values, ok := col.([]float64)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrTypeMismatch, name)
	}
	out := make([]float64, len(values))
	copy(out, values)
	return out, nil
}

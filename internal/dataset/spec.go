// Package dataset defines the declarative field tables for the ten business
// domains and the engine that assembles rows from them.
//
// Each domain is a TableSpec: an ordered list of Field entries naming the
// column, its optional-null probability, and a generator closure. The engine
// walks the fields in declaration order, so a derived field may read any
// column declared before it through the Row accessors. Cell values are
// strings, ints, float64s, bools, Dates, DateTimes, or nil for an absent
// optional value.
package dataset

import (
	"fmt"
	"time"
)

// Field describes one column of a domain table.
type Field struct {
	// Name is the exact output column name.
	Name string

	// Null is the probability that a row leaves this field absent. Checked
	// against one fresh uniform draw per row before Gen runs.
	Null float64

	// Gen produces the value. It may also pre-set later columns via Row.Set
	// when several columns share intermediate draws.
	Gen func(r *Row) any
}

// TableSpec describes a domain table.
type TableSpec struct {
	// Domain is the short identifier used in the CLI and the catalog.
	Domain string

	// FileName is the output file name, fixed per domain.
	FileName string

	// Fields builds the column list for one run. Building per run gives
	// stateful specs (the cashflow balance) a fresh accumulator each time.
	Fields func(g *Generator) []Field
}

// Table is the generated result: a header and same-shaped rows.
type Table struct {
	Domain   string
	FileName string
	Header   []string
	Rows     [][]any
}

// Row is one record under construction. Values are keyed by column name in
// addition to being collected in declaration order.
type Row struct {
	// Index is the 1-based row number, used for sequential identifiers.
	Index int

	values map[string]any
}

// Set pre-assigns a column value. The engine keeps pre-assigned values
// instead of running the column's own generator.
func (r *Row) Set(name string, v any) {
	r.values[name] = v
}

// Get returns the value of an already generated column. Referencing a column
// that has not been generated yet is a programming error.
func (r *Row) Get(name string) any {
	v, ok := r.values[name]
	if !ok {
		panic(fmt.Sprintf("dataset: field %q referenced before generation", name))
	}
	return v
}

// IsNull reports whether an already generated column is absent.
func (r *Row) IsNull(name string) bool {
	return r.Get(name) == nil
}

// Str returns a string column; absent values yield "".
func (r *Row) Str(name string) string {
	v := r.Get(name)
	if v == nil {
		return ""
	}
	return v.(string)
}

// Int returns an int column; absent values yield 0.
func (r *Row) Int(name string) int {
	v := r.Get(name)
	if v == nil {
		return 0
	}
	return v.(int)
}

// Float returns a numeric column as float64; ints are widened, absent values
// yield 0.
func (r *Row) Float(name string) float64 {
	switch v := r.Get(name).(type) {
	case nil:
		return 0
	case float64:
		return v
	case int:
		return float64(v)
	default:
		panic(fmt.Sprintf("dataset: field %q is not numeric (%T)", name, v))
	}
}

// TimeOf returns a Date or DateTime column's underlying time; absent values
// yield the zero time.
func (r *Row) TimeOf(name string) time.Time {
	switch v := r.Get(name).(type) {
	case nil:
		return time.Time{}
	case Date:
		return v.Time()
	case DateTime:
		return v.Time()
	default:
		panic(fmt.Sprintf("dataset: field %q is not a date (%T)", name, v))
	}
}

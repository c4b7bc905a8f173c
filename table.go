package gtfkit

import "fmt"

// ResultTable is an ordered, growable sequence of fixed-arity rows of text
// fields. A table is created empty for one listing call, populated during
// that call only, and handed over to the caller on return; this package
// never mutates a returned table.
type ResultTable struct {
	arity int
	rows  [][]string
}

// RowArityError signals an attempt to append a row whose field count does
// not match the table's arity. A table never carries mixed-arity rows.
type RowArityError struct {
	Expected int
	Actual   int
}

func (e *RowArityError) Error() string {
	return fmt.Sprintf("row arity mismatch: table expects %d fields, got %d", e.Expected, e.Actual)
}

// NewResultTable creates an empty table whose rows all carry arity fields
func NewResultTable(arity int) *ResultTable {
	return &ResultTable{arity: arity}
}

// AppendRow appends one row of text fields in insertion order.
// The fields are copied; the table keeps no reference to the caller's slice.
func (t *ResultTable) AppendRow(fields ...string) error {
	if len(fields) != t.arity {
		return &RowArityError{Expected: t.arity, Actual: len(fields)}
	}
	row := make([]string, len(fields))
	copy(row, fields)
	t.rows = append(t.rows, row)
	return nil
}

// Len returns the number of rows in the table
func (t *ResultTable) Len() int {
	return len(t.rows)
}

// Arity returns the number of fields each row carries
func (t *ResultTable) Arity() int {
	return t.arity
}

// Row returns the i-th row in insertion order
func (t *ResultTable) Row(i int) []string {
	return t.rows[i]
}

// Rows returns all rows in insertion order.
// Ownership of the returned slice lies with the caller.
func (t *ResultTable) Rows() [][]string {
	return t.rows
}

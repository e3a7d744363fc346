package data

import (
	"fmt"

	"github.com/emirpasic/gods/v2/maps/linkedhashmap"
)

type Row map[string]string

// Table holds categorical examples. Columns keeps a fixed order with the
// target attribute last; every row has a value for every column.
type Table struct {
	Columns []string
	Rows    []Row
}

func NewTable(columns []string, rows []Row) *Table {
	return &Table{Columns: columns, Rows: rows}
}

func (t *Table) Target() string {
	if len(t.Columns) == 0 {
		return ""
	}
	return t.Columns[len(t.Columns)-1]
}

func (t *Table) Features() []string {
	if len(t.Columns) == 0 {
		return nil
	}
	features := make([]string, len(t.Columns)-1)
	copy(features, t.Columns[:len(t.Columns)-1])
	return features
}

func (t *Table) NumRows() int {
	return len(t.Rows)
}

func (t *Table) Column(name string) []string {
	values := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		values[i] = row[name]
	}
	return values
}

// Partition groups rows by their value of attr. Groups appear in
// first-occurrence order and rows keep their original order within each
// group. The input table is not modified; sub-tables share row maps with
// the parent but no operation in this package ever mutates a row.
func (t *Table) Partition(attr string) *linkedhashmap.Map[string, *Table] {
	groups := linkedhashmap.New[string, *Table]()
	for _, row := range t.Rows {
		value := row[attr]
		group, found := groups.Get(value)
		if !found {
			group = &Table{Columns: t.Columns}
			groups.Put(value, group)
		}
		group.Rows = append(group.Rows, row)
	}
	return groups
}

// DropColumn returns a copy of the table without the named column. Row maps
// are copied so the result never aliases the original.
func (t *Table) DropColumn(name string) *Table {
	columns := make([]string, 0, len(t.Columns)-1)
	for _, col := range t.Columns {
		if col != name {
			columns = append(columns, col)
		}
	}

	rows := make([]Row, len(t.Rows))
	for i, row := range t.Rows {
		reduced := make(Row, len(columns))
		for _, col := range columns {
			reduced[col] = row[col]
		}
		rows[i] = reduced
	}

	return &Table{Columns: columns, Rows: rows}
}

func (t *Table) Select(indices []int) (*Table, error) {
	rows := make([]Row, len(indices))
	for i, idx := range indices {
		if idx < 0 || idx >= len(t.Rows) {
			return nil, fmt.Errorf("row index %d out of range [0, %d)", idx, len(t.Rows))
		}
		rows[i] = t.Rows[idx]
	}
	return &Table{Columns: t.Columns, Rows: rows}, nil
}

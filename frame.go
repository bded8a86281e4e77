package styler

import (
	"fmt"
	"slices"
)

// Frame is an immutable two-dimensional table with labeled rows (the index)
// and labeled columns. Labels are unique within their axis.
type Frame struct {
	name    string
	index   []string
	columns []string
	values  [][]any
	rowPos  map[string]int
	colPos  map[string]int
}

// NewFrame builds a Frame. values must hold one slice per index label, each
// with one value per column label. The slices are copied.
func NewFrame(index, columns []string, values [][]any) (*Frame, error) {
	if len(values) != len(index) {
		return nil, fmt.Errorf("%w: %d index labels but %d rows", ErrInvalidFrame, len(index), len(values))
	}
	rows := make([][]any, len(values))
	for i, row := range values {
		if len(row) != len(columns) {
			return nil, fmt.Errorf("%w: row %q has %d values, want %d", ErrInvalidFrame, index[i], len(row), len(columns))
		}
		rows[i] = slices.Clone(row)
	}
	return newFrame("", slices.Clone(index), slices.Clone(columns), rows)
}

func newFrame(name string, index, columns []string, values [][]any) (*Frame, error) {
	rowPos, err := positions(index, "index")
	if err != nil {
		return nil, err
	}
	colPos, err := positions(columns, "columns")
	if err != nil {
		return nil, err
	}
	return &Frame{
		name:    name,
		index:   index,
		columns: columns,
		values:  values,
		rowPos:  rowPos,
		colPos:  colPos,
	}, nil
}

func positions(labels []string, axis string) (map[string]int, error) {
	pos := make(map[string]int, len(labels))
	for i, l := range labels {
		if _, dup := pos[l]; dup {
			return nil, fmt.Errorf("%w: %q appears more than once in %s", ErrDuplicateLabel, l, axis)
		}
		pos[l] = i
	}
	return pos, nil
}

// IndexName returns the name of the index, used as the header of the label
// column when rendering.
func (f *Frame) IndexName() string { return f.name }

// WithIndexName returns a copy of f whose index is named name.
func (f *Frame) WithIndexName(name string) *Frame {
	c := *f
	c.name = name
	return &c
}

// Index returns a copy of the row labels.
func (f *Frame) Index() []string { return slices.Clone(f.index) }

// Columns returns a copy of the column labels.
func (f *Frame) Columns() []string { return slices.Clone(f.columns) }

// Len returns the number of rows.
func (f *Frame) Len() int { return len(f.index) }

// Width returns the number of columns.
func (f *Frame) Width() int { return len(f.columns) }

// At returns the value at row i, column j. It panics if either is out of range.
func (f *Frame) At(i, j int) any { return f.values[i][j] }

// Value returns the value addressed by a row and a column label.
func (f *Frame) Value(row, col string) (any, bool) {
	i, ok := f.rowPos[row]
	if !ok {
		return nil, false
	}
	j, ok := f.colPos[col]
	if !ok {
		return nil, false
	}
	return f.values[i][j], true
}

// RowPos returns the position of a row label.
func (f *Frame) RowPos(label string) (int, bool) {
	i, ok := f.rowPos[label]
	return i, ok
}

// ColPos returns the position of a column label.
func (f *Frame) ColPos(label string) (int, bool) {
	j, ok := f.colPos[label]
	return j, ok
}

// Rename returns a copy of f with the labels of one axis substituted per m.
// Labels missing from m keep their name; keys of m that are not labels of
// the axis are ignored. Axis order is preserved. Values are shared with f.
func (f *Frame) Rename(axis Orientation, m map[string]string) (*Frame, error) {
	if err := axis.validate(); err != nil {
		return nil, err
	}
	index, columns := f.index, f.columns
	if axis == ByRow {
		index = renameLabels(index, m)
	} else {
		columns = renameLabels(columns, m)
	}
	return newFrame(f.name, index, columns, f.values)
}

func renameLabels(labels []string, m map[string]string) []string {
	out := make([]string, len(labels))
	for i, l := range labels {
		if n, ok := m[l]; ok {
			out[i] = n
		} else {
			out[i] = l
		}
	}
	return out
}

// labels returns the labels along the axis addressed by top-level template
// keys under o, and the labels of the opposite axis.
func (f *Frame) labels(o Orientation) (primary, cross map[string]int) {
	if o == ByRow {
		return f.rowPos, f.colPos
	}
	return f.colPos, f.rowPos
}

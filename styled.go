package styler

import (
	"fmt"
	"iter"
)

// Styled is a relabeled [Frame] with display formatters registered per
// axis label and per cell. Formatters are looked up when a cell is
// displayed; nothing is rendered until [Write] is called.
type Styled struct {
	frame  *Frame
	orient Orientation
	axis   map[string]Formatter
	cells  map[cellRef]Formatter
}

// Frame returns the relabeled frame. Cell values are the raw, unformatted
// values of the original frame.
func (s *Styled) Frame() *Frame { return s.frame }

// Orientation returns the orientation the template was applied under.
func (s *Styled) Orientation() Orientation { return s.orient }

// Index returns the (renamed) row labels.
func (s *Styled) Index() []string { return s.frame.Index() }

// Columns returns the (renamed) column labels.
func (s *Styled) Columns() []string { return s.frame.Columns() }

// Formatter returns the formatter registered for a label on the oriented axis.
func (s *Styled) Formatter(label string) (Formatter, bool) {
	fn, ok := s.axis[label]
	return fn, ok
}

// Display returns the display string of the cell at (row, col), addressed by
// the renamed labels.
func (s *Styled) Display(row, col string) (string, bool) {
	i, ok := s.frame.RowPos(row)
	if !ok {
		return "", false
	}
	j, ok := s.frame.ColPos(col)
	if !ok {
		return "", false
	}
	return s.DisplayAt(i, j), true
}

// DisplayAt returns the display string of the cell at row i, column j.
func (s *Styled) DisplayAt(i, j int) string {
	v := s.frame.At(i, j)
	return s.formatterAt(i, j)(v)
}

func (s *Styled) formatterAt(i, j int) Formatter {
	row, col := s.frame.index[i], s.frame.columns[j]
	if fn, ok := s.cells[cellRef{row: row, col: col}]; ok {
		return fn
	}
	label := row
	if s.orient == ByCol {
		label = col
	}
	if fn, ok := s.axis[label]; ok {
		return fn
	}
	return Raw
}

// Row returns the display strings of row i.
func (s *Styled) Row(i int) []string {
	out := make([]string, s.frame.Width())
	for j := range out {
		out[j] = s.DisplayAt(i, j)
	}
	return out
}

// Rows yields each row label with its display strings.
func (s *Styled) Rows() iter.Seq2[string, []string] {
	return func(yield func(string, []string) bool) {
		for i, label := range s.frame.index {
			if !yield(label, s.Row(i)) {
				return
			}
		}
	}
}

// Grid returns the display strings of every cell, row-major.
func (s *Styled) Grid() [][]string {
	out := make([][]string, s.frame.Len())
	for i := range out {
		out[i] = s.Row(i)
	}
	return out
}

// String renders s as a rounded table.
func (s *Styled) String() string {
	b, err := Marshal(Table, s)
	if err != nil {
		return fmt.Sprintf("%%!(styler: %v)", err)
	}
	return string(b)
}

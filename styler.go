package styler

import (
	"cmp"
	"errors"
	"fmt"
	"maps"
	"slices"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInvalidOrientation = errors.New("invalid orientation")
	ErrMalformedEntry     = errors.New("malformed template entry")
	ErrUnknownLabel       = errors.New("unknown label")
	ErrDuplicateLabel     = errors.New("duplicate label")
	ErrInvalidFrame       = errors.New("invalid frame")
	ErrNilFrame           = errors.New("nil frame")
	ErrUnknownFormatter   = errors.New("unknown formatter")
	ErrUnsupportedOutput  = errors.New("unsupported output")
)

// Orientation selects whether top-level template keys address row labels or
// column labels.
type Orientation string

const (
	ByRow Orientation = "row"
	ByCol Orientation = "col"
)

// String returns the orientation name.
func (o Orientation) String() string { return string(o) }

func (o Orientation) validate() error {
	if o != ByRow && o != ByCol {
		return fmt.Errorf("%w: %q, must be either %q or %q", ErrInvalidOrientation, string(o), ByRow, ByCol)
	}
	return nil
}

// ParseOrientation parses "row" or "col".
func ParseOrientation(s string) (Orientation, error) {
	o := Orientation(s)
	if err := o.validate(); err != nil {
		return "", err
	}
	return o, nil
}

// Formatter turns a cell value into its display string.
type Formatter func(v any) string

// Key addresses either a label on the oriented axis or a single cell.
type Key struct {
	Label string
	Cross string // opposite-axis label; only meaningful for cell keys
	cell  bool
}

// Label returns a key for a row label (orientation row) or a column label
// (orientation col).
func Label(name string) Key { return Key{Label: name} }

// Cell returns a key for one cell: (row, col) under orientation row and
// (col, row) under orientation col.
func Cell(label, cross string) Key { return Key{Label: label, Cross: cross, cell: true} }

// IsCell reports whether k addresses a single cell.
func (k Key) IsCell() bool { return k.cell }

func (k Key) String() string {
	if k.cell {
		return fmt.Sprintf("(%q, %q)", k.Label, k.Cross)
	}
	return fmt.Sprintf("%q", k.Label)
}

func compareKeys(a, b Key) int {
	return cmp.Or(
		cmp.Compare(a.Label, b.Label),
		compareBool(a.cell, b.cell),
		cmp.Compare(a.Cross, b.Cross),
	)
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}

// EntryKind tags the variant held by an [Entry].
type EntryKind int

const (
	KindInvalid EntryKind = iota
	KindRename
	KindFormat
	KindRenameFormat
)

// Entry is one template value: a rename, a formatter, or both.
// The zero Entry is invalid.
type Entry struct {
	kind EntryKind
	name string
	fn   Formatter
}

// Rename relabels without formatting.
func Rename(name string) Entry { return Entry{kind: KindRename, name: name} }

// Format installs fn without relabeling.
func Format(fn Formatter) Entry { return Entry{kind: KindFormat, fn: fn} }

// RenameFormat relabels to name and installs fn on the renamed label.
func RenameFormat(name string, fn Formatter) Entry {
	return Entry{kind: KindRenameFormat, name: name, fn: fn}
}

// Kind returns the variant tag.
func (e Entry) Kind() EntryKind { return e.kind }

// Name returns the new label for rename variants.
func (e Entry) Name() string { return e.name }

// Formatter returns the formatter for format variants.
func (e Entry) Formatter() Formatter { return e.fn }

func (e Entry) valid(cell bool) bool {
	switch e.kind {
	case KindRename:
		return !cell
	case KindFormat:
		return e.fn != nil
	case KindRenameFormat:
		return !cell && e.fn != nil
	default:
		return false
	}
}

// Template maps keys to entries.
type Template map[Key]Entry

type cellRef struct{ row, col string }

// Style relabels and formats f according to t. Keys are interpreted under
// orientation o. f is not modified. On error no Styled is returned.
func Style(f *Frame, t Template, o Orientation) (*Styled, error) {
	if f == nil {
		return nil, ErrNilFrame
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	rename := make(map[string]string)
	format := make(map[string]Formatter)
	var cells []Key
	for _, k := range slices.SortedFunc(maps.Keys(t), compareKeys) {
		e := t[k]
		if !e.valid(k.cell) {
			return nil, fmt.Errorf("%w: key %s", ErrMalformedEntry, k)
		}
		if k.cell {
			cells = append(cells, k)
			continue
		}
		switch e.kind {
		case KindRename:
			rename[k.Label] = e.name
		case KindFormat:
			format[k.Label] = e.fn
		case KindRenameFormat:
			rename[k.Label] = e.name
			format[e.name] = e.fn
		}
	}

	renamed, err := f.Rename(o, rename)
	if err != nil {
		return nil, err
	}

	primary, cross := renamed.labels(o)
	for _, label := range slices.Sorted(maps.Keys(format)) {
		if _, ok := primary[label]; !ok {
			return nil, fmt.Errorf("%w: %q is not a %s label", ErrUnknownLabel, label, o)
		}
	}

	// Cell keys name the pre-rename label when it exists in f, so swapped
	// or reused names still reach the intended row or column.
	original, _ := f.labels(o)
	cellFmt := make(map[cellRef]Formatter, len(cells))
	for _, k := range cells {
		label := k.Label
		if _, ok := original[label]; ok {
			if n, ok := rename[label]; ok {
				label = n
			}
		}
		if _, ok := primary[label]; !ok {
			return nil, fmt.Errorf("%w: cell key %s: %q is not a %s label", ErrUnknownLabel, k, k.Label, o)
		}
		if _, ok := cross[k.Cross]; !ok {
			return nil, fmt.Errorf("%w: cell key %s: %q is not a %s label", ErrUnknownLabel, k, k.Cross, o.cross())
		}
		ref := cellRef{row: label, col: k.Cross}
		if o == ByCol {
			ref = cellRef{row: k.Cross, col: label}
		}
		cellFmt[ref] = t[k].fn
	}

	return &Styled{
		frame:  renamed,
		orient: o,
		axis:   format,
		cells:  cellFmt,
	}, nil
}

func (o Orientation) cross() Orientation {
	if o == ByRow {
		return ByCol
	}
	return ByRow
}

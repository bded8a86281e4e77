// Package styler relabels and formats tables for display.
//
// A [Template] maps row or column labels to entries describing how each
// should be shown. The central entry point is [Style], which applies a
// template to a [Frame] and returns a [Styled] view; the frame itself is
// never modified. [Write] renders the view.
//
//	f, _ := styler.NewFrame(
//		[]string{"rev", "roc"},
//		[]string{"2020", "2021"},
//		[][]any{{100.212313, 70.709275}, {0.0455, 0.0189}},
//	)
//	s, err := styler.Style(f, styler.Template{
//		styler.Label("rev"): styler.RenameFormat("Revenue", styler.Round(2)),
//		styler.Label("roc"): styler.Format(styler.Percent),
//	}, styler.ByRow)
//	styler.Write(os.Stdout, styler.Table, s)
//
// # Entries
//
// Each template value is one of:
//
//   - [Rename]: new display name for the label
//   - [Format]: formatter for every cell of the row (or column)
//   - [RenameFormat]: both; the formatter is bound to the new name
//
// Keys are either a [Label] or a [Cell]. Under [ByRow] labels address rows
// and cells are (row, column); under [ByCol] labels address columns and cells
// are (column, row). Cell keys only accept [Format] and take precedence over
// the row or column formatter.
//
// [ParseTemplate] builds a template from plain Go values (a string, a
// formatter, or a two-element (name, formatter) slice), and [LoadTemplate]
// reads one from YAML with formatters named through a [Registry].
//
// # Formatters
//
// [PercentOrNull] and [RoundOrNull] convert nullable floats, displaying nil
// and NaN as "None". [Percent] and [Round] adapt them to cell values of any
// numeric type.
//
// # Output
//
// [Write] and [Marshal] render a [Styled] as a bordered terminal table,
// Markdown, HTML, CSV, TSV, JSON, JSONL or YAML. Use [ParseOutput] to turn a
// flag value into an [Output].
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrInvalidOrientation]: orientation is neither "row" nor "col"
//   - [ErrMalformedEntry]: template entry has an unsupported shape
//   - [ErrUnknownLabel]: a formatter targets a label the frame does not have
//   - [ErrDuplicateLabel]: labels of an axis are not unique
//   - [ErrInvalidFrame]: frame values do not match its labels
//   - [ErrNilFrame]: no frame given
//   - [ErrUnknownFormatter]: formatter reference cannot be resolved
//   - [ErrUnsupportedOutput]: unknown output or border name
package styler

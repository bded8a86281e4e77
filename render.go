package styler

import (
	"bytes"
	"fmt"
	"io"
)

// Output represents a rendering format for a [Styled].
type Output string

const (
	Table    Output = "table"
	Markdown Output = "markdown"
	HTML     Output = "html"
	CSV      Output = "csv"
	TSV      Output = "tsv"
	JSON     Output = "json"
	JSONL    Output = "jsonl"
	YAML     Output = "yaml"
)

var outputs = []Output{Table, Markdown, HTML, CSV, TSV, JSON, JSONL, YAML}

// String returns the output name.
func (o Output) String() string { return string(o) }

// Outputs returns all supported output names.
func Outputs() []Output {
	out := make([]Output, len(outputs))
	copy(out, outputs)
	return out
}

// ParseOutput parses an output name.
func ParseOutput(s string) (Output, error) {
	for _, o := range outputs {
		if string(o) == s {
			return o, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedOutput, s)
}

// BorderStyle controls table border characters.
type BorderStyle int

const (
	BorderRounded BorderStyle = iota // ╭─╮╰╯│┬┴├┤┼
	BorderNone                       // No borders, space-separated columns
	BorderASCII                      // +-+|
	BorderHeavy                      // ┏━┓┗┛┃┳┻┣┫╋
	BorderDouble                     // ╔═╗╚╝║╦╩╠╣╬
)

var borderNames = map[string]BorderStyle{
	"rounded": BorderRounded,
	"none":    BorderNone,
	"ascii":   BorderASCII,
	"heavy":   BorderHeavy,
	"double":  BorderDouble,
}

// ParseBorder parses a border style name: rounded, none, ascii, heavy or double.
func ParseBorder(s string) (BorderStyle, error) {
	b, ok := borderNames[s]
	if !ok {
		return 0, fmt.Errorf("%w: border %q", ErrUnsupportedOutput, s)
	}
	return b, nil
}

// Alignment controls column text alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

type renderConfig struct {
	title       string
	caption     string
	border      BorderStyle
	align       Alignment
	indexHeader *string
	maxWidth    int
	labelStyle  func(string) string
	headerStyle func(string) string
}

// RenderOption configures [Write].
type RenderOption func(*renderConfig)

// WithTitle renders a title above the table (Table, HTML).
func WithTitle(title string) RenderOption {
	return func(c *renderConfig) { c.title = title }
}

// WithCaption renders a line below the table (Table).
func WithCaption(caption string) RenderOption {
	return func(c *renderConfig) { c.caption = caption }
}

// WithBorder sets the table border style. Default: [BorderRounded].
func WithBorder(b BorderStyle) RenderOption {
	return func(c *renderConfig) { c.border = b }
}

// WithAlign sets the alignment of value columns (Table, Markdown, HTML).
// The label column is always left aligned. Default: [AlignRight].
func WithAlign(a Alignment) RenderOption {
	return func(c *renderConfig) { c.align = a }
}

// WithIndexHeader sets the header of the label column. Default: the frame's
// index name.
func WithIndexHeader(h string) RenderOption {
	return func(c *renderConfig) { c.indexHeader = &h }
}

// WithMaxWidth truncates Table cells wider than n with "...". Zero means no
// limit.
func WithMaxWidth(n int) RenderOption {
	return func(c *renderConfig) { c.maxWidth = n }
}

// WithLabelStyle wraps each padded row label in Table output. The function
// runs after alignment, so ANSI codes never affect widths.
func WithLabelStyle(fn func(string) string) RenderOption {
	return func(c *renderConfig) { c.labelStyle = fn }
}

// WithHeaderStyle wraps each padded header cell in Table output.
func WithHeaderStyle(fn func(string) string) RenderOption {
	return func(c *renderConfig) { c.headerStyle = fn }
}

// Write renders s in the given output format.
func Write(w io.Writer, o Output, s *Styled, opts ...RenderOption) error {
	if s == nil {
		return ErrNilFrame
	}
	cfg := renderConfig{align: AlignRight}
	for _, opt := range opts {
		opt(&cfg)
	}
	switch o {
	case Table:
		return writeTable(w, cfg, s)
	case Markdown:
		return writeMarkdown(w, cfg, s)
	case HTML:
		return writeHTML(w, cfg, s)
	case CSV:
		return writeCSV(w, cfg, s)
	case TSV:
		return writeTSV(w, cfg, s)
	case JSON:
		return writeJSON(w, cfg, s)
	case JSONL:
		return writeJSONL(w, s)
	case YAML:
		return writeYAML(w, cfg, s)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedOutput, o)
	}
}

// Marshal renders s and returns the bytes.
func Marshal(o Output, s *Styled, opts ...RenderOption) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, o, s, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func indexHeader(cfg renderConfig, s *Styled) string {
	if cfg.indexHeader != nil {
		return *cfg.indexHeader
	}
	return s.frame.IndexName()
}

func headerRow(cfg renderConfig, s *Styled) []string {
	return append([]string{indexHeader(cfg, s)}, s.frame.columns...)
}

// aligns returns the per-column alignment of a rendered row: the label
// column first, then numCols value columns.
func aligns(cfg renderConfig, numCols int) []Alignment {
	out := make([]Alignment, numCols+1)
	for i := 1; i < len(out); i++ {
		out[i] = cfg.align
	}
	return out
}

package styler

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

type borderChars struct {
	topLeft, topRight, bottomLeft, bottomRight string
	horizontal, vertical                       string
	topTee, bottomTee, leftTee, rightTee       string
	cross                                      string
}

var borderSets = map[BorderStyle]borderChars{
	BorderRounded: {
		topLeft: "╭", topRight: "╮", bottomLeft: "╰", bottomRight: "╯",
		horizontal: "─", vertical: "│",
		topTee: "┬", bottomTee: "┴", leftTee: "├", rightTee: "┤",
		cross: "┼",
	},
	BorderASCII: {
		topLeft: "+", topRight: "+", bottomLeft: "+", bottomRight: "+",
		horizontal: "-", vertical: "|",
		topTee: "+", bottomTee: "+", leftTee: "+", rightTee: "+",
		cross: "+",
	},
	BorderHeavy: {
		topLeft: "┏", topRight: "┓", bottomLeft: "┗", bottomRight: "┛",
		horizontal: "━", vertical: "┃",
		topTee: "┳", bottomTee: "┻", leftTee: "┣", rightTee: "┫",
		cross: "╋",
	},
	BorderDouble: {
		topLeft: "╔", topRight: "╗", bottomLeft: "╚", bottomRight: "╝",
		horizontal: "═", vertical: "║",
		topTee: "╦", bottomTee: "╩", leftTee: "╠", rightTee: "╣",
		cross: "╬",
	},
}

// grid is a fully displayed table: header and body rows, each with the label
// cell first.
type grid struct {
	header []string
	rows   [][]string
	widths []int
	aligns []Alignment
}

func newGrid(cfg renderConfig, s *Styled) grid {
	g := grid{header: headerRow(cfg, s)}
	for label, cells := range s.Rows() {
		g.rows = append(g.rows, append([]string{label}, cells...))
	}
	g.widths = computeWidths(g.header, g.rows)
	if cfg.maxWidth > 0 {
		for i, w := range g.widths {
			if w > cfg.maxWidth {
				g.widths[i] = cfg.maxWidth
			}
		}
	}
	g.aligns = aligns(cfg, s.frame.Width())
	return g
}

func writeTable(w io.Writer, cfg renderConfig, s *Styled) error {
	g := newGrid(cfg, s)

	var err error
	if cfg.border == BorderNone {
		err = renderPlainTable(w, cfg, g)
	} else {
		err = renderBorderedTable(w, cfg, g)
	}
	if err != nil {
		return err
	}

	if cfg.caption != "" {
		if _, err := fmt.Fprintln(w, cfg.caption); err != nil {
			return err
		}
	}
	return nil
}

func computeWidths(header []string, rows [][]string) []int {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); i < len(widths) && w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// styleRow returns the per-cell style functions for a row. Header rows use
// the header style everywhere; body rows style only the label cell.
func styleRow(cfg renderConfig, n int, header bool) []func(string) string {
	styles := make([]func(string) string, n)
	if header {
		for i := range styles {
			styles[i] = cfg.headerStyle
		}
	} else if n > 0 {
		styles[0] = cfg.labelStyle
	}
	return styles
}

// formatRow pads and styles every cell of a row.
func formatRow(cells []string, g grid, styles []func(string) string) []string {
	parts := make([]string, len(g.widths))
	for i, width := range g.widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		formatted := formatTableCell(cell, width, g.aligns[i])
		if styles[i] != nil {
			formatted = styles[i](formatted)
		}
		parts[i] = formatted
	}
	return parts
}

// --- Plain table (BorderNone) ---

func renderPlainTable(w io.Writer, cfg renderConfig, g grid) error {
	if cfg.title != "" {
		if _, err := fmt.Fprintln(w, cfg.title); err != nil {
			return err
		}
	}
	if err := writePlainRow(w, formatRow(g.header, g, styleRow(cfg, len(g.widths), true))); err != nil {
		return err
	}
	if err := writePlainSep(w, g.widths); err != nil {
		return err
	}
	styles := styleRow(cfg, len(g.widths), false)
	for _, row := range g.rows {
		if err := writePlainRow(w, formatRow(row, g, styles)); err != nil {
			return err
		}
	}
	return nil
}

func writePlainSep(w io.Writer, widths []int) error {
	sep := make([]string, len(widths))
	for i, width := range widths {
		sep[i] = strings.Repeat("-", width)
	}
	_, err := fmt.Fprintln(w, strings.Join(sep, "  "))
	return err
}

func writePlainRow(w io.Writer, parts []string) error {
	line := strings.TrimRight(strings.Join(parts, "  "), " ")
	_, err := fmt.Fprintln(w, line)
	return err
}

// --- Bordered table ---

func renderBorderedTable(w io.Writer, cfg renderConfig, g grid) error {
	bc := borderSets[cfg.border]

	if cfg.title != "" {
		// Full-width top border (no column separators).
		if err := drawHLine(w, g.widths, bc.topLeft, bc.horizontal, bc.horizontal, bc.topRight); err != nil {
			return err
		}
		inner := tableInnerWidth(g.widths) - 2 // subtract 1-space padding on each side
		padded := alignCell(cfg.title, inner, AlignCenter)
		if _, err := fmt.Fprintf(w, "%s %s %s\n", bc.vertical, padded, bc.vertical); err != nil {
			return err
		}
		if err := drawHLine(w, g.widths, bc.leftTee, bc.horizontal, bc.topTee, bc.rightTee); err != nil {
			return err
		}
	} else {
		if err := drawHLine(w, g.widths, bc.topLeft, bc.horizontal, bc.topTee, bc.topRight); err != nil {
			return err
		}
	}

	if err := drawBorderedRow(w, formatRow(g.header, g, styleRow(cfg, len(g.widths), true)), bc.vertical); err != nil {
		return err
	}
	if err := drawHLine(w, g.widths, bc.leftTee, bc.horizontal, bc.cross, bc.rightTee); err != nil {
		return err
	}

	styles := styleRow(cfg, len(g.widths), false)
	for _, row := range g.rows {
		if err := drawBorderedRow(w, formatRow(row, g, styles), bc.vertical); err != nil {
			return err
		}
	}

	return drawHLine(w, g.widths, bc.bottomLeft, bc.horizontal, bc.bottomTee, bc.bottomRight)
}

// tableInnerWidth returns the total character width between the outer vertical
// borders of a bordered table. Each cell contributes its width plus 2 (one
// space of padding on each side), and cells are separated by a single vertical
// border character.
func tableInnerWidth(widths []int) int {
	n := 0
	for _, w := range widths {
		n += w + 2
	}
	if len(widths) > 1 {
		n += len(widths) - 1
	}
	return n
}

func drawHLine(w io.Writer, widths []int, left, fill, mid, right string) error {
	var sb strings.Builder
	sb.WriteString(left)
	for i, width := range widths {
		sb.WriteString(strings.Repeat(fill, width+2))
		if i < len(widths)-1 {
			sb.WriteString(mid)
		}
	}
	sb.WriteString(right)
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func drawBorderedRow(w io.Writer, parts []string, vert string) error {
	var sb strings.Builder
	sb.WriteString(vert)
	for i, part := range parts {
		sb.WriteString(" ")
		sb.WriteString(part)
		sb.WriteString(" ")
		if i < len(parts)-1 {
			sb.WriteString(vert)
		}
	}
	sb.WriteString(vert)
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func formatTableCell(s string, width int, align Alignment) string {
	if width > 0 && runewidth.StringWidth(s) > width {
		if width <= 3 {
			s = runewidth.Truncate(s, width, "")
		} else {
			s = runewidth.Truncate(s, width, "...")
		}
	}
	return alignCell(s, width, align)
}

func alignCell(s string, width int, align Alignment) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		left := pad / 2
		right := pad - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default:
		return s + strings.Repeat(" ", pad)
	}
}

package styler

import (
	"fmt"
	"io"
	"strings"
)

func writeMarkdown(w io.Writer, cfg renderConfig, s *Styled) error {
	header := headerRow(cfg, s)
	rows := make([][]string, 0, s.frame.Len())
	for label, cells := range s.Rows() {
		rows = append(rows, append([]string{escapeMarkdown(label)}, escapeAll(cells)...))
	}
	header = escapeAll(header)

	// Minimum 3 for alignment markers.
	widths := computeWidths(header, rows)
	for i := range widths {
		if widths[i] < 3 {
			widths[i] = 3
		}
	}
	al := aligns(cfg, s.frame.Width())

	if err := writeMarkdownRow(w, header, widths, al); err != nil {
		return err
	}

	sep := make([]string, len(widths))
	for i, width := range widths {
		switch al[i] {
		case AlignRight:
			sep[i] = strings.Repeat("-", width-1) + ":"
		case AlignCenter:
			sep[i] = ":" + strings.Repeat("-", width-2) + ":"
		default:
			sep[i] = strings.Repeat("-", width)
		}
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}

	for _, row := range rows {
		if err := writeMarkdownRow(w, row, widths, al); err != nil {
			return err
		}
	}
	return nil
}

func writeMarkdownRow(w io.Writer, cells []string, widths []int, al []Alignment) error {
	padded := make([]string, len(widths))
	for i, width := range widths {
		padded[i] = alignCell(cells[i], width, al[i])
	}
	_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(padded, " | "))
	return err
}

var markdownEscaper = strings.NewReplacer("|", `\|`, "\n", " ")

func escapeMarkdown(s string) string { return markdownEscaper.Replace(s) }

func escapeAll(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = escapeMarkdown(c)
	}
	return out
}

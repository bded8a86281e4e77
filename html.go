package styler

import (
	"fmt"
	"html"
	"io"
)

func writeHTML(w io.Writer, cfg renderConfig, s *Styled) error {
	al := aligns(cfg, s.frame.Width())

	if _, err := fmt.Fprintln(w, "<table>"); err != nil {
		return err
	}

	if cfg.title != "" {
		if _, err := fmt.Fprintf(w, "  <caption>%s</caption>\n", html.EscapeString(cfg.title)); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w, "  <thead>\n    <tr>"); err != nil {
		return err
	}
	for i, col := range headerRow(cfg, s) {
		if _, err := fmt.Fprintf(w, "      <th%s>%s</th>\n", alignStyle(al, i), html.EscapeString(col)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "    </tr>\n  </thead>"); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, "  <tbody>"); err != nil {
		return err
	}
	for label, cells := range s.Rows() {
		if _, err := fmt.Fprintln(w, "    <tr>"); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "      <th>%s</th>\n", html.EscapeString(label)); err != nil {
			return err
		}
		for j, cell := range cells {
			if _, err := fmt.Fprintf(w, "      <td%s>%s</td>\n", alignStyle(al, j+1), html.EscapeString(cell)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, "    </tr>"); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "  </tbody>"); err != nil {
		return err
	}

	_, err := fmt.Fprintln(w, "</table>")
	return err
}

func alignStyle(al []Alignment, col int) string {
	if col >= len(al) {
		return ""
	}
	switch al[col] {
	case AlignRight:
		return ` style="text-align: right"`
	case AlignCenter:
		return ` style="text-align: center"`
	default:
		return ""
	}
}

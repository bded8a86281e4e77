package styler

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

func writeCSV(w io.Writer, cfg renderConfig, s *Styled) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(headerRow(cfg, s)); err != nil {
		return err
	}
	for label, cells := range s.Rows() {
		if err := cw.Write(append([]string{label}, cells...)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeTSV(w io.Writer, cfg renderConfig, s *Styled) error {
	if _, err := fmt.Fprintln(w, strings.Join(headerRow(cfg, s), "\t")); err != nil {
		return err
	}
	for label, cells := range s.Rows() {
		if _, err := fmt.Fprintln(w, label+"\t"+strings.Join(cells, "\t")); err != nil {
			return err
		}
	}
	return nil
}

// ReadCSV reads a frame from CSV. The first record is the header; its first
// field names the index and the rest are column labels. The first field of
// every other record is its row label. Numeric fields become float64; empty
// fields and "NaN", "None" or "null" become nil; other fields stay strings.
func ReadCSV(r io.Reader) (*Frame, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: csv has no header", ErrInvalidFrame)
	}
	header := records[0]
	if len(header) == 0 {
		return nil, fmt.Errorf("%w: csv header is empty", ErrInvalidFrame)
	}
	index := make([]string, 0, len(records)-1)
	values := make([][]any, 0, len(records)-1)
	for _, rec := range records[1:] {
		index = append(index, rec[0])
		row := make([]any, len(rec)-1)
		for j, field := range rec[1:] {
			row[j] = parseField(field)
		}
		values = append(values, row)
	}
	f, err := newFrame(header[0], index, header[1:], values)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func parseField(s string) any {
	switch strings.TrimSpace(s) {
	case "", "NaN", "nan", "None", "null":
		return nil
	}
	if x, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
		return x
	}
	return s
}

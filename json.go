package styler

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"
)

// document is the split layout shared by JSON and YAML output.
type document struct {
	IndexName string     `json:"index_name,omitempty" yaml:"index_name,omitempty"`
	Columns   []string   `json:"columns" yaml:"columns"`
	Index     []string   `json:"index" yaml:"index"`
	Data      [][]string `json:"data" yaml:"data"`
}

type record struct {
	Label  string   `json:"label"`
	Values []string `json:"values"`
}

func newDocument(cfg renderConfig, s *Styled) document {
	return document{
		IndexName: indexHeader(cfg, s),
		Columns:   s.Columns(),
		Index:     s.Index(),
		Data:      s.Grid(),
	}
}

func writeJSON(w io.Writer, cfg renderConfig, s *Styled) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(newDocument(cfg, s))
}

func writeJSONL(w io.Writer, s *Styled) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for label, cells := range s.Rows() {
		if err := enc.Encode(record{Label: label, Values: cells}); err != nil {
			return err
		}
	}
	return nil
}

func writeYAML(w io.Writer, cfg renderConfig, s *Styled) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(newDocument(cfg, s)); err != nil {
		return err
	}
	return enc.Close()
}

package styler

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// FormatterFactory builds a formatter from the arguments following its name
// in a formatter reference ("round:4" passes ["4"]).
type FormatterFactory func(args []string) (Formatter, error)

// Registry resolves formatter references by name.
type Registry map[string]FormatterFactory

// DefaultRegistry returns a registry with the built-in formatters:
//
//   - percent: [Percent]
//   - round, round:N: [Round] with [DefaultPrecision] or N decimals
//   - raw: [Raw]
func DefaultRegistry() Registry {
	return Registry{
		"percent": func(args []string) (Formatter, error) {
			if len(args) > 0 {
				return nil, fmt.Errorf("percent takes no arguments, got %d", len(args))
			}
			return Percent, nil
		},
		"round": func(args []string) (Formatter, error) {
			switch len(args) {
			case 0:
				return Round(DefaultPrecision), nil
			case 1:
				n, err := strconv.Atoi(args[0])
				if err != nil || n < 0 {
					return nil, fmt.Errorf("round precision %q is not a non-negative integer", args[0])
				}
				return Round(n), nil
			default:
				return nil, fmt.Errorf("round takes at most one argument, got %d", len(args))
			}
		},
		"raw": func([]string) (Formatter, error) { return Raw, nil },
	}
}

// Lookup resolves a reference of the form "name" or "name:arg[:arg...]".
func (r Registry) Lookup(ref string) (Formatter, error) {
	name, rest, hasArgs := strings.Cut(strings.TrimSpace(ref), ":")
	factory, ok := r[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormatter, name)
	}
	var args []string
	if hasArgs {
		args = strings.Split(rest, ":")
	}
	fn, err := factory(args)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %s", ErrUnknownFormatter, ref, err)
	}
	return fn, nil
}

// TemplateFile is a template read from a YAML document.
type TemplateFile struct {
	Orientation Orientation
	Template    Template
}

type templateDoc struct {
	Orientation string               `yaml:"orientation"`
	Labels      map[string]yaml.Node `yaml:"labels"`
	Cells       []cellDoc            `yaml:"cells"`
}

type cellDoc struct {
	At     []string `yaml:"at"`
	Format string   `yaml:"format"`
}

type entryDoc struct {
	Rename string `yaml:"rename"`
	Format string `yaml:"format"`
}

// LoadTemplate reads a YAML template. Label values follow the same shapes as
// [ParseTemplate], with formatters named by reference:
//
//	orientation: row
//	labels:
//	  rev: [Revenue, round]
//	  roc: {format: percent}
//	  cogs: Cost of goods
//	cells:
//	  - at: [roc, "2021"]
//	    format: round:4
//
// A nil reg uses [DefaultRegistry].
func LoadTemplate(r io.Reader, reg Registry) (*TemplateFile, error) {
	if reg == nil {
		reg = DefaultRegistry()
	}
	var doc templateDoc
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode template: %w", err)
	}

	o := ByRow
	if doc.Orientation != "" {
		var err error
		if o, err = ParseOrientation(doc.Orientation); err != nil {
			return nil, err
		}
	}

	t := make(Template, len(doc.Labels)+len(doc.Cells))
	for label, node := range doc.Labels {
		e, err := decodeEntry(&node, reg)
		if err != nil {
			return nil, fmt.Errorf("label %q: %w", label, err)
		}
		t[Label(label)] = e
	}
	for i, c := range doc.Cells {
		if len(c.At) != 2 {
			return nil, fmt.Errorf("%w: cells[%d]: at needs 2 labels, got %d", ErrMalformedEntry, i, len(c.At))
		}
		if c.Format == "" {
			return nil, fmt.Errorf("%w: cells[%d]: missing format", ErrMalformedEntry, i)
		}
		fn, err := reg.Lookup(c.Format)
		if err != nil {
			return nil, fmt.Errorf("cells[%d]: %w", i, err)
		}
		t[Cell(c.At[0], c.At[1])] = Format(fn)
	}
	return &TemplateFile{Orientation: o, Template: t}, nil
}

func decodeEntry(node *yaml.Node, reg Registry) (Entry, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.ShortTag() == "!!null" {
			return Entry{}, fmt.Errorf("%w: line %d: empty value", ErrMalformedEntry, node.Line)
		}
		return Rename(node.Value), nil
	case yaml.SequenceNode:
		var pair []string
		if err := node.Decode(&pair); err != nil || len(pair) != 2 {
			return Entry{}, fmt.Errorf("%w: line %d: want [name, formatter]", ErrMalformedEntry, node.Line)
		}
		fn, err := reg.Lookup(pair[1])
		if err != nil {
			return Entry{}, err
		}
		return RenameFormat(pair[0], fn), nil
	case yaml.MappingNode:
		var ed entryDoc
		if err := node.Decode(&ed); err != nil {
			return Entry{}, fmt.Errorf("%w: line %d: %s", ErrMalformedEntry, node.Line, err)
		}
		switch {
		case ed.Format == "" && ed.Rename == "":
			return Entry{}, fmt.Errorf("%w: line %d: want rename or format", ErrMalformedEntry, node.Line)
		case ed.Format == "":
			return Rename(ed.Rename), nil
		}
		fn, err := reg.Lookup(ed.Format)
		if err != nil {
			return Entry{}, err
		}
		if ed.Rename == "" {
			return Format(fn), nil
		}
		return RenameFormat(ed.Rename, fn), nil
	default:
		return Entry{}, fmt.Errorf("%w: line %d: unsupported value", ErrMalformedEntry, node.Line)
	}
}

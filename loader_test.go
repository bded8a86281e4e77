package styler_test

import (
	"strings"
	"testing"

	"github.com/bjaus/styler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const financialsTemplate = `
orientation: row
labels:
  rev: [Revenue, round]
  roc: {format: percent}
`

func TestLoadTemplateConcreteScenario(t *testing.T) {
	t.Parallel()
	tf, err := styler.LoadTemplate(strings.NewReader(financialsTemplate), nil)
	require.NoError(t, err)
	assert.Equal(t, styler.ByRow, tf.Orientation)

	s, err := styler.Style(financials(t), tf.Template, tf.Orientation)
	require.NoError(t, err)
	assert.Equal(t, []string{"Revenue", "roc"}, s.Index())
	assert.Equal(t, [][]string{{"100.21", "70.71"}, {"4.55%", "1.89%"}}, s.Grid())
}

func TestLoadTemplateShapes(t *testing.T) {
	t.Parallel()
	doc := `
orientation: col
labels:
  rev: [Revenue, "round:1"]
  roc: {format: percent}
  cogs: Cost of goods
  tax: {rename: Tax, format: "round:0"}
  capex: {rename: CapEx}
cells:
  - at: [roc, "2021"]
    format: "round:4"
`
	tf, err := styler.LoadTemplate(strings.NewReader(doc), nil)
	require.NoError(t, err)
	assert.Equal(t, styler.ByCol, tf.Orientation)
	require.Len(t, tf.Template, 6)

	tests := map[string]struct {
		key      styler.Key
		wantKind styler.EntryKind
		wantName string
	}{
		"sequence":       {key: styler.Label("rev"), wantKind: styler.KindRenameFormat, wantName: "Revenue"},
		"format mapping": {key: styler.Label("roc"), wantKind: styler.KindFormat},
		"scalar":         {key: styler.Label("cogs"), wantKind: styler.KindRename, wantName: "Cost of goods"},
		"full mapping":   {key: styler.Label("tax"), wantKind: styler.KindRenameFormat, wantName: "Tax"},
		"rename mapping": {key: styler.Label("capex"), wantKind: styler.KindRename, wantName: "CapEx"},
		"cell":           {key: styler.Cell("roc", "2021"), wantKind: styler.KindFormat},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			e, ok := tf.Template[tt.key]
			require.True(t, ok)
			assert.Equal(t, tt.wantKind, e.Kind())
			assert.Equal(t, tt.wantName, e.Name())
		})
	}
}

func TestLoadTemplateCellOverride(t *testing.T) {
	t.Parallel()
	doc := `
orientation: col
labels:
  rev: [Revenue, "round:1"]
  roc: {format: percent}
cells:
  - at: [roc, "2021"]
    format: "round:4"
`
	tf, err := styler.LoadTemplate(strings.NewReader(doc), nil)
	require.NoError(t, err)

	s, err := styler.Style(byYear(t), tf.Template, tf.Orientation)
	require.NoError(t, err)
	assert.Equal(t, []string{"Revenue", "roc"}, s.Columns())
	assert.Equal(t, [][]string{{"100.2", "4.55%"}, {"70.7", "0.0189"}}, s.Grid())
}

func TestLoadTemplateDefaults(t *testing.T) {
	t.Parallel()
	tf, err := styler.LoadTemplate(strings.NewReader(""), nil)
	require.NoError(t, err)
	assert.Equal(t, styler.ByRow, tf.Orientation)
	assert.Empty(t, tf.Template)
}

func TestLoadTemplateErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		doc     string
		wantErr error
	}{
		"bad orientation": {
			doc:     "orientation: diagonal\n",
			wantErr: styler.ErrInvalidOrientation,
		},
		"unknown formatter": {
			doc:     "labels:\n  rev: {format: currency}\n",
			wantErr: styler.ErrUnknownFormatter,
		},
		"bad precision": {
			doc:     "labels:\n  rev: [Revenue, \"round:x\"]\n",
			wantErr: styler.ErrUnknownFormatter,
		},
		"percent with argument": {
			doc:     "labels:\n  rev: {format: \"percent:1\"}\n",
			wantErr: styler.ErrUnknownFormatter,
		},
		"sequence of three": {
			doc:     "labels:\n  rev: [a, b, c]\n",
			wantErr: styler.ErrMalformedEntry,
		},
		"empty mapping": {
			doc:     "labels:\n  rev: {}\n",
			wantErr: styler.ErrMalformedEntry,
		},
		"null value": {
			doc:     "labels:\n  rev:\n",
			wantErr: styler.ErrMalformedEntry,
		},
		"cell with one label": {
			doc:     "cells:\n  - at: [roc]\n    format: percent\n",
			wantErr: styler.ErrMalformedEntry,
		},
		"cell without format": {
			doc:     "cells:\n  - at: [roc, \"2021\"]\n",
			wantErr: styler.ErrMalformedEntry,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			tf, err := styler.LoadTemplate(strings.NewReader(tt.doc), nil)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, tf)
		})
	}
}

func TestLoadTemplateInvalidYAML(t *testing.T) {
	t.Parallel()
	_, err := styler.LoadTemplate(strings.NewReader("labels: [unclosed"), nil)
	require.Error(t, err)
}

func TestRegistryLookup(t *testing.T) {
	t.Parallel()
	reg := styler.DefaultRegistry()
	reg["tag"] = func([]string) (styler.Formatter, error) { return tag, nil }

	tests := map[string]struct {
		ref     string
		value   any
		want    string
		wantErr require.ErrorAssertionFunc
	}{
		"percent":       {ref: "percent", value: 0.0455, want: "4.55%", wantErr: require.NoError},
		"round":         {ref: "round", value: 1234.5678, want: "1,234.57", wantErr: require.NoError},
		"round 3":       {ref: "round:3", value: 1.5, want: "1.500", wantErr: require.NoError},
		"spaces":        {ref: " round:0 ", value: 2.4, want: "2", wantErr: require.NoError},
		"raw":           {ref: "raw", value: 0.0455, want: "0.0455", wantErr: require.NoError},
		"custom":        {ref: "tag", value: 1, want: "<1>", wantErr: require.NoError},
		"unknown":       {ref: "currency", wantErr: require.Error},
		"negative":      {ref: "round:-1", wantErr: require.Error},
		"too many args": {ref: "round:1:2", wantErr: require.Error},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			fn, err := reg.Lookup(tt.ref)
			tt.wantErr(t, err)
			if err != nil {
				assert.ErrorIs(t, err, styler.ErrUnknownFormatter)
				return
			}
			assert.Equal(t, tt.want, fn(tt.value))
		})
	}
}

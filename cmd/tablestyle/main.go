// Package main provides the tablestyle CLI, which renders a CSV table
// through a YAML styling template.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/bjaus/styler"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "tablestyle:", err)
		os.Exit(1)
	}
}

type options struct {
	template string
	key      string
	output   string
	border   string
	title    string
	caption  string
	verbose  bool
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "tablestyle [flags] <file.csv|->",
		Short: "Rename and format the rows or columns of a CSV table",
		Long: `tablestyle reads a CSV table whose first column holds row labels, applies
a YAML styling template and renders the result.

Example template:

  orientation: row
  labels:
    rev: [Revenue, round]
    roc: {format: percent}`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args[0], stdin, stdout, stderr)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&opts.template, "template", "t", "", "YAML template file")
	f.StringVar(&opts.key, "key", "", "template orientation (row|col); overrides the template file")
	f.StringVarP(&opts.output, "output", "o", string(styler.Table), "output format (table|markdown|html|csv|tsv|json|jsonl|yaml)")
	f.StringVar(&opts.border, "border", "rounded", "table border (rounded|ascii|heavy|double|none)")
	f.StringVar(&opts.title, "title", "", "title above the table")
	f.StringVar(&opts.caption, "caption", "", "caption below the table")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug information to stderr")
	return cmd
}

func run(cmd *cobra.Command, opts options, path string, stdin io.Reader, stdout, stderr io.Writer) error {
	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	out, err := styler.ParseOutput(opts.output)
	if err != nil {
		return err
	}
	border, err := styler.ParseBorder(opts.border)
	if err != nil {
		return err
	}

	frame, err := readFrame(path, stdin)
	if err != nil {
		return err
	}
	log.Debug("read table", "path", path, "rows", frame.Len(), "columns", frame.Width())

	tf, err := readTemplate(opts.template)
	if err != nil {
		return err
	}
	orient := tf.Orientation
	if opts.key != "" {
		if orient, err = styler.ParseOrientation(opts.key); err != nil {
			return err
		}
	}
	log.Debug("loaded template", "path", opts.template, "entries", len(tf.Template), "orientation", orient)

	styled, err := styler.Style(frame, tf.Template, orient)
	if err != nil {
		return err
	}

	renderOpts := []styler.RenderOption{
		styler.WithBorder(border),
		styler.WithTitle(opts.title),
		styler.WithCaption(opts.caption),
	}
	if isTerminal(stdout) {
		bold := lipgloss.NewStyle().Bold(true)
		renderOpts = append(renderOpts,
			styler.WithLabelStyle(func(s string) string { return bold.Render(s) }),
			styler.WithHeaderStyle(func(s string) string { return bold.Render(s) }),
		)
	}
	log.Debug("rendering", "output", out, "command", cmd.Name())
	return styler.Write(stdout, out, styled, renderOpts...)
}

func readFrame(path string, stdin io.Reader) (*styler.Frame, error) {
	if path == "-" {
		return styler.ReadCSV(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return styler.ReadCSV(f)
}

func readTemplate(path string) (*styler.TemplateFile, error) {
	if path == "" {
		return &styler.TemplateFile{Orientation: styler.ByRow, Template: styler.Template{}}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tf, err := styler.LoadTemplate(f, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tf, nil
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

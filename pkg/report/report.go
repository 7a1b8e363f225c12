package report

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/djcass44/pkgdiff/pkg/diff"
	"github.com/go-logr/logr"
	"github.com/spf13/afero"
)

const indent = "    "

// NewPrinter returns a Printer that writes
// files to the real filesystem.
func NewPrinter(stdout, stderr io.Writer) *Printer {
	return &Printer{
		Fs:     afero.NewOsFs(),
		Stdout: stdout,
		Stderr: stderr,
	}
}

// Render writes the report as JSON to path, or to Stdout when
// path is empty. When verbose is set, a per-architecture
// summary is written to Stderr first.
func (p *Printer) Render(ctx context.Context, report *diff.Report, path string, verbose bool) error {
	log := logr.FromContextOrDiscard(ctx)

	if verbose {
		p.summarise(report)
	}
	if path == "" {
		log.V(1).Info("writing results to stdout")
		return Encode(p.Stdout, report)
	}
	log.V(1).Info("writing results to file", "path", path)
	if err := WriteJSON(p.Fs, path, report); err != nil {
		return err
	}
	log.Info("wrote results", "path", path)
	return nil
}

func (p *Printer) summarise(report *diff.Report) {
	for _, c := range report.Summary() {
		_, _ = fmt.Fprintf(p.Stderr, "%s:\n", c.Arch)
		_, _ = fmt.Fprintf(p.Stderr, "%sonly in %s: %d\n", indent, report.Branches.Target, c.OnlyInTarget)
		_, _ = fmt.Fprintf(p.Stderr, "%sonly in %s: %d\n", indent, report.Branches.Reference, c.OnlyInReference)
		_, _ = fmt.Fprintf(p.Stderr, "%sversion differences: %d\n", indent, c.VersionDiff)
		if c.Incomparable > 0 {
			_, _ = fmt.Fprintf(p.Stderr, "%sincomparable: %d\n", indent, c.Incomparable)
		}
	}
}

// WriteJSON encodes v into the file at path, replacing
// anything that is already there. Any failure is
// returned as a *WriteError.
func WriteJSON(fs afero.Fs, path string, v any) error {
	f, err := fs.Create(path)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	if err := Encode(f, v); err != nil {
		_ = f.Close()
		return &WriteError{Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

// Encode writes v to w as indented JSON without
// escaping HTML characters.
func Encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", indent)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	return nil
}

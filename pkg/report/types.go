package report

import (
	"fmt"
	"io"

	"github.com/spf13/afero"
)

// Printer renders results to the standard streams
// or to a file on Fs.
type Printer struct {
	Fs     afero.Fs
	Stdout io.Writer
	Stderr io.Writer
}

// WriteError is returned when results
// could not be written to Path.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing results to '%s': %s", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

package cmd

import (
	"errors"

	"github.com/djcass44/pkgdiff/pkg/altrepo"
	"github.com/djcass44/pkgdiff/pkg/report"
)

const (
	exitUsage = 1
	exitFetch = 2
	exitWrite = 3
)

func exitCode(err error) int {
	var fetchErr *altrepo.FetchError
	var writeErr *report.WriteError
	switch {
	case errors.As(err, &fetchErr):
		return exitFetch
	case errors.As(err, &writeErr):
		return exitWrite
	default:
		return exitUsage
	}
}

package rpmver

import (
	"fmt"
	"strings"

	"github.com/cavaliergopher/rpm"
	v1 "github.com/djcass44/pkgdiff/pkg/api/v1"
	"github.com/sassoftware/go-rpmutils"
)

// NewComparator returns the comparator for the given type.
// An empty type selects rpmvercmp as implemented by
// github.com/cavaliergopher/rpm.
func NewComparator(t v1.ComparatorType) (Comparator, error) {
	switch {
	case t == "" || strings.EqualFold(string(t), string(v1.ComparatorRPM)):
		return &Segmented{Segments: rpm.CompareVersions}, nil
	case strings.EqualFold(string(t), string(v1.ComparatorBuiltin)):
		return &Builtin{}, nil
	case strings.EqualFold(string(t), string(v1.ComparatorRPMUtils)):
		return &Segmented{Segments: rpmutils.Vercmp}, nil
	default:
		return nil, fmt.Errorf("unknown comparator: %s", t)
	}
}

// Builtin compares versions using Compare. Unlike rpmvercmp,
// separators other than '.' are part of the alphabetic runs
// so "1.0_1" is newer than "1.0.1".
type Builtin struct{}

func (*Builtin) Compare(a, b string) (int, error) {
	return Compare(a, b)
}

// Segmented splits versions the same way as Builtin but hands
// the version and release strings to an external rpmvercmp
// implementation.
type Segmented struct {
	Segments func(a, b string) int
}

func (s *Segmented) Compare(a, b string) (int, error) {
	verA, relA, err := Split(a)
	if err != nil {
		return 0, err
	}
	verB, relB, err := Split(b)
	if err != nil {
		return 0, err
	}
	if c := s.Segments(verA, verB); c != 0 {
		return sign(c), nil
	}
	return sign(s.Segments(relA, relB)), nil
}

func sign(i int) int {
	switch {
	case i < 0:
		return -1
	case i > 0:
		return 1
	default:
		return 0
	}
}

package diff

import v1 "github.com/djcass44/pkgdiff/pkg/api/v1"

// VersionDiff is a package that both branches publish where
// the reference branch carries the newer version.
type VersionDiff struct {
	Name             string
	ReferenceVersion string
	TargetVersion    string
}

// Architecture holds the differences found for a single
// architecture. Every list is sorted by package name.
type Architecture struct {
	OnlyInTarget    []string
	OnlyInReference []string
	VersionDiff     []VersionDiff
	// Incomparable lists packages whose versions
	// could not be parsed by the comparator.
	Incomparable []string
}

type Report struct {
	Branches      v1.Branches
	Architectures map[string]*Architecture
}

// Counts summarises an Architecture.
type Counts struct {
	Arch            string
	OnlyInTarget    int
	OnlyInReference int
	VersionDiff     int
	Incomparable    int
}

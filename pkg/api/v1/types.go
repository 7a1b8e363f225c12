package v1

import metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

type ComparatorType string

const (
	ComparatorBuiltin  ComparatorType = "Builtin"
	ComparatorRPM      ComparatorType = "RPM"
	ComparatorRPMUtils ComparatorType = "RPMUtils"
)

// Package is a single binary package as published
// by a repository branch.
type Package struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Release string `json:"release"`
	Arch    string `json:"arch"`
}

// Catalog maps an architecture to the packages
// a branch publishes for it.
type Catalog map[string][]Package

// Branches names the two branches being compared. Reference
// is the branch expected to be ahead (e.g. sisyphus), Target
// is the branch it is compared against (e.g. p10).
type Branches struct {
	Reference string `json:"reference,omitempty"`
	Target    string `json:"target,omitempty"`
}

type DiffSpec struct {
	BaseURL    string          `json:"baseURL,omitempty"`
	Branches   Branches        `json:"branches,omitempty"`
	Timeout    metav1.Duration `json:"timeout,omitempty"`
	Retries    int             `json:"retries,omitempty"`
	Comparator ComparatorType  `json:"comparator,omitempty"`
}

type Diff struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec DiffSpec `json:"spec"`
}

package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/djcass44/pkgdiff/pkg/airutil"
	"github.com/djcass44/pkgdiff/pkg/altrepo"
	v1 "github.com/djcass44/pkgdiff/pkg/api/v1"
	"github.com/djcass44/pkgdiff/pkg/rpmver"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/yaml"
)

const (
	APIVersion = "pkgdiff.dcas.dev/v1"
	Kind       = "Diff"

	DefaultReference = "sisyphus"
	DefaultTarget    = "p10"
)

var ErrInvalid = errors.New("invalid configuration")

// Default returns the configuration used
// when no file is provided.
func Default() *v1.Diff {
	cfg := &v1.Diff{
		TypeMeta: metav1.TypeMeta{
			APIVersion: APIVersion,
			Kind:       Kind,
		},
	}
	SetDefaults(cfg)
	return cfg
}

// Read decodes a YAML or JSON configuration file. Environment
// variables in the base URL and branch names are expanded and
// any unset fields are given their default value.
func Read(path string) (*v1.Diff, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening config: %w", err)
	}
	defer f.Close()

	var cfg v1.Diff
	if err := yaml.NewYAMLOrJSONDecoder(f, 4).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config '%s': %w", path, err)
	}
	for _, v := range []*string{&cfg.Spec.BaseURL, &cfg.Spec.Branches.Reference, &cfg.Spec.Branches.Target} {
		val, err := airutil.ExpandEnv(*v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
		}
		*v = val
	}

	SetDefaults(&cfg)
	return &cfg, nil
}

func SetDefaults(cfg *v1.Diff) {
	if cfg.Spec.BaseURL == "" {
		cfg.Spec.BaseURL = altrepo.DefaultBaseURL
	}
	if cfg.Spec.Branches.Reference == "" {
		cfg.Spec.Branches.Reference = DefaultReference
	}
	if cfg.Spec.Branches.Target == "" {
		cfg.Spec.Branches.Target = DefaultTarget
	}
	if cfg.Spec.Timeout.Duration == 0 {
		cfg.Spec.Timeout.Duration = altrepo.DefaultTimeout
	}
	if cfg.Spec.Comparator == "" {
		cfg.Spec.Comparator = v1.ComparatorRPM
	}
}

// Validate checks that the configuration can be used
// to compare two branches.
func Validate(cfg *v1.Diff) error {
	spec := cfg.Spec
	switch {
	case spec.Branches.Reference == "" || spec.Branches.Target == "":
		return fmt.Errorf("%w: both branches must be set", ErrInvalid)
	case spec.Branches.Reference == spec.Branches.Target:
		return fmt.Errorf("%w: reference and target must be different branches (got '%s')", ErrInvalid, spec.Branches.Target)
	case spec.Timeout.Duration < 0:
		return fmt.Errorf("%w: timeout must not be negative", ErrInvalid)
	case spec.Retries < 0:
		return fmt.Errorf("%w: retries must not be negative", ErrInvalid)
	}
	if _, err := rpmver.NewComparator(spec.Comparator); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

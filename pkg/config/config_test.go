package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/djcass44/pkgdiff/pkg/altrepo"
	v1 "github.com/djcass44/pkgdiff/pkg/api/v1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.EqualValues(t, APIVersion, cfg.APIVersion)
	assert.EqualValues(t, altrepo.DefaultBaseURL, cfg.Spec.BaseURL)
	assert.EqualValues(t, v1.Branches{Reference: "sisyphus", Target: "p10"}, cfg.Spec.Branches)
	assert.EqualValues(t, altrepo.DefaultTimeout, cfg.Spec.Timeout.Duration)
	assert.EqualValues(t, 0, cfg.Spec.Retries)
	assert.EqualValues(t, v1.ComparatorRPM, cfg.Spec.Comparator)
	assert.NoError(t, Validate(cfg))
}

func TestRead(t *testing.T) {
	t.Run("yaml with env", func(t *testing.T) {
		t.Setenv("PKGDIFF_MIRROR", "https://mirror.example.org")
		t.Setenv("PKGDIFF_TARGET", "p11")

		cfg, err := Read("testdata/diff.yaml")
		require.NoError(t, err)
		assert.EqualValues(t, "sisyphus-p11", cfg.Name)
		assert.EqualValues(t, "https://mirror.example.org/api/export/branch_binary_packages", cfg.Spec.BaseURL)
		assert.EqualValues(t, v1.Branches{Reference: "sisyphus", Target: "p11"}, cfg.Spec.Branches)
		assert.EqualValues(t, 30*time.Second, cfg.Spec.Timeout.Duration)
		assert.EqualValues(t, 2, cfg.Spec.Retries)
		assert.EqualValues(t, v1.ComparatorRPM, cfg.Spec.Comparator)
		assert.NoError(t, Validate(cfg))
	})
	t.Run("json with defaults", func(t *testing.T) {
		cfg, err := Read("testdata/partial.json")
		require.NoError(t, err)
		assert.EqualValues(t, altrepo.DefaultBaseURL, cfg.Spec.BaseURL)
		assert.EqualValues(t, v1.Branches{Reference: "sisyphus", Target: "p9"}, cfg.Spec.Branches)
		assert.EqualValues(t, altrepo.DefaultTimeout, cfg.Spec.Timeout.Duration)
		assert.EqualValues(t, v1.ComparatorRPM, cfg.Spec.Comparator)
	})
	t.Run("missing file", func(t *testing.T) {
		_, err := Read(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
	t.Run("malformed env", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "env.yaml")
		require.NoError(t, os.WriteFile(path, []byte("spec:\n  baseURL: \"https://${PKGDIFF_MIRROR\"\n"), 0o644))

		_, err := Read(path)
		assert.ErrorIs(t, err, ErrInvalid)
	})
	t.Run("invalid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.yaml")
		require.NoError(t, os.WriteFile(path, []byte("spec:\n  retries: lots\n"), 0o644))

		_, err := Read(path)
		assert.ErrorContains(t, err, "decoding config")
	})
}

func TestValidate(t *testing.T) {
	var cases = []struct {
		name string
		spec func(spec *v1.DiffSpec)
		ok   bool
	}{
		{
			"defaults",
			func(*v1.DiffSpec) {},
			true,
		},
		{
			"empty reference",
			func(spec *v1.DiffSpec) { spec.Branches.Reference = "" },
			false,
		},
		{
			"same branches",
			func(spec *v1.DiffSpec) { spec.Branches.Target = "sisyphus" },
			false,
		},
		{
			"negative timeout",
			func(spec *v1.DiffSpec) { spec.Timeout = metav1.Duration{Duration: -time.Second} },
			false,
		},
		{
			"negative retries",
			func(spec *v1.DiffSpec) { spec.Retries = -1 },
			false,
		},
		{
			"unknown comparator",
			func(spec *v1.DiffSpec) { spec.Comparator = "dpkg" },
			false,
		},
		{
			"builtin comparator",
			func(spec *v1.DiffSpec) { spec.Comparator = v1.ComparatorBuiltin },
			true,
		},
		{
			"rpmutils comparator",
			func(spec *v1.DiffSpec) { spec.Comparator = v1.ComparatorRPMUtils },
			true,
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.spec(&cfg.Spec)
			err := Validate(cfg)
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

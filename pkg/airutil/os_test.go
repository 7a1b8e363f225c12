package airutil

import (
	"testing"

	"github.com/drone/envsubst/parse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandEnv(t *testing.T) {
	t.Setenv("PKGDIFF_BRANCH", "p10")

	var cases = []struct {
		in  string
		out string
	}{
		{"sisyphus", "sisyphus"},
		{"${PKGDIFF_BRANCH}", "p10"},
		{"$PKGDIFF_BRANCH", "p10"},
		{"${PKGDIFF_MISSING:-p11}", "p11"},
		{"https://${PKGDIFF_MISSING}/", "https:///"},
	}

	for _, tt := range cases {
		t.Run(tt.in, func(t *testing.T) {
			out, err := ExpandEnv(tt.in)
			require.NoError(t, err)
			assert.EqualValues(t, tt.out, out)
		})
	}
}

func TestExpandEnv_Malformed(t *testing.T) {
	_, err := ExpandEnv("https://${PKGDIFF_MIRROR")
	assert.ErrorIs(t, err, parse.ErrMissingClosingBrace)
}

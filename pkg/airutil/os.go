package airutil

import (
	"fmt"

	"github.com/drone/envsubst"
)

// ExpandEnv replaces ${VAR} references in s with
// values from the environment.
func ExpandEnv(s string) (string, error) {
	val, err := envsubst.EvalEnv(s)
	if err != nil {
		return "", fmt.Errorf("expanding '%s': %w", s, err)
	}
	return val, nil
}

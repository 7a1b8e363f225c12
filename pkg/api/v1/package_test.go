package v1

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPackage_EVR(t *testing.T) {
	p := Package{Name: "foo", Version: "2.0", Release: "alt1"}
	assert.EqualValues(t, "2.0-alt1", p.EVR())
	assert.True(t, p.HasVersion())

	p.Release = ""
	assert.False(t, p.HasVersion())
}

func TestCatalog_Count(t *testing.T) {
	c := Catalog{
		"x86_64":  {{Name: "foo"}, {Name: "bar"}},
		"aarch64": {{Name: "foo"}},
		"noarch":  nil,
	}
	assert.EqualValues(t, 3, c.Count())
}

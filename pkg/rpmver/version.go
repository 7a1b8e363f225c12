package rpmver

import (
	"cmp"
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var ErrInvalidFormat = errors.New("invalid version format")

// Split separates s into its version and release at the first '-'.
// Anything after the first '-' belongs to the release, including
// any further dashes. A missing release is returned as an empty string.
func Split(s string) (string, string, error) {
	if s == "" {
		return "", "", fmt.Errorf("%w: empty string", ErrInvalidFormat)
	}
	if i := strings.IndexFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsControl(r)
	}); i >= 0 {
		return "", "", fmt.Errorf("%w: %q: unexpected character at offset %d", ErrInvalidFormat, s, i)
	}
	version, release, hasRelease := strings.Cut(s, "-")
	if version == "" {
		return "", "", fmt.Errorf("%w: %q: missing version", ErrInvalidFormat, s)
	}
	if hasRelease && release == "" {
		return "", "", fmt.Errorf("%w: %q: empty release", ErrInvalidFormat, s)
	}
	return version, release, nil
}

// Parse reads a "version[-release]" string.
func Parse(s string) (Version, error) {
	version, release, err := Split(s)
	if err != nil {
		return Version{}, err
	}
	return Version{
		raw:          s,
		version:      version,
		release:      release,
		versionParts: parseComponents(version),
		releaseParts: parseComponents(release),
	}, nil
}

// Compare parses and compares two "version[-release]" strings.
func Compare(a, b string) (int, error) {
	va, err := Parse(a)
	if err != nil {
		return 0, err
	}
	vb, err := Parse(b)
	if err != nil {
		return 0, err
	}
	return va.Compare(vb), nil
}

func (v Version) String() string {
	return v.raw
}

func (v Version) Version() string {
	return v.version
}

func (v Version) Release() string {
	return v.release
}

// Compare orders v against o. The version is compared first
// and the release is only considered when the versions are equal.
func (v Version) Compare(o Version) int {
	if c := compareParts(v.versionParts, o.versionParts); c != 0 {
		return c
	}
	return compareParts(v.releaseParts, o.releaseParts)
}

func parseComponents(s string) []component {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ".")
	out := make([]component, len(parts))
	for i := range parts {
		out[i] = tokenize(parts[i])
	}
	return out
}

// tokenize splits s into runs of digits and non-digits. Each
// '~' becomes a token of its own.
func tokenize(s string) component {
	var out component
	for i := 0; i < len(s); {
		switch {
		case s[i] == '~':
			out = append(out, token{kind: kindTilde, value: "~"})
			i++
		case isDigit(s[i]):
			j := i
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			out = append(out, token{kind: kindNumeric, value: s[i:j]})
			i = j
		default:
			j := i
			for j < len(s) && !isDigit(s[j]) && s[j] != '~' {
				j++
			}
			out = append(out, token{kind: kindAlpha, value: s[i:j]})
			i = j
		}
	}
	return out
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// compareParts compares two component tuples. A missing
// component behaves like an empty one.
func compareParts(a, b []component) int {
	n := max(len(a), len(b))
	for i := 0; i < n; i++ {
		var x, y component
		if i < len(a) {
			x = a[i]
		}
		if i < len(b) {
			y = b[i]
		}
		if c := x.compare(y); c != 0 {
			return c
		}
	}
	return 0
}

// compare orders two components token by token. When one side
// runs out, it is older unless the other side continues with a
// tilde (a pre-release marker).
func (c component) compare(o component) int {
	n := max(len(c), len(o))
	for i := 0; i < n; i++ {
		switch {
		case i >= len(c):
			if o[i].kind == kindTilde {
				return 1
			}
			return -1
		case i >= len(o):
			if c[i].kind == kindTilde {
				return -1
			}
			return 1
		}
		if r := c[i].compare(o[i]); r != 0 {
			return r
		}
	}
	return 0
}

func (t token) compare(o token) int {
	if t.kind != o.kind {
		return cmp.Compare(t.kind, o.kind)
	}
	switch t.kind {
	case kindNumeric:
		return compareNumeric(t.value, o.value)
	case kindAlpha:
		return strings.Compare(t.value, o.value)
	default:
		return 0
	}
}

// compareNumeric compares two digit strings by value
// without converting them, so any length is supported.
func compareNumeric(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if c := cmp.Compare(len(a), len(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

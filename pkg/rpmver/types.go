package rpmver

type tokenKind int

// ordering of the kinds matters, a tilde sorts before
// everything and a number sorts after letters
const (
	kindTilde tokenKind = iota
	kindAlpha
	kindNumeric
)

type token struct {
	kind  tokenKind
	value string
}

// component is a single dot-separated part
// of a version or release (e.g. "0rc1").
type component []token

// Version is a parsed "version-release" string that
// can be ordered against other versions.
type Version struct {
	raw     string
	version string
	release string

	versionParts []component
	releaseParts []component
}

// Comparator orders two "version-release" strings. It returns
// a negative number when a is older than b, 0 when they are
// equivalent and a positive number when a is newer.
type Comparator interface {
	Compare(a, b string) (int, error)
}

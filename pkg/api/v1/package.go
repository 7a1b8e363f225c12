package v1

// EVR returns the "version-release" string used
// when comparing and reporting package versions.
func (p *Package) EVR() string {
	return p.Version + "-" + p.Release
}

func (p *Package) HasVersion() bool {
	return p.Version != "" && p.Release != ""
}

// Count returns the total number of packages
// across all architectures.
func (c Catalog) Count() int {
	var n int
	for _, v := range c {
		n += len(v)
	}
	return n
}

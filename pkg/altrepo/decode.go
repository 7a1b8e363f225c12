package altrepo

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	v1 "github.com/djcass44/pkgdiff/pkg/api/v1"
	"github.com/djcass44/pkgdiff/pkg/requestutil"
)

var errMissingPackages = errors.New("response is missing the 'packages' array")

// Decode reads an export response from r and groups its packages
// by architecture. Entries that are missing a required field are
// skipped and the number of skipped entries is returned.
func Decode(r io.Reader) (v1.Catalog, int, error) {
	var resp response
	if err := json.NewDecoder(r).Decode(&resp); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", requestutil.ErrDecode, err)
	}
	return resp.catalog()
}

func (r *response) catalog() (v1.Catalog, int, error) {
	if r.Packages == nil {
		return nil, 0, fmt.Errorf("%w: %w", requestutil.ErrDecode, errMissingPackages)
	}
	catalog := v1.Catalog{}
	var skipped int
	for _, raw := range *r.Packages {
		pkg, ok := parsePackage(raw)
		if !ok {
			skipped++
			continue
		}
		catalog[pkg.Arch] = append(catalog[pkg.Arch], pkg)
	}
	return catalog, skipped, nil
}

func parsePackage(raw json.RawMessage) (v1.Package, bool) {
	var p rawPackage
	if err := json.Unmarshal(raw, &p); err != nil {
		return v1.Package{}, false
	}
	for _, s := range []*string{p.Name, p.Version, p.Release, p.Arch} {
		if s == nil || *s == "" {
			return v1.Package{}, false
		}
	}
	return v1.Package{
		Name:    *p.Name,
		Version: *p.Version,
		Release: *p.Release,
		Arch:    *p.Arch,
	}, true
}

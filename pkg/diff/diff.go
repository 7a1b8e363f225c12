package diff

import (
	"cmp"
	"context"
	"slices"

	v1 "github.com/djcass44/pkgdiff/pkg/api/v1"
	"github.com/djcass44/pkgdiff/pkg/rpmver"
	"github.com/go-logr/logr"
	"github.com/samber/lo"
	"golang.org/x/exp/maps"
)

// Compare computes the differences between the reference and
// target catalogs. Every architecture known to either catalog
// is present in the report, even if it has no differences.
//
// Versions that the comparator rejects never abort the
// comparison. The package is recorded as incomparable instead.
func Compare(ctx context.Context, branches v1.Branches, reference, target v1.Catalog, comparator rpmver.Comparator) *Report {
	log := logr.FromContextOrDiscard(ctx).WithValues("reference", branches.Reference, "target", branches.Target)

	arches := lo.Union(maps.Keys(reference), maps.Keys(target))
	slices.Sort(arches)
	log.V(1).Info("comparing catalogs", "arches", arches)

	report := &Report{
		Branches:      branches,
		Architectures: make(map[string]*Architecture, len(arches)),
	}
	for _, arch := range arches {
		report.Architectures[arch] = compareArch(log.WithValues("arch", arch), reference[arch], target[arch], comparator)
	}
	return report
}

func compareArch(log logr.Logger, reference, target []v1.Package, comparator rpmver.Comparator) *Architecture {
	refIndex := index(log.WithValues("branch", "reference"), reference)
	tgtIndex := index(log.WithValues("branch", "target"), target)

	out := &Architecture{
		OnlyInTarget:    []string{},
		OnlyInReference: []string{},
		VersionDiff:     []VersionDiff{},
		Incomparable:    []string{},
	}
	for name, tgt := range tgtIndex {
		ref, ok := refIndex[name]
		if !ok {
			out.OnlyInTarget = append(out.OnlyInTarget, name)
			continue
		}
		if !ref.HasVersion() || !tgt.HasVersion() {
			log.V(2).Info("skipping package without a version", "name", name)
			continue
		}
		c, err := comparator.Compare(ref.EVR(), tgt.EVR())
		if err != nil {
			log.Error(err, "skipping package with an invalid version", "name", name, "referenceVersion", ref.EVR(), "targetVersion", tgt.EVR())
			out.Incomparable = append(out.Incomparable, name)
			continue
		}
		if c > 0 {
			out.VersionDiff = append(out.VersionDiff, VersionDiff{
				Name:             name,
				ReferenceVersion: ref.EVR(),
				TargetVersion:    tgt.EVR(),
			})
		}
	}
	for name := range refIndex {
		if _, ok := tgtIndex[name]; !ok {
			out.OnlyInReference = append(out.OnlyInReference, name)
		}
	}

	slices.Sort(out.OnlyInTarget)
	slices.Sort(out.OnlyInReference)
	slices.Sort(out.Incomparable)
	slices.SortFunc(out.VersionDiff, func(a, b VersionDiff) int {
		return cmp.Compare(a.Name, b.Name)
	})
	log.V(2).Info("compared architecture", "onlyInTarget", len(out.OnlyInTarget), "onlyInReference", len(out.OnlyInReference), "versionDiff", len(out.VersionDiff))
	return out
}

// index maps packages by name. When a name appears more
// than once, the last entry wins.
func index(log logr.Logger, packages []v1.Package) map[string]v1.Package {
	out := make(map[string]v1.Package, len(packages))
	for _, p := range packages {
		if prev, ok := out[p.Name]; ok {
			log.V(1).Info("duplicate package name, keeping the last entry", "name", p.Name, "previous", prev.EVR(), "current", p.EVR())
		}
		out[p.Name] = p
	}
	return out
}

// Summary returns the counts for each architecture
// ordered by architecture name.
func (r *Report) Summary() []Counts {
	arches := maps.Keys(r.Architectures)
	slices.Sort(arches)

	out := make([]Counts, len(arches))
	for i, arch := range arches {
		a := r.Architectures[arch]
		out[i] = Counts{
			Arch:            arch,
			OnlyInTarget:    len(a.OnlyInTarget),
			OnlyInReference: len(a.OnlyInReference),
			VersionDiff:     len(a.VersionDiff),
			Incomparable:    len(a.Incomparable),
		}
	}
	return out
}

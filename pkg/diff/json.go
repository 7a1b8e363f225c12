package diff

import (
	"bytes"
	"encoding/json"
	"slices"

	"golang.org/x/exp/maps"
)

// MarshalJSON renders the report keyed by architecture. The
// per-architecture keys are derived from the branch names
// (e.g. "p10_only", "sisyphus_only", "sisyphus_version").
func (r *Report) MarshalJSON() ([]byte, error) {
	arches := maps.Keys(r.Architectures)
	slices.Sort(arches)

	buf := &bytes.Buffer{}
	buf.WriteByte('{')
	for i, arch := range arches {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeKey(buf, arch); err != nil {
			return nil, err
		}
		if err := r.writeArch(buf, r.Architectures[arch]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (r *Report) writeArch(buf *bytes.Buffer, a *Architecture) error {
	if a == nil {
		a = &Architecture{}
	}
	buf.WriteByte('{')
	if err := writeKey(buf, r.Branches.Target+"_only"); err != nil {
		return err
	}
	if err := writeValue(buf, nonNil(a.OnlyInTarget)); err != nil {
		return err
	}
	buf.WriteByte(',')
	if err := writeKey(buf, r.Branches.Reference+"_only"); err != nil {
		return err
	}
	if err := writeValue(buf, nonNil(a.OnlyInReference)); err != nil {
		return err
	}
	buf.WriteByte(',')
	if err := writeKey(buf, "version_diff"); err != nil {
		return err
	}
	buf.WriteByte('[')
	for i, d := range a.VersionDiff {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := r.writeVersionDiff(buf, d); err != nil {
			return err
		}
	}
	buf.WriteByte(']')
	if len(a.Incomparable) > 0 {
		buf.WriteByte(',')
		if err := writeKey(buf, "incomparable"); err != nil {
			return err
		}
		if err := writeValue(buf, a.Incomparable); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

func (r *Report) writeVersionDiff(buf *bytes.Buffer, d VersionDiff) error {
	fields := [][2]string{
		{"name", d.Name},
		{r.Branches.Reference + "_version", d.ReferenceVersion},
		{r.Branches.Target + "_version", d.TargetVersion},
	}
	buf.WriteByte('{')
	for i, f := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeKey(buf, f[0]); err != nil {
			return err
		}
		if err := writeValue(buf, f[1]); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

func writeKey(buf *bytes.Buffer, key string) error {
	if err := writeValue(buf, key); err != nil {
		return err
	}
	buf.WriteByte(':')
	return nil
}

// writeValue encodes v without escaping HTML characters
// so that package names are written as-is.
func writeValue(buf *bytes.Buffer, v any) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	// drop the newline added by Encode
	buf.Truncate(buf.Len() - 1)
	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

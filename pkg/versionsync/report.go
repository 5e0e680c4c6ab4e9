package versionsync

import (
	"maps"
	"slices"
)

// Report maps each version found to the manifests that declare it.
type Report struct {
	files map[string][]string
}

func newReport() *Report {
	return &Report{files: map[string][]string{}}
}

// NewReport builds a report from a version to paths mapping.
func NewReport(found map[string][]string) *Report {
	r := newReport()
	for v, paths := range found {
		r.files[v] = slices.Clone(paths)
	}

	return r
}

func (r *Report) add(version, path string) {
	r.files[version] = append(r.files[version], path)
}

// Consistent reports whether exactly one version was found.
func (r *Report) Consistent() bool {
	return len(r.files) == 1
}

// Versions returns the distinct versions, sorted.
func (r *Report) Versions() []string {
	return slices.Sorted(maps.Keys(r.files))
}

// Files returns the manifests declaring version, in entry order.
func (r *Report) Files(version string) []string {
	return slices.Clone(r.files[version])
}

// Version returns the version when the report is consistent.
func (r *Report) Version() (string, bool) {
	if !r.Consistent() {
		return "", false
	}

	return r.Versions()[0], true
}

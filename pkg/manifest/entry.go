package manifest

import (
	"fmt"
	"path/filepath"
	"regexp"
)

// Entry locates the version field of one manifest.
type Entry struct {
	Pattern *regexp.Regexp
	// Path is slash separated and relative to the repository root.
	Path string
}

// NewEntry returns an [Entry] for path, or an error if pattern lacks the
// prefix, version and suffix groups.
func NewEntry(path string, pattern *regexp.Regexp) (Entry, error) {
	err := checkPattern(pattern)
	if err != nil {
		return Entry{}, fmt.Errorf("%s: %w", path, err)
	}

	return Entry{Path: path, Pattern: pattern}, nil
}

// Resolve returns the entry's file path under root.
func (e Entry) Resolve(root string) string {
	return filepath.Join(root, filepath.FromSlash(e.Path))
}

// ReadVersion reads the entry's version from under root.
func (e Entry) ReadVersion(root string) (string, error) {
	return ReadVersion(e.Resolve(root), e.Pattern)
}

// UpdateVersion rewrites the entry's version under root.
func (e Entry) UpdateVersion(root, newVersion string) (bool, error) {
	return UpdateVersion(e.Resolve(root), e.Pattern, newVersion)
}

// DefaultEntries returns the manifests of a libsignal-style distribution. The
// returned slice is a fresh copy.
func DefaultEntries() []Entry {
	return []Entry{
		{Path: "LibSignalClient.podspec", Pattern: PodspecPattern},
		{Path: "java/build.gradle", Pattern: GradlePattern},
		{Path: "node/package.json", Pattern: NodePattern},
		{Path: "rust/core/src/version.rs", Pattern: RustPattern},
		{Path: bridgePath("ffi"), Pattern: CargoPattern},
		{Path: bridgePath("jni"), Pattern: CargoPattern},
		{Path: bridgePath("jni/testing"), Pattern: CargoPattern},
		{Path: bridgePath("node"), Pattern: CargoPattern},
	}
}

func bridgePath(bridge string) string {
	return "rust/bridge/" + bridge + "/Cargo.toml"
}

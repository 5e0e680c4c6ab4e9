package manifest

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/macropower/versionsync/pkg/syncerrors"
)

const (
	FormatPodspec = "podspec"
	FormatGradle  = "gradle"
	FormatNode    = "node"
	FormatCargo   = "cargo"
	FormatRust    = "rust"
)

// Number of capture groups a pattern needs: prefix, version, suffix.
const requiredGroups = 3

var (
	// PodspecPattern matches `s.version = '1.2.3'` in a CocoaPods podspec.
	PodspecPattern = regexp.MustCompile(`^(.*\.version\s+=\s+')(.*)(')`)

	// GradlePattern matches an indented `version = "1.2.3"` in build.gradle.
	GradlePattern = regexp.MustCompile(`^(\s+version\s+=\s+")(.*)(")`)

	// NodePattern matches an indented `"version": "1.2.3"` in package.json.
	NodePattern = regexp.MustCompile(`^(\s+"version": ")(.*)(")`)

	// CargoPattern matches a top-level `version = "1.2.3"` in Cargo.toml.
	CargoPattern = regexp.MustCompile(`^(version = ")(.*)(")`)

	// RustPattern matches `pub const VERSION: &str = "1.2.3";` in Rust source.
	RustPattern = regexp.MustCompile(`^(pub const VERSION: &str = ")(.*)(")`)
)

var formats = map[string]*regexp.Regexp{
	FormatPodspec: PodspecPattern,
	FormatGradle:  GradlePattern,
	FormatNode:    NodePattern,
	FormatCargo:   CargoPattern,
	FormatRust:    RustPattern,
}

// Formats returns the names of the built-in patterns, sorted.
func Formats() []string {
	names := make([]string, 0, len(formats))
	for name := range formats {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// PatternByName returns the built-in pattern for the named manifest format.
func PatternByName(name string) (*regexp.Regexp, error) {
	p, ok := formats[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w %q, expected one of: %s",
			syncerrors.ErrUnknownFormat, name, strings.Join(Formats(), ", "))
	}

	return p, nil
}

// CompilePattern compiles expr and checks it has the groups [UpdateVersion]
// relies on.
func CompilePattern(expr string) (*regexp.Regexp, error) {
	p, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", syncerrors.ErrInvalidPattern, err)
	}

	err = checkPattern(p)
	if err != nil {
		return nil, err
	}

	return p, nil
}

func checkPattern(p *regexp.Regexp) error {
	if p == nil {
		return fmt.Errorf("%w: nil pattern", syncerrors.ErrInvalidPattern)
	}

	if p.NumSubexp() < requiredGroups {
		return fmt.Errorf("%w: %q has %d capture groups, need %d",
			syncerrors.ErrInvalidPattern, p.String(), p.NumSubexp(), requiredGroups)
	}

	return nil
}

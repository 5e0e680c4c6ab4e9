// Package manifest reads and rewrites the version field of package manifest
// files.
//
// A manifest is located by an [Entry]: a path relative to the repository root
// and a line pattern with three capture groups. The first group is the text
// before the version, the second is the version itself, and the third is the
// text after it. Only the first line matching the pattern is ever considered.
//
// Manifest formats are not parsed. A podspec, a Gradle build, a package.json
// and a Cargo.toml are all just lines of text here.
package manifest

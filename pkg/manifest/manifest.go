package manifest

import (
	"bytes"
	"fmt"
	"os"
	"regexp"

	"github.com/macropower/versionsync/pkg/syncerrors"
)

// ReadVersion returns the second capture group of the first line in the file
// at path that matches pattern.
func ReadVersion(path string, pattern *regexp.Regexp) (string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Manifest paths come from the entry list.
	if err != nil {
		return "", fmt.Errorf("%w: %w", syncerrors.ErrReadFile, err)
	}

	m, ok := firstMatch(data, pattern)
	if !ok {
		return "", fmt.Errorf("%w from %s", syncerrors.ErrVersionNotFound, path)
	}

	return string(m.group(2)), nil
}

// UpdateVersion rewrites the file at path, replacing the version captured by
// pattern on the first matching line with newVersion. The prefix and suffix
// groups, text outside the match, and all other lines are kept as they are.
// It reports whether a line was changed; a file with no matching line is not
// written.
func UpdateVersion(path string, pattern *regexp.Regexp, newVersion string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, fmt.Errorf("%w: %w", syncerrors.ErrReadFile, err)
	}

	data, err := os.ReadFile(path) //nolint:gosec // Manifest paths come from the entry list.
	if err != nil {
		return false, fmt.Errorf("%w: %w", syncerrors.ErrReadFile, err)
	}

	out, found := ReplaceVersion(data, pattern, newVersion)
	if !found {
		return false, nil
	}

	err = os.WriteFile(path, out, info.Mode().Perm())
	if err != nil {
		return false, fmt.Errorf("%w: %w", syncerrors.ErrWriteFile, err)
	}

	return true, nil
}

// ReplaceVersion is the in-memory form of [UpdateVersion]. It returns data
// with the first matching line rewritten, and false if no line matched.
func ReplaceVersion(data []byte, pattern *regexp.Regexp, newVersion string) ([]byte, bool) {
	m, ok := firstMatch(data, pattern)
	if !ok {
		return data, false
	}

	var buf bytes.Buffer

	buf.Grow(len(data) + len(newVersion))
	buf.Write(data[:m.offset])
	buf.Write(m.group(1))
	buf.WriteString(newVersion)
	buf.Write(m.group(3))
	buf.Write(data[m.offset+m.loc[1]:])

	return buf.Bytes(), true
}

type lineMatch struct {
	// line excludes the line ending.
	line   []byte
	loc    []int
	offset int
}

// group returns capture group n, or nil if it did not participate.
func (m lineMatch) group(n int) []byte {
	start, end := m.loc[2*n], m.loc[2*n+1]
	if start < 0 {
		return nil
	}

	return m.line[start:end]
}

// firstMatch finds the first line that pattern matches at its start. Lines
// are matched without their "\n" or "\r\n" ending.
func firstMatch(data []byte, pattern *regexp.Regexp) (lineMatch, bool) {
	offset := 0

	for offset < len(data) {
		rest := data[offset:]

		lineLen := bytes.IndexByte(rest, '\n')
		next := offset + lineLen + 1

		if lineLen < 0 {
			lineLen = len(rest)
			next = len(data)
		}

		line := bytes.TrimSuffix(rest[:lineLen], []byte{'\r'})

		// The match is leftmost, so a non-zero start means none at column zero.
		loc := pattern.FindSubmatchIndex(line)
		if len(loc) >= 2*requiredGroups+2 && loc[0] == 0 {
			return lineMatch{line: line, loc: loc, offset: offset}, true
		}

		offset = next
	}

	return lineMatch{}, false
}

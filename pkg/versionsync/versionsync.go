package versionsync

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/macropower/versionsync/pkg/manifest"
)

// Synchronizer checks and updates the manifests under one repository root.
type Synchronizer struct {
	logger  *slog.Logger
	root    string
	entries []manifest.Entry
}

// Option configures a [Synchronizer].
type Option func(*Synchronizer)

// WithEntries replaces the default manifest list.
func WithEntries(entries []manifest.Entry) Option {
	return func(s *Synchronizer) {
		s.entries = slices.Clone(entries)
	}
}

// WithLogger sets the logger. The default is [slog.Default].
func WithLogger(logger *slog.Logger) Option {
	return func(s *Synchronizer) {
		s.logger = logger
	}
}

// New returns a [Synchronizer] for the repository at root. Without
// [WithEntries], it uses [manifest.DefaultEntries].
func New(root string, opts ...Option) *Synchronizer {
	s := &Synchronizer{
		root:    root,
		entries: manifest.DefaultEntries(),
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Root returns the repository root.
func (s *Synchronizer) Root() string {
	return s.root
}

// Entries returns a copy of the manifest list.
func (s *Synchronizer) Entries() []manifest.Entry {
	return slices.Clone(s.entries)
}

// Check reads the version of every manifest. Any read error aborts the check,
// and no report is returned.
func (s *Synchronizer) Check() (*Report, error) {
	r := newReport()

	for _, e := range s.entries {
		v, err := e.ReadVersion(s.root)
		if err != nil {
			return nil, fmt.Errorf("read version: %w", err)
		}

		s.logger.Debug("read version", slog.String("path", e.Path), slog.String("version", v))

		r.add(v, e.Path)
	}

	return r, nil
}

// Update rewrites every manifest to newVersion, after stripping a leading
// "v". It stops at the first error; manifests before it stay rewritten.
func (s *Synchronizer) Update(newVersion string) error {
	newVersion = NormalizeVersion(newVersion)

	for _, e := range s.entries {
		changed, err := e.UpdateVersion(s.root, newVersion)
		if err != nil {
			return fmt.Errorf("update version: %w", err)
		}

		if !changed {
			s.logger.Warn("no version line found, file left unchanged", slog.String("path", e.Path))

			continue
		}

		s.logger.Debug("updated version", slog.String("path", e.Path), slog.String("version", newVersion))
	}

	return nil
}

// NormalizeVersion strips a single leading "v". The version is otherwise
// opaque and not validated.
func NormalizeVersion(v string) string {
	return strings.TrimPrefix(v, "v")
}

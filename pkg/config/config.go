// Package config loads the manifest list from a YAML file.
//
// The file lists manifests relative to the repository root. Each manifest
// names either a built-in format or its own pattern:
//
//	manifests:
//	  - path: LibSignalClient.podspec
//	    format: podspec
//	  - path: VERSION
//	    pattern: '^()(.*)()$'
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/macropower/versionsync/pkg/manifest"
	"github.com/macropower/versionsync/pkg/syncerrors"
)

// DefaultFile is read from the repository root when no file is given.
const DefaultFile = ".versionsync.yaml"

type Config struct {
	Manifests []Manifest `yaml:"manifests"`
}

type Manifest struct {
	Path    string `yaml:"path"`
	Format  string `yaml:"format,omitempty"`
	Pattern string `yaml:"pattern,omitempty"`
}

// Load reads the config file at file. If file is empty, it reads
// [DefaultFile] under root, and returns nil entries when that file does not
// exist.
func Load(root, file string) ([]manifest.Entry, error) {
	explicit := file != ""
	if !explicit {
		file = filepath.Join(root, DefaultFile)
	}

	data, err := os.ReadFile(file) //nolint:gosec // User supplied config path.
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}

		return nil, fmt.Errorf("%w: %w", syncerrors.ErrReadFile, err)
	}

	cfg, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}

	entries, err := cfg.Entries()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}

	return entries, nil
}

// Parse decodes a config. Unknown keys are rejected.
func Parse(r io.Reader) (*Config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	cfg := &Config{}

	err := dec.Decode(cfg)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", syncerrors.ErrInvalidConfig, err)
	}

	return cfg, nil
}

// Entries validates every manifest and returns them as entries. All invalid
// manifests are reported together.
func (c *Config) Entries() ([]manifest.Entry, error) {
	if len(c.Manifests) == 0 {
		return nil, fmt.Errorf("%w: no manifests", syncerrors.ErrInvalidConfig)
	}

	var merr error

	entries := make([]manifest.Entry, 0, len(c.Manifests))

	for i, m := range c.Manifests {
		e, err := m.Entry()
		if err != nil {
			merr = multierror.Append(merr, fmt.Errorf("manifests[%d]: %w", i, err))

			continue
		}

		entries = append(entries, e)
	}

	if merr != nil {
		return nil, fmt.Errorf("%w: %w", syncerrors.ErrInvalidConfig, merr)
	}

	return entries, nil
}

// Entry converts m to a [manifest.Entry].
func (m Manifest) Entry() (manifest.Entry, error) {
	if m.Path == "" {
		return manifest.Entry{}, errors.New("path is required")
	}

	if path.IsAbs(m.Path) || path.Clean(m.Path) != m.Path || m.Path == ".." || strings.HasPrefix(m.Path, "../") {
		return manifest.Entry{}, fmt.Errorf("%s: %w", m.Path, syncerrors.ErrResolvedOutsideRepo)
	}

	switch {
	case m.Format != "" && m.Pattern != "":
		return manifest.Entry{}, fmt.Errorf("%s: set only one of format and pattern", m.Path)
	case m.Format != "":
		p, err := manifest.PatternByName(m.Format)
		if err != nil {
			return manifest.Entry{}, fmt.Errorf("%s: %w", m.Path, err)
		}

		return manifest.NewEntry(m.Path, p)
	case m.Pattern != "":
		p, err := manifest.CompilePattern(m.Pattern)
		if err != nil {
			return manifest.Entry{}, fmt.Errorf("%s: %w", m.Path, err)
		}

		return manifest.NewEntry(m.Path, p)
	}

	return manifest.Entry{}, fmt.Errorf("%s: one of format or pattern is required", m.Path)
}

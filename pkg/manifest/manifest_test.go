package manifest_test

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/versionsync/pkg/manifest"
	"github.com/macropower/versionsync/pkg/syncerrors"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "manifest")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestReadVersion(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		pattern *regexp.Regexp
		err     error
		content string
		want    string
	}{
		"podspec": {
			pattern: manifest.PodspecPattern,
			content: "Pod::Spec.new do |s|\n  s.name = 'LibSignalClient'\n  s.version = '0.40.1'\n",
			want:    "0.40.1",
		},
		"gradle": {
			pattern: manifest.GradlePattern,
			content: "subprojects {\n    version = \"0.40.1\"\n    group = \"org.signal\"\n}\n",
			want:    "0.40.1",
		},
		"package.json": {
			pattern: manifest.NodePattern,
			content: "{\n  \"name\": \"@signalapp/libsignal-client\",\n  \"version\": \"0.40.1\",\n}\n",
			want:    "0.40.1",
		},
		"cargo ignores dependency versions": {
			pattern: manifest.CargoPattern,
			content: "[package]\nname = \"libsignal-ffi\"\nversion = \"0.40.1\"\n\n[dependencies]\nfoo = { version = \"1.0\" }\n",
			want:    "0.40.1",
		},
		"rust const": {
			pattern: manifest.RustPattern,
			content: "// Generated.\npub const VERSION: &str = \"0.40.1\";\n",
			want:    "0.40.1",
		},
		"first match wins": {
			pattern: manifest.CargoPattern,
			content: "version = \"1.0.0\"\nversion = \"2.0.0\"\n",
			want:    "1.0.0",
		},
		"no trailing newline": {
			pattern: manifest.CargoPattern,
			content: "version = \"1.0.0\"",
			want:    "1.0.0",
		},
		"crlf line endings": {
			pattern: manifest.CargoPattern,
			content: "[package]\r\nversion = \"1.0.0\"\r\n",
			want:    "1.0.0",
		},
		"crlf whole line": {
			pattern: regexp.MustCompile(`^()(.*)()$`),
			content: "0.1.0\r\n",
			want:    "0.1.0",
		},
		"unanchored pattern matches at line start only": {
			pattern: regexp.MustCompile(`(version = ")(.*)(")`),
			content: "dep = { version = \"9.9\" }\nversion = \"1.0\"\n",
			want:    "1.0",
		},
		"indented cargo version does not match": {
			pattern: manifest.CargoPattern,
			content: "  version = \"1.0.0\"\n",
			err:     syncerrors.ErrVersionNotFound,
		},
		"empty file": {
			pattern: manifest.CargoPattern,
			content: "",
			err:     syncerrors.ErrVersionNotFound,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			path := writeFile(t, tc.content)

			got, err := manifest.ReadVersion(path, tc.pattern)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				assert.Contains(t, err.Error(), path)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestReadVersionMissingFile(t *testing.T) {
	t.Parallel()

	_, err := manifest.ReadVersion(filepath.Join(t.TempDir(), "nope"), manifest.CargoPattern)
	require.ErrorIs(t, err, syncerrors.ErrReadFile)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestUpdateVersion(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		pattern     *regexp.Regexp
		content     string
		version     string
		want        string
		wantChanged bool
	}{
		"podspec keeps suffix": {
			pattern:     manifest.PodspecPattern,
			content:     "  s.version = '0.40.1' # keep\n",
			version:     "0.41.0",
			want:        "  s.version = '0.41.0' # keep\n",
			wantChanged: true,
		},
		"rust keeps semicolon": {
			pattern:     manifest.RustPattern,
			content:     "pub const VERSION: &str = \"0.40.1\";\n",
			version:     "0.41.0",
			want:        "pub const VERSION: &str = \"0.41.0\";\n",
			wantChanged: true,
		},
		"only first matching line": {
			pattern:     manifest.CargoPattern,
			content:     "version = \"1.0.0\"\nversion = \"1.0.0\"\n",
			version:     "2.0.0",
			want:        "version = \"2.0.0\"\nversion = \"1.0.0\"\n",
			wantChanged: true,
		},
		"other lines untouched": {
			pattern:     manifest.NodePattern,
			content:     "{\n  \"name\": \"x\",\n  \"version\": \"1.0.0\",\n  \"main\": \"index.js\"\n}\n",
			version:     "1.1.0",
			want:        "{\n  \"name\": \"x\",\n  \"version\": \"1.1.0\",\n  \"main\": \"index.js\"\n}\n",
			wantChanged: true,
		},
		"crlf preserved": {
			pattern:     manifest.CargoPattern,
			content:     "[package]\r\nversion = \"1.0.0\"\r\nedition = \"2021\"\r\n",
			version:     "2.0.0",
			want:        "[package]\r\nversion = \"2.0.0\"\r\nedition = \"2021\"\r\n",
			wantChanged: true,
		},
		"crlf whole line preserved": {
			pattern:     regexp.MustCompile(`^()(.*)()$`),
			content:     "0.1.0\r\nrest\r\n",
			version:     "0.2.0",
			want:        "0.2.0\r\nrest\r\n",
			wantChanged: true,
		},
		"unanchored pattern skips mid-line match": {
			pattern:     regexp.MustCompile(`(version = ")(.*)(")`),
			content:     "dep = { version = \"9.9\" }\nversion = \"1.0\"\n",
			version:     "2.0",
			want:        "dep = { version = \"9.9\" }\nversion = \"2.0\"\n",
			wantChanged: true,
		},
		"no trailing newline preserved": {
			pattern:     manifest.CargoPattern,
			content:     "name = \"x\"\nversion = \"1.0.0\"",
			version:     "2.0.0",
			want:        "name = \"x\"\nversion = \"2.0.0\"",
			wantChanged: true,
		},
		"version written literally": {
			pattern:     manifest.CargoPattern,
			content:     "version = \"1.0.0\"\n",
			version:     `2.0.0-$1\g<1>`,
			want:        "version = \"2.0.0-$1\\g<1>\"\n",
			wantChanged: true,
		},
		"no match leaves file alone": {
			pattern: manifest.CargoPattern,
			content: "[package]\nname = \"x\"\n",
			version: "2.0.0",
			want:    "[package]\nname = \"x\"\n",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			path := writeFile(t, tc.content)

			changed, err := manifest.UpdateVersion(path, tc.pattern, tc.version)
			require.NoError(t, err)
			assert.Equal(t, tc.wantChanged, changed)

			got, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tc.want, string(got))
		})
	}
}

func TestUpdateVersionIdempotent(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "[package]\nversion = \"1.0.0\"\nversion = \"1.0.0\"\n")

	_, err := manifest.UpdateVersion(path, manifest.CargoPattern, "3.1.4")
	require.NoError(t, err)

	once, err := os.ReadFile(path)
	require.NoError(t, err)

	_, err = manifest.UpdateVersion(path, manifest.CargoPattern, "3.1.4")
	require.NoError(t, err)

	twice, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, string(once), string(twice))

	got, err := manifest.ReadVersion(path, manifest.CargoPattern)
	require.NoError(t, err)
	assert.Equal(t, "3.1.4", got)
}

func TestUpdateVersionKeepsMode(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "version = \"1.0.0\"\n")
	require.NoError(t, os.Chmod(path, 0o600))

	_, err := manifest.UpdateVersion(path, manifest.CargoPattern, "2.0.0")
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestUpdateVersionMissingFile(t *testing.T) {
	t.Parallel()

	_, err := manifest.UpdateVersion(filepath.Join(t.TempDir(), "nope"), manifest.CargoPattern, "1.0.0")
	require.ErrorIs(t, err, os.ErrNotExist)
}

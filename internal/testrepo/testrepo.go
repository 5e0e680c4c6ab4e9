// Package testrepo writes a small multi-language repository for tests.
package testrepo

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// Manifests maps each default manifest path to a realistic file template.
// Every template has a single %[1]s verb for the version.
var Manifests = map[string]string{
	"LibSignalClient.podspec": `Pod::Spec.new do |s|
  s.name             = 'LibSignalClient'
  s.version          = '%[1]s'
  s.summary          = 'A Swift wrapper library for communicating with the Signal messaging service.'
  s.platform = :ios, '13.0'
end
`,
	"java/build.gradle": `plugins {
    id 'base'
}

subprojects {
    version = "%[1]s"
    group   = "org.signal"
}
`,
	"node/package.json": `{
  "name": "@signalapp/libsignal-client",
  "version": "%[1]s",
  "license": "AGPL-3.0-only",
  "dependencies": {
    "node-gyp-build": "^4.8.0"
  }
}
`,
	"rust/core/src/version.rs": `//
// Copyright 2024 Signal Messenger, LLC.
// SPDX-License-Identifier: AGPL-3.0-only
//

pub const VERSION: &str = "%[1]s";
`,
	"rust/bridge/ffi/Cargo.toml":         cargo("libsignal-ffi"),
	"rust/bridge/jni/Cargo.toml":         cargo("libsignal-jni"),
	"rust/bridge/jni/testing/Cargo.toml": cargo("libsignal-jni-testing"),
	"rust/bridge/node/Cargo.toml":        cargo("libsignal-node"),
}

func cargo(name string) string {
	return `[package]
name = "` + name + `"
version = "%[1]s"
edition = "2021"

[dependencies]
libsignal-bridge = { path = "../shared", version = "0.1.0" }
`
}

// New writes every manifest with version into a fresh git repository under
// t.TempDir and returns its root.
func New(t testing.TB, version string) string {
	t.Helper()

	root := t.TempDir()

	gitDir := filepath.Join(root, ".git")
	require.NoError(t, os.MkdirAll(gitDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(gitDir, "HEAD"), []byte("ref: refs/heads/main\n"), 0o644))

	for path := range Manifests {
		SetVersion(t, root, path, version)
	}

	return root
}

// SetVersion rewrites the manifest at path under root with version.
func SetVersion(t testing.TB, root, path, version string) {
	t.Helper()

	tmpl, ok := Manifests[path]
	require.True(t, ok, "unknown manifest %s", path)

	full := filepath.Join(root, filepath.FromSlash(path))
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, fmt.Appendf(nil, tmpl, version), 0o644))
}

// Read returns the contents of the manifest at path under root.
func Read(t testing.TB, root, path string) string {
	t.Helper()

	b, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(path)))
	require.NoError(t, err)

	return string(b)
}

// Package version provides build information for the versionsync binary.
//
// The variables are set at link time, for example:
//
//	go build -ldflags "-X github.com/macropower/versionsync/pkg/version.Version=1.0.0"
package version

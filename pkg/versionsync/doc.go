// Package versionsync checks and updates the version declared by every
// manifest of a repository.
//
// A [Synchronizer] works on a fixed list of [manifest.Entry] values relative
// to a repository root. [Synchronizer.Check] reads every manifest and groups
// them by version; [Synchronizer.Update] rewrites every manifest to one
// version. Files are processed one at a time in entry order, and the first
// failure stops the run.
package versionsync

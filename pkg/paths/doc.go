// Package paths locates the repository root that manifest paths are relative
// to.
package paths

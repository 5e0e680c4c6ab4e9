package syncerrors

import (
	"errors"
	"fmt"
)

var (
	// ErrWrite indicates an error occurred while writing.
	ErrWrite = errors.New("write")

	// ErrWriteFile indicates an error occurred while writing a file.
	ErrWriteFile = fmt.Errorf("file: %w", ErrWrite)

	// ErrReadFile indicates an error occurred while reading a file.
	ErrReadFile = errors.New("read file")

	// ErrFileNotFound indicates a file wasn't found in the specified path.
	ErrFileNotFound = errors.New("file not found")

	// ErrResolvedOutsideRepo indicates a path resolved outside of the
	// repository root.
	ErrResolvedOutsideRepo = errors.New("file resolved to outside repository root")

	// ErrVersionNotFound indicates no line of a manifest matched its pattern.
	ErrVersionNotFound = errors.New("could not determine version")

	// ErrInvalidPattern indicates a manifest pattern is missing the prefix,
	// version, or suffix capture group.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrUnknownFormat indicates a manifest format name has no built-in pattern.
	ErrUnknownFormat = errors.New("unknown manifest format")

	// ErrInvalidConfig indicates the manifest configuration file is invalid.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrInvalidArguments indicates invalid arguments were provided.
	ErrInvalidArguments = errors.New("invalid arguments")

	// ErrInconsistentVersions indicates the manifests declare more than one
	// version.
	ErrInconsistentVersions = errors.New("found inconsistent versions")
)

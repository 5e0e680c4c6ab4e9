package paths

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/macropower/versionsync/pkg/syncerrors"
)

// ResolveRoot returns the absolute repository root. An explicit root is used
// as given and must be a directory. Otherwise the root is the repository
// containing the working directory, see [FindRepoRoot].
func ResolveRoot(root string) (string, error) {
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}

		return FindRepoRoot(wd)
	}

	rootAbs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("get absolute path: %w", err)
	}

	fi, err := os.Stat(rootAbs)
	if err != nil {
		return "", fmt.Errorf("%w: %w", syncerrors.ErrFileNotFound, err)
	}

	if !fi.IsDir() {
		return "", fmt.Errorf("%s: %w: not a directory", rootAbs, syncerrors.ErrInvalidArguments)
	}

	return rootAbs, nil
}

// FindRepoRoot returns the innermost directory at or above path that holds
// a git checkout: a `.git` directory with a `HEAD` file, or a `.git` file as
// written for worktrees and submodules.
func FindRepoRoot(path string) (string, error) {
	dir, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("get absolute path: %w", err)
	}

	for {
		if isCheckout(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%s: no .git above %s: %w", path, dir, syncerrors.ErrFileNotFound)
		}

		dir = parent
	}
}

func isCheckout(dir string) bool {
	dotGit := filepath.Join(dir, ".git")

	fi, err := os.Stat(dotGit)
	if err != nil {
		return false
	}

	if !fi.IsDir() {
		return fi.Mode().IsRegular()
	}

	head, err := os.Stat(filepath.Join(dotGit, "HEAD"))

	return err == nil && head.Mode().IsRegular()
}

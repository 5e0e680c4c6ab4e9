package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/macropower/versionsync/cmd/versionsync/commands"
	"github.com/macropower/versionsync/pkg/syncerrors"
)

const (
	cmdName = "versionsync"

	shortDesc = "Keep manifest versions in accord."
	longDesc  = `Keep the version of every package manifest in a multi-language
repository in accord.

Without arguments, versionsync reads the version declared by each manifest
and exits non-zero, listing every version found, if they disagree.

With one argument, versionsync writes that version (without a leading "v")
into every manifest.
`
)

func main() {
	cmd := commands.NewRootCmd(cmdName, shortDesc, longDesc)

	if err := cmd.Execute(); err != nil {
		// The report has already been printed.
		if !errors.Is(err, syncerrors.ErrInconsistentVersions) {
			fmt.Fprintln(os.Stderr, strings.TrimLeft(err.Error(), "\n"))
		}

		os.Exit(1)
	}
}

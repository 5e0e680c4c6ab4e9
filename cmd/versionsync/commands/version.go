package commands

import (
	"github.com/spf13/cobra"

	"github.com/macropower/versionsync/pkg/version"
)

// NewVersionCmd returns the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version of the versionsync CLI",
		Args:  cobra.NoArgs,
		Run: func(cc *cobra.Command, _ []string) {
			cc.Println(version.String())
		},
	}
}

package cmd

import (
	"github.com/qri-io/ioes"
	"github.com/spf13/cobra"

	"github.com/agent-trust/registry/version"
)

// NewVersionCommand creates a new `atp version` command that prints the
// current version of the registry binary
func NewVersionCommand(ioStreams ioes.IOStreams) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Long:  `atp uses semantic versioning.`,
		Run: func(cmd *cobra.Command, args []string) {
			printInfo(ioStreams.Out, version.Summary())
		},
	}
}

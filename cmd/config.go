package cmd

import (
	"fmt"

	"github.com/qri-io/ioes"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/agent-trust/registry/config"
)

// NewConfigCommand creates a new `atp config` command for inspecting &
// bootstrapping configuration
func NewConfigCommand(f *RegistryOptions, ioStreams ioes.IOStreams) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or initialize registry configuration",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the active configuration as yaml",
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := f.Config()
			ExitIfErr(ioStreams.ErrOut, err)
			data, err := yaml.Marshal(cfg)
			ExitIfErr(ioStreams.ErrOut, err)
			fmt.Fprintf(ioStreams.Out, "%s", string(data))
		},
	}

	var initPath string
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Run: func(cmd *cobra.Command, args []string) {
			cfg := config.DefaultConfig()
			cfg.Registry.Path = f.RegistryPath
			ExitIfErr(ioStreams.ErrOut, cfg.WriteToFile(initPath))
			printSuccess(ioStreams.Out, "wrote default config to %s", initPath)
		},
	}
	initCmd.Flags().StringVarP(&initPath, "file", "f", "config.yaml", "where to write the config file")

	cmd.AddCommand(show, initCmd)
	return cmd
}

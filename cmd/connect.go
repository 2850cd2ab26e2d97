package cmd

import (
	"time"

	golog "github.com/ipfs/go-log"
	"github.com/qri-io/ioes"
	"github.com/spf13/cobra"

	"github.com/agent-trust/registry/api"
	"github.com/agent-trust/registry/config"
	"github.com/agent-trust/registry/registry"
)

// NewConnectCommand creates a new `atp connect` command that indexes the
// document directory & serves the JSON API, re-indexing periodically
func NewConnectCommand(f *RegistryOptions, ioStreams ioes.IOStreams) *cobra.Command {
	o := &ConnectOptions{IOStreams: ioStreams}
	cmd := &cobra.Command{
		Use:   "connect",
		Short: "Index the registry & serve its JSON API",
		Long: `connect builds the identity index, then starts an HTTP server & a background
refresh loop. Queries always read the most recently published index; a
refresh in progress never blocks or tears a response.`,
		Run: func(cmd *cobra.Command, args []string) {
			ExitIfErr(o.ErrOut, o.Complete(f))
			ExitIfErr(o.ErrOut, o.Run(f))
		},
	}

	return cmd
}

// ConnectOptions encapsulates state for the connect command
type ConnectOptions struct {
	ioes.IOStreams

	cfg *config.Config
}

// Complete adds any missing configuration that can only be added just before
// calling Run
func (o *ConnectOptions) Complete(f *RegistryOptions) (err error) {
	o.cfg, err = f.Config()
	return
}

// Run executes the connect command
func (o *ConnectOptions) Run(f *RegistryOptions) (err error) {
	applyLogLevels(o.cfg.Logging)

	printInfo(o.Out, "indexing identity documents in %s ...", o.cfg.Registry.Path)
	reg := registry.NewRegistry(o.cfg.Registry.Path)
	printSuccess(o.Out, "indexed %d identities", len(reg.Snapshot().Identities))

	if !o.cfg.API.Enabled {
		return nil
	}

	ctx := f.Context()
	go reg.RefreshEvery(ctx, time.Duration(o.cfg.Registry.RefreshMinutes)*time.Minute)

	printInfo(o.Out, "serving on port %d%s", o.cfg.API.Port, o.cfg.SummaryString())
	return api.New(reg, o.cfg).Serve(ctx)
}

func applyLogLevels(logging *config.Logging) {
	if logging == nil {
		return
	}
	for name, level := range logging.Levels {
		if name == "atpapi" {
			if err := api.SetLogLevel(level); err != nil {
				logger.Warnf("setting %s log level: %s", name, err)
			}
			continue
		}
		if err := golog.SetLogLevel(name, level); err != nil {
			logger.Warnf("setting %s log level: %s", name, err)
		}
	}
}

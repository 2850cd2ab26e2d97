package cmd

import (
	"context"
	"fmt"

	"github.com/qri-io/ioes"
	"github.com/spf13/cobra"

	"github.com/agent-trust/registry/config"
	"github.com/agent-trust/registry/registry"
)

// NewRegistryCommand represents the base command when called without any
// subcommands
func NewRegistryCommand(ctx context.Context, ioStreams ioes.IOStreams) *cobra.Command {
	o := NewRegistryOptions(ctx, ioStreams)
	cmd := &cobra.Command{
		Use:   "atp",
		Short: "atp identity registry CLI",
		Long: `atp indexes agent identity documents anchored off a public ledger and serves
lookup & search over them, as a long-running JSON API ('atp connect') or as
one-shot queries against a local document directory.`,
	}

	cmd.PersistentFlags().StringVar(&o.RegistryPath, "registry", StandardRegistryPath(), "path to the identity document directory")
	cmd.PersistentFlags().StringVar(&o.ConfigPath, "config", "", "path to a registry configuration file")
	cmd.PersistentFlags().BoolVarP(&o.NoColor, "no-color", "", false, "disable colorized output")

	cmd.AddCommand(
		NewConnectCommand(o, ioStreams),
		NewListCommand(o, ioStreams),
		NewLookupCommand(o, ioStreams),
		NewSearchCommand(o, ioStreams),
		NewStatsCommand(o, ioStreams),
		NewConfigCommand(o, ioStreams),
		NewVersionCommand(ioStreams),
	)

	return cmd
}

// RegistryOptions holds the root command state
type RegistryOptions struct {
	ioes.IOStreams

	ctx context.Context

	// RegistryPath is the identity document directory
	RegistryPath string
	// ConfigPath is an optional configuration file
	ConfigPath string
	// NoColor disables colorized output
	NoColor bool

	cfg *config.Config
}

// NewRegistryOptions creates an options object
func NewRegistryOptions(ctx context.Context, ioStreams ioes.IOStreams) *RegistryOptions {
	return &RegistryOptions{
		IOStreams: ioStreams,
		ctx:       ctx,
	}
}

// Context returns the root context
func (o *RegistryOptions) Context() context.Context {
	return o.ctx
}

// Config loads the configuration file if one was given, falling back to
// defaults. The loaded config is cached for subsequent calls
func (o *RegistryOptions) Config() (*config.Config, error) {
	if o.cfg != nil {
		return o.cfg, nil
	}

	setNoColor(o.NoColor)

	if o.ConfigPath == "" {
		cfg := config.DefaultConfig()
		cfg.Registry.Path = o.RegistryPath
		o.cfg = cfg
		return o.cfg, nil
	}

	cfg, err := config.ReadFromFile(o.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("reading config from %s: %s", o.ConfigPath, err)
	}
	// sections left out of the file get defaults
	if cfg.Registry == nil {
		cfg.Registry = config.DefaultRegistry()
	}
	if cfg.API == nil {
		cfg.API = config.DefaultAPI()
	}
	if cfg.Logging == nil {
		cfg.Logging = config.DefaultLogging()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %s", o.ConfigPath, err)
	}
	if cfg.Registry.Path == "" {
		cfg.Registry.Path = o.RegistryPath
	}
	o.cfg = cfg
	return o.cfg, nil
}

// Registry builds an indexed registry from the configured document
// directory, synchronously
func (o *RegistryOptions) Registry() (*registry.Registry, error) {
	cfg, err := o.Config()
	if err != nil {
		return nil, err
	}
	return registry.NewRegistry(cfg.Registry.Path), nil
}

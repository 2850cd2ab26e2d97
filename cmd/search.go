package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/qri-io/ioes"
	"github.com/spf13/cobra"

	"github.com/agent-trust/registry/registry"
)

// NewSearchCommand creates a new `atp search` command that searches the
// registry
func NewSearchCommand(f *RegistryOptions, ioStreams ioes.IOStreams) *cobra.Command {
	o := &SearchOptions{IOStreams: ioStreams}
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search the registry",
		Long:  `Search identities whose name, description, platform handles or gpg fingerprint contain the query`,
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ExitIfErr(o.ErrOut, o.Complete(f, args))
			ExitIfErr(o.ErrOut, o.Run())
		},
	}

	cmd.Flags().IntVarP(&o.Limit, "limit", "l", 0, "max results to return")
	cmd.Flags().StringVarP(&o.Format, "format", "f", "", "set output format [json]")

	return cmd
}

// SearchOptions encapsulates state for the search command
type SearchOptions struct {
	ioes.IOStreams

	Query  string
	Limit  int
	Format string

	Registry *registry.Registry
}

// Complete adds any missing configuration that can only be added just before
// calling Run
func (o *SearchOptions) Complete(f *RegistryOptions, args []string) (err error) {
	o.Query = args[0]
	o.Registry, err = f.Registry()
	return
}

// Run executes the search command
func (o *SearchOptions) Run() (err error) {
	results, err := o.Registry.Snapshot().Search(o.Query, o.Limit)
	if err != nil {
		return err
	}

	switch o.Format {
	case "":
		if len(results) == 0 {
			printWarning(o.Out, "no identities match %q", o.Query)
			return nil
		}
		for i, s := range results {
			printSummary(o.Out, i, s)
		}
	case "json":
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintf(o.Out, "%s\n", string(data))
	default:
		return fmt.Errorf("unrecognized format: %s", o.Format)
	}

	return nil
}

package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/qri-io/ioes"
	"github.com/spf13/cobra"

	"github.com/agent-trust/registry/registry"
)

// NewListCommand creates a new `atp list` command that pages through
// registry identities
func NewListCommand(f *RegistryOptions, ioStreams ioes.IOStreams) *cobra.Command {
	o := &ListOptions{IOStreams: ioStreams}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List identities in the registry",
		Run: func(cmd *cobra.Command, args []string) {
			ExitIfErr(o.ErrOut, o.Complete(f))
			ExitIfErr(o.ErrOut, o.Run())
		},
	}

	cmd.Flags().IntVarP(&o.Limit, "limit", "l", 0, "max identities to list")
	cmd.Flags().IntVarP(&o.Offset, "offset", "o", 0, "number of identities to skip")
	cmd.Flags().StringVarP(&o.Format, "format", "f", "", "set output format [json]")

	return cmd
}

// ListOptions encapsulates state for the list command
type ListOptions struct {
	ioes.IOStreams

	Limit  int
	Offset int
	Format string

	Registry *registry.Registry
}

// Complete adds any missing configuration that can only be added just before
// calling Run
func (o *ListOptions) Complete(f *RegistryOptions) (err error) {
	o.Registry, err = f.Registry()
	return
}

// Run executes the list command
func (o *ListOptions) Run() (err error) {
	total, page := o.Registry.Snapshot().List(o.Limit, o.Offset)

	switch o.Format {
	case "":
		for i, s := range page {
			printSummary(o.Out, o.Offset+i, s)
		}
		printInfo(o.Out, "showing %d of %d identities", len(page), total)
	case "json":
		data, err := json.MarshalIndent(page, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintf(o.Out, "%s\n", string(data))
	default:
		return fmt.Errorf("unrecognized format: %s", o.Format)
	}

	return nil
}

package cmd

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/qri-io/ioes"
	"github.com/spf13/cobra"

	"github.com/agent-trust/registry/registry"
)

// NewStatsCommand creates a new `atp stats` command reporting aggregate
// registry counts
func NewStatsCommand(f *RegistryOptions, ioStreams ioes.IOStreams) *cobra.Command {
	o := &StatsOptions{IOStreams: ioStreams}
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print aggregate registry counts",
		Run: func(cmd *cobra.Command, args []string) {
			ExitIfErr(o.ErrOut, o.Complete(f))
			ExitIfErr(o.ErrOut, o.Run())
		},
	}

	cmd.Flags().StringVarP(&o.Format, "format", "f", "", "set output format [json]")

	return cmd
}

// StatsOptions encapsulates state for the stats command
type StatsOptions struct {
	ioes.IOStreams

	Format string

	Registry *registry.Registry
}

// Complete adds any missing configuration that can only be added just before
// calling Run
func (o *StatsOptions) Complete(f *RegistryOptions) (err error) {
	o.Registry, err = f.Registry()
	return
}

// Run executes the stats command
func (o *StatsOptions) Run() (err error) {
	stats := o.Registry.Snapshot().Stats()

	switch o.Format {
	case "":
		printSuccess(o.Out, "%d identities", stats.TotalIdentities)
		printCounts(o, "platforms", stats.Platforms)
		printCounts(o, "chains", stats.Chains)
	case "json":
		data, err := json.MarshalIndent(stats, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintf(o.Out, "%s\n", string(data))
	default:
		return fmt.Errorf("unrecognized format: %s", o.Format)
	}

	return nil
}

func printCounts(o *StatsOptions, label string, counts map[string]int) {
	if len(counts) == 0 {
		return
	}
	printInfo(o.Out, "%s:", label)
	keys := make([]string, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		printInfo(o.Out, "  %s: %d", key, counts[key])
	}
}

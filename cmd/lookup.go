package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/qri-io/ioes"
	"github.com/spf13/cobra"

	"github.com/agent-trust/registry/identity"
	"github.com/agent-trust/registry/registry"
)

// NewLookupCommand creates a new `atp lookup` command for point lookups by
// any indexed key
func NewLookupCommand(f *RegistryOptions, ioStreams ioes.IOStreams) *cobra.Command {
	o := &LookupOptions{IOStreams: ioStreams}
	cmd := &cobra.Command{
		Use:   "lookup",
		Short: "Look up one identity by an indexed key",
		Long: `lookup resolves a single identity & prints its full record.

Keys:
  fingerprint <fingerprint>     full gpg fingerprint, or its last 16 or 8 chars
  name <name>                   exact display name (case-insensitive)
  platform <platform> <handle>  handle on a platform, e.g. twitter Shrike_Bot
  wallet <address>              wallet address on any chain`,
		Example: `  $ atp lookup fingerprint DEADBEEF00112233
  $ atp lookup platform twitter Shrike_Bot`,
		Args: cobra.MinimumNArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			ExitIfErr(o.ErrOut, o.Complete(f, args))
			ExitIfErr(o.ErrOut, o.Run())
		},
	}

	return cmd
}

// LookupOptions encapsulates state for the lookup command
type LookupOptions struct {
	ioes.IOStreams

	Kind string
	Args []string

	Registry *registry.Registry
}

// Complete adds any missing configuration that can only be added just before
// calling Run
func (o *LookupOptions) Complete(f *RegistryOptions, args []string) (err error) {
	o.Kind = args[0]
	o.Args = args[1:]
	o.Registry, err = f.Registry()
	return
}

// Run executes the lookup command
func (o *LookupOptions) Run() error {
	snap := o.Registry.Snapshot()

	var (
		id  *identity.Identity
		err error
	)
	switch o.Kind {
	case "fingerprint":
		id, err = snap.ByFingerprint(o.Args[0])
	case "name":
		id, err = snap.ByName(o.Args[0])
	case "platform":
		if len(o.Args) < 2 {
			return fmt.Errorf("platform lookups require a platform & a handle")
		}
		id, err = snap.ByPlatform(o.Args[0], o.Args[1])
	case "wallet":
		id, err = snap.ByWallet(o.Args[0])
	default:
		return fmt.Errorf("unrecognized lookup key %q, want one of [fingerprint, name, platform, wallet]", o.Kind)
	}
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(id, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintf(o.Out, "%s\n", string(data))
	return nil
}

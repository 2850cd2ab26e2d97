/*
Package registry indexes agent identity documents & serves lookups over them.

A registry owns a directory of identity documents anchored off a public
ledger. The whole document set is small enough to hold in memory, so rather
than maintaining indexes incrementally the registry rebuilds everything
wholesale: each load cycle reads every document, normalizes it, and derives
four lookup maps (fingerprint incl. short forms, name, platform handle,
wallet address) into one immutable Snapshot.

The current Snapshot is published through a single atomic reference. Query
operations load that reference once and run against it unlocked; a rebuild
in progress is invisible until its final swap, so readers always observe one
whole snapshot, never a mix of two.
*/
package registry

import (
	"context"
	"sync/atomic"
	"time"

	golog "github.com/ipfs/go-log"
)

var log = golog.Logger("registry")

// DefaultRefreshInterval is how often the document directory is re-read when
// no interval is configured
const DefaultRefreshInterval = time.Minute * 5

// Registry is the process-wide cell holding the currently published Snapshot.
// It is the only writer of the snapshot reference; any number of readers may
// call Snapshot concurrently
type Registry struct {
	path    string
	current atomic.Value // *Snapshot
}

// NewRegistry creates a registry over a document directory, synchronously
// building the first snapshot so the registry is queryable on return
func NewRegistry(path string) *Registry {
	r := &Registry{path: path}
	r.Refresh()
	return r
}

// Path returns the document directory this registry reads from
func (r *Registry) Path() string {
	return r.path
}

// Snapshot returns the currently published snapshot. The returned value is
// immutable & safe to read for as long as the caller holds it
func (r *Registry) Snapshot() *Snapshot {
	return r.current.Load().(*Snapshot)
}

// Refresh rebuilds the snapshot wholesale from the document directory and
// publishes the result. Rebuild problems degrade to an empty or sparser
// snapshot rather than failing: a live registry with no documents is a valid
// state
func (r *Registry) Refresh() {
	snap := BuildSnapshot(r.path)
	r.current.Store(snap)
	log.Debugf("published snapshot of %d identities from %s", len(snap.Identities), r.path)
}

// RefreshEvery rebuilds the snapshot on a fixed interval until ctx is
// cancelled. It blocks, callers normally run it in a goroutine
func (r *Registry) RefreshEvery(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-t.C:
			r.Refresh()
		case <-ctx.Done():
			log.Debug("refresh loop stopped")
			return
		}
	}
}

package registry

import (
	"fmt"
	"strings"
)

var (
	// ErrNotFound represents a missing record. Lookup errors wrap it and name
	// the key that was searched for
	ErrNotFound = fmt.Errorf("not found")
	// ErrInvalidQuery rejects search queries too short to be meaningful
	ErrInvalidQuery = fmt.Errorf("search queries must be at least 2 characters")
)

// UnknownPlatformError distinguishes "this platform isn't indexed at all"
// from a missing handle under a known platform, and carries the set of
// known platform keys so callers can surface them
type UnknownPlatformError struct {
	Platform string
	Known    []string
}

func (e UnknownPlatformError) Error() string {
	if len(e.Known) == 0 {
		return fmt.Sprintf("unknown platform %q: no platforms indexed", e.Platform)
	}
	return fmt.Sprintf("unknown platform %q: known platforms are %s", e.Platform, strings.Join(e.Known, ", "))
}

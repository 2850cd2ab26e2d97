package registry

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agent-trust/registry/identity"
)

const (
	// DefaultListLimit is the page size used when none is requested
	DefaultListLimit = 100
	// MaxListLimit caps requested page sizes
	MaxListLimit = 1000
	// DefaultSearchLimit is the search result cap used when none is requested
	DefaultSearchLimit = 20
	// MaxSearchLimit caps requested search result counts
	MaxSearchLimit = 100
	// MinQueryLength is the shortest accepted search query
	MinQueryLength = 2
)

func clampLimit(limit, def, max int) int {
	if limit <= 0 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}

// List returns one page of summarized identities in snapshot order, plus the
// unclamped total count. Out-of-range offsets yield an empty page, not an
// error
func (s *Snapshot) List(limit, offset int) (total int, page []*identity.Summary) {
	limit = clampLimit(limit, DefaultListLimit, MaxListLimit)
	if offset < 0 {
		offset = 0
	}

	total = len(s.Identities)
	page = []*identity.Summary{}
	if offset >= total {
		return total, page
	}
	end := offset + limit
	if end > total {
		end = total
	}
	for _, id := range s.Identities[offset:end] {
		page = append(page, id.Summarize())
	}
	return total, page
}

// ByFingerprint finds an identity by gpg fingerprint. Full fingerprints and
// 16- or 8-character short forms are accepted transparently, matching is
// case-insensitive
func (s *Snapshot) ByFingerprint(key string) (*identity.Identity, error) {
	if id, ok := s.byFingerprint[strings.ToLower(key)]; ok {
		return id, nil
	}
	return nil, fmt.Errorf("no identity with fingerprint %q: %w", key, ErrNotFound)
}

// ByName finds an identity by exact case-insensitive display name. No
// partial matching: that's what Search is for
func (s *Snapshot) ByName(name string) (*identity.Identity, error) {
	if id, ok := s.byName[strings.ToLower(name)]; ok {
		return id, nil
	}
	return nil, fmt.Errorf("no identity named %q: %w", name, ErrNotFound)
}

// ByPlatform finds an identity by platform handle. Asking for a platform the
// snapshot has never seen returns an UnknownPlatformError naming the known
// platforms, distinct from a missing handle under a known platform
func (s *Snapshot) ByPlatform(platform, handle string) (*identity.Identity, error) {
	handles, ok := s.byPlatform[strings.ToLower(platform)]
	if !ok {
		return nil, UnknownPlatformError{Platform: platform, Known: s.Platforms()}
	}
	if id, ok := handles[strings.ToLower(handle)]; ok {
		return id, nil
	}
	return nil, fmt.Errorf("no identity with %s handle %q: %w", platform, handle, ErrNotFound)
}

// ByWallet finds an identity by wallet address on any chain,
// case-insensitively
func (s *Snapshot) ByWallet(address string) (*identity.Identity, error) {
	if id, ok := s.byWallet[strings.ToLower(address)]; ok {
		return id, nil
	}
	return nil, fmt.Errorf("no identity with wallet address %q: %w", address, ErrNotFound)
}

// Platforms lists the platform keys known to this snapshot, sorted
func (s *Snapshot) Platforms() []string {
	platforms := make([]string, 0, len(s.byPlatform))
	for platform := range s.byPlatform {
		platforms = append(platforms, platform)
	}
	sort.Strings(platforms)
	return platforms
}

// Search performs case-insensitive substring matching against name,
// description, platform handles & gpg fingerprint. An identity matches if
// any one of those fields contains the query. Results keep snapshot order,
// they are not ranked
func (s *Snapshot) Search(query string, limit int) ([]*identity.Summary, error) {
	if len(query) < MinQueryLength {
		return nil, ErrInvalidQuery
	}
	limit = clampLimit(limit, DefaultSearchLimit, MaxSearchLimit)

	q := strings.ToLower(query)
	results := []*identity.Summary{}
	for _, id := range s.Identities {
		if len(results) == limit {
			break
		}
		if matches(id, q) {
			results = append(results, id.Summarize())
		}
	}
	return results, nil
}

func matches(id *identity.Identity, q string) bool {
	if strings.Contains(strings.ToLower(id.Name), q) {
		return true
	}
	if strings.Contains(strings.ToLower(id.Description), q) {
		return true
	}
	for _, handle := range id.Platforms {
		if strings.Contains(strings.ToLower(handle), q) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(id.GPGFingerprint), q)
}

package registry

import "strings"

// Stats aggregates counts over one snapshot
type Stats struct {
	TotalIdentities int `json:"totalIdentities"`
	// Platforms counts, per platform key, how many identities declare a
	// handle there
	Platforms map[string]int `json:"platforms"`
	// Chains counts, per chain key, how many identities hold a non-empty
	// address on that chain
	Chains map[string]int `json:"chains"`
}

// Stats computes aggregate counts for a snapshot
func (s *Snapshot) Stats() *Stats {
	stats := &Stats{
		TotalIdentities: len(s.Identities),
		Platforms:       map[string]int{},
		Chains:          map[string]int{},
	}
	// keys fold to lowercase to match the index buckets
	for _, id := range s.Identities {
		for platform := range id.Platforms {
			stats.Platforms[strings.ToLower(platform)]++
		}
		for chain, addr := range id.Wallets {
			// declared-but-empty addresses don't count
			if addr != "" {
				stats.Chains[strings.ToLower(chain)]++
			}
		}
	}
	return stats
}

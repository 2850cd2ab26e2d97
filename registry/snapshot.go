package registry

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/agent-trust/registry/identity"
)

// documentExt is the one recognized identity document extension
const documentExt = ".json"

// Snapshot is an immutable, fully-indexed view of every identity in the
// registry as of one load cycle. Identities holds records in document read
// order (lexicographic by filename); the lookup maps are derived from it in
// that same order, so key collisions resolve last-writer-wins
// deterministically
type Snapshot struct {
	Identities []*identity.Identity

	byFingerprint map[string]*identity.Identity
	byName        map[string]*identity.Identity
	byPlatform    map[string]map[string]*identity.Identity
	byWallet      map[string]*identity.Identity
}

func newSnapshot() *Snapshot {
	return &Snapshot{
		byFingerprint: map[string]*identity.Identity{},
		byName:        map[string]*identity.Identity{},
		byPlatform:    map[string]map[string]*identity.Identity{},
		byWallet:      map[string]*identity.Identity{},
	}
}

// BuildSnapshot reads every recognized document in dir (non-recursive) into
// a fully-indexed Snapshot. A missing directory yields an empty snapshot: a
// registry that isn't mounted yet is live, just empty. A document that fails
// to parse is skipped & logged, it never aborts the load
func BuildSnapshot(dir string) *Snapshot {
	snap := newSnapshot()

	infos, err := ioutil.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			log.Infof("document directory %s doesn't exist, serving an empty registry", dir)
		} else {
			log.Errorf("reading document directory %s: %s", dir, err)
		}
		return snap
	}

	for _, fi := range infos {
		if fi.IsDir() || filepath.Ext(fi.Name()) != documentExt {
			continue
		}
		path := filepath.Join(dir, fi.Name())
		data, err := ioutil.ReadFile(path)
		if err != nil {
			log.Errorf("reading %s: %s", path, err)
			continue
		}
		id, err := identity.Decode(data)
		if err != nil {
			log.Errorf("skipping malformed document %s: %s", path, err)
			continue
		}
		snap.add(id)
	}

	return snap
}

// add appends an identity and indexes it. later additions overwrite earlier
// ones on key collision
func (s *Snapshot) add(id *identity.Identity) {
	s.Identities = append(s.Identities, id)

	if fp := strings.ToLower(id.GPGFingerprint); fp != "" {
		s.byFingerprint[fp] = id
		// short forms share one namespace with full fingerprints. two
		// identities whose fingerprints share a suffix leave only the
		// later one reachable by that short form
		if len(fp) > 16 {
			s.byFingerprint[fp[len(fp)-16:]] = id
		}
		if len(fp) > 8 {
			s.byFingerprint[fp[len(fp)-8:]] = id
		}
	}

	if name := strings.ToLower(id.Name); name != "" {
		s.byName[name] = id
	}

	for platform, handle := range id.Platforms {
		platform = strings.ToLower(platform)
		if s.byPlatform[platform] == nil {
			s.byPlatform[platform] = map[string]*identity.Identity{}
		}
		// a declared platform with an empty handle still registers the
		// platform key, it's just unreachable by handle
		if handle != "" {
			s.byPlatform[platform][strings.ToLower(handle)] = id
		}
	}

	// wallet addresses merge across chains into one namespace
	for _, addr := range id.Wallets {
		if addr == "" {
			continue
		}
		s.byWallet[strings.ToLower(addr)] = id
	}
}

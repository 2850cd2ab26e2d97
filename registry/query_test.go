package registry

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func threeIdentityDir(t *testing.T) string {
	t.Helper()
	return writeDocs(t, map[string]string{
		"a.json": `{"name":"Shrike_Bot","description":"autonomous courier","gpgFingerprint":"ABCDEF0123456789DEADBEEF00112233","platforms":{"twitter":"Shrike_Bot","github":"shrike"},"wallets":{"btc":"1ShrikeBTC","eth":"0xShrikeETH"}}`,
		"b.json": `{"name":"Warden","description":"escrow agent","platforms":{"twitter":"warden_ai"},"wallets":{"btc":""}}`,
		"c.json": `{"description":"unnamed decentralized observer","platforms":{"matrix":""}}`,
	})
}

func TestList(t *testing.T) {
	snap := BuildSnapshot(threeIdentityDir(t))

	cases := []struct {
		description   string
		limit, offset int
		total, count  int
	}{
		{"limit larger than set returns everything", 5, 0, 3, 3},
		{"offset past the end returns an empty page", 5, 10, 3, 0},
		{"zero limit falls back to the default", 0, 0, 3, 3},
		{"negative offset clamps to zero", 5, -3, 3, 3},
		{"limit one pages", 1, 1, 3, 1},
		{"limit beyond the cap still lists", 5000, 0, 3, 3},
	}

	for i, c := range cases {
		total, page := snap.List(c.limit, c.offset)
		if total != c.total {
			t.Errorf("case %d %s total mismatch. expected: %d, got: %d", i, c.description, c.total, total)
		}
		if len(page) != c.count {
			t.Errorf("case %d %s page length mismatch. expected: %d, got: %d", i, c.description, c.count, len(page))
		}
	}

	// pages are summarized, not full records
	_, page := snap.List(1, 0)
	if page[0].Name != "Shrike_Bot" {
		t.Errorf("first page entry mismatch. expected: Shrike_Bot, got: %s", page[0].Name)
	}
}

func TestPointLookups(t *testing.T) {
	snap := BuildSnapshot(threeIdentityDir(t))

	if _, err := snap.ByName("shrike_bot"); err != nil {
		t.Errorf("unexpected error for case-insensitive name: %s", err)
	}
	if _, err := snap.ByFingerprint("DEADBEEF00112233"); err != nil {
		t.Errorf("unexpected error for 16-char short form: %s", err)
	}
	if _, err := snap.ByWallet("0xshrikeeth"); err != nil {
		t.Errorf("unexpected error for case-insensitive wallet: %s", err)
	}
	if _, err := snap.ByPlatform("TWITTER", "WARDEN_AI"); err != nil {
		t.Errorf("unexpected error for case-insensitive platform handle: %s", err)
	}

	if _, err := snap.ByName("nobody"); !errors.Is(err, ErrNotFound) {
		t.Errorf("error mismatch. expected ErrNotFound, got: %v", err)
	} else if !strings.Contains(err.Error(), "nobody") {
		t.Errorf("not-found error should name the key searched, got: %s", err)
	}
	if _, err := snap.ByWallet("1Unknown"); !errors.Is(err, ErrNotFound) {
		t.Errorf("error mismatch. expected ErrNotFound, got: %v", err)
	}
	if _, err := snap.ByFingerprint("FFFFFFFF"); !errors.Is(err, ErrNotFound) {
		t.Errorf("error mismatch. expected ErrNotFound, got: %v", err)
	}
}

func TestByPlatformDistinguishesUnknownPlatform(t *testing.T) {
	snap := BuildSnapshot(threeIdentityDir(t))

	// missing handle under a known platform is a plain not-found
	if _, err := snap.ByPlatform("twitter", "nobody"); !errors.Is(err, ErrNotFound) {
		t.Errorf("error mismatch. expected ErrNotFound, got: %v", err)
	}

	// unknown platform is a distinct condition carrying the known set
	_, err := snap.ByPlatform("myspace", "nobody")
	var upe UnknownPlatformError
	if !errors.As(err, &upe) {
		t.Fatalf("error mismatch. expected UnknownPlatformError, got: %v", err)
	}
	if diff := cmp.Diff([]string{"github", "matrix", "twitter"}, upe.Known); diff != "" {
		t.Errorf("known platforms mismatch (-want +got):\n%s", diff)
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("UnknownPlatformError must not satisfy ErrNotFound")
	}
}

func TestSearch(t *testing.T) {
	snap := BuildSnapshot(threeIdentityDir(t))

	cases := []struct {
		description string
		query       string
		names       []string
	}{
		{"matches name case-insensitively", "shrike", []string{"Shrike_Bot"}},
		{"matches platform handles", "warden_ai", []string{"Warden"}},
		{"matches descriptions", "agent", []string{"Warden"}},
		{"matches fingerprints", "deadbeef", []string{"Shrike_Bot"}},
		{"matches nameless identities by description", "observer", []string{""}},
		// "de" hits a different field per identity: fingerprint (deadbeef),
		// name (Warden), description (decentralized)
		{"union across fields, snapshot order", "de", []string{"Shrike_Bot", "Warden", ""}},
		{"no matches is a success", "zzzzz", []string{}},
	}

	for i, c := range cases {
		results, err := snap.Search(c.query, 0)
		if err != nil {
			t.Errorf("case %d %s unexpected error: %s", i, c.description, err)
			continue
		}
		names := []string{}
		for _, r := range results {
			names = append(names, r.Name)
		}
		if diff := cmp.Diff(c.names, names); diff != "" {
			t.Errorf("case %d %s result mismatch (-want +got):\n%s", i, c.description, diff)
		}
	}
}

func TestSearchInvalidQuery(t *testing.T) {
	snap := BuildSnapshot(threeIdentityDir(t))

	for i, q := range []string{"", "a"} {
		if _, err := snap.Search(q, 0); !errors.Is(err, ErrInvalidQuery) {
			t.Errorf("case %d error mismatch. expected ErrInvalidQuery, got: %v", i, err)
		}
	}
}

func TestSearchLimit(t *testing.T) {
	snap := BuildSnapshot(threeIdentityDir(t))

	results, err := snap.Search("de", 2)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(results) != 2 {
		t.Errorf("result count mismatch. expected: 2, got: %d", len(results))
	}
}

func TestStats(t *testing.T) {
	snap := BuildSnapshot(threeIdentityDir(t))

	expect := &Stats{
		TotalIdentities: 3,
		Platforms:       map[string]int{"twitter": 2, "github": 1, "matrix": 1},
		// b.json declares btc with an empty address, which doesn't count
		Chains: map[string]int{"btc": 1, "eth": 1},
	}
	if diff := cmp.Diff(expect, snap.Stats()); diff != "" {
		t.Errorf("stats mismatch (-want +got):\n%s", diff)
	}
}

func TestStatsFoldsKeyCase(t *testing.T) {
	dir := writeDocs(t, map[string]string{
		"a.json": `{"name":"a","platforms":{"Twitter":"a_bot"},"wallets":{"BTC":"1abc"}}`,
		"b.json": `{"name":"b","platforms":{"twitter":"b_bot"},"wallets":{"btc":"1def"}}`,
	})
	snap := BuildSnapshot(dir)

	expect := &Stats{
		TotalIdentities: 2,
		Platforms:       map[string]int{"twitter": 2},
		Chains:          map[string]int{"btc": 2},
	}
	if diff := cmp.Diff(expect, snap.Stats()); diff != "" {
		t.Errorf("stats mismatch (-want +got):\n%s", diff)
	}
}

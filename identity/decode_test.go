package identity

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecodeFieldResolution(t *testing.T) {
	cases := []struct {
		description string
		data        string
		expect      *Identity
	}{
		{"empty document gets defaults",
			`{}`,
			&Identity{ATP: "0.4", Type: "identity", Platforms: map[string]string{}, Wallets: map[string]string{}, BindingProofs: []json.RawMessage{}}},
		{"declared atp & type are kept",
			`{"atp":"0.3","type":"agent"}`,
			&Identity{ATP: "0.3", Type: "agent", Platforms: map[string]string{}, Wallets: map[string]string{}, BindingProofs: []json.RawMessage{}}},
		{"nested gpg object wins over flat fields",
			`{"gpg":{"fingerprint":"ABCDEF","keyserver":"hkps://keys.example.com"},"gpgFingerprint":"IGNORED","gpgKeyserver":"ignored"}`,
			&Identity{ATP: "0.4", Type: "identity", GPGFingerprint: "ABCDEF", GPGKeyserver: "hkps://keys.example.com", Platforms: map[string]string{}, Wallets: map[string]string{}, BindingProofs: []json.RawMessage{}}},
		{"flat gpg fields used when no nested object",
			`{"gpgFingerprint":"ABCDEF","gpgKeyserver":"hkps://keys.example.com"}`,
			&Identity{ATP: "0.4", Type: "identity", GPGFingerprint: "ABCDEF", GPGKeyserver: "hkps://keys.example.com", Platforms: map[string]string{}, Wallets: map[string]string{}, BindingProofs: []json.RawMessage{}}},
		{"single wallet address synthesizes a btc entry",
			`{"wallet":{"address":"1A2B"}}`,
			&Identity{ATP: "0.4", Type: "identity", Platforms: map[string]string{}, Wallets: map[string]string{"btc": "1A2B"}, BindingProofs: []json.RawMessage{}}},
		{"wallets map used when no structured wallet",
			`{"wallets":{"btc":"1A2B","eth":"0xCAFE"}}`,
			&Identity{ATP: "0.4", Type: "identity", Platforms: map[string]string{}, Wallets: map[string]string{"btc": "1A2B", "eth": "0xCAFE"}, BindingProofs: []json.RawMessage{}}},
		{"structured wallet proof wins over flat walletProof",
			`{"wallet":{"address":"1A2B","proof":{"sig":"aa"}},"walletProof":"ignored"}`,
			&Identity{ATP: "0.4", Type: "identity", Platforms: map[string]string{}, Wallets: map[string]string{"btc": "1A2B"}, WalletProof: json.RawMessage(`{"sig":"aa"}`), BindingProofs: []json.RawMessage{}}},
		{"snake_case binding proofs win over camelCase",
			`{"binding_proofs":[{"a":1}],"bindingProofs":[{"b":2}]}`,
			&Identity{ATP: "0.4", Type: "identity", Platforms: map[string]string{}, Wallets: map[string]string{}, BindingProofs: []json.RawMessage{json.RawMessage(`{"a":1}`)}}},
		{"camelCase binding proofs used as fallback",
			`{"bindingProofs":[{"b":2}]}`,
			&Identity{ATP: "0.4", Type: "identity", Platforms: map[string]string{}, Wallets: map[string]string{}, BindingProofs: []json.RawMessage{json.RawMessage(`{"b":2}`)}}},
		{"snake_case proof of existence used as fallback",
			`{"proof_of_existence":{"txid":"f00","network":"btc"}}`,
			&Identity{ATP: "0.4", Type: "identity", Platforms: map[string]string{}, Wallets: map[string]string{}, BindingProofs: []json.RawMessage{}, ProofOfExistence: json.RawMessage(`{"txid":"f00","network":"btc"}`)}},
		{"wrongly typed fields degrade to absent",
			`{"name":42,"platforms":"not-a-map","gpgFingerprint":"ABCDEF"}`,
			&Identity{ATP: "0.4", Type: "identity", GPGFingerprint: "ABCDEF", Platforms: map[string]string{}, Wallets: map[string]string{}, BindingProofs: []json.RawMessage{}}},
	}

	for i, c := range cases {
		got, err := Decode([]byte(c.data))
		if err != nil {
			t.Errorf("case %d %s unexpected error: %s", i, c.description, err)
			continue
		}
		if diff := cmp.Diff(c.expect, got); diff != "" {
			t.Errorf("case %d %s result mismatch (-want +got):\n%s", i, c.description, diff)
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	cases := []string{
		`{"name":`,
		`not json at all`,
		``,
	}

	for i, data := range cases {
		if _, err := Decode([]byte(data)); err == nil {
			t.Errorf("case %d expected error decoding %q, got nil", i, data)
		}
	}
}

func TestDecodeEquivalentForms(t *testing.T) {
	nested, err := Decode([]byte(`{"gpg":{"fingerprint":"ABC"}}`))
	if err != nil {
		t.Fatal(err)
	}
	flat, err := Decode([]byte(`{"gpgFingerprint":"ABC"}`))
	if err != nil {
		t.Fatal(err)
	}
	if nested.GPGFingerprint != flat.GPGFingerprint {
		t.Errorf("fingerprint mismatch between forms. nested: %s, flat: %s", nested.GPGFingerprint, flat.GPGFingerprint)
	}
}

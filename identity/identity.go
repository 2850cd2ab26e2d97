// Package identity defines the canonical shape of an agent identity record
// and the decoder that maps historical document formats onto it.
//
// Identity documents have been published in two schema generations: an older
// flat form (gpgFingerprint, walletProof, ...) and a newer form that groups
// key & wallet details into nested gpg / wallet objects. Both generations
// remain valid registry documents, so decoding resolves each field from
// whichever form is present rather than requiring a migration step.
package identity

import "encoding/json"

const (
	// DefaultATPVersion is assumed for documents that don't declare a
	// protocol version
	DefaultATPVersion = "0.4"
	// DefaultType is assumed for documents that don't declare a record kind
	DefaultType = "identity"
)

// Identity is a single agent identity record in canonical form. No field is
// required: a record missing a name or fingerprint is still indexed, it's
// just unreachable by that key
type Identity struct {
	ATP            string `json:"atp"`
	Type           string `json:"type"`
	Name           string `json:"name,omitempty"`
	Description    string `json:"description,omitempty"`
	GPGFingerprint string `json:"gpgFingerprint,omitempty"`
	GPGKeyserver   string `json:"gpgKeyserver,omitempty"`
	// Platforms maps platform names (twitter, github, ...) to handles
	Platforms map[string]string `json:"platforms"`
	// Wallets maps chain names to addresses
	Wallets map[string]string `json:"wallets"`

	// proof material is carried through verbatim. the registry stores &
	// returns these fields but never interprets them
	WalletProof      json.RawMessage   `json:"walletProof,omitempty"`
	BindingProofs    []json.RawMessage `json:"bindingProofs"`
	ProofOfExistence json.RawMessage   `json:"proofOfExistence,omitempty"`
	Created          int64             `json:"created,omitempty"`
	Signature        json.RawMessage   `json:"signature,omitempty"`
}

package identity

import (
	"encoding/json"
	"errors"
)

// rawRecord carries every field either document generation can declare.
// decoding resolves each canonical field from the structured form first,
// falling back to the flat form
type rawRecord struct {
	ATP         string `json:"atp"`
	Type        string `json:"type"`
	Name        string `json:"name"`
	Description string `json:"description"`

	GPG *struct {
		Fingerprint string `json:"fingerprint"`
		Keyserver   string `json:"keyserver"`
	} `json:"gpg"`
	GPGFingerprint string `json:"gpgFingerprint"`
	GPGKeyserver   string `json:"gpgKeyserver"`

	Wallet *struct {
		Address string          `json:"address"`
		Proof   json.RawMessage `json:"proof"`
	} `json:"wallet"`
	Wallets     map[string]string `json:"wallets"`
	WalletProof json.RawMessage   `json:"walletProof"`

	Platforms map[string]string `json:"platforms"`

	BindingProofsSnake []json.RawMessage `json:"binding_proofs"`
	BindingProofs      []json.RawMessage `json:"bindingProofs"`

	ProofOfExistence      json.RawMessage `json:"proofOfExistence"`
	ProofOfExistenceSnake json.RawMessage `json:"proof_of_existence"`

	Created   int64           `json:"created"`
	Signature json.RawMessage `json:"signature"`
}

// Decode parses a raw identity document & normalizes it to canonical form.
// Only malformed JSON is an error. Shape problems within a valid document
// (wrong types, missing fields) degrade to absent fields, yielding a sparser
// Identity rather than failing the document
func Decode(data []byte) (*Identity, error) {
	raw := rawRecord{}
	if err := json.Unmarshal(data, &raw); err != nil {
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			return nil, err
		}
	}
	return raw.normalize(), nil
}

func (raw *rawRecord) normalize() *Identity {
	id := &Identity{
		ATP:         raw.ATP,
		Type:        raw.Type,
		Name:        raw.Name,
		Description: raw.Description,
		Created:     raw.Created,
		Signature:   raw.Signature,
		Platforms:   map[string]string{},
		Wallets:     map[string]string{},
	}
	if id.ATP == "" {
		id.ATP = DefaultATPVersion
	}
	if id.Type == "" {
		id.Type = DefaultType
	}

	if raw.GPG != nil && raw.GPG.Fingerprint != "" {
		id.GPGFingerprint = raw.GPG.Fingerprint
	} else {
		id.GPGFingerprint = raw.GPGFingerprint
	}
	if raw.GPG != nil && raw.GPG.Keyserver != "" {
		id.GPGKeyserver = raw.GPG.Keyserver
	} else {
		id.GPGKeyserver = raw.GPGKeyserver
	}

	// a single structured wallet is older than the wallets map, and was
	// always a bitcoin address
	if raw.Wallet != nil && raw.Wallet.Address != "" {
		id.Wallets["btc"] = raw.Wallet.Address
	} else {
		for chain, addr := range raw.Wallets {
			id.Wallets[chain] = addr
		}
	}
	if raw.Wallet != nil && len(raw.Wallet.Proof) > 0 {
		id.WalletProof = raw.Wallet.Proof
	} else {
		id.WalletProof = raw.WalletProof
	}

	for platform, handle := range raw.Platforms {
		id.Platforms[platform] = handle
	}

	switch {
	case raw.BindingProofsSnake != nil:
		id.BindingProofs = raw.BindingProofsSnake
	case raw.BindingProofs != nil:
		id.BindingProofs = raw.BindingProofs
	default:
		id.BindingProofs = []json.RawMessage{}
	}

	if len(raw.ProofOfExistence) > 0 {
		id.ProofOfExistence = raw.ProofOfExistence
	} else {
		id.ProofOfExistence = raw.ProofOfExistenceSnake
	}

	return id
}

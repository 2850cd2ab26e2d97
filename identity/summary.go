package identity

import "encoding/json"

// ProofRef is the reduced proof-of-existence reference attached to listing
// & search results: just enough to locate the anchoring transaction
type ProofRef struct {
	TxID    string `json:"txid"`
	Network string `json:"network"`
}

// Summary is the trimmed projection of an Identity used by listing & search
// responses. Point lookups are an intentional request for one record and
// return the full Identity instead
type Summary struct {
	Name             string            `json:"name,omitempty"`
	GPGFingerprint   string            `json:"gpgFingerprint,omitempty"`
	Description      string            `json:"description,omitempty"`
	Platforms        map[string]string `json:"platforms"`
	ProofOfExistence *ProofRef         `json:"proofOfExistence"`
}

// Summarize produces the Summary projection of an identity
func (id *Identity) Summarize() *Summary {
	s := &Summary{
		Name:           id.Name,
		GPGFingerprint: id.GPGFingerprint,
		Description:    id.Description,
		Platforms:      id.Platforms,
	}
	if len(id.ProofOfExistence) > 0 {
		// proofs that don't carry a txid or network reduce to null, same as
		// an absent proof
		ref := &ProofRef{}
		if err := json.Unmarshal(id.ProofOfExistence, ref); err == nil && *ref != (ProofRef{}) {
			s.ProofOfExistence = ref
		}
	}
	return s
}

package commitment

import (
	ics23 "github.com/confio/ics23/go"
)

// DefaultProofSpecs returns the proof specs of the common counterparty
// layout: an IAVL state tree wrapped in a simple-merkle multistore. The
// inner spec verifies the leaf layer, the outer spec the store layer.
func DefaultProofSpecs() []*ics23.ProofSpec {
	return []*ics23.ProofSpec{ics23.IavlSpec, ics23.TendermintSpec}
}

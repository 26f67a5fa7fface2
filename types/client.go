package types

import (
	"fmt"
	"time"

	errorsmod "cosmossdk.io/errors"
	ics23 "github.com/confio/ics23/go"

	"github.com/relaycore/relaycore/commitment"
)

// ClientState is the locally recorded state of a counterparty light client.
// It is owned by the client-update subsystem; the verifier only reads it.
// A frozen client must never pass verification.
type ClientState struct {
	ChainID         string
	TrustingPeriod  time.Duration
	UnbondingPeriod time.Duration
	MaxClockDrift   time.Duration

	// FrozenHeight is non-zero when the client was frozen for detected
	// misbehaviour. Freezing is permanent from this core's point of view.
	FrozenHeight Height

	// LatestHeight is the highest counterparty height the client has
	// verified. Proofs at greater heights are untrusted.
	LatestHeight Height

	// ProofSpecs describe the counterparty's state commitment structure.
	ProofSpecs []*ics23.ProofSpec
}

// IsFrozen reports whether the client was frozen for misbehaviour.
func (cs *ClientState) IsFrozen() bool {
	return !cs.FrozenHeight.IsZero()
}

// VerifyHeight checks that a claimed proof height does not exceed the
// latest height the client has verified.
func (cs *ClientState) VerifyHeight(height Height) error {
	if height.GT(cs.LatestHeight) {
		return errorsmod.Wrapf(ErrInvalidHeight,
			"proof height %s exceeds latest client height %s", height, cs.LatestHeight)
	}
	return nil
}

// EncodeVec returns the deterministic encoding of the client state used as
// the expected value in client-state membership proofs. Proof spec encoding
// can fail only on an internal invariant violation.
func (cs *ClientState) EncodeVec() ([]byte, error) {
	var b []byte
	b = appendStringField(b, 1, cs.ChainID)
	b = appendVarintField(b, 2, uint64(cs.TrustingPeriod))
	b = appendVarintField(b, 3, uint64(cs.UnbondingPeriod))
	b = appendVarintField(b, 4, uint64(cs.MaxClockDrift))
	b = appendHeightField(b, 5, cs.FrozenHeight)
	b = appendHeightField(b, 6, cs.LatestHeight)
	for i, spec := range cs.ProofSpecs {
		if spec == nil {
			return nil, fmt.Errorf("proof spec at index %d is nil", i)
		}
		bz, err := spec.Marshal()
		if err != nil {
			return nil, fmt.Errorf("marshal proof spec %d: %w", i, err)
		}
		b = appendBytesField(b, 7, bz)
	}
	return b, nil
}

// ConsensusState is a verified snapshot of the counterparty chain at one
// height: the root all proofs at that height verify against, and the
// counterparty block time used in timeout handling.
type ConsensusState struct {
	Timestamp          Timestamp
	Root               commitment.MerkleRoot
	NextValidatorsHash []byte
}

// EncodeVec returns the deterministic encoding of the consensus state used
// as the expected value in consensus-state membership proofs.
func (cs *ConsensusState) EncodeVec() []byte {
	var b []byte
	b = appendVarintField(b, 1, uint64(cs.Timestamp))
	b = appendBytesField(b, 2, cs.Root.Hash)
	b = appendBytesField(b, 3, cs.NextValidatorsHash)
	return b
}

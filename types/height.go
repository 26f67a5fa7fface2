// Package types defines the domain model of the cross-chain verification
// core: heights, identifiers, packets, channel and connection ends, and the
// light client state read from the storage collaborator. All values here are
// read-only inputs to verification; nothing in this package mutates state.
package types

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
)

// Height locates a counterparty block as a (revision number, revision
// height) pair. Heights order lexicographically: first by revision number,
// then by height within the revision.
type Height struct {
	RevisionNumber uint64
	RevisionHeight uint64
}

// NewHeight constructs a Height from a revision pair.
func NewHeight(revisionNumber, revisionHeight uint64) Height {
	return Height{RevisionNumber: revisionNumber, RevisionHeight: revisionHeight}
}

// IsZero reports whether both components are zero.
func (h Height) IsZero() bool {
	return h.RevisionNumber == 0 && h.RevisionHeight == 0
}

// Compare returns -1, 0, or 1 when h sorts before, equal to, or after other.
func (h Height) Compare(other Height) int {
	switch {
	case h.RevisionNumber < other.RevisionNumber:
		return -1
	case h.RevisionNumber > other.RevisionNumber:
		return 1
	case h.RevisionHeight < other.RevisionHeight:
		return -1
	case h.RevisionHeight > other.RevisionHeight:
		return 1
	}
	return 0
}

// LT reports h < other.
func (h Height) LT(other Height) bool { return h.Compare(other) < 0 }

// GT reports h > other.
func (h Height) GT(other Height) bool { return h.Compare(other) > 0 }

// GTE reports h >= other.
func (h Height) GTE(other Height) bool { return h.Compare(other) >= 0 }

// EQ reports h == other.
func (h Height) EQ(other Height) bool { return h.Compare(other) == 0 }

// Add returns the height blocks above h within the same revision. Overflow
// of the revision height is an error, never a silent wrap.
func (h Height) Add(blocks uint64) (Height, error) {
	if h.RevisionHeight > ^uint64(0)-blocks {
		return Height{}, errorsmod.Wrapf(ErrInvalidHeight, "height %s + %d blocks overflows", h, blocks)
	}
	return Height{RevisionNumber: h.RevisionNumber, RevisionHeight: h.RevisionHeight + blocks}, nil
}

// String renders the height in the canonical "revision-height" form.
func (h Height) String() string {
	return fmt.Sprintf("%d-%d", h.RevisionNumber, h.RevisionHeight)
}

// Package commitment implements the ICS-23 commitment side of cross-chain
// proof verification: Merkle roots, prefixes, and paths, chained membership
// and non-membership proofs, the canonical path grammar for counterparty
// state, and the packet/acknowledgement commitment digests.
//
// A chained proof carries one ICS-23 commitment proof per tree layer. The
// innermost layer proves the leaf key/value; each outer layer proves the
// previous layer's computed subroot under the next path element, and the
// final subroot must equal the trusted root.
package commitment

import (
	"bytes"
	"encoding/binary"
	"strings"

	errorsmod "cosmossdk.io/errors"
	ics23 "github.com/confio/ics23/go"
)

// MerkleRoot is the commitment root of a counterparty chain at some height.
type MerkleRoot struct {
	Hash []byte
}

// NewMerkleRoot constructs a root from a commitment hash.
func NewMerkleRoot(hash []byte) MerkleRoot {
	return MerkleRoot{Hash: hash}
}

// Empty reports whether the root carries no hash.
func (r MerkleRoot) Empty() bool {
	return len(r.Hash) == 0
}

// MerklePrefix is the key prefix under which a counterparty stores its
// protocol state, typically the store key of its commitment module.
type MerklePrefix struct {
	KeyPrefix []byte
}

// NewMerklePrefix constructs a prefix from raw prefix bytes.
func NewMerklePrefix(keyPrefix []byte) MerklePrefix {
	return MerklePrefix{KeyPrefix: keyPrefix}
}

// Empty reports whether the prefix carries no bytes.
func (p MerklePrefix) Empty() bool {
	return len(p.KeyPrefix) == 0
}

// Apply prepends the prefix to path, producing the full two-element key
// path used to verify a chained proof. The prefix must not be empty.
func (p MerklePrefix) Apply(path string) (MerklePath, error) {
	if p.Empty() {
		return MerklePath{}, errorsmod.Wrap(ErrInvalidPrefix, "prefix must not be empty")
	}
	if path == "" {
		return MerklePath{}, errorsmod.Wrap(ErrInvalidPath, "path must not be empty")
	}
	return NewMerklePath(string(p.KeyPrefix), path), nil
}

// MerklePath is an ordered list of keys, outermost first, addressing a leaf
// through the layers of a chained commitment proof.
type MerklePath struct {
	KeyPath []string
}

// NewMerklePath constructs a path from ordered key elements.
func NewMerklePath(keyPath ...string) MerklePath {
	return MerklePath{KeyPath: keyPath}
}

// Key returns the path element at index i as bytes.
func (mp MerklePath) Key(i int) ([]byte, error) {
	if i < 0 || i >= len(mp.KeyPath) {
		return nil, errorsmod.Wrapf(ErrInvalidPath, "index %d out of range for path of length %d", i, len(mp.KeyPath))
	}
	return []byte(mp.KeyPath[i]), nil
}

// String renders the path in the usual slash-joined form.
func (mp MerklePath) String() string {
	return "/" + strings.Join(mp.KeyPath, "/")
}

// MerkleProof is a chained ICS-23 commitment proof, one layer per path
// element, innermost layer first.
type MerkleProof struct {
	Proofs []*ics23.CommitmentProof
}

// Empty reports whether the proof carries no layers.
func (proof MerkleProof) Empty() bool {
	return len(proof.Proofs) == 0
}

// VerifyMembership verifies that value is present at path under root. The
// proof spec set must have one spec per proof layer, ordered like the proof.
func (proof MerkleProof) VerifyMembership(specs []*ics23.ProofSpec, root MerkleRoot, path MerklePath, value []byte) error {
	if err := proof.validateAgainst(specs, root, path); err != nil {
		return err
	}
	if len(value) == 0 {
		return errorsmod.Wrap(ErrInvalidProof, "membership value must not be empty")
	}
	return proof.verifyChainedMembership(specs, root, path, value, 0)
}

// VerifyNonMembership verifies that no value exists at path under root. The
// innermost layer must be a non-existence proof; the remaining layers prove
// membership of each computed subroot.
func (proof MerkleProof) VerifyNonMembership(specs []*ics23.ProofSpec, root MerkleRoot, path MerklePath) error {
	if err := proof.validateAgainst(specs, root, path); err != nil {
		return err
	}

	nonexist := proof.Proofs[0].GetNonexist()
	if nonexist == nil {
		return errorsmod.Wrap(ErrInvalidProof, "innermost layer is not a non-existence proof")
	}

	subroot, err := proof.Proofs[0].Calculate()
	if err != nil {
		return errorsmod.Wrapf(ErrInvalidProof, "could not calculate root of non-existence layer: %v", err)
	}
	key, err := path.Key(len(path.KeyPath) - 1)
	if err != nil {
		return err
	}
	if !ics23.VerifyNonMembership(specs[0], subroot, proof.Proofs[0], key) {
		return errorsmod.Wrapf(ErrInvalidProof, "non-membership verification failed for key %s", key)
	}

	if len(proof.Proofs) == 1 {
		if !bytes.Equal(subroot, root.Hash) {
			return errorsmod.Wrap(ErrInvalidProof, "proof root does not match trusted root")
		}
		return nil
	}
	return proof.verifyChainedMembership(specs, root, path, subroot, 1)
}

// verifyChainedMembership walks the proof layers from startIndex outward,
// proving value at the innermost visited layer and each layer's subroot at
// the next, and finally checks the outermost subroot against root.
func (proof MerkleProof) verifyChainedMembership(specs []*ics23.ProofSpec, root MerkleRoot, path MerklePath, value []byte, startIndex int) error {
	for i := startIndex; i < len(proof.Proofs); i++ {
		if proof.Proofs[i].GetExist() == nil {
			return errorsmod.Wrapf(ErrInvalidProof, "layer %d is not an existence proof", i)
		}
		subroot, err := proof.Proofs[i].Calculate()
		if err != nil {
			return errorsmod.Wrapf(ErrInvalidProof, "could not calculate root of layer %d: %v", i, err)
		}
		key, err := path.Key(len(path.KeyPath) - 1 - i)
		if err != nil {
			return err
		}
		if !ics23.VerifyMembership(specs[i], subroot, proof.Proofs[i], key, value) {
			return errorsmod.Wrapf(ErrInvalidProof, "membership verification failed at layer %d for key %s", i, key)
		}
		value = subroot
	}
	if !bytes.Equal(value, root.Hash) {
		return errorsmod.Wrap(ErrInvalidProof, "proof root does not match trusted root")
	}
	return nil
}

// validateAgainst checks the structural preconditions shared by membership
// and non-membership verification.
func (proof MerkleProof) validateAgainst(specs []*ics23.ProofSpec, root MerkleRoot, path MerklePath) error {
	if proof.Empty() {
		return errorsmod.Wrap(ErrInvalidProof, "proof must not be empty")
	}
	if root.Empty() {
		return errorsmod.Wrap(ErrInvalidRoot, "trusted root must not be empty")
	}
	if len(specs) == 0 {
		return errorsmod.Wrap(ErrInvalidProof, "proof spec set must not be empty")
	}
	if len(specs) != len(proof.Proofs) {
		return errorsmod.Wrapf(ErrInvalidProof, "proof has %d layers, spec set has %d", len(proof.Proofs), len(specs))
	}
	if len(path.KeyPath) != len(specs) {
		return errorsmod.Wrapf(ErrInvalidPath, "path has %d elements, proof has %d layers", len(path.KeyPath), len(proof.Proofs))
	}
	for i, spec := range specs {
		if spec == nil {
			return errorsmod.Wrapf(ErrInvalidProof, "proof spec at index %d is nil", i)
		}
	}
	return nil
}

// Marshal encodes the proof in its wire form: each layer as a
// length-delimited ICS-23 commitment proof under field number 1, matching
// the layout produced by counterparty implementations.
func (proof MerkleProof) Marshal() ([]byte, error) {
	var out []byte
	for i, p := range proof.Proofs {
		if p == nil {
			return nil, errorsmod.Wrapf(ErrMalformedProof, "proof layer %d is nil", i)
		}
		bz, err := p.Marshal()
		if err != nil {
			return nil, errorsmod.Wrapf(ErrMalformedProof, "could not marshal layer %d: %v", i, err)
		}
		out = append(out, 0x0a)
		out = binary.AppendUvarint(out, uint64(len(bz)))
		out = append(out, bz...)
	}
	return out, nil
}

// UnmarshalMerkleProof decodes opaque proof bytes into the structured form.
// Every failure is reported as ErrMalformedProof.
func UnmarshalMerkleProof(bz []byte) (MerkleProof, error) {
	if len(bz) == 0 {
		return MerkleProof{}, errorsmod.Wrap(ErrMalformedProof, "proof bytes must not be empty")
	}

	var proof MerkleProof
	for len(bz) > 0 {
		if bz[0] != 0x0a {
			return MerkleProof{}, errorsmod.Wrapf(ErrMalformedProof, "unexpected wire tag 0x%02x", bz[0])
		}
		bz = bz[1:]
		length, n := binary.Uvarint(bz)
		if n <= 0 || length > uint64(len(bz)-n) {
			return MerkleProof{}, errorsmod.Wrap(ErrMalformedProof, "truncated proof layer")
		}
		bz = bz[n:]

		var layer ics23.CommitmentProof
		if err := layer.Unmarshal(bz[:length]); err != nil {
			return MerkleProof{}, errorsmod.Wrapf(ErrMalformedProof, "could not unmarshal proof layer %d: %v", len(proof.Proofs), err)
		}
		proof.Proofs = append(proof.Proofs, &layer)
		bz = bz[length:]
	}
	return proof, nil
}

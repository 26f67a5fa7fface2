// Package prooftest builds small hand-rolled ICS-23 proof fixtures for
// tests: tendermint-shaped two-leaf trees for the leaf layer, wrapped in a
// single-leaf store layer, so that chained membership and non-membership
// proofs can be verified without a real state tree.
package prooftest

import (
	"crypto/sha256"
	"encoding/binary"

	ics23 "github.com/confio/ics23/go"

	"github.com/relaycore/relaycore/commitment"
)

// Fixture is a chained proof together with the root it commits to and the
// spec set it verifies under.
type Fixture struct {
	Specs []*ics23.ProofSpec
	Root  commitment.MerkleRoot
	Proof commitment.MerkleProof
}

// LeafOp returns the tendermint leaf op: sha256 everywhere, raw keys,
// prehashed values, proto-varint length framing.
func LeafOp() *ics23.LeafOp {
	return &ics23.LeafOp{
		Hash:         ics23.HashOp_SHA256,
		PrehashKey:   ics23.HashOp_NO_HASH,
		PrehashValue: ics23.HashOp_SHA256,
		Length:       ics23.LengthOp_VAR_PROTO,
		Prefix:       []byte{0},
	}
}

// LeafHash computes the tendermint leaf hash of a key/value pair.
func LeafHash(key, value []byte) []byte {
	valueHash := sha256.Sum256(value)

	buf := []byte{0}
	buf = binary.AppendUvarint(buf, uint64(len(key)))
	buf = append(buf, key...)
	buf = binary.AppendUvarint(buf, uint64(len(valueHash)))
	buf = append(buf, valueHash[:]...)

	h := sha256.Sum256(buf)
	return h[:]
}

// InnerHash computes the tendermint inner node hash of two children.
func InnerHash(left, right []byte) []byte {
	buf := []byte{1}
	buf = append(buf, left...)
	buf = append(buf, right...)
	h := sha256.Sum256(buf)
	return h[:]
}

// twoLeafTree builds the root and both existence proofs of a tree holding
// exactly the ordered pairs (k1,v1) and (k2,v2), k1 < k2.
func twoLeafTree(k1, v1, k2, v2 []byte) (root []byte, left, right *ics23.ExistenceProof) {
	lh1 := LeafHash(k1, v1)
	lh2 := LeafHash(k2, v2)
	root = InnerHash(lh1, lh2)

	left = &ics23.ExistenceProof{
		Key:   k1,
		Value: v1,
		Leaf:  LeafOp(),
		Path: []*ics23.InnerOp{{
			Hash:   ics23.HashOp_SHA256,
			Prefix: []byte{1},
			Suffix: lh2,
		}},
	}
	right = &ics23.ExistenceProof{
		Key:   k2,
		Value: v2,
		Leaf:  LeafOp(),
		Path: []*ics23.InnerOp{{
			Hash:   ics23.HashOp_SHA256,
			Prefix: append([]byte{1}, lh1...),
		}},
	}
	return root, left, right
}

// storeLayer wraps an inner tree root in a single-leaf store layer keyed by
// storeKey and returns the outer root and its existence proof.
func storeLayer(storeKey string, innerRoot []byte) (root []byte, exist *ics23.ExistenceProof) {
	exist = &ics23.ExistenceProof{
		Key:   []byte(storeKey),
		Value: innerRoot,
		Leaf:  LeafOp(),
	}
	return LeafHash([]byte(storeKey), innerRoot), exist
}

func wrapExist(p *ics23.ExistenceProof) *ics23.CommitmentProof {
	return &ics23.CommitmentProof{Proof: &ics23.CommitmentProof_Exist{Exist: p}}
}

func wrapNonexist(p *ics23.NonExistenceProof) *ics23.CommitmentProof {
	return &ics23.CommitmentProof{Proof: &ics23.CommitmentProof_Nonexist{Nonexist: p}}
}

// specs returns one tendermint spec per layer; the fixtures' hand-built
// trees are tendermint-shaped at both layers.
func specs() []*ics23.ProofSpec {
	return []*ics23.ProofSpec{ics23.TendermintSpec, ics23.TendermintSpec}
}

// Membership builds a chained proof that key maps to value in the store
// named storeKey. The leaf layer is a two-leaf tree holding the pair next
// to a filler sibling.
func Membership(storeKey, key string, value []byte) Fixture {
	sibling := append([]byte(key), 0xff)
	innerRoot, left, _ := twoLeafTree([]byte(key), value, sibling, []byte("sibling"))
	outerRoot, storeExist := storeLayer(storeKey, innerRoot)

	return Fixture{
		Specs: specs(),
		Root:  commitment.NewMerkleRoot(outerRoot),
		Proof: commitment.MerkleProof{Proofs: []*ics23.CommitmentProof{wrapExist(left), wrapExist(storeExist)}},
	}
}

// NonMembership builds a chained proof that key is absent from the store
// named storeKey. The leaf layer holds the key's would-be left and right
// neighbors.
func NonMembership(storeKey, key string) Fixture {
	leftKey := append([]byte{0}, []byte(key)...)
	rightKey := append([]byte(key), 0xff)
	innerRoot, left, right := twoLeafTree(leftKey, []byte("left"), rightKey, []byte("right"))
	outerRoot, storeExist := storeLayer(storeKey, innerRoot)

	nonexist := &ics23.NonExistenceProof{
		Key:   []byte(key),
		Left:  left,
		Right: right,
	}
	return Fixture{
		Specs: specs(),
		Root:  commitment.NewMerkleRoot(outerRoot),
		Proof: commitment.MerkleProof{Proofs: []*ics23.CommitmentProof{wrapNonexist(nonexist), wrapExist(storeExist)}},
	}
}

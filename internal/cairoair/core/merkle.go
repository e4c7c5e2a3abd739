package core

import (
	"crypto/sha256"
	"fmt"
)

// MerkleTree is a binary Merkle tree over opaque leaf byte-strings. The
// AIR core never commits to a trace itself — that is the surrounding
// prover's job — but the trace package exposes one as a convenience for
// callers that want a fingerprint of a built trace without pulling in a
// full STARK pipeline.
type MerkleTree struct {
	root   []byte
	leaves [][]byte
}

// NewMerkleTree builds a Merkle tree over the given leaves.
func NewMerkleTree(leaves [][]byte) (*MerkleTree, error) {
	if len(leaves) == 0 {
		return nil, fmt.Errorf("cannot create Merkle tree with no leaves")
	}

	hashed := make([][]byte, len(leaves))
	for i, leaf := range leaves {
		hashed[i] = hashLeaf(leaf)
	}

	level := hashed
	for len(level) > 1 {
		next := make([][]byte, 0, (len(level)+1)/2)
		for i := 0; i < len(level); i += 2 {
			if i+1 < len(level) {
				next = append(next, hashPair(level[i], level[i+1]))
			} else {
				next = append(next, hashPair(level[i], level[i]))
			}
		}
		level = next
	}

	return &MerkleTree{root: level[0], leaves: hashed}, nil
}

// Root returns the tree's root hash.
func (m *MerkleTree) Root() []byte {
	return append([]byte(nil), m.root...)
}

func hashLeaf(data []byte) []byte {
	h := sha256.Sum256(append([]byte{0x00}, data...))
	return h[:]
}

func hashPair(left, right []byte) []byte {
	buf := make([]byte, 0, 1+len(left)+len(right))
	buf = append(buf, 0x01)
	buf = append(buf, left...)
	buf = append(buf, right...)
	h := sha256.Sum256(buf)
	return h[:]
}

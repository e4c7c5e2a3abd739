package core

import (
	"bytes"
	"testing"
)

func TestNewMerkleTreeRejectsEmpty(t *testing.T) {
	if _, err := NewMerkleTree(nil); err == nil {
		t.Error("expected error building a Merkle tree with no leaves")
	}
}

func TestMerkleTreeDeterministic(t *testing.T) {
	leaves := [][]byte{[]byte("a"), []byte("b"), []byte("c")}

	t1, err := NewMerkleTree(leaves)
	if err != nil {
		t.Fatalf("NewMerkleTree failed: %v", err)
	}
	t2, err := NewMerkleTree(leaves)
	if err != nil {
		t.Fatalf("NewMerkleTree failed: %v", err)
	}

	if !bytes.Equal(t1.Root(), t2.Root()) {
		t.Error("same leaves should produce the same root")
	}
}

func TestMerkleTreeSensitiveToOrder(t *testing.T) {
	t1, _ := NewMerkleTree([][]byte{[]byte("a"), []byte("b")})
	t2, _ := NewMerkleTree([][]byte{[]byte("b"), []byte("a")})

	if bytes.Equal(t1.Root(), t2.Root()) {
		t.Error("reordering leaves should change the root")
	}
}

func TestMerkleTreeOddLeafCountDuplicatesLast(t *testing.T) {
	odd, err := NewMerkleTree([][]byte{[]byte("a"), []byte("b"), []byte("c")})
	if err != nil {
		t.Fatalf("NewMerkleTree failed: %v", err)
	}
	duplicated, err := NewMerkleTree([][]byte{[]byte("a"), []byte("b"), []byte("c"), []byte("c")})
	if err != nil {
		t.Fatalf("NewMerkleTree failed: %v", err)
	}
	if !bytes.Equal(odd.Root(), duplicated.Root()) {
		t.Error("odd leaf count should duplicate the last leaf, matching an explicit duplicate")
	}
}

func TestMerkleTreeSingleLeaf(t *testing.T) {
	tree, err := NewMerkleTree([][]byte{[]byte("only")})
	if err != nil {
		t.Fatalf("NewMerkleTree failed: %v", err)
	}
	if len(tree.Root()) != 32 {
		t.Errorf("root length = %d, want 32 (sha256)", len(tree.Root()))
	}
}

func TestMerkleRootReturnsCopy(t *testing.T) {
	tree, _ := NewMerkleTree([][]byte{[]byte("a"), []byte("b")})
	r1 := tree.Root()
	r1[0] ^= 0xFF
	r2 := tree.Root()
	if bytes.Equal(r1, r2) {
		t.Error("Root() should return a copy; mutating it must not affect the tree")
	}
}

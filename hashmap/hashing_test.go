package hashmap

import (
	"testing"
)

func TestMaskedExtractsFiveBits(t *testing.T) {
	hash := uint32(0b11111_01010_00001)
	if masked(hash, 0) != 0b00001 {
		t.Errorf("expected segment 1 at level 0, have %b", masked(hash, 0))
	}
	if masked(hash, 5) != 0b01010 {
		t.Errorf("expected segment 10 at level 1, have %b", masked(hash, 5))
	}
	if masked(hash, 10) != 0b11111 {
		t.Errorf("expected segment 31 at level 2, have %b", masked(hash, 10))
	}
}

func TestBitpos(t *testing.T) {
	if bitpos(0) != 1 {
		t.Errorf("expected bitpos(0) to be 1, is %d", bitpos(0))
	}
	if bitpos(31) != 1<<31 {
		t.Errorf("expected bitpos(31) to be 1<<31, is %d", bitpos(31))
	}
}

func TestSparseIndex(t *testing.T) {
	bitmap := uint32(0b1011)
	if sparseIndex(bitmap, 0b0001) != 0 {
		t.Errorf("expected offset 0 for lowest bit, is %d", sparseIndex(bitmap, 0b0001))
	}
	if sparseIndex(bitmap, 0b0010) != 1 {
		t.Errorf("expected offset 1 for second bit, is %d", sparseIndex(bitmap, 0b0010))
	}
	if sparseIndex(bitmap, 0b1000) != 2 {
		t.Errorf("expected offset 2 for fourth bit (third unset), is %d", sparseIndex(bitmap, 0b1000))
	}
}

func TestMixAvalanche(t *testing.T) {
	// sequential inputs must not produce clustered first segments
	seen := map[uint32]bool{}
	for i := uint32(0); i < 32; i++ {
		seen[masked(mix(i), 0)] = true
	}
	if len(seen) < 16 {
		t.Errorf("expected mixed sequential hashes to spread over segments, only %d distinct", len(seen))
	}
	if mix(7) == 7 {
		t.Error("expected mix to change its input, didn't")
	}
}

func TestDefaultHasherIsStable(t *testing.T) {
	h := defaultHasher[string]()
	if h("persistent") != h("persistent") {
		t.Error("expected default hasher to be deterministic per process, isn't")
	}
}

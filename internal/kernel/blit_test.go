package kernel

import (
	"math/rand"
	"testing"

	"github.com/rappcompute/rapp/internal/word"
)

func TestApplyROPAlgebra(t *testing.T) {
	var d, s uint32 = 0xAAAAAAAA, 0xCCCCCCCC
	cases := []struct {
		rop  ROP
		want uint32
	}{
		{Copy, s},
		{Not, ^s},
		{And, d & s},
		{Or, d | s},
		{Xor, d ^ s},
		{Nand, ^(d & s)},
		{Nor, ^(d | s)},
		{Xnor, ^(d ^ s)},
		{Andn, d &^ s},
		{Orn, d | ^s},
		{Nandn, ^d | s},
		{Norn, ^d & s},
	}
	for _, c := range cases {
		if got := Apply[uint32](c.rop, d, s); got != c.want {
			t.Errorf("rop %d: got %#x want %#x", c.rop, got, c.want)
		}
	}
}

func TestBlitCopyIsIdentity(t *testing.T) {
	src := make([]byte, 64)
	rand.New(rand.NewSource(1)).Read(src)
	dst := make([]byte, 64)
	BlitAlignedBin[uint32](Copy, dst, 16, src, 16, 128, 4, 4)
	for i := range src {
		if dst[i] != src[i] {
			t.Fatalf("byte %d: got %#x want %#x", i, dst[i], src[i])
		}
	}
}

func TestBlitNotInvolution(t *testing.T) {
	src := make([]byte, 64)
	rand.New(rand.NewSource(2)).Read(src)
	tmp := make([]byte, 64)
	dst := make([]byte, 64)
	copy(tmp, src)
	BlitAlignedBin[uint32](Not, tmp, 16, src, 16, 128, 4, 1)
	BlitAlignedBin[uint32](Not, dst, 16, tmp, 16, 128, 4, 1)
	for i := range src {
		if dst[i] != src[i] {
			t.Fatalf("double NOT byte %d: got %#x want %#x", i, dst[i], src[i])
		}
	}
}

func TestBlitXorSelfIsZero(t *testing.T) {
	src := make([]byte, 32)
	rand.New(rand.NewSource(3)).Read(src)
	dst := make([]byte, 32)
	copy(dst, src)
	BlitAlignedBin[uint32](Xor, dst, 8, src, 8, 64, 4, 2)
	for i := range dst {
		if dst[i] != 0 {
			t.Fatalf("byte %d = %#x, want 0", i, dst[i])
		}
	}
}

func TestBlitUnrollFactorsAgree(t *testing.T) {
	src := make([]byte, 128)
	rand.New(rand.NewSource(4)).Read(src)
	dst0 := make([]byte, 128)
	rand.New(rand.NewSource(5)).Read(dst0)

	for _, unroll := range []int{1, 2, 4} {
		dst := make([]byte, 128)
		copy(dst, dst0)
		BlitAlignedBin[uint32](Or, dst, 32, src, 32, 256, 4, unroll)
		if unroll == 1 {
			dst0 = make([]byte, 128)
			copy(dst0, dst)
			continue
		}
		for i := range dst {
			if dst[i] != dst0[i] {
				t.Fatalf("unroll=%d byte %d: got %#x want %#x", unroll, i, dst[i], dst0[i])
			}
		}
	}
}

func TestBlitMisalignedMatchesShiftedAligned(t *testing.T) {
	// Build a source row that is 5 logical bit positions ahead of a word
	// boundary, then verify the misaligned blit against manually shifting
	// the source into an aligned buffer with word.Align first and running
	// the aligned blit (spec.md §8 "Misalignment equivalence"). Using
	// word.Align to build the reference keeps the comparison endian-neutral.
	const words = 3
	const wb = 4
	raw := make([]byte, (words+1)*wb)
	rand.New(rand.NewSource(6)).Read(raw)

	shift := 5
	aligned := make([]byte, words*wb)
	for i := 0; i < words; i++ {
		w1 := word.Load[uint32](raw[i*wb:])
		w2 := word.Load[uint32](raw[(i+1)*wb:])
		word.Store[uint32](aligned[i*wb:], word.Align[uint32](w1, w2, shift))
	}

	dstWant := make([]byte, words*wb)
	rand.New(rand.NewSource(7)).Read(dstWant)
	dstGot := make([]byte, words*wb)
	copy(dstGot, dstWant)

	BlitAlignedBin[uint32](And, dstWant, wb*words, aligned, wb*words, words*32, 1, 1)
	BlitMisalignedBin[uint32](And, dstGot, wb*words, raw, wb*(words+1), shift, words*32, 1, 1)

	for i := range dstWant {
		if dstGot[i] != dstWant[i] {
			t.Fatalf("byte %d: got %#x want %#x", i, dstGot[i], dstWant[i])
		}
	}
}

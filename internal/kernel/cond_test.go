package kernel

import "testing"

func TestSatAddSub(t *testing.T) {
	if satAdd(250, 20) != 255 {
		t.Fatal("satAdd should clamp to 255")
	}
	if satSub(10, 20) != 0 {
		t.Fatal("satSub should clamp to 0")
	}
	if satAdd(10, 20) != 30 || satSub(30, 20) != 10 {
		t.Fatal("non-clamping case changed value")
	}
}

func TestCondSetOnlyWhereMasked(t *testing.T) {
	width, height := 16, 2
	dst := make([]byte, width*height)
	mask := make([]byte, 4*height) // 16 bits, in one whole uint32 word per row
	// set mask bits 0, 5, 15 in row 0; nothing in row 1.
	mask[0] = 1<<0 | 1<<5
	mask[1] = 1 << 7 // bit 15 -> byte 1 bit 7 little-endian packing assumption consistent w/ word.Bit
	Cond[uint32](CondSet, mask, 4, dst, width, nil, 0, width, height, 0xAB)
	count := 0
	for i, v := range dst {
		if v != 0 {
			count++
			if v != 0xAB {
				t.Fatalf("byte %d = %#x, want 0xAB", i, v)
			}
		}
	}
	if count == 0 {
		t.Fatal("expected at least one pixel set")
	}
}

func TestCondAllZeroMaskWordIsNoop(t *testing.T) {
	dst := []byte{1, 2, 3, 4}
	orig := append([]byte(nil), dst...)
	CondWord[uint32](CondSet, 0, dst, nil, 99)
	for i := range dst {
		if dst[i] != orig[i] {
			t.Fatalf("byte %d changed under zero mask", i)
		}
	}
}

func TestCondAllOnesMaskWordAppliesAll(t *testing.T) {
	dst := make([]byte, 4)
	CondWord[uint32](CondSet, ^uint32(0), dst, nil, 7)
	for i, v := range dst {
		if v != 7 {
			t.Fatalf("byte %d = %d, want 7", i, v)
		}
	}
}

func TestCondAddDoubleOperand(t *testing.T) {
	dst := []byte{100, 200, 250}
	src := []byte{10, 100, 10}
	mask := []byte{0b111, 0, 0, 0} // one whole uint32 word per mask row
	Cond[uint32](CondAdd, mask, 4, dst, 3, src, 3, 3, 1, 0)
	want := []byte{110, 255, 255}
	for i := range dst {
		if dst[i] != want[i] {
			t.Fatalf("byte %d = %d, want %d", i, dst[i], want[i])
		}
	}
}

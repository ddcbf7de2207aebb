package kernel

import (
	"testing"

	"github.com/rappcompute/rapp/raster"
)

func TestIntegralU8Scenario(t *testing.T) {
	// spec.md §8 scenario 6: src = [[1,2],[3,4]] -> dst = [[1,3],[4,10]].
	src := raster.U8{Buf: []byte{1, 2, 3, 4}, Dim: 2, Width: 2, Height: 2}
	dst := make([]uint32, 4)
	IntegralU8[uint32](dst, 2, src)
	want := []uint32{1, 3, 4, 10}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("dst = %v, want %v", dst, want)
		}
	}
}

func TestIntegralBinAgainstBruteForce(t *testing.T) {
	src := raster.Bin{Buf: []byte{0b00000101, 0b00000010, 0, 0b00001001}, Dim: 1, Width: 4, Height: 4}
	dst := make([]uint16, 16)
	IntegralBin[uint16](false, dst, 4, src)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			var want uint16
			for yy := 0; yy <= y; yy++ {
				for xx := 0; xx <= x; xx++ {
					want += uint16(src.GetBin(false, xx, yy))
				}
			}
			if got := dst[y*4+x]; got != want {
				t.Fatalf("dst[%d,%d] = %d, want %d", x, y, got, want)
			}
		}
	}
}

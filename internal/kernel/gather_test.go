package kernel

import (
	"testing"

	"github.com/rappcompute/rapp/raster"
)

func TestGatherScatterBinInverse(t *testing.T) {
	// 8x1 binary image; mask keeps pixels 0,2,3,6.
	mask := raster.Bin{Buf: []byte{0b01001101}, Dim: 1, Width: 8, Height: 1}
	src := raster.Bin{Buf: []byte{0b11001001}, Dim: 1, Width: 8, Height: 1}

	packed := make([]byte, 1)
	n := GatherBin(false, packed, mask, src)
	if n != 4 {
		t.Fatalf("GatherBin returned %d, want 4", n)
	}

	dst := raster.Bin{Buf: make([]byte, 1), Dim: 1, Width: 8, Height: 1}
	m2 := ScatterBin(false, dst, mask, packed)
	if m2 != 4 {
		t.Fatalf("ScatterBin returned %d, want 4", m2)
	}

	repacked := make([]byte, 1)
	GatherBin(false, repacked, mask, dst)
	if repacked[0]&0xF != packed[0]&0xF {
		t.Fatalf("gather(scatter(p,m),m) = %#b, want %#b", repacked[0], packed[0])
	}
}

func TestGatherScatterU8Inverse(t *testing.T) {
	mask := raster.Bin{Buf: []byte{0b00000101}, Dim: 1, Width: 4, Height: 1}
	src := raster.U8{Buf: []byte{10, 20, 30, 40}, Dim: 4, Width: 4, Height: 1}

	packed := make([]byte, 2)
	n := GatherU8(false, packed, mask, src)
	if n != 2 || packed[0] != 10 || packed[1] != 30 {
		t.Fatalf("GatherU8 = (%d,%v), want (2,[10 30])", n, packed)
	}

	dst := raster.U8{Buf: make([]byte, 4), Dim: 4, Width: 4, Height: 1}
	ScatterU8(false, dst, mask, packed)
	if dst.GetU8(0, 0) != 10 || dst.GetU8(2, 0) != 30 {
		t.Fatalf("ScatterU8 produced %v, want pixels 0=10 2=30", dst.Buf)
	}
}

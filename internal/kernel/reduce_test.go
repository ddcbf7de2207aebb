package kernel

import (
	"testing"

	"github.com/rappcompute/rapp/raster"
)

func binRaster(w, h int) raster.Bin {
	dim := raster.DivCeil8(w)
	if dim < 1 {
		dim = 1
	}
	return raster.Bin{Buf: make([]byte, dim*h), Dim: dim, Width: w, Height: h}
}

func TestReduce1x2BinOR(t *testing.T) {
	src := binRaster(4, 1)
	src.SetBin(false, 0, 0, 1)
	src.SetBin(false, 2, 0, 0)
	src.SetBin(false, 3, 0, 1)
	dst := binRaster(2, 1)
	Reduce1x2Bin(false, dst, src)
	if dst.GetBin(false, 0, 0) != 1 {
		t.Fatal("pair (1,0) should OR to 1")
	}
	if dst.GetBin(false, 1, 0) != 1 {
		t.Fatal("pair (0,1) should OR to 1")
	}
}

func TestReduce2x2BinRankThresholds(t *testing.T) {
	src := binRaster(2, 2)
	src.SetBin(false, 0, 0, 1)
	src.SetBin(false, 1, 0, 1)
	src.SetBin(false, 0, 1, 1)
	src.SetBin(false, 1, 1, 0) // 3 of 4 set
	dst := binRaster(1, 1)

	Reduce2x2Bin(false, Rank3, dst, src)
	if dst.GetBin(false, 0, 0) != 1 {
		t.Fatal("rank3 with 3 set bits should be 1")
	}
	Reduce2x2Bin(false, Rank4, dst, src)
	if dst.GetBin(false, 0, 0) != 0 {
		t.Fatal("rank4 with 3 set bits should be 0")
	}
}

func u8Raster(w, h int) raster.U8 {
	return raster.U8{Buf: make([]byte, w*h), Dim: w, Width: w, Height: h}
}

func TestReduce2x2U8Average(t *testing.T) {
	src := u8Raster(2, 2)
	src.SetU8(0, 0, 10)
	src.SetU8(1, 0, 20)
	src.SetU8(0, 1, 30)
	src.SetU8(1, 1, 40)
	dst := u8Raster(1, 1)
	Reduce2x2U8(dst, src)
	if got := dst.GetU8(0, 0); got != 25 {
		t.Fatalf("average = %d, want 25", got)
	}
}

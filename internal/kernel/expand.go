package kernel

import "github.com/rappcompute/rapp/raster"

// Expand1x2Bin doubles width: each source bit is written to two adjacent
// destination columns, inverting Reduce1x2Bin (spec.md §4.6).
func Expand1x2Bin(bigEndian bool, dst raster.Bin, src raster.Bin) {
	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			v := src.GetBin(bigEndian, x, y)
			dst.SetBin(bigEndian, x*2, y, v)
			dst.SetBin(bigEndian, x*2+1, y, v)
		}
	}
}

// Expand2x1Bin doubles height.
func Expand2x1Bin(bigEndian bool, dst raster.Bin, src raster.Bin) {
	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			v := src.GetBin(bigEndian, x, y)
			dst.SetBin(bigEndian, x, y*2, v)
			dst.SetBin(bigEndian, x, y*2+1, v)
		}
	}
}

// Expand2x2Bin doubles both dimensions.
func Expand2x2Bin(bigEndian bool, dst raster.Bin, src raster.Bin) {
	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			v := src.GetBin(bigEndian, x, y)
			dst.SetBin(bigEndian, x*2, y*2, v)
			dst.SetBin(bigEndian, x*2+1, y*2, v)
			dst.SetBin(bigEndian, x*2, y*2+1, v)
			dst.SetBin(bigEndian, x*2+1, y*2+1, v)
		}
	}
}

// Expand1x2U8, Expand2x1U8 and Expand2x2U8 are the 8-bit analogues: nearest-
// neighbor pixel replication.
func Expand1x2U8(dst raster.U8, src raster.U8) {
	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			v := src.GetU8(x, y)
			dst.SetU8(x*2, y, v)
			dst.SetU8(x*2+1, y, v)
		}
	}
}

func Expand2x1U8(dst raster.U8, src raster.U8) {
	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			v := src.GetU8(x, y)
			dst.SetU8(x, y*2, v)
			dst.SetU8(x, y*2+1, v)
		}
	}
}

func Expand2x2U8(dst raster.U8, src raster.U8) {
	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			v := src.GetU8(x, y)
			dst.SetU8(x*2, y*2, v)
			dst.SetU8(x*2+1, y*2, v)
			dst.SetU8(x*2, y*2+1, v)
			dst.SetU8(x*2+1, y*2+1, v)
		}
	}
}

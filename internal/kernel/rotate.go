package kernel

import "github.com/rappcompute/rapp/raster"

// RotateCWU8 rotates an 8-bit raster 90 degrees clockwise: output[h-1-y][x]
// = input[x][y], h being src's height (spec.md §4.6).
func RotateCWU8(dst raster.U8, src raster.U8) {
	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			dst.SetU8(src.Height-1-y, x, src.GetU8(x, y))
		}
	}
}

// RotateCCWU8 rotates an 8-bit raster 90 degrees counter-clockwise:
// output[y][w-1-x] = input[x][y].
func RotateCCWU8(dst raster.U8, src raster.U8) {
	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			dst.SetU8(y, src.Width-1-x, src.GetU8(x, y))
		}
	}
}

// RotateCWBin and RotateCCWBin are the packed-binary analogues. The
// original processes these 8Wx8W block at a time via word gathers (spec.md
// §4.6); this per-pixel form produces the identical result without the
// block-level bit gather, a reasoned simplification recorded in DESIGN.md.
func RotateCWBin(bigEndian bool, dst raster.Bin, src raster.Bin) {
	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			dst.SetBin(bigEndian, src.Height-1-y, x, src.GetBin(bigEndian, x, y))
		}
	}
}

func RotateCCWBin(bigEndian bool, dst raster.Bin, src raster.Bin) {
	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			dst.SetBin(bigEndian, y, src.Width-1-x, src.GetBin(bigEndian, x, y))
		}
	}
}

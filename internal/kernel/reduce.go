package kernel

import "github.com/rappcompute/rapp/raster"

// Rank selects how many of the four source bits in a 2x2 block must be set
// for the 2x2-reduction output bit to be set (spec.md §4.6). The 1x2 and
// 2x1 reductions combine only two bits and always use OR, independent of
// Rank.
type Rank int

const (
	Rank1 Rank = 1
	Rank2 Rank = 2
	Rank3 Rank = 3
	Rank4 Rank = 4
)

// Reduce1x2Bin halves width, each output bit the OR of a horizontally
// adjacent source pair.
func Reduce1x2Bin(bigEndian bool, dst raster.Bin, src raster.Bin) {
	for y := 0; y < src.Height; y++ {
		for ox := 0; ox < dst.Width; ox++ {
			x := ox * 2
			v := src.GetBin(bigEndian, x, y) | src.GetBin(bigEndian, x+1, y)
			dst.SetBin(bigEndian, ox, y, v)
		}
	}
}

// Reduce2x1Bin halves height, each output bit the OR of a vertically
// adjacent source pair.
func Reduce2x1Bin(bigEndian bool, dst raster.Bin, src raster.Bin) {
	for oy := 0; oy < dst.Height; oy++ {
		y := oy * 2
		for x := 0; x < src.Width; x++ {
			v := src.GetBin(bigEndian, x, y) | src.GetBin(bigEndian, x, y+1)
			dst.SetBin(bigEndian, x, oy, v)
		}
	}
}

// Reduce2x2Bin halves both dimensions: output bit set iff at least rank of
// the four 2x2 source bits are set (spec.md §4.6).
func Reduce2x2Bin(bigEndian bool, rank Rank, dst raster.Bin, src raster.Bin) {
	for oy := 0; oy < dst.Height; oy++ {
		y := oy * 2
		for ox := 0; ox < dst.Width; ox++ {
			x := ox * 2
			n := src.GetBin(bigEndian, x, y) + src.GetBin(bigEndian, x+1, y) +
				src.GetBin(bigEndian, x, y+1) + src.GetBin(bigEndian, x+1, y+1)
			v := 0
			if n >= int(rank) {
				v = 1
			}
			dst.SetBin(bigEndian, ox, oy, v)
		}
	}
}

// Reduce1x2U8, Reduce2x1U8 and Reduce2x2U8 are the 8-bit analogues, each
// output pixel the unweighted average of its source block, matching the
// binary reductions' "combine, then halve" structure at 8-bit precision.
func Reduce1x2U8(dst raster.U8, src raster.U8) {
	for y := 0; y < src.Height; y++ {
		for ox := 0; ox < dst.Width; ox++ {
			x := ox * 2
			v := (uint16(src.GetU8(x, y)) + uint16(src.GetU8(x+1, y))) / 2
			dst.SetU8(ox, y, uint8(v))
		}
	}
}

func Reduce2x1U8(dst raster.U8, src raster.U8) {
	for oy := 0; oy < dst.Height; oy++ {
		y := oy * 2
		for x := 0; x < src.Width; x++ {
			v := (uint16(src.GetU8(x, y)) + uint16(src.GetU8(x, y+1))) / 2
			dst.SetU8(x, oy, uint8(v))
		}
	}
}

func Reduce2x2U8(dst raster.U8, src raster.U8) {
	for oy := 0; oy < dst.Height; oy++ {
		y := oy * 2
		for ox := 0; ox < dst.Width; ox++ {
			x := ox * 2
			sum := uint16(src.GetU8(x, y)) + uint16(src.GetU8(x+1, y)) +
				uint16(src.GetU8(x, y+1)) + uint16(src.GetU8(x+1, y+1))
			dst.SetU8(ox, oy, uint8(sum/4))
		}
	}
}

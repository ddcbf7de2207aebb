package kernel

import (
	"github.com/rappcompute/rapp/raster"
)

// IntegralElem is the unsigned integer type an integral-image destination
// element is stored in; the caller picks u16/u32 (8-bit source, spec.md
// §4.12) or u8/u16/u32 (binary source) according to the image's maximum
// dimensions, wide enough to hold the largest possible running sum.
type IntegralElem interface {
	~uint8 | ~uint16 | ~uint32
}

// IntegralU8 computes dst[x,y] = src[x,y] + dst[x-1,y] + dst[x,y-1] -
// dst[x-1,y-1] for an 8-bit source raster, writing each element as E
// (spec.md §4.12). dst is row-major with dstDim E-sized elements per row
// stride (in elements, not bytes); src is an ordinary raster.U8.
func IntegralU8[E IntegralElem](dst []E, dstDim int, src raster.U8) {
	for y := 0; y < src.Height; y++ {
		srow := src.Row(y)
		drow := dst[y*dstDim:]
		var above []E
		if y > 0 {
			above = dst[(y-1)*dstDim:]
		}
		var rowSum E
		for x := 0; x < src.Width; x++ {
			rowSum += E(srow[x])
			v := rowSum
			if above != nil {
				v += above[x]
			}
			drow[x] = v
		}
	}
}

// IntegralBin is the binary-source analogue: each source pixel contributes
// 0 or 1. An all-zero source row is a no-op fast path that copies the
// previous integral row verbatim, since every dst[x,y] in that row then
// equals dst[x,y-1] exactly (spec.md §4.12).
func IntegralBin[E IntegralElem](bigEndian bool, dst []E, dstDim int, src raster.Bin) {
	for y := 0; y < src.Height; y++ {
		drow := dst[y*dstDim:]
		var above []E
		if y > 0 {
			above = dst[(y-1)*dstDim:]
		}

		row := src.Row(y)
		rowEmpty := true
		for _, b := range row {
			if b != 0 {
				rowEmpty = false
				break
			}
		}
		if rowEmpty && above != nil {
			copy(drow[:src.Width], above[:src.Width])
			continue
		}
		if rowEmpty {
			for x := 0; x < src.Width; x++ {
				drow[x] = 0
			}
			continue
		}

		var rowSum E
		for x := 0; x < src.Width; x++ {
			rowSum += E(src.GetBin(bigEndian, x, y))
			v := rowSum
			if above != nil {
				v += above[x]
			}
			drow[x] = v
		}
	}
}

package kernel

import (
	"github.com/rappcompute/rapp/internal/rtab"
	"github.com/rappcompute/rapp/internal/word"
	"github.com/rappcompute/rapp/platform"
)

// Predicate names one of the four threshold comparisons (spec.md §4.4).
type Predicate int

const (
	GT      Predicate = iota // src > t
	LT                       // src < t
	Between                  // tLo < src < tHi
	Outside                  // src < tLo || src > tHi
)

// thresh evaluates a comparison branchlessly in the style of
// rc_threshold's "(unsigned)(b-a) >> (int_bits-1)" idiom: that expression is
// 1 iff b < a. GT(src,t) is thresh(src, t); LT(src,t) is thresh(t, src).
func thresh(a, b int) int {
	return int((uint32(b) - uint32(a)) >> 31)
}

func evalPredicate(p Predicate, src uint8, t, tHi int) int {
	switch p {
	case GT:
		return thresh(int(src), t)
	case LT:
		return thresh(t, int(src))
	case Between:
		return thresh(int(src), t) & thresh(tHi, int(src))
	default: // Outside
		return thresh(t, int(src)) | thresh(int(src), tHi)
	}
}

// ThreshToBin applies a fixed-threshold predicate to an 8-bit source raster,
// producing a packed-binary destination (spec.md §4.4). t and tHi are only
// consulted for the predicates that use them.
func ThreshToBin[W word.Unsigned](p Predicate, dst []byte, dstDim int, src []byte, srcDim, srcWidthBytes int, t, tHi, width, height int) {
	wbits := word.Bits[W]()
	wb := word.Bytes[W]()
	wordsPerRow := (width + wbits - 1) / wbits

	for y := 0; y < height; y++ {
		srow := src[y*srcDim : y*srcDim+srcWidthBytes]
		drow := dst[y*dstDim:]
		x := 0
		for wi := 0; wi < wordsPerRow; wi++ {
			var acc W
			n := wbits
			if x+n > width {
				n = width - x
			}
			for i := 0; i < n; i++ {
				bit := evalPredicate(p, srow[x+i], t, tHi)
				acc |= word.Insert[W](uint64(bit), i, 1)
			}
			word.Store[W](drow[wi*wb:], acc)
			x += n
		}
	}
}

// ThreshToBinPixelwise is the per-pixel-threshold variant (spec.md §4.4,
// "Pixelwise thresholding variants"): tLo/tHi are rasters of the same shape
// and stride as src rather than scalars.
func ThreshToBinPixelwise[W word.Unsigned](p Predicate, dst []byte, dstDim int, src []byte, srcDim int, tLo, tHi []byte, tDim int, width, height int) {
	wbits := word.Bits[W]()
	wb := word.Bytes[W]()
	wordsPerRow := (width + wbits - 1) / wbits

	for y := 0; y < height; y++ {
		srow := src[y*srcDim:]
		lrow := tLo[y*tDim:]
		hrow := tHi[y*tDim:]
		drow := dst[y*dstDim:]
		x := 0
		for wi := 0; wi < wordsPerRow; wi++ {
			var acc W
			n := wbits
			if x+n > width {
				n = width - x
			}
			for i := 0; i < n; i++ {
				bit := evalPredicate(p, srow[x+i], int(lrow[x+i]), int(hrow[x+i]))
				acc |= word.Insert[W](uint64(bit), i, 1)
			}
			word.Store[W](drow[wi*wb:], acc)
			x += n
		}
	}
}

// ToBin is the 8-bit to binary type conversion, the GT(127) special case
// (spec.md §4.4).
func ToBin[W word.Unsigned](dst []byte, dstDim int, src []byte, srcDim, width, height int) {
	ThreshToBin[W](GT, dst, dstDim, src, srcDim, srcDim, 127, 0, width, height)
}

// reverse4 bit-reverses a 4-bit value, used to translate between a raw
// byte's physical nibbles and its two logical (raster-order) nibbles on
// big-endian hosts (see loHiNibbles).
func reverse4(n byte) byte {
	n = n&0x1<<3 | n&0x2<<1 | n&0x4>>1 | n&0x8>>3
	return n
}

// loHiNibbles splits a raw packed-binary byte into its two logical nibbles
// in raster order (positions 0-3, then 4-7), independent of platform bit
// packing. On little-endian hosts logical and physical nibble order
// coincide; on big-endian hosts each physical nibble is read starting from
// its high bit, so it is bit-reversed first.
func loHiNibbles(b byte) (lo, hi byte) {
	if platform.BigEndian {
		return reverse4(b >> 4), reverse4(b & 0xF)
	}
	return b & 0xF, b >> 4
}

// ToU8 is the binary to 8-bit type conversion: every set source bit becomes
// 0xFF, every clear bit 0x00, expanded four bits at a time through
// rtab.NibbleExpand (spec.md §4.4).
func ToU8(dst []byte, dstDim int, src []byte, srcDim, width, height int) {
	for y := 0; y < height; y++ {
		srow := src[y*srcDim:]
		drow := dst[y*dstDim:]
		x := 0
		byteIdx := 0
		for x < width {
			lo, hi := loHiNibbles(srow[byteIdx])
			byteIdx++
			expLo := rtab.NibbleExpand[lo]
			expHi := rtab.NibbleExpand[hi]
			for i := 0; i < 4 && x < width; i, x = i+1, x+1 {
				drow[x] = byte(expLo >> uint(8*i))
			}
			for i := 0; i < 4 && x < width; i, x = i+1, x+1 {
				drow[x] = byte(expHi >> uint(8*i))
			}
		}
	}
}

package kernel

import (
	"github.com/rappcompute/rapp/internal/rtab"
	"github.com/rappcompute/rapp/internal/word"
)

// CondOp names one of the pixel operations the cond kernels gate on a mask
// bit (spec.md §4.5). Set/AddConst/SubConst are single-operand (a constant
// is supplied per call); Copy/Add are double-operand (a second source
// raster supplies the value).
type CondOp int

const (
	CondSet CondOp = iota
	CondAddConst
	CondSubConst
	CondCopy
	CondAdd
)

func satAdd(a, b int) uint8 {
	v := a + b
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func satSub(a, b int) uint8 {
	v := a - b
	if v < 0 {
		return 0
	}
	return uint8(v)
}

func applyCondPixel(op CondOp, old, src uint8, arg int) uint8 {
	switch op {
	case CondSet:
		return uint8(arg)
	case CondAddConst:
		return satAdd(int(old), arg)
	case CondSubConst:
		return satSub(int(old), arg)
	case CondCopy:
		return src
	default: // CondAdd
		return satAdd(int(old), int(src))
	}
}

// CondWord applies op to one 8-byte-per-word run of 8-bit pixels gated by
// the bits of mask, using the word/byte/nibble fast-path decomposition
// described in spec.md §4.5: an all-zero mask word is skipped outright, an
// all-ones mask word applies unconditionally, and a mixed word is processed
// byte by byte (and, within a mixed byte, nibble by nibble via
// rtab.NibbleExpand, which doubles as the "apply where set" byte-lane mask).
func CondWord[W word.Unsigned](op CondOp, mask W, dst, src []byte, arg int) {
	switch mask {
	case word.Zero[W]():
		return
	case word.One[W]():
		for i := range dst {
			var s uint8
			if src != nil {
				s = src[i]
			}
			dst[i] = applyCondPixel(op, dst[i], s, arg)
		}
		return
	}

	wb := word.Bytes[W]()
	for b := 0; b < wb; b++ {
		maskByte := byte(word.Extract[W](mask, b*8, 8))
		if maskByte == 0 {
			continue
		}
		if maskByte == 0xFF {
			for i := b * 8; i < b*8+8; i++ {
				var s uint8
				if src != nil {
					s = src[i]
				}
				dst[i] = applyCondPixel(op, dst[i], s, arg)
			}
			continue
		}
		lo, hi := loHiNibbles(maskByte)
		applyMaskedNibble(op, rtab.NibbleExpand[lo], dst[b*8:b*8+4], src, b*8, arg)
		applyMaskedNibble(op, rtab.NibbleExpand[hi], dst[b*8+4:b*8+8], src, b*8+4, arg)
	}
}

func applyMaskedNibble(op CondOp, laneMask uint32, dst []byte, src []byte, srcBase, arg int) {
	for i := 0; i < 4; i++ {
		if byte(laneMask>>uint(8*i)) == 0 {
			continue
		}
		var s uint8
		if src != nil {
			s = src[srcBase+i]
		}
		dst[i] = applyCondPixel(op, dst[i], s, arg)
	}
}

// Cond applies op over a full raster: maskBuf is a packed-binary raster,
// dst (and, for the double-operand ops, src) an 8-bit raster, all of shape
// width x height. arg is the constant for CondSet/CondAddConst/CondSubConst
// and is ignored otherwise.
func Cond[W word.Unsigned](op CondOp, maskBuf []byte, maskDim int, dst []byte, dstDim int, src []byte, srcDim int, width, height, arg int) {
	wbits := word.Bits[W]()
	wb := word.Bytes[W]()
	wordsPerRow := (width + wbits - 1) / wbits

	for y := 0; y < height; y++ {
		mrow := maskBuf[y*maskDim:]
		drow := dst[y*dstDim:]
		var srow []byte
		if src != nil {
			srow = src[y*srcDim:]
		}
		for wi := 0; wi < wordsPerRow; wi++ {
			m := word.Load[W](mrow[wi*wb:])
			x := wi * wbits
			n := wbits
			if x+n > width {
				n = width - x
			}
			var s []byte
			if srow != nil {
				s = srow[x : x+n]
			}
			if n == wbits {
				CondWord[W](op, m, drow[x:x+n], s, arg)
			} else {
				condTail[W](op, m, drow[x:x+n], s, n, arg)
			}
		}
	}
}

func condTail[W word.Unsigned](op CondOp, m W, dst, src []byte, n, arg int) {
	for i := 0; i < n; i++ {
		if word.Extract[W](m, i, 1) == 0 {
			continue
		}
		var s uint8
		if src != nil {
			s = src[i]
		}
		dst[i] = applyCondPixel(op, dst[i], s, arg)
	}
}

// Package rtab holds the static lookup tables shared by the kernels in
// internal/kernel: byte bitcounts, the nibble-to-32-bit expansion table, the
// 2x-reduction byte permutation, the 2x-expansion nibble-to-halfword table,
// the crop nibble CLZ/CTZ tables, and the per-byte moment x-sum/x²-sum
// tables (spec.md "Static tables" component). There are no contour tables.
//
// Every table here except the two crop nibble tables (checked in as literal
// arrays) is computed once at package init time from its defining formula,
// the same pattern the
// teacher's internal/dsp/cliptables.go uses for its clip/abs tables and
// internal/dsp/dsp.go uses for its macroblock scan table.
package rtab

import "math/bits"

// Bitcount holds, for each byte value b, popcount(b).
var Bitcount [256]uint8

// NibbleExpand holds, for each 4-bit nibble n (0-15), a 32-bit pattern of
// four 0x00/0xFF bytes: byte i (value bits 8i..8i+7, so byte 0 is the least
// significant) is 0xFF iff bit i of n is set. Used by the binary→8-bit type
// conversion to expand 4 packed bits into 4 full bytes (spec.md §4.4).
var NibbleExpand [16]uint32

// NibbleDup holds, for each 4-bit nibble n, a 16-bit halfword where bit i of
// n is duplicated into bits 2i and 2i+1 — the 2x binary expansion primitive
// (spec.md §4.6), generalized here to nibble granularity (the original's
// 256-entry byte table is the concatenation of two of these).
var NibbleDup [16]uint16

// BytePermuteEven holds, for each byte value b, b's bits reordered from
// positions (0,1,2,3,4,5,6,7) to (0,2,4,6,1,3,5,7) — i.e. the four even-
// indexed source bits packed into the low nibble of the result and the four
// odd-indexed source bits packed into the high nibble (spec.md §4.6's 2x
// reduction permutation). Bit 0 is the word's logical position 0 within the
// byte (the byte's first pixel in raster order), independent of machine
// byte order — callers extract bytes from a word with Extract, which is
// already endian-neutral, before indexing this table.
var BytePermuteEven [256]uint8

// CropCLZ4 and CropCTZ4 give, for a 4-bit nibble n (0-15), the count of
// leading (resp. trailing) zero bits, saturating at 4 for n == 0. These are
// the crop/bounding-box "first/last set pixel within a nibble" tables
// (spec.md §4.8), carried over verbatim from rc_crop.c's rc_crop_clz_tab /
// rc_crop_ctz_tab.
var CropCLZ4 = [16]uint8{4, 3, 2, 2, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0}
var CropCTZ4 = [16]uint8{4, 0, 1, 0, 2, 0, 1, 0, 3, 0, 1, 0, 2, 0, 1, 0}

// MomentXSum8 holds, for each byte value b, the sum of the logical bit
// positions (0-7, position 0 = the byte's first pixel in raster order) at
// which b has a set bit. MomentXSumSq8 holds the sum of the squares of
// those positions. Used by the first/second-order binary moment kernels
// (spec.md §4.11) to accumulate a byte's contribution to Σx/Σx² in one
// table lookup instead of a per-bit loop.
var MomentXSum8 [256]uint16
var MomentXSumSq8 [256]uint16

func init() {
	for b := 0; b < 256; b++ {
		Bitcount[b] = uint8(bits.OnesCount8(uint8(b)))

		var xsum, xsumsq uint16
		for pos := 0; pos < 8; pos++ {
			if b&(1<<uint(pos)) != 0 {
				xsum += uint16(pos)
				xsumsq += uint16(pos * pos)
			}
		}
		MomentXSum8[b] = xsum
		MomentXSumSq8[b] = xsumsq

		var perm uint8
		for pos := 0; pos < 8; pos++ {
			if b&(1<<uint(pos)) == 0 {
				continue
			}
			var dst int
			if pos%2 == 0 {
				dst = pos / 2 // even source bits -> low nibble, in order
			} else {
				dst = 4 + pos/2 // odd source bits -> high nibble, in order
			}
			perm |= 1 << uint(dst)
		}
		BytePermuteEven[b] = perm
	}

	for n := 0; n < 16; n++ {
		var exp uint32
		var dup uint16
		for i := 0; i < 4; i++ {
			if n&(1<<uint(i)) != 0 {
				exp |= 0xFF << uint(8*i)
				dup |= 0b11 << uint(2*i)
			}
		}
		NibbleExpand[n] = exp
		NibbleDup[n] = dup
	}
}

package kernel

import (
	"math/bits"

	"github.com/rappcompute/rapp/internal/rtab"
	"github.com/rappcompute/rapp/raster"
)

// SumU8 adds every pixel of r into a 64-bit accumulator, row by row, so a
// single row's worth of 8-bit pixels (at most 255*65535, comfortably within
// a narrower running total) never overflows before being folded into the
// wider total — the same "per-row temporary, widen on fold" shape spec.md
// §4.11 describes for the unrolled C accumulator.
func SumU8(src raster.U8) uint64 {
	var total uint64
	for y := 0; y < src.Height; y++ {
		row := src.Row(y)
		var rowSum uint32
		for _, v := range row {
			rowSum += uint32(v)
		}
		total += uint64(rowSum)
	}
	return total
}

// SumSqU8 adds the square of every pixel of r.
func SumSqU8(src raster.U8) uint64 {
	var total uint64
	for y := 0; y < src.Height; y++ {
		row := src.Row(y)
		var rowSum uint64
		for _, v := range row {
			rowSum += uint64(v) * uint64(v)
		}
		total += rowSum
	}
	return total
}

// CrossSumU8 adds the product a[i]*b[i] over every pixel of two equal-shape
// rasters (spec.md §4.11 "cross sums").
func CrossSumU8(a, b raster.U8) uint64 {
	var total uint64
	for y := 0; y < a.Height; y++ {
		arow, brow := a.Row(y), b.Row(y)
		var rowSum uint64
		for i := range arow {
			rowSum += uint64(arow[i]) * uint64(brow[i])
		}
		total += rowSum
	}
	return total
}

// MinU8 and MaxU8 are a scalar reduction over every pixel of src.
func MinU8(src raster.U8) uint8 {
	m := uint8(255)
	for y := 0; y < src.Height; y++ {
		for _, v := range src.Row(y) {
			if v < m {
				m = v
			}
		}
	}
	return m
}

func MaxU8(src raster.U8) uint8 {
	var m uint8
	for y := 0; y < src.Height; y++ {
		for _, v := range src.Row(y) {
			if v > m {
				m = v
			}
		}
	}
	return m
}

// SumBin counts the set pixels of a packed-binary raster (the N term of
// spec.md's moment tuple), using rtab.Bitcount to turn each packed byte
// into a count in one lookup instead of a per-bit loop.
func SumBin(src raster.Bin) int {
	n := 0
	for y := 0; y < src.Height; y++ {
		for _, b := range src.Row(y) {
			n += int(rtab.Bitcount[b])
		}
	}
	return n
}

// MinBin and MaxBin are the binary analogues of MinU8/MaxU8. MaxBin is 1 iff
// any byte of a row's Row(y) slice is non-zero, tested byte by byte. MinBin
// is 1 iff every in-bounds pixel is set, tested pixel by pixel with GetBin,
// so row padding beyond width never forces a false zero.
func MaxBin(src raster.Bin) int {
	for y := 0; y < src.Height; y++ {
		row := src.Row(y)
		for _, b := range row {
			if b != 0 {
				return 1
			}
		}
	}
	return 0
}

func MinBin(bigEndian bool, src raster.Bin) int {
	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			if src.GetBin(bigEndian, x, y) == 0 {
				return 0
			}
		}
	}
	return 1
}

// Moments1 is the first-order binary moment tuple (N, Sx, Sy) from spec.md
// §3/§4.11: N counts set pixels, Sx/Sy sum the x/y coordinates of each set
// pixel. Per-byte contributions use rtab.MomentXSum8 so a whole byte's x
// positions fold in one lookup; the byte's base x and the row's y scale
// that lookup's bit count and sum respectively.
func Moments1(bigEndian bool, src raster.Bin) (n, sx, sy int64) {
	for y := 0; y < src.Height; y++ {
		row := src.Row(y)
		var rowN, rowSx int64
		for bi, b := range row {
			if b == 0 {
				continue
			}
			base := bi * 8
			cnt := int64(rtab.Bitcount[b])
			rowN += cnt
			rowSx += int64(base)*cnt + int64(momentXSum(bigEndian, b))
		}
		n += rowN
		sx += rowSx
		sy += rowN * int64(y)
	}
	return
}

// Moments2 extends Moments1 with second-order sums (Sx2, Sy2, Sxy), per
// spec.md §8 property 8: Moments2's N and Sx/Sy terms always agree with
// Moments1's.
func Moments2(bigEndian bool, src raster.Bin) (n, sx, sy, sx2, sy2, sxy int64) {
	for y := 0; y < src.Height; y++ {
		row := src.Row(y)
		var rowN, rowSx, rowSx2 int64
		for bi, b := range row {
			if b == 0 {
				continue
			}
			base := int64(bi * 8)
			cnt := int64(rtab.Bitcount[b])
			xs := int64(momentXSum(bigEndian, b))
			xsq := int64(momentXSumSq(bigEndian, b))
			rowN += cnt
			rowSx += base*cnt + xs
			// Sum (base+i)^2 = base^2*cnt + 2*base*xs + xsq.
			rowSx2 += base*base*cnt + 2*base*xs + xsq
		}
		n += rowN
		sx += rowSx
		sx2 += rowSx2
		sy += rowN * int64(y)
		sy2 += rowN * int64(y) * int64(y)
		sxy += rowSx * int64(y)
	}
	return
}

// momentXSum/momentXSumSq read rtab's per-byte x-position tables in raster
// (logical) bit order regardless of platform packing: on little-endian
// hosts physical and logical bit order coincide, so the raw byte indexes
// the table directly; on big-endian hosts the byte is bit-reversed first
// (spec.md §4.11: "endian-specific" tables).
func momentXSum(bigEndian bool, b byte) uint16 {
	if bigEndian {
		return rtab.MomentXSum8[bits.Reverse8(b)]
	}
	return rtab.MomentXSum8[b]
}

func momentXSumSq(bigEndian bool, b byte) uint16 {
	if bigEndian {
		return rtab.MomentXSumSq8[bits.Reverse8(b)]
	}
	return rtab.MomentXSumSq8[b]
}

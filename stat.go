package rapp

import (
	"github.com/rappcompute/rapp/internal/kernel"
	"github.com/rappcompute/rapp/raster"
)

// SumU8, SumSqU8 and CrossSumU8 accumulate sums, sums of squares and cross
// sums over 8-bit rasters (spec.md §4.11).
func SumU8(src raster.U8) uint64       { return kernel.SumU8(src) }
func SumSqU8(src raster.U8) uint64     { return kernel.SumSqU8(src) }
func CrossSumU8(a, b raster.U8) uint64 { return kernel.CrossSumU8(a, b) }
func MinU8(src raster.U8) uint8        { return kernel.MinU8(src) }
func MaxU8(src raster.U8) uint8        { return kernel.MaxU8(src) }

// SumBin counts set pixels in a packed-binary raster.
func SumBin(src raster.Bin) int { return kernel.SumBin(src) }

// MinBin is 1 iff every pixel of src is set; MaxBin is 1 iff any pixel is
// set (spec.md §4.11).
func MinBin(bigEndian bool, src raster.Bin) int { return kernel.MinBin(bigEndian, src) }
func MaxBin(src raster.Bin) int                 { return kernel.MaxBin(src) }

// Moments1 returns the first-order binary moment tuple (N, Sx, Sy): N
// counts set pixels, Sx/Sy sum the x/y coordinates of each set pixel
// (spec.md §3, §4.11, §8 property 8).
func Moments1(bigEndian bool, src raster.Bin) (n, sx, sy int64) {
	return kernel.Moments1(bigEndian, src)
}

// Moments2 extends Moments1 with second-order sums (Sx2, Sy2, Sxy).
func Moments2(bigEndian bool, src raster.Bin) (n, sx, sy, sx2, sy2, sxy int64) {
	return kernel.Moments2(bigEndian, src)
}

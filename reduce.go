package rapp

import (
	"github.com/rappcompute/rapp/internal/kernel"
	"github.com/rappcompute/rapp/raster"
)

// Reduce1x2Bin, Reduce2x1Bin and Reduce2x2Bin are the 2x binary spatial
// reductions (spec.md §4.6): dst must already be sized to half src's width
// (1x2), half its height (2x1), or both (2x2). Reduce2x2Bin's rank selects
// how many of the four source bits must be set for the output bit to be
// set.
func Reduce1x2Bin(bigEndian bool, dst, src raster.Bin) { kernel.Reduce1x2Bin(bigEndian, dst, src) }
func Reduce2x1Bin(bigEndian bool, dst, src raster.Bin) { kernel.Reduce2x1Bin(bigEndian, dst, src) }
func Reduce2x2Bin(bigEndian bool, rank Rank, dst, src raster.Bin) {
	kernel.Reduce2x2Bin(bigEndian, rank, dst, src)
}

// Expand1x2Bin, Expand2x1Bin and Expand2x2Bin invert the corresponding
// reductions (spec.md §4.6): dst must already be sized to double src's
// width (1x2), height (2x1), or both (2x2).
func Expand1x2Bin(bigEndian bool, dst, src raster.Bin) { kernel.Expand1x2Bin(bigEndian, dst, src) }
func Expand2x1Bin(bigEndian bool, dst, src raster.Bin) { kernel.Expand2x1Bin(bigEndian, dst, src) }
func Expand2x2Bin(bigEndian bool, dst, src raster.Bin) { kernel.Expand2x2Bin(bigEndian, dst, src) }

// Reduce1x2U8, Reduce2x1U8 and Reduce2x2U8 are the 8-bit analogues
// (spec.md §4.6).
func Reduce1x2U8(dst, src raster.U8) { kernel.Reduce1x2U8(dst, src) }
func Reduce2x1U8(dst, src raster.U8) { kernel.Reduce2x1U8(dst, src) }
func Reduce2x2U8(dst, src raster.U8) { kernel.Reduce2x2U8(dst, src) }

// Expand1x2U8, Expand2x1U8 and Expand2x2U8 are the 8-bit analogues.
func Expand1x2U8(dst, src raster.U8) { kernel.Expand1x2U8(dst, src) }
func Expand2x1U8(dst, src raster.U8) { kernel.Expand2x1U8(dst, src) }
func Expand2x2U8(dst, src raster.U8) { kernel.Expand2x2U8(dst, src) }

// RotateCWU8 and RotateCCWU8 rotate an 8-bit raster 90 degrees (spec.md
// §4.6); dst must already be sized height x width relative to src.
func RotateCWU8(dst, src raster.U8)  { kernel.RotateCWU8(dst, src) }
func RotateCCWU8(dst, src raster.U8) { kernel.RotateCCWU8(dst, src) }

// RotateCWBin and RotateCCWBin are the packed-binary analogues.
func RotateCWBin(bigEndian bool, dst, src raster.Bin)  { kernel.RotateCWBin(bigEndian, dst, src) }
func RotateCCWBin(bigEndian bool, dst, src raster.Bin) { kernel.RotateCCWBin(bigEndian, dst, src) }

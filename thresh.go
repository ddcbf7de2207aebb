package rapp

import (
	"github.com/rappcompute/rapp/internal/kernel"
	"github.com/rappcompute/rapp/platform"
)

// ThreshToBin applies a fixed-threshold predicate to an 8-bit source
// raster, producing a packed-binary destination (spec.md §4.4). t and tHi
// are only consulted by the predicates that use them.
func ThreshToBin(p Predicate, dst []byte, dstDim int, src []byte, srcDim, srcWidthBytes, t, tHi, width, height int) {
	switch platform.NativeWordBytes {
	case 2:
		kernel.ThreshToBin[uint16](p, dst, dstDim, src, srcDim, srcWidthBytes, t, tHi, width, height)
	case 4:
		kernel.ThreshToBin[uint32](p, dst, dstDim, src, srcDim, srcWidthBytes, t, tHi, width, height)
	default:
		kernel.ThreshToBin[uint64](p, dst, dstDim, src, srcDim, srcWidthBytes, t, tHi, width, height)
	}
}

// ThreshToBinPixelwise is the per-pixel-threshold variant (spec.md §4.4,
// folded in from original_source/ per SPEC_FULL.md §12): tLo/tHi are
// rasters of the source's shape rather than scalars.
func ThreshToBinPixelwise(p Predicate, dst []byte, dstDim int, src []byte, srcDim int, tLo, tHi []byte, tDim, width, height int) {
	switch platform.NativeWordBytes {
	case 2:
		kernel.ThreshToBinPixelwise[uint16](p, dst, dstDim, src, srcDim, tLo, tHi, tDim, width, height)
	case 4:
		kernel.ThreshToBinPixelwise[uint32](p, dst, dstDim, src, srcDim, tLo, tHi, tDim, width, height)
	default:
		kernel.ThreshToBinPixelwise[uint64](p, dst, dstDim, src, srcDim, tLo, tHi, tDim, width, height)
	}
}

// ToBin is the 8-bit to binary type conversion: GT(127) (spec.md §4.4).
func ToBin(dst []byte, dstDim int, src []byte, srcDim, width, height int) {
	switch platform.NativeWordBytes {
	case 2:
		kernel.ToBin[uint16](dst, dstDim, src, srcDim, width, height)
	case 4:
		kernel.ToBin[uint32](dst, dstDim, src, srcDim, width, height)
	default:
		kernel.ToBin[uint64](dst, dstDim, src, srcDim, width, height)
	}
}

// ToU8 is the binary to 8-bit type conversion: every set source bit becomes
// 0xFF, every clear bit 0x00 (spec.md §4.4).
func ToU8(dst []byte, dstDim int, src []byte, srcDim, width, height int) {
	kernel.ToU8(dst, dstDim, src, srcDim, width, height)
}

package rapp

import (
	"github.com/rappcompute/rapp/internal/kernel"
	"github.com/rappcompute/rapp/platform"
)

func rop2wordName(rop ROP) string {
	names := [...]string{"copy", "not", "and", "or", "xor", "nand", "nor", "xnor", "andn", "orn", "nandn", "norn"}
	if int(rop) < 0 || int(rop) >= len(names) {
		return "unknown"
	}
	return names[rop]
}

// BlitAlignedBin applies rop word-by-word across a word-aligned binary
// raster pair: dst = ROP(dst, src) at every pixel (spec.md §4.3). Both
// buffers and both row strides must be word-aligned to platform.Alignment.
func BlitAlignedBin(rop ROP, dst []byte, dstDim int, src []byte, srcDim, width, height int) {
	name := "blit_aligned_" + rop2wordName(rop) + "_bin"
	unroll := unrollFor(name)
	switch platform.NativeWordBytes {
	case 2:
		kernel.BlitAlignedBin[uint16](rop, dst, dstDim, src, srcDim, width, height, unroll)
	case 4:
		kernel.BlitAlignedBin[uint32](rop, dst, dstDim, src, srcDim, width, height, unroll)
	default:
		kernel.BlitAlignedBin[uint64](rop, dst, dstDim, src, srcDim, width, height, unroll)
	}
}

// BlitMisalignedBin is BlitAlignedBin's misaligned-source counterpart
// (spec.md §4.3): srcBitShift is the source row's combined pointer- and
// bit-offset misalignment, in logical bit positions. The destination must
// still be word-aligned.
func BlitMisalignedBin(rop ROP, dst []byte, dstDim int, src []byte, srcDim, srcBitShift, width, height int) {
	name := "blit_misaligned_" + rop2wordName(rop) + "_bin"
	unroll := unrollFor(name)
	switch platform.NativeWordBytes {
	case 2:
		kernel.BlitMisalignedBin[uint16](rop, dst, dstDim, src, srcDim, srcBitShift, width, height, unroll)
	case 4:
		kernel.BlitMisalignedBin[uint32](rop, dst, dstDim, src, srcDim, srcBitShift, width, height, unroll)
	default:
		kernel.BlitMisalignedBin[uint64](rop, dst, dstDim, src, srcDim, srcBitShift, width, height, unroll)
	}
}

package rapp

import (
	"github.com/rappcompute/rapp/internal/kernel"
	"github.com/rappcompute/rapp/platform"
)

// Cond applies op over a full raster, gated by a packed-binary mask
// (spec.md §4.5): maskBuf/maskDim address the mask, dst/dstDim the 8-bit
// destination, src/srcDim the optional second 8-bit operand (pass nil for
// the single-operand ops CondSet/CondAddConst/CondSubConst). arg is the
// constant for the single-operand ops and is ignored otherwise. Per
// SPEC_FULL.md §12 (Open Question b in spec.md §9), CondAdd reads its value
// from src, not from arg — callers must supply src for it.
func Cond(op CondOp, maskBuf []byte, maskDim int, dst []byte, dstDim int, src []byte, srcDim, width, height, arg int) {
	switch platform.NativeWordBytes {
	case 2:
		kernel.Cond[uint16](op, maskBuf, maskDim, dst, dstDim, src, srcDim, width, height, arg)
	case 4:
		kernel.Cond[uint32](op, maskBuf, maskDim, dst, dstDim, src, srcDim, width, height, arg)
	default:
		kernel.Cond[uint64](op, maskBuf, maskDim, dst, dstDim, src, srcDim, width, height, arg)
	}
}

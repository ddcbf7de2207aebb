package rapp

import (
	"github.com/rappcompute/rapp/internal/kernel"
	"github.com/rappcompute/rapp/raster"
)

// IntegralU8U16 and IntegralU8U32 compute an 8-bit source raster's integral
// image into a u16 or u32 destination, the caller's choice driven by the
// image's maximum possible pixel sum (spec.md §4.12, §3).
func IntegralU8U16(dst []uint16, dstDim int, src raster.U8) {
	kernel.IntegralU8[uint16](dst, dstDim, src)
}
func IntegralU8U32(dst []uint32, dstDim int, src raster.U8) {
	kernel.IntegralU8[uint32](dst, dstDim, src)
}

// IntegralBinU8, IntegralBinU16 and IntegralBinU32 compute a packed-binary
// source raster's integral image into a u8, u16 or u32 destination
// (spec.md §4.12).
func IntegralBinU8(bigEndian bool, dst []uint8, dstDim int, src raster.Bin) {
	kernel.IntegralBin[uint8](bigEndian, dst, dstDim, src)
}
func IntegralBinU16(bigEndian bool, dst []uint16, dstDim int, src raster.Bin) {
	kernel.IntegralBin[uint16](bigEndian, dst, dstDim, src)
}
func IntegralBinU32(bigEndian bool, dst []uint32, dstDim int, src raster.Bin) {
	kernel.IntegralBin[uint32](bigEndian, dst, dstDim, src)
}

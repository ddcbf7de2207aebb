package rapp

import (
	"github.com/rappcompute/rapp/internal/kernel"
	"github.com/rappcompute/rapp/raster"
)

// GatherBin packs every source bit whose corresponding mask bit is set into
// dst, tightly packed in raster order; ScatterBin is its inverse. Both
// return the number of pixels transferred (spec.md §4.13, §7).
func GatherBin(bigEndian bool, dst []byte, mask, src raster.Bin) int {
	return kernel.GatherBin(bigEndian, dst, mask, src)
}
func ScatterBin(bigEndian bool, dst raster.Bin, mask raster.Bin, src []byte) int {
	return kernel.ScatterBin(bigEndian, dst, mask, src)
}

// GatherU8 and ScatterU8 are the 8-bit analogues, copying whole bytes
// instead of bits (spec.md §4.13).
func GatherU8(bigEndian bool, dst []byte, mask raster.Bin, src raster.U8) int {
	return kernel.GatherU8(bigEndian, dst, mask, src)
}
func ScatterU8(bigEndian bool, dst raster.U8, mask raster.Bin, src []byte) int {
	return kernel.ScatterU8(bigEndian, dst, mask, src)
}

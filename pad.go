package rapp

import (
	"github.com/rappcompute/rapp/internal/kernel"
	"github.com/rappcompute/rapp/raster"
)

// PadLeftRowU8 and PadRightRowU8 fill a pad buffer with either a constant
// value or a replica of the adjacent row edge pixel (spec.md §4.14).
func PadLeftRowU8(mode PadMode, padBuf, row []byte, value uint8) {
	kernel.PadLeftRowU8(mode, padBuf, row, value)
}
func PadRightRowU8(mode PadMode, padBuf, row []byte, value uint8) {
	kernel.PadRightRowU8(mode, padBuf, row, value)
}

// PadLeftBin and PadRightBin are the packed-binary analogues (spec.md
// §4.14): padBuf and srcRow are addressed with the same row index y, and
// only row y of padBuf is written.
func PadLeftBin(bigEndian bool, mode PadMode, padBuf raster.Bin, y int, srcRow raster.Bin, value int) {
	kernel.PadLeftBin(bigEndian, mode, padBuf, y, srcRow, value)
}
func PadRightBin(bigEndian bool, mode PadMode, padBuf raster.Bin, y int, srcRow raster.Bin, value int) {
	kernel.PadRightBin(bigEndian, mode, padBuf, y, srcRow, value)
}

// MarginH computes the horizontal margin: one output row that is the
// column-wise OR of every row of src. MarginV computes the vertical
// margin: one output bit per source row indicating whether that row has
// any set pixel (spec.md §4.14).
func MarginH(bigEndian bool, dst, src raster.Bin) { kernel.MarginH(bigEndian, dst, src) }
func MarginV(bigEndian bool, dst, src raster.Bin) { kernel.MarginV(bigEndian, dst, src) }

package kernel

import "github.com/rappcompute/rapp/raster"

// PadMode selects how padding pixels are synthesized (spec.md §4.14).
type PadMode int

const (
	PadConst PadMode = iota // writes a fixed value
	PadClamp                // replicates the edge pixel
)

// PadLeftRowU8 writes n pad pixels into padBuf (len n) immediately to the
// left of row, the pad-buffer-is-separate-from-the-image shape every caller
// actually uses (row-dim arithmetic for "negative columns" is error-prone
// in Go slices, so the pad buffer is passed explicitly instead of aliased
// into the source raster's backing array).
func PadLeftRowU8(mode PadMode, padBuf []byte, row []byte, value uint8) {
	v := value
	if mode == PadClamp && len(row) > 0 {
		v = row[0]
	}
	for i := range padBuf {
		padBuf[i] = v
	}
}

// PadRightRowU8 is PadLeftRowU8's mirror: pad pixels immediately to the
// right of row.
func PadRightRowU8(mode PadMode, padBuf []byte, row []byte, value uint8) {
	v := value
	if mode == PadClamp && len(row) > 0 {
		v = row[len(row)-1]
	}
	for i := range padBuf {
		padBuf[i] = v
	}
}

// PadLeftBin and PadRightBin are the packed-binary analogues. padBuf is a
// raster.Bin of width n pixels and Off matching the caller's chosen packing
// for the pad region (it need not equal the source row's Off). Clamp mode
// replicates the source row's edge pixel into every pad pixel; const mode
// writes value (0 or 1) into every pad pixel. The partial-first/last-word
// masking spec.md §4.14 describes is handled for free here since SetBin
// already only ever touches the one bit it addresses.
func PadLeftBin(bigEndian bool, mode PadMode, padBuf raster.Bin, y int, srcRow raster.Bin, value int) {
	v := value
	if mode == PadClamp {
		v = srcRow.GetBin(bigEndian, 0, y)
	}
	for x := 0; x < padBuf.Width; x++ {
		padBuf.SetBin(bigEndian, x, y, v)
	}
}

func PadRightBin(bigEndian bool, mode PadMode, padBuf raster.Bin, y int, srcRow raster.Bin, value int) {
	v := value
	if mode == PadClamp {
		v = srcRow.GetBin(bigEndian, srcRow.Width-1, y)
	}
	for x := 0; x < padBuf.Width; x++ {
		padBuf.SetBin(bigEndian, x, y, v)
	}
}

// MarginH computes the "union of rows" horizontal margin (spec.md §4.14): a
// single output row, width pixels wide, whose bit x is the OR of src's
// column x across every row.
func MarginH(bigEndian bool, dst raster.Bin, src raster.Bin) {
	for x := 0; x < src.Width; x++ {
		v := 0
		for y := 0; y < src.Height; y++ {
			if src.GetBin(bigEndian, x, y) != 0 {
				v = 1
				break
			}
		}
		dst.SetBin(bigEndian, x, 0, v)
	}
}

// MarginV computes the vertical margin: one output bit per source row,
// indicating whether that row has any set pixel at all (the "OR all words
// within a row" reduction of spec.md §4.14).
func MarginV(bigEndian bool, dst raster.Bin, src raster.Bin) {
	for y := 0; y < src.Height; y++ {
		v := 0
		for _, b := range src.Row(y) {
			if b != 0 {
				v = 1
				break
			}
		}
		dst.SetBin(bigEndian, y, 0, v)
	}
}

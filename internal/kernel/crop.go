package kernel

import "github.com/rappcompute/rapp/internal/rtab"

// Seek scans a packed-binary buffer in raster order (row-major, byte by
// byte) and returns the flat bit index of the first set pixel and true, or
// (0, false) if the buffer is entirely zero (spec.md §4.8).
func Seek(buf []byte) (int, bool) {
	for i, b := range buf {
		if b == 0 {
			continue
		}
		lo, hi := loHiNibbles(b)
		if lo != 0 {
			return seekBitInNibble(i, 0, lo), true
		}
		return seekBitInNibble(i, 4, hi), true
	}
	return 0, false
}

// seekBitInNibble returns the flat bit index of the first set bit within
// nibble n (found at byte index i, base offset 0 for the low nibble or 4
// for the high nibble). In raster order, logical position 0 is the lowest
// bit, so the first set position is the nibble's trailing-zero count.
func seekBitInNibble(i, base int, n byte) int {
	return i*8 + base + int(rtab.CropCTZ4[n])
}

// Box scans buf for the tight bounding box of its set pixels, returning
// (x, y, w, h, true), or (0,0,0,0,false) if the buffer is entirely zero
// (spec.md §4.8). width/height are in pixels; dim is the row stride in
// bytes.
func Box(bigEndian bool, buf []byte, dim, width, height int) (x, y, w, h int, ok bool) {
	ymin, ymax := -1, -1
	for row := 0; row < height; row++ {
		if rowNonEmpty(buf[row*dim : row*dim+dim]) {
			if ymin < 0 {
				ymin = row
			}
			ymax = row
		}
	}
	if ymin < 0 {
		return 0, 0, 0, 0, false
	}

	xmin, xmax := -1, -1
	for col := 0; col < width; col++ {
		set := false
		for row := ymin; row <= ymax; row++ {
			byteIdx := col >> 3
			bit := byte(1) << uint(col&7)
			if bigEndian {
				bit = byte(1) << uint(7-col&7)
			}
			if buf[row*dim+byteIdx]&bit != 0 {
				set = true
				break
			}
		}
		if set {
			if xmin < 0 {
				xmin = col
			}
			xmax = col
		}
	}

	return xmin, ymin, xmax - xmin + 1, ymax - ymin + 1, true
}

func rowNonEmpty(row []byte) bool {
	for _, b := range row {
		if b != 0 {
			return true
		}
	}
	return false
}

package rapp

import "github.com/rappcompute/rapp/internal/kernel"

// Seek scans a packed-binary buffer in raster order and returns the flat
// bit index of the first set pixel and true, or (0, false) if the buffer is
// entirely zero (spec.md §4.8, §7).
func Seek(buf []byte) (pos int, ok bool) {
	return kernel.Seek(buf)
}

// Box returns the tight bounding box (x, y, w, h) of a binary raster's set
// pixels, or ok=false if it is entirely empty (spec.md §4.8, §7).
func Box(bigEndian bool, buf []byte, dim, width, height int) (x, y, w, h int, ok bool) {
	return kernel.Box(bigEndian, buf, dim, width, height)
}

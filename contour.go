package rapp

import (
	"github.com/rappcompute/rapp/internal/kernel"
	"github.com/rappcompute/rapp/raster"
)

// Contour traces the chain code of the first connected foreground component
// encountered in raster order (spec.md §4.9). It returns the untruncated
// chain length; out is filled up to len(out) and never overrun — the
// caller detects truncation by comparing the return value against len(out)
// (spec.md §7).
func Contour(bigEndian bool, conn Conn, src raster.Bin, out []byte) int {
	return kernel.Contour(bigEndian, conn, src, out)
}

// Rasterize produces the chain code of the discrete Bresenham line from
// (x0,y0) to (x1,y1) (spec.md §4.10), with the same untruncated-length
// contract as Contour.
func Rasterize(conn Conn, x0, y0, x1, y1 int, out []byte) int {
	return kernel.Rasterize(conn, x0, y0, x1, y1, out)
}

package kernel

import "github.com/rappcompute/rapp/raster"

// dir is a chain-code direction: a (dx,dy) step and its ASCII digit.
type dir struct{ dx, dy int }

// dirs8 lists the eight Freeman directions in clockwise screen order
// (y increasing downward) starting from East: E, SE, S, SW, W, NW, N, NE.
// dirs4 is the four-connected subset in the same clockwise order.
var dirs8 = [8]dir{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}}
var dirs4 = [4]dir{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}

func dirsFor(conn Conn) ([]dir, int) {
	if conn == Conn8 {
		return dirs8[:], 8
	}
	return dirs4[:], 4
}

// westIndex is the direction-table index of "West" for the given
// connectivity — the conventional initial backtrack direction, since the
// boundary's first pixel is found by a left-to-right raster scan and so is
// always entered "from the west" (spec.md §4.9).
func westIndex(conn Conn) int {
	if conn == Conn8 {
		return 4
	}
	return 2
}

// Contour traces the chain code of the first connected foreground component
// encountered in raster order, using Moore-neighbor boundary tracing: from
// the current boundary pixel, scan its neighbors clockwise starting just
// past the direction it was entered from, and step to the first set one,
// turning "as far left as possible" at every pixel (spec.md §4.9). The
// trace stops when it is back at the start pixel and its next step would
// repeat the very first step (Jacob's stopping criterion), so a start pixel
// that is passed through twice, as at a one-pixel bridge, does not end the
// trace early. A bound of n steps per raster pixel (n = connectivity, the
// number of distinct moves out of a pixel) also ends the loop, as a safety
// net. The result is written as ASCII digit
// characters ('0'..'7') into out and the chain length is returned,
// regardless of whether out was large enough to hold it — the caller
// truncates or grows out using the returned length, matching the original's
// "always report the untruncated length" contract.
func Contour(bigEndian bool, conn Conn, r raster.Bin, out []byte) int {
	startX, startY, ok := seekRaster(bigEndian, r)
	if !ok {
		return 0
	}

	dirTab, n := dirsFor(conn)
	maxSteps := n*r.Width*r.Height + 1

	x, y := startX, startY
	prevIdx := westIndex(conn)
	length := 0
	firstIdx := -1

	for step := 0; step < maxSteps; step++ {
		found := false
		var nx, ny, idx int
		for k := 1; k <= n; k++ {
			idx = (prevIdx + k) % n
			nx, ny = x+dirTab[idx].dx, y+dirTab[idx].dy
			if nx < 0 || nx >= r.Width || ny < 0 || ny >= r.Height {
				continue
			}
			if r.GetBin(bigEndian, nx, ny) != 0 {
				found = true
				break
			}
		}
		if !found {
			// isolated single pixel: no boundary to trace.
			break
		}
		if x == startX && y == startY {
			if firstIdx < 0 {
				firstIdx = idx
			} else if idx == firstIdx {
				// back at the start, about to repeat the first move.
				break
			}
		}
		if length < len(out) {
			out[length] = byte('0' + idx)
		}
		length++
		x, y = nx, ny
		prevIdx = (idx + n/2) % n
	}
	return length
}

func seekRaster(bigEndian bool, r raster.Bin) (int, int, bool) {
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			if r.GetBin(bigEndian, x, y) != 0 {
				return x, y, true
			}
		}
	}
	return 0, 0, false
}

package kernel

import "github.com/rappcompute/rapp/raster"

// Conn names a pixel connectivity for seed fill and contour tracing.
type Conn int

const (
	Conn4 Conn = 4
	Conn8 Conn = 8
)

// FillForward runs one forward (top-to-bottom) seed-fill sweep in place on
// seed, constrained by mask (spec.md §4.7). Within each row, the per-word
// "OR with shifted self, iterate until stable" horizontal widening in the
// original reduces to a per-row connected-run flood: every maximal run of
// mask-set pixels becomes fully seeded if any pixel in the run already
// carries a seed bit, or if any pixel in the run has a seeded neighbor in
// the row above (orthogonal for 4-connectivity, plus the two diagonals for
// 8-connectivity) — that row above is already final because the sweep is
// processing top to bottom. It returns the number of rows processed,
// non-zero iff any bit changed; the caller alternates forward/reverse
// sweeps until a sweep returns zero.
func FillForward(bigEndian bool, conn Conn, seed raster.Bin, mask raster.Bin) int {
	return fillSweep(bigEndian, conn, seed, mask, true)
}

// FillReverse is FillForward's mirror image: bottom-to-top, using the row
// below instead of the row above.
func FillReverse(bigEndian bool, conn Conn, seed raster.Bin, mask raster.Bin) int {
	return fillSweep(bigEndian, conn, seed, mask, false)
}

func fillSweep(bigEndian bool, conn Conn, seed raster.Bin, mask raster.Bin, forward bool) int {
	width, height := seed.Width, seed.Height
	changed := false

	rows := make([]int, height)
	for i := range rows {
		rows[i] = i
	}
	if !forward {
		for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
			rows[i], rows[j] = rows[j], rows[i]
		}
	}

	for _, y := range rows {
		neighborY := y - 1
		if !forward {
			neighborY = y + 1
		}
		hasNeighborRow := neighborY >= 0 && neighborY < height

		x := 0
		for x < width {
			if mask.GetBin(bigEndian, x, y) == 0 {
				x++
				continue
			}
			runStart := x
			seeded := false
			for x < width && mask.GetBin(bigEndian, x, y) != 0 {
				if seed.GetBin(bigEndian, x, y) != 0 {
					seeded = true
				}
				if hasNeighborRow && !seeded {
					if seed.GetBin(bigEndian, x, neighborY) != 0 {
						seeded = true
					}
					if conn == Conn8 {
						if x > 0 && seed.GetBin(bigEndian, x-1, neighborY) != 0 {
							seeded = true
						}
						if x+1 < width && seed.GetBin(bigEndian, x+1, neighborY) != 0 {
							seeded = true
						}
					}
				}
				x++
			}
			runEnd := x
			if seeded {
				for xi := runStart; xi < runEnd; xi++ {
					if seed.GetBin(bigEndian, xi, y) == 0 {
						changed = true
						seed.SetBin(bigEndian, xi, y, 1)
					}
				}
			}
		}
	}

	if changed {
		return height
	}
	return 0
}

package kernel

// Rasterize produces the chain code of the discrete Bresenham line from
// (x0,y0) to (x1,y1) (spec.md §4.10). Internally it always walks the line
// in the canonical octant — dx >= dy >= 0, stepping toward increasing x —
// by swapping axes when |dy| > |dx| and reflecting x/y when the endpoint
// lies behind the start; the same three swaps select which absolute
// directions "ahead"/"side" map onto. The chain is always written forward,
// as the steps from (x0,y0) to (x1,y1). It returns the untruncated
// chain length; out is filled up to len(out) and never overrun, matching
// Contour's truncation contract.
func Rasterize(conn Conn, x0, y0, x1, y1 int, out []byte) int {
	dx, dy := x1-x0, y1-y0
	swapXY := abs(dy) > abs(dx)
	if swapXY {
		dx, dy = dy, dx
	}
	reflectX := dx < 0
	if reflectX {
		dx = -dx
	}
	reflectY := dy < 0
	if reflectY {
		dy = -dy
	}

	// ahead/side are the canonical-octant direction codes before any
	// swap/reflect is undone: ahead always advances the major axis by +1,
	// side advances the minor axis by +1 (spec.md's 4/8-conn step symbols).
	ahead := dirCode(conn, false, swapXY, reflectX, reflectY)
	side := dirCode(conn, true, swapXY, reflectX, reflectY)

	var length int
	if conn == Conn4 {
		length = dx + dy
	} else {
		length = dx
		if dy > dx {
			length = dy
		}
	}
	if length == 0 {
		return 0
	}

	codes := make([]byte, 0, length)
	if conn == Conn4 {
		codes = rasterize4(dx, dy, ahead, side)
	} else {
		codes = rasterize8(dx, dy, ahead, side)
	}

	copy(out, codes)
	return len(codes)
}

// dirCode maps a canonical-octant "ahead" (isSide=false) or "side"
// (isSide=true) unit step back to its absolute Freeman digit, undoing the
// swap/reflect transform Rasterize applied to reach the canonical octant:
// negate the axes reflectX/reflectY flipped, then swap them back if
// swapXY did, and look the resulting unit vector up in dirs4/dirs8.
func dirCode(conn Conn, isSide, swapXY, reflectX, reflectY bool) byte {
	sx, sy := 1, 0
	if isSide {
		if conn == Conn8 {
			// 8-conn "side" is the diagonal step: both axes advance together.
			sx, sy = 1, 1
		} else {
			sx, sy = 0, 1
		}
	}
	if reflectX {
		sx = -sx
	}
	if reflectY {
		sy = -sy
	}
	if swapXY {
		sx, sy = sy, sx
	}
	tab, n := dirsFor(conn)
	for i := 0; i < n; i++ {
		if tab[i].dx == sx && tab[i].dy == sy {
			return byte('0' + i)
		}
	}
	return '0'
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// rasterize4 emits the interleaved ahead/side steps of a 4-connected
// Bresenham line in the canonical octant (0 <= dy <= dx): it walks the same
// error-driven decision as the 8-connected case, but every diagonal
// decision point contributes two steps (an ahead and a side) instead of
// one, for a total length of exactly dx+dy (spec.md §4.10).
func rasterize4(dx, dy int, ahead, side byte) []byte {
	out := make([]byte, 0, dx+dy)
	err := dx / 2
	for x := 0; x < dx; x++ {
		err -= dy
		if err < 0 {
			err += dx
			out = append(out, side, ahead)
			continue
		}
		out = append(out, ahead)
	}
	return out
}

// rasterize8 emits one step per iteration for length = dx total steps (dx is
// always the larger magnitude in the canonical octant): "ahead" (pure
// major-axis) when the accumulating error keeps the minor axis from
// catching up, "side" (diagonal, both axes advance) when it does
// (spec.md §4.10).
func rasterize8(dx, dy int, ahead, side byte) []byte {
	out := make([]byte, 0, dx)
	err := dx / 2
	for x := 0; x < dx; x++ {
		err -= dy
		if err < 0 {
			err += dx
			out = append(out, side)
			continue
		}
		out = append(out, ahead)
	}
	return out
}

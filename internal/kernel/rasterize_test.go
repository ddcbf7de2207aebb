package kernel

import "testing"

func TestRasterize4Length(t *testing.T) {
	out := make([]byte, 16)
	n := Rasterize(Conn4, 0, 0, 5, 2, out)
	if n != 7 {
		t.Fatalf("length = %d, want 7 (|dx|+|dy|)", n)
	}
	for _, c := range out[:n] {
		if c < '0' || c > '3' {
			t.Fatalf("4-conn chain code has out-of-range digit %q", c)
		}
	}
}

func TestRasterize8Length(t *testing.T) {
	out := make([]byte, 16)
	n := Rasterize(Conn8, 0, 0, 5, 2, out)
	if n != 5 {
		t.Fatalf("length = %d, want 5 (max(|dx|,|dy|))", n)
	}
	for _, c := range out[:n] {
		if c < '0' || c > '7' {
			t.Fatalf("8-conn chain code has out-of-range digit %q", c)
		}
	}
}

func TestRasterizeWalksToEndpoint(t *testing.T) {
	x0, y0, x1, y1 := 1, 1, -4, 3
	out := make([]byte, 16)
	n := Rasterize(Conn8, x0, y0, x1, y1, out)
	x, y := x0, y0
	tab, _ := dirsFor(Conn8)
	for _, c := range out[:n] {
		idx := int(c - '0')
		x += tab[idx].dx
		y += tab[idx].dy
	}
	if x != x1 || y != y1 {
		t.Fatalf("walked to (%d,%d), want (%d,%d)", x, y, x1, y1)
	}
}

func TestRasterizeWalksToEndpoint4Conn(t *testing.T) {
	x0, y0, x1, y1 := 2, -3, -1, 4
	out := make([]byte, 16)
	n := Rasterize(Conn4, x0, y0, x1, y1, out)
	x, y := x0, y0
	tab, _ := dirsFor(Conn4)
	for _, c := range out[:n] {
		idx := int(c - '0')
		x += tab[idx].dx
		y += tab[idx].dy
	}
	if x != x1 || y != y1 {
		t.Fatalf("walked to (%d,%d), want (%d,%d)", x, y, x1, y1)
	}
}

func TestRasterizeDegenerate(t *testing.T) {
	out := make([]byte, 4)
	if n := Rasterize(Conn8, 3, 3, 3, 3, out); n != 0 {
		t.Fatalf("zero-length line should yield length 0, got %d", n)
	}
}

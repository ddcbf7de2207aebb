package kernel

import "testing"

func TestSeekEmptyBuffer(t *testing.T) {
	if _, ok := Seek(make([]byte, 4)); ok {
		t.Fatal("all-zero buffer should report not found")
	}
}

func TestSeekFindsFirstSetBit(t *testing.T) {
	buf := []byte{0, 0b00000100, 0xFF}
	pos, ok := Seek(buf)
	if !ok {
		t.Fatal("expected found")
	}
	if pos != 8+2 {
		t.Fatalf("pos = %d, want %d", pos, 8+2)
	}
}

func TestBoxEmptyBuffer(t *testing.T) {
	r := binRaster(8, 4)
	_, _, _, _, ok := Box(false, r.Buf, r.Dim, r.Width, r.Height)
	if ok {
		t.Fatal("empty raster should report not found")
	}
}

func TestBoxTightBound(t *testing.T) {
	r := binRaster(8, 4)
	r.SetBin(false, 2, 1, 1)
	r.SetBin(false, 5, 3, 1)
	x, y, w, h, ok := Box(false, r.Buf, r.Dim, r.Width, r.Height)
	if !ok {
		t.Fatal("expected found")
	}
	if x != 2 || y != 1 || w != 4 || h != 3 {
		t.Fatalf("box = (%d,%d,%d,%d), want (2,1,4,3)", x, y, w, h)
	}
}

func TestBoxSinglePixel(t *testing.T) {
	r := binRaster(8, 4)
	r.SetBin(false, 3, 2, 1)
	x, y, w, h, ok := Box(false, r.Buf, r.Dim, r.Width, r.Height)
	if !ok || x != 3 || y != 2 || w != 1 || h != 1 {
		t.Fatalf("box = (%d,%d,%d,%d,%v), want (3,2,1,1,true)", x, y, w, h, ok)
	}
}

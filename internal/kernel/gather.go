package kernel

import "github.com/rappcompute/rapp/raster"

// GatherBin packs every source bit whose corresponding mask bit is set into
// dst in raster order, tightly packed with no gaps (spec.md §4.13). mask
// and src share shape; dst needs ceil(popcount(mask)/8) bytes. Returns the
// number of pixels transferred. The original's rolling two-word
// accumulator is a performance device for writing whole words at a time;
// this form walks bit by bit and accumulates into a byte, the same
// information-preserving simplification recorded for the reduce/rotate
// kernels in DESIGN.md.
func GatherBin(bigEndian bool, dst []byte, maskSrc raster.Bin, src raster.Bin) int {
	n := 0
	var acc byte
	accBits := 0
	for y := 0; y < maskSrc.Height; y++ {
		for x := 0; x < maskSrc.Width; x++ {
			if maskSrc.GetBin(bigEndian, x, y) == 0 {
				continue
			}
			bit := byte(src.GetBin(bigEndian, x, y))
			acc = setBit(bigEndian, acc, accBits, bit)
			accBits++
			n++
			if accBits == 8 {
				dst[n/8-1] = acc
				acc = 0
				accBits = 0
			}
		}
	}
	if accBits > 0 {
		dst[n/8] = acc
	}
	return n
}

// ScatterBin is GatherBin's inverse: it reads n tightly-packed bits from src
// in raster order and writes them at the mask-set positions of dst, leaving
// mask-clear positions of dst untouched (spec.md §4.13). Returns the number
// of pixels transferred.
func ScatterBin(bigEndian bool, dst raster.Bin, maskSrc raster.Bin, src []byte) int {
	n := 0
	for y := 0; y < maskSrc.Height; y++ {
		for x := 0; x < maskSrc.Width; x++ {
			if maskSrc.GetBin(bigEndian, x, y) == 0 {
				continue
			}
			bit := getBit(bigEndian, src, n)
			dst.SetBin(bigEndian, x, y, int(bit))
			n++
		}
	}
	return n
}

// setBit sets bit index i (0-7, raster order) of acc to v, following the
// same logical-bit-position convention the word abstraction uses: LSB-first
// on little-endian hosts, MSB-first on big-endian hosts.
func setBit(bigEndian bool, acc byte, i int, v byte) byte {
	shift := uint(i)
	if bigEndian {
		shift = uint(7 - i)
	}
	if v != 0 {
		return acc | 1<<shift
	}
	return acc &^ (1 << shift)
}

// getBit reads the bit at flat raster-order index i out of a tightly-packed
// buffer.
func getBit(bigEndian bool, buf []byte, i int) byte {
	byteIdx := i / 8
	bitIdx := i % 8
	shift := uint(bitIdx)
	if bigEndian {
		shift = uint(7 - bitIdx)
	}
	return (buf[byteIdx] >> shift) & 1
}

// GatherU8 packs every source pixel whose corresponding mask bit is set
// into dst in raster order, one byte per transferred pixel (spec.md §4.13,
// "8-bit gather"). dst needs popcount(mask) bytes. Returns the number of
// pixels transferred.
func GatherU8(bigEndian bool, dst []byte, maskSrc raster.Bin, src raster.U8) int {
	n := 0
	for y := 0; y < maskSrc.Height; y++ {
		for x := 0; x < maskSrc.Width; x++ {
			if maskSrc.GetBin(bigEndian, x, y) == 0 {
				continue
			}
			dst[n] = src.GetU8(x, y)
			n++
		}
	}
	return n
}

// ScatterU8 is GatherU8's inverse: unpacks n tightly-packed bytes from src
// into the mask-set positions of dst, one byte per mask-set pixel. Returns
// the number of pixels transferred.
func ScatterU8(bigEndian bool, dst raster.U8, maskSrc raster.Bin, src []byte) int {
	n := 0
	for y := 0; y < maskSrc.Height; y++ {
		for x := 0; x < maskSrc.Width; x++ {
			if maskSrc.GetBin(bigEndian, x, y) == 0 {
				continue
			}
			dst.SetU8(x, y, src[n])
			n++
		}
	}
	return n
}

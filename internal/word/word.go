// Package word implements the portable, endian-neutral machine word used to
// manipulate packed-binary pixels uniformly regardless of native word size
// (2/4/8 bytes) and byte order (spec.md §4.1).
//
// A word of W bytes behaves as 8W endian-neutral "logical" bit positions
// numbered 0..8W-1 left to right in raster order. Two primitives translate
// logical position space to hardware shifts depending on build-time
// endianness (spec.md §9's "nominal-left/nominal-right" design choice):
// on big-endian hosts they map directly to the CPU's left/right shifts, on
// little-endian hosts the mapping is reversed. Every kernel in
// internal/kernel is written solely against this package and against
// byte-level copy/fill; none of them reason about endianness directly.
package word

import (
	"encoding/binary"
	"math/bits"
	"unsafe"

	"github.com/rappcompute/rapp/platform"
)

// Unsigned is the set of machine word types RAPP Compute builds for:
// 2, 4 or 8 byte unsigned integers (spec.md §4.1, §6 "Word size").
type Unsigned interface {
	~uint16 | ~uint32 | ~uint64
}

// Bits returns 8*sizeof(W), the number of logical bit positions in a word.
func Bits[W Unsigned]() int {
	var z W
	return int(unsafe.Sizeof(z)) * 8
}

// Bytes returns sizeof(W).
func Bytes[W Unsigned]() int {
	var z W
	return int(unsafe.Sizeof(z))
}

// Zero is the all-zero-bits word constant.
func Zero[W Unsigned]() W { return W(0) }

// One is the all-one-bits word constant.
func One[W Unsigned]() W { return ^W(0) }

// Load reads a word from p, which must point to at least Bytes[W]() valid
// bytes. Byte order is native: the physical layout is whatever the host CPU
// uses, since all bit-position arithmetic above this package is carried out
// in endian-neutral logical coordinates.
func Load[W Unsigned](p []byte) W {
	switch any(W(0)).(type) {
	case uint16:
		return W(binary.NativeEndian.Uint16(p))
	case uint32:
		return W(binary.NativeEndian.Uint32(p))
	default:
		return W(binary.NativeEndian.Uint64(p))
	}
}

// Store writes w to p, which must point to at least Bytes[W]() valid bytes.
func Store[W Unsigned](p []byte, w W) {
	switch v := any(w).(type) {
	case uint16:
		binary.NativeEndian.PutUint16(p, v)
	case uint32:
		binary.NativeEndian.PutUint32(p, v)
	case uint64:
		binary.NativeEndian.PutUint64(p, v)
	}
}

// Bit returns a word with the bit at logical position pos set, 0 <= pos <
// Bits[W]().
func Bit[W Unsigned](pos int) W {
	if platform.BigEndian {
		return W(1) << uint(Bits[W]()-pos-1)
	}
	return W(1) << uint(pos)
}

// Shr is the nominal right shift: it advances the logical bit position by
// bits (the bit at logical position p moves to p+bits; bits shifted past the
// last position are lost). On big-endian hosts this is the CPU's right shift; on little-endian
// hosts it is the CPU's left shift (spec.md §4.1).
func Shr[W Unsigned](w W, bits int) W {
	if bits <= 0 {
		return w
	}
	if bits >= Bits[W]() {
		return 0
	}
	if platform.BigEndian {
		return w >> uint(bits)
	}
	return w << uint(bits)
}

// Shl is the nominal left shift: it retreats the logical bit position by
// bits (the bit at logical position p moves to p-bits, toward position 0).
// On big-endian hosts this is the CPU's left shift; on little-endian
// hosts it is the CPU's right shift (spec.md §4.1).
func Shl[W Unsigned](w W, bits int) W {
	if bits <= 0 {
		return w
	}
	if bits >= Bits[W]() {
		return 0
	}
	if platform.BigEndian {
		return w << uint(bits)
	}
	return w >> uint(bits)
}

// Align combines two adjacent words, word1 followed by word2, and returns
// the Bits[W]() logical bits starting at logical position k into that
// 16W-bit concatenation. Used to correct bit-level misalignment when a
// source raster's base pointer is not word-aligned (spec.md §4.1, §4.3).
func Align[W Unsigned](w1, w2 W, k int) W {
	return Shl(w1, k) | Shr(w2, Bits[W]()-k)
}

// Mask returns a word with the n least-significant bits set in bit-value
// terms (spec.md §4.1: "the bits least significant positions set in
// bit-value terms, equivalent to a prefix of logical positions"). It is
// deliberately endian-independent: Insert/Extract apply it only after
// shifting the field of interest down to the value-bit origin, so the same
// constant-value mask serves both endiannesses.
func Mask[W Unsigned](n int) W {
	if n <= 0 {
		return 0
	}
	if n >= Bits[W]() {
		return One[W]()
	}
	return One[W]() >> uint(Bits[W]()-n)
}

// Insert places the low `bits` bits of value at logical positions
// pos..pos+bits-1 of a word, with zero elsewhere.
func Insert[W Unsigned](value uint64, pos, bitsCount int) W {
	v := W(value) & Mask[W](bitsCount)
	if platform.BigEndian {
		return v << uint(Bits[W]()-pos-bitsCount)
	}
	return v << uint(pos)
}

// Extract reads `bits` bits starting at logical position pos out of w.
func Extract[W Unsigned](w W, pos, bitsCount int) uint64 {
	if platform.BigEndian {
		return uint64((w >> uint(Bits[W]()-pos-bitsCount)) & Mask[W](bitsCount))
	}
	return uint64((w >> uint(pos)) & Mask[W](bitsCount))
}

// Popcount counts the set bits in w.
func Popcount[W Unsigned](w W) int {
	switch v := any(w).(type) {
	case uint16:
		return bits.OnesCount16(v)
	case uint32:
		return bits.OnesCount32(v)
	default:
		return bits.OnesCount64(any(w).(uint64))
	}
}

// Package platform exposes the build-time constants every other package in
// the module is written against: native byte order, native machine word
// size, and the buffer alignment required by the active back-end.
//
// Higher packages never branch on runtime.GOARCH or encoding/binary directly
// for these decisions; they consult this package once and the rest of the
// kernel code stays endian- and width-agnostic, matching how the teacher's
// internal/dsp package confines CPU-feature probing to its own cpuid_*.go
// files and exposes a single boolean (dsp.HasAVX2) to the rest of the tree.
package platform

import (
	"encoding/binary"
	"math/bits"
)

// BigEndian reports whether the host stores multi-byte words MSB-first.
// Binary pixel bit numbering within a byte follows this flag: MSB-first on
// big-endian targets, LSB-first on little-endian targets (spec.md §3).
var BigEndian = detectBigEndian()

func detectBigEndian() bool {
	buf := make([]byte, 2)
	binary.NativeEndian.PutUint16(buf, 0x0102)
	return buf[0] == 0x01
}

// NativeWordBytes is the native machine word size in bytes: 4 on 32-bit
// hosts, 8 on 64-bit hosts. RAPP Compute only ever builds with word sizes of
// 2, 4 or 8 bytes (spec.md §4.1); there is no word-size override, and every
// word-size dispatch in the module selects on NativeWordBytes.
const NativeWordBytes = bits.UintSize / 8

// VectorBytes is the width, in bytes, of the widest SIMD register the
// active back-end would use. RAPP Compute itself never emits SIMD
// instructions (the "tuned" implementations are plain, carefully shaped Go
// rather than assembly — see internal/tuning), but the alignment contract in
// spec.md §3 is sized as if a 128-bit back-end were present, so that buffers
// allocated here remain valid should a SIMD-accelerated build tag be added
// later without changing any exported layout.
const VectorBytes = 16

// Alignment is the buffer/row-stride alignment required by spec.md §3: the
// larger of the native word size and the active vector width.
const Alignment = max(NativeWordBytes, VectorBytes)

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Likely and Unlikely are branch-prediction hints. Go has no portable
// __builtin_expect equivalent and the compiler does not consume hints, so
// these are documentation-only identity functions. No kernel in this module
// currently calls them.
func Likely(cond bool) bool   { return cond }
func Unlikely(cond bool) bool { return cond }

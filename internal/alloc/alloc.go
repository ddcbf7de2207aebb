// Package alloc provides the aligned-buffer allocator described in
// spec.md §4.2: Malloc returns a buffer aligned to the platform's required
// alignment whose size is at least Align(n), and Free releases it.
//
// The bucketed-by-size-class pooling strategy is carried over from the
// teacher's internal/pool package (a sync.Pool per power-of-two size class),
// generalized here to also track the over-allocation each bucket needs to
// guarantee an aligned start address — the teacher's pool never had an
// alignment contract to honor, since codec scratch buffers have no SIMD
// alignment requirement.
package alloc

import (
	"sync"
	"unsafe"

	"github.com/rappcompute/rapp/platform"
)

// Align rounds n up to the platform's required alignment.
func Align(n int) int {
	a := platform.Alignment
	return (n + a - 1) &^ (a - 1)
}

// Size classes for bucketed pools, mirroring the teacher's pool package.
const (
	size256B = 256
	size1K   = 1024
	size4K   = 4096
	size16K  = 16384
	size64K  = 65536
	size256K = 262144
	size1M   = 1048576
)

var bucketSizes = [...]int{size256B, size1K, size4K, size16K, size64K, size256K, size1M}

// bucketIndex returns the pool index holding buffers of at least size bytes
// of usable (post-alignment) capacity, or -1 if size exceeds every bucket.
func bucketIndex(size int) int {
	for i, sz := range bucketSizes {
		if size <= sz {
			return i
		}
	}
	return -1
}

var pools [len(bucketSizes)]sync.Pool

func init() {
	for i := range pools {
		// Each pooled backing buffer is over-allocated by Alignment-1 bytes
		// so an aligned window of the bucket's nominal size can always be
		// carved out of it regardless of where the Go allocator placed it.
		usable := bucketSizes[i]
		backing := usable + platform.Alignment - 1
		pools[i] = sync.Pool{
			New: func() any {
				b := make([]byte, backing)
				return &b
			},
		}
	}
}

// Malloc returns a buffer of exactly Align(n) bytes, base-address aligned to
// platform.Alignment. It returns nil if n is negative, mirroring the host
// allocator's null-sentinel failure contract from spec.md §7.
//
// The slice returned keeps its full trailing capacity (the over-allocation
// needed to land on an aligned start address plus the bucket's headroom), so
// Free can pool it again without having to recover the original backing
// array's start address.
func Malloc(n int) []byte {
	if n < 0 {
		return nil
	}
	size := Align(n)
	idx := bucketIndex(size)
	if idx < 0 {
		return alignedSlice(make([]byte, size+platform.Alignment-1), size)
	}
	bp := pools[idx].Get().(*[]byte)
	buf := *bp
	if len(buf) < size+platform.Alignment-1 {
		buf = make([]byte, size+platform.Alignment-1)
	}
	return alignedSlice(buf, size)
}

// alignedSlice carves an aligned window of exactly size usable bytes out of
// backing, keeping the slice's capacity extended to the end of backing so
// the full buffer can be recovered and re-pooled later.
func alignedSlice(backing []byte, size int) []byte {
	base := uintptr(unsafe.Pointer(unsafe.SliceData(backing)))
	pad := (-base) & uintptr(platform.Alignment-1)
	return backing[pad : int(pad)+size : len(backing)]
}

// Free releases a buffer obtained from Malloc. Free(nil) is a safe no-op,
// matching the original rc_malloc contract.
func Free(buf []byte) {
	if buf == nil {
		return
	}
	full := unsafe.Slice(unsafe.SliceData(buf), cap(buf))
	idx := bucketIndex(cap(buf) - (platform.Alignment - 1))
	if idx < 0 {
		return
	}
	pools[idx].Put(&full)
}

// isAligned reports whether buf's base address meets platform.Alignment.
func isAligned(buf []byte) bool {
	if len(buf) == 0 {
		return true
	}
	return uintptr(unsafe.Pointer(unsafe.SliceData(buf)))&uintptr(platform.Alignment-1) == 0
}

package rapp

import "github.com/rappcompute/rapp/internal/alloc"

// Malloc returns a buffer of at least n bytes, base-address aligned to the
// platform's required alignment, or nil on host allocator failure
// (spec.md §4.2, §7). Free releases a buffer obtained from Malloc; Free(nil)
// is a safe no-op (SPEC_FULL.md §12, carried over from rc_malloc.c).
func Malloc(n int) []byte { return alloc.Malloc(n) }
func Free(buf []byte)     { alloc.Free(buf) }

// Align rounds n up to the platform's required alignment (spec.md §4.2).
func Align(n int) int { return alloc.Align(n) }

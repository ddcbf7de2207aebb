// Package rapp is the public, flat function surface of RAPP Compute
// (spec.md §6): bit-blits, thresholding/type-conversion, pixelwise
// conditionals, reduce/expand/rotate, padding/margins, statistics/moments,
// integral images, seed fill, crop/bounding-box, contour chain codes, line
// rasterization and gather/scatter, all operating on the raster views
// defined in package raster. Every exported function here is a thin wrapper
// over internal/kernel. The word-based kernels (blits, thresholding, Cond)
// are instantiated for the host word size by a switch on
// platform.NativeWordBytes, and the bit-blits also resolve their
// manual-unroll factor from internal/tuning (spec.md §4.15); the other
// wrappers call their kernel directly. The wrapping itself carries no
// algorithmic weight, matching spec.md §1's note that the API-layer
// wrappers are "interfaces of the core" rather than part of its substance.
//
// RAPP Compute operates on two pixel formats only: packed-binary (one bit
// per pixel, raster.Bin) and 8-bit grayscale (raster.U8). It has no
// floating-point image math, no color spaces, no general geometric
// resampling, no multi-threaded scheduling, no I/O and no image file
// formats (spec.md §1 Non-goals) — those are left to callers layered on
// top of this package.
package rapp

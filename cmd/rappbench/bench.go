package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/rappcompute/rapp"
	"github.com/rappcompute/rapp/raster"
)

var (
	benchWidth  int
	benchHeight int
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run the kernel benchmark suite once and print throughput",
	RunE: func(cmd *cobra.Command, args []string) error {
		runID := uuid.New()
		fmt.Fprintf(cmd.OutOrStdout(), "run %s, %dx%d, native word %d bytes\n\n", runID, benchWidth, benchHeight, nativeWordBytes())
		for _, b := range benchmarks(benchWidth, benchHeight) {
			mpix := timeBenchmark(b.run, benchWidth, benchHeight)
			fmt.Fprintf(cmd.OutOrStdout(), "%-28s %8.1f Mpix/s\n", b.name, mpix)
		}
		return nil
	},
}

func init() {
	benchCmd.Flags().IntVar(&benchWidth, "pixels", 512, "row width in pixels")
	benchCmd.Flags().IntVar(&benchHeight, "rows", 512, "number of rows")
}

// benchKernel pairs a name (matching the internal/tuning kernel-name
// convention used by unrollFor) with a closure that runs one iteration over
// a width x height raster pair already allocated and filled.
type benchKernel struct {
	name string
	run  func()
}

// benchmarks builds the fixed suite cmd/rappbench exercises: five
// representative operations (an AND blit, a GT threshold, an 8-bit sum,
// second-order moments and an 8-bit integral image), each operating
// over a width x height raster so "tune" and "bench" measure the same shapes
// a real caller would use.
func benchmarks(width, height int) []benchKernel {
	dim := rapp.Align(raster.DivCeil8(width))
	u8Dim := rapp.Align(width)

	binA := raster.Bin{Buf: fillBytes(dim * height, 0xAA), Dim: dim, Width: width, Height: height}
	binB := raster.Bin{Buf: fillBytes(dim*height, 0x55), Dim: dim, Width: width, Height: height}
	u8Src := raster.U8{Buf: fillBytes(u8Dim*height, 128), Dim: u8Dim, Width: width, Height: height}

	integralDst := make([]uint32, width*height)

	return []benchKernel{
		{
			name: "blit_aligned_and_bin",
			run: func() {
				rapp.BlitAlignedBin(rapp.And, binA.Buf, dim, binB.Buf, dim, width, height)
			},
		},
		{
			name: "thresh_gt",
			run: func() {
				rapp.ThreshToBin(rapp.GT, binA.Buf, dim, u8Src.Buf, u8Dim, u8Dim, 100, 0, width, height)
			},
		},
		{
			name: "sum_u8",
			run: func() {
				_ = rapp.SumU8(u8Src)
			},
		},
		{
			name: "moments2_bin",
			run: func() {
				_, _, _, _, _, _ = rapp.Moments2(rapp.NativeBigEndian(), binA)
			},
		},
		{
			name: "integral_u8_u32",
			run: func() {
				rapp.IntegralU8U32(integralDst, width, u8Src)
			},
		},
	}
}

func fillBytes(n int, v byte) []byte {
	buf := rapp.Malloc(n)
	for i := range buf {
		buf[i] = v
	}
	return buf
}

// timeBenchmark runs fn repeatedly for about 200ms and returns the observed
// throughput in megapixels per second for a width x height raster.
func timeBenchmark(fn func(), width, height int) float64 {
	const warmup = 3
	for i := 0; i < warmup; i++ {
		fn()
	}

	budget := 200 * time.Millisecond
	start := time.Now()
	iters := 0
	for time.Since(start) < budget {
		fn()
		iters++
	}
	elapsed := time.Since(start)
	if elapsed <= 0 || iters == 0 {
		return 0
	}
	pixels := float64(width) * float64(height) * float64(iters)
	return pixels / elapsed.Seconds() / 1e6
}

package rapp

import (
	"github.com/rappcompute/rapp/internal/kernel"
	"github.com/rappcompute/rapp/raster"
)

// FillForward and FillReverse run one directional seed-fill sweep in place
// on seed, constrained by mask (spec.md §4.7). Each returns the number of
// rows processed, non-zero iff the sweep changed any pixel; the caller
// alternates sweeps until one returns zero.
func FillForward(bigEndian bool, conn Conn, seed, mask raster.Bin) int {
	return kernel.FillForward(bigEndian, conn, seed, mask)
}

func FillReverse(bigEndian bool, conn Conn, seed, mask raster.Bin) int {
	return kernel.FillReverse(bigEndian, conn, seed, mask)
}

// Fill runs FillForward/FillReverse sweeps alternately until convergence
// (both sweeps in a row report no change), implementing the fixpoint loop
// spec.md §4.7/§8 property 10 assigns to the caller. It returns the total
// number of sweeps executed.
func Fill(bigEndian bool, conn Conn, seed, mask raster.Bin) int {
	sweeps := 0
	for {
		c1 := FillForward(bigEndian, conn, seed, mask)
		sweeps++
		c2 := FillReverse(bigEndian, conn, seed, mask)
		sweeps++
		if c1 == 0 && c2 == 0 {
			return sweeps
		}
	}
}

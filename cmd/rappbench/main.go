// Command rappbench benchmarks and tunes the rapp kernel surface.
//
// Usage:
//
//	rappbench bench [--pixels N] [--rows N]   Run the benchmark suite once
//	rappbench tune [--pixels N] [--rows N] -o FILE
//	                                           Sweep unroll factors, write a tuning file
//	rappbench info                            Print platform and active tuning constants
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "rappbench: %v\n", err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/rappcompute/rapp/internal/tuning"
)

var (
	tuneWidth  int
	tuneHeight int
	tuneOut    string
)

var tuneCmd = &cobra.Command{
	Use:   "tune",
	Short: "Sweep unroll factors for every benchmarked kernel and write a tuning file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if tuneOut == "" {
			return fmt.Errorf("tune: -o <file> is required")
		}
		runID := uuid.New()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "tuning sweep %s, %dx%d\n\n", runID, tuneWidth, tuneHeight)

		for _, b := range benchmarks(tuneWidth, tuneHeight) {
			best := 0.0
			bestUnroll := 1
			for _, unroll := range []int{1, 2, 4} {
				tuning.Set(b.name, tuning.SWAR, unroll)
				mpix := timeBenchmark(b.run, tuneWidth, tuneHeight)
				fmt.Fprintf(out, "%-28s unroll=%d  %8.1f Mpix/s\n", b.name, unroll, mpix)
				if mpix > best {
					best = mpix
					bestUnroll = unroll
				}
			}
			tuning.Set(b.name, tuning.SWAR, bestUnroll)
			fmt.Fprintf(out, "%-28s winner: unroll=%d (%.1f Mpix/s)\n\n", b.name, bestUnroll, best)
		}

		if err := tuning.Save(tuneOut); err != nil {
			return fmt.Errorf("tune: writing %s: %w", tuneOut, err)
		}
		fmt.Fprintf(out, "wrote %s\n", tuneOut)
		return nil
	},
}

func init() {
	tuneCmd.Flags().IntVar(&tuneWidth, "pixels", 512, "row width in pixels")
	tuneCmd.Flags().IntVar(&tuneHeight, "rows", 512, "number of rows")
	tuneCmd.Flags().StringVarP(&tuneOut, "out", "o", "", "tuning file to write (required)")
}

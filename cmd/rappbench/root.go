package main

import (
	"github.com/spf13/cobra"

	"github.com/rappcompute/rapp/internal/tuning"
)

var tuningPath string

var rootCmd = &cobra.Command{
	Use:           "rappbench",
	Short:         "Benchmark and tune the rapp kernel surface",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if tuningPath == "" {
			return nil
		}
		return tuning.Load(tuningPath)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&tuningPath, "tuning", "", "tuning file to load before running (TOML, see internal/tuning)")
	rootCmd.AddCommand(benchCmd, tuneCmd, infoCmd)
}

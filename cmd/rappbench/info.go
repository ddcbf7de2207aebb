package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rappcompute/rapp"
	"github.com/rappcompute/rapp/platform"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print platform constants and the active tuning file",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "native word size:  %d bytes\n", platform.NativeWordBytes)
		fmt.Fprintf(out, "vector width:      %d bytes\n", platform.VectorBytes)
		fmt.Fprintf(out, "alignment:         %d bytes\n", platform.Alignment)
		fmt.Fprintf(out, "bit order:         %s\n", bitOrderName(rapp.NativeBigEndian()))
		if tuningPath != "" {
			fmt.Fprintf(out, "tuning file:       %s\n", tuningPath)
		} else {
			fmt.Fprintf(out, "tuning file:       (none loaded, built-in defaults)\n")
		}
		return nil
	},
}

func bitOrderName(bigEndian bool) string {
	if bigEndian {
		return "MSB-first"
	}
	return "LSB-first"
}

func nativeWordBytes() int {
	return platform.NativeWordBytes
}

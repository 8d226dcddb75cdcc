package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "roundctl",
	Short: "Round boundary detection over extracted timer readings",
	Long: `roundctl runs round boundary detection offline, without the HTTP service.
It consumes a timer_readings.json file produced by the vision pipeline and
writes the detected rounds and per-round clip cut points next to it.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(detectCmd)
}

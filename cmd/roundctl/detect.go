package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"vod-rounds/internal/rounds"

	"github.com/spf13/cobra"
)

var detectOutput string

var detectCmd = &cobra.Command{
	Use:   "detect <timer_readings.json>",
	Short: "Detect round boundaries from a timer readings file",
	Long: `Load timer readings from a JSON file, run round boundary detection, print
a summary, and write the detected rounds plus a round_clips.json cut list.
Readings may carry timer_value as a plain string or as a
{"timer": ..., "red_triangle": ...} object.`,
	Args: cobra.ExactArgs(1),
	RunE: runDetect,
}

func init() {
	detectCmd.Flags().StringVarP(&detectOutput, "output", "o", "",
		"output file for detected rounds (default: rounds.json next to the input)")
}

func runDetect(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("read readings file: %w", err)
	}

	var readings []rounds.TimerReading
	if err := json.Unmarshal(data, &readings); err != nil {
		return fmt.Errorf("parse readings file: %w", err)
	}

	fmt.Printf("Loaded %d timer readings\n", len(readings))

	detected := rounds.DetectRounds(readings)
	if detected == nil {
		detected = []rounds.Round{}
	}
	fmt.Print(rounds.Summary(detected))

	outputPath := detectOutput
	if outputPath == "" {
		outputPath = filepath.Join(filepath.Dir(inputPath), "rounds.json")
	}
	if err := writeJSONFile(outputPath, detected); err != nil {
		return fmt.Errorf("write rounds: %w", err)
	}
	fmt.Printf("Saved %d detected rounds to %s\n", len(detected), outputPath)

	clips := rounds.BuildClips(detected)
	clipsPath := filepath.Join(filepath.Dir(outputPath), "round_clips.json")
	if err := writeJSONFile(clipsPath, clips); err != nil {
		return fmt.Errorf("write clips: %w", err)
	}
	fmt.Printf("Generated %d round clips to %s\n", len(clips), clipsPath)

	return nil
}

func writeJSONFile(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkarlsen/resume-profiler/internal/profile"
	"github.com/mkarlsen/resume-profiler/internal/types"
)

var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Merge an extraction result into a profile",
	Long:  "Merge a sparse extraction result JSON into a profile JSON: non-empty fields overwrite, empty fields preserve, and new list items receive identifiers.",
	RunE:  runMerge,
}

var (
	mergeProfileFile string
	mergePartialFile string
	mergeOutputFile  string
)

func init() {
	mergeCmd.Flags().StringVar(&mergeProfileFile, "profile", "", "Path to existing profile JSON (omit to merge into an empty profile)")
	mergeCmd.Flags().StringVar(&mergePartialFile, "partial", "", "Path to extraction result JSON")
	mergeCmd.Flags().StringVarP(&mergeOutputFile, "out", "o", "", "Path to output profile JSON (default: stdout)")
	_ = mergeCmd.MarkFlagRequired("partial")

	rootCmd.AddCommand(mergeCmd)
}

func runMerge(_ *cobra.Command, _ []string) error {
	existing := profile.New()
	if mergeProfileFile != "" {
		loaded, err := readProfileFile(mergeProfileFile)
		if err != nil {
			return err
		}
		existing = loaded
	}

	data, err := os.ReadFile(mergePartialFile)
	if err != nil {
		return fmt.Errorf("failed to read partial file: %w", err)
	}

	var partial types.PartialProfile
	if err := json.Unmarshal(data, &partial); err != nil {
		return fmt.Errorf("failed to parse partial JSON: %w", err)
	}
	partial.Normalize()

	merged := profile.Merge(existing, &partial)
	if err := types.ValidateProfile(merged); err != nil {
		return fmt.Errorf("merged profile is invalid: %w", err)
	}

	return writeProfile(merged, mergeOutputFile)
}

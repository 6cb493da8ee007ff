// Package main provides the resume_profiler CLI: extract text from resume
// files, parse it into profile fields, merge results into a canonical
// profile, and generate outreach email templates from it.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mkarlsen/resume-profiler/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "resume_profiler",
	Short: "Resume parsing and profile building CLI",
	Long:  "Resume Profiler turns resume files (PDF, Word, plain text) into a structured, editable profile and generates outreach email templates from it.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the optional config file and folds in the environment.
// An empty path yields a config backed only by env and defaults.
func loadConfig(path string) (*config.Config, error) {
	cfg := &config.Config{}
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

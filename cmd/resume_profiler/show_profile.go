package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkarlsen/resume-profiler/internal/observability"
	"github.com/mkarlsen/resume-profiler/internal/store"
	"github.com/mkarlsen/resume-profiler/internal/types"
)

var showProfileCmd = &cobra.Command{
	Use:   "show-profile",
	Short: "Print a stored or file-based profile",
	RunE:  runShowProfile,
}

var (
	showProfileFile string
	showUserID      string
	showDBURL       string
	showJSON        bool
)

func init() {
	showProfileCmd.Flags().StringVar(&showProfileFile, "profile", "", "Path to profile JSON")
	showProfileCmd.Flags().StringVar(&showUserID, "user-id", "", "User key to load the profile from the database")
	showProfileCmd.Flags().StringVar(&showDBURL, "db-url", "", "Database URL (overrides DATABASE_URL env var)")
	showProfileCmd.Flags().BoolVar(&showJSON, "json", false, "Print the raw profile JSON instead of the summary box")

	rootCmd.AddCommand(showProfileCmd)
}

func runShowProfile(_ *cobra.Command, _ []string) error {
	prof, err := loadShowProfile()
	if err != nil {
		return err
	}

	if showJSON {
		return writeProfile(prof, "")
	}

	observability.NewPrinter(os.Stdout).PrintProfile(prof)
	return nil
}

func loadShowProfile() (*types.Profile, error) {
	if showProfileFile != "" {
		return readProfileFile(showProfileFile)
	}

	if showUserID == "" {
		return nil, fmt.Errorf("provide --profile or --user-id")
	}

	dbURL := showDBURL
	if dbURL == "" {
		dbURL = os.Getenv("DATABASE_URL")
	}
	if dbURL == "" {
		return nil, fmt.Errorf("--db-url or DATABASE_URL is required with --user-id")
	}

	ctx := context.Background()
	s, err := store.Connect(ctx, dbURL)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	prof, err := s.GetProfile(ctx, showUserID)
	if err != nil {
		return nil, err
	}
	if prof == nil {
		return nil, fmt.Errorf("no stored profile for user %s", showUserID)
	}
	return prof, nil
}

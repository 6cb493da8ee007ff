package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mkarlsen/resume-profiler/internal/aiparse"
	"github.com/mkarlsen/resume-profiler/internal/heuristic"
	"github.com/mkarlsen/resume-profiler/internal/llm"
	"github.com/mkarlsen/resume-profiler/internal/observability"
	"github.com/mkarlsen/resume-profiler/internal/profile"
	"github.com/mkarlsen/resume-profiler/internal/store"
	"github.com/mkarlsen/resume-profiler/internal/types"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a resume file into a structured profile",
	Long: "Parse a resume into profile fields using the built-in pattern extractor, " +
		"or the AI parser with --ai, then merge the result into a profile.",
	RunE: runParse,
}

var (
	parseInputFile  string
	parseOutputFile string
	parseMergeInto  string
	parseUseAI      bool
	parseUserID     string
	parseDBURL      string
	parseAPIKey     string
	parseConfigFile string
	parseVerbose    bool
)

func init() {
	parseCmd.Flags().StringVarP(&parseInputFile, "in", "i", "", "Path to resume file (.pdf, .doc, .docx, .txt)")
	parseCmd.Flags().StringVarP(&parseOutputFile, "out", "o", "", "Path to output profile JSON (default: stdout)")
	parseCmd.Flags().StringVar(&parseMergeInto, "merge-into", "", "Path to existing profile JSON to merge the result into")
	parseCmd.Flags().BoolVar(&parseUseAI, "ai", false, "Use the AI parser instead of the pattern extractor")
	parseCmd.Flags().StringVar(&parseUserID, "user-id", "", "User key for saving the profile to the database")
	parseCmd.Flags().StringVar(&parseDBURL, "db-url", "", "Database URL (overrides DATABASE_URL env var)")
	parseCmd.Flags().StringVar(&parseAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	parseCmd.Flags().StringVar(&parseConfigFile, "config", "", "Path to JSON config file")
	parseCmd.Flags().BoolVarP(&parseVerbose, "verbose", "v", false, "Print extraction details")
	_ = parseCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(parseConfigFile)
	if err != nil {
		return err
	}
	if parseAPIKey != "" {
		cfg.APIKey = parseAPIKey
	}
	if parseDBURL != "" {
		cfg.DatabaseURL = parseDBURL
	}
	if parseUserID != "" {
		cfg.UserID = parseUserID
	}
	if parseUserID != "" && cfg.DatabaseURL == "" {
		return fmt.Errorf("--db-url or DATABASE_URL is required with --user-id")
	}

	printer := observability.NewPrinter(os.Stdout)
	ctx := context.Background()

	text, err := extractResumeText(parseInputFile)
	if err != nil {
		return err
	}

	var partial *types.PartialProfile
	if parseUseAI {
		partial, err = parseWithAI(ctx, cfg.APIKey, time.Duration(cfg.ParseTimeout())*time.Second, text)
		if err != nil {
			return err
		}
	} else {
		partial = heuristic.ExtractProfile(text)
	}

	if parseVerbose || cfg.Verbose {
		printer.PrintPartialProfile(partial)
	}

	existing, err := loadExistingProfile(ctx, cfg.UserID, cfg.DatabaseURL)
	if err != nil {
		return err
	}

	merged := profile.Merge(existing, partial)
	if err := types.ValidateProfile(merged); err != nil {
		return fmt.Errorf("merged profile is invalid: %w", err)
	}

	if cfg.UserID != "" {
		s, err := store.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer s.Close()
		if err := s.SaveProfile(ctx, cfg.UserID, merged); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(os.Stdout, "Saved profile for user %s\n", cfg.UserID)
	}

	return writeProfile(merged, parseOutputFile)
}

// parseWithAI runs the model-backed parse under the configured timeout
func parseWithAI(ctx context.Context, apiKey string, timeout time.Duration, text string) (*types.PartialProfile, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required for --ai (set GEMINI_API_KEY or use --api-key)")
	}

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	partial, err := aiparse.ParseResume(ctx, client, text)
	if err != nil {
		return nil, fmt.Errorf("AI parse failed: %w", err)
	}
	return partial, nil
}

// loadExistingProfile picks the merge base: the --merge-into file, the
// stored profile for the user, or a fresh empty profile.
func loadExistingProfile(ctx context.Context, userID, dbURL string) (*types.Profile, error) {
	if parseMergeInto != "" {
		return readProfileFile(parseMergeInto)
	}

	if userID != "" {
		s, err := store.Connect(ctx, dbURL)
		if err != nil {
			return nil, err
		}
		defer s.Close()

		stored, err := s.GetProfile(ctx, userID)
		if err != nil {
			return nil, err
		}
		if stored != nil {
			return stored, nil
		}
	}

	return profile.New(), nil
}

func readProfileFile(path string) (*types.Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file: %w", err)
	}

	var p types.Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse profile JSON: %w", err)
	}
	return &p, nil
}

func writeProfile(p *types.Profile, path string) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	if path == "" {
		_, _ = fmt.Fprintln(os.Stdout, string(data))
		return nil
	}

	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write profile file: %w", err)
	}
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", path)
	return nil
}

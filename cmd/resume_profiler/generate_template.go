package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkarlsen/resume-profiler/internal/llm"
	"github.com/mkarlsen/resume-profiler/internal/observability"
	"github.com/mkarlsen/resume-profiler/internal/store"
	"github.com/mkarlsen/resume-profiler/internal/template"
	"github.com/mkarlsen/resume-profiler/internal/types"
)

var generateTemplateCmd = &cobra.Command{
	Use:   "generate-template",
	Short: "Generate outreach email templates from a profile",
	Long:  "Generate a personalized outreach email template (cold email, follow-up, thank-you, ...) from a profile, or all types at once with --all.",
	RunE:  runGenerateTemplate,
}

var (
	genProfileFile string
	genType        string
	genAll         bool
	genTargetRole  string
	genCompany     string
	genUserID      string
	genDBURL       string
	genAPIKey      string
	genConfigFile  string
)

func init() {
	generateTemplateCmd.Flags().StringVar(&genProfileFile, "profile", "", "Path to profile JSON (or use --user-id to load from the database)")
	generateTemplateCmd.Flags().StringVarP(&genType, "type", "t", "", "Template type: cold-email, follow-up, thank-you, connection-request, interview-request, salary-negotiation")
	generateTemplateCmd.Flags().BoolVar(&genAll, "all", false, "Generate one template of every type")
	generateTemplateCmd.Flags().StringVar(&genTargetRole, "role", "", "Target role the email addresses")
	generateTemplateCmd.Flags().StringVar(&genCompany, "company", "", "Target company (optional)")
	generateTemplateCmd.Flags().StringVar(&genUserID, "user-id", "", "User key for loading the profile and saving templates")
	generateTemplateCmd.Flags().StringVar(&genDBURL, "db-url", "", "Database URL (overrides DATABASE_URL env var)")
	generateTemplateCmd.Flags().StringVar(&genAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	generateTemplateCmd.Flags().StringVar(&genConfigFile, "config", "", "Path to JSON config file")
	_ = generateTemplateCmd.MarkFlagRequired("role")

	rootCmd.AddCommand(generateTemplateCmd)
}

func runGenerateTemplate(_ *cobra.Command, _ []string) error {
	if genType == "" && !genAll {
		return fmt.Errorf("provide --type or --all")
	}
	if genType != "" && genAll {
		return fmt.Errorf("--type and --all are mutually exclusive")
	}

	cfg, err := loadConfig(genConfigFile)
	if err != nil {
		return err
	}
	if genAPIKey != "" {
		cfg.APIKey = genAPIKey
	}
	if genDBURL != "" {
		cfg.DatabaseURL = genDBURL
	}
	if genUserID != "" {
		cfg.UserID = genUserID
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("API key is required (set GEMINI_API_KEY or use --api-key)")
	}

	ctx := context.Background()

	prof, s, err := loadTemplateProfile(ctx, cfg.UserID, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	if s != nil {
		defer s.Close()
	}

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), cfg.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	var templates []*types.EmailTemplate
	if genAll {
		templates, err = template.GenerateAll(ctx, client, prof, genTargetRole, genCompany)
		if err != nil {
			return err
		}
	} else {
		tmpl, err := template.Generate(ctx, client, prof, template.Options{
			Type:       types.TemplateType(genType),
			TargetRole: genTargetRole,
			Company:    genCompany,
		})
		if err != nil {
			return err
		}
		templates = []*types.EmailTemplate{tmpl}
	}

	printer := observability.NewPrinter(os.Stdout)
	for _, tmpl := range templates {
		printer.PrintTemplate(tmpl)
		if s != nil {
			if err := s.SaveTemplate(ctx, cfg.UserID, tmpl); err != nil {
				return err
			}
		}
	}
	if s != nil {
		_, _ = fmt.Fprintf(os.Stdout, "Saved %d template(s) for user %s\n", len(templates), cfg.UserID)
	}

	return nil
}

// loadTemplateProfile loads the profile from file or database. The store
// is returned non-nil when database persistence is in play.
func loadTemplateProfile(ctx context.Context, userID, dbURL string) (*types.Profile, *store.Store, error) {
	if genProfileFile != "" {
		prof, err := readProfileFile(genProfileFile)
		return prof, nil, err
	}

	if userID == "" {
		return nil, nil, fmt.Errorf("provide --profile or --user-id")
	}
	if dbURL == "" {
		return nil, nil, fmt.Errorf("--db-url or DATABASE_URL is required with --user-id")
	}

	s, err := store.Connect(ctx, dbURL)
	if err != nil {
		return nil, nil, err
	}

	prof, err := s.GetProfile(ctx, userID)
	if err != nil {
		s.Close()
		return nil, nil, err
	}
	if prof == nil {
		s.Close()
		return nil, nil, fmt.Errorf("no stored profile for user %s", userID)
	}

	return prof, s, nil
}

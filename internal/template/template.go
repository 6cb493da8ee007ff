// Package template generates outreach email templates personalized from a
// profile: cold emails, follow-ups, thank-you notes and the like.
package template

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/mkarlsen/resume-profiler/internal/llm"
	"github.com/mkarlsen/resume-profiler/internal/prompts"
	"github.com/mkarlsen/resume-profiler/internal/types"
)

// Options selects what to generate and who it addresses
type Options struct {
	Type       types.TemplateType
	TargetRole string
	Company    string // optional
}

// highlightCount bounds how many experience entries feed the prompt
const highlightCount = 2

// Generate produces one email template of the requested type,
// personalized from the profile.
func Generate(ctx context.Context, client llm.Client, profile *types.Profile, opts Options) (*types.EmailTemplate, error) {
	if !opts.Type.Valid() {
		return nil, fmt.Errorf("unknown template type %q", opts.Type)
	}
	if opts.TargetRole == "" {
		return nil, fmt.Errorf("target role is required")
	}

	prompt := buildPrompt(profile, opts)

	response, err := client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return nil, fmt.Errorf("failed to generate %s template: %w", opts.Type, err)
	}

	var parsed struct {
		Subject string `json:"subject"`
		Body    string `json:"body"`
	}
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(response)), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse template response: %w", err)
	}
	if parsed.Subject == "" || parsed.Body == "" {
		return nil, fmt.Errorf("template response missing subject or body")
	}

	return &types.EmailTemplate{
		ID:      uuid.New().String(),
		Subject: parsed.Subject,
		Body:    parsed.Body,
		Type:    opts.Type,
		Role:    opts.TargetRole,
		Company: opts.Company,
	}, nil
}

// GenerateAll produces one template per known type concurrently. The
// first failure cancels the remaining generations.
func GenerateAll(ctx context.Context, client llm.Client, profile *types.Profile, targetRole, company string) ([]*types.EmailTemplate, error) {
	g, ctx := errgroup.WithContext(ctx)

	templates := make([]*types.EmailTemplate, len(types.AllTemplateTypes))
	for i, tt := range types.AllTemplateTypes {
		i, tt := i, tt
		g.Go(func() error {
			tmpl, err := Generate(ctx, client, profile, Options{
				Type:       tt,
				TargetRole: targetRole,
				Company:    company,
			})
			if err != nil {
				return err
			}
			templates[i] = tmpl
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return templates, nil
}

func buildPrompt(profile *types.Profile, opts Options) string {
	companyLine := ""
	if opts.Company != "" {
		companyLine = "- Target Company: " + opts.Company + "\n"
	}

	template := prompts.MustGet("templates.json", "generate_email")
	return prompts.Format(template, map[string]string{
		"Type":            string(opts.Type),
		"Name":            profile.BasicInfo.Name,
		"Title":           profile.BasicInfo.Title,
		"TargetRole":      opts.TargetRole,
		"Skills":          skillsLine(profile.Skills),
		"ExperienceCount": strconv.Itoa(len(profile.Experience)),
		"CompanyLine":     companyLine,
		"Highlights":      highlights(profile.Experience),
	})
}

func skillsLine(skills []string) string {
	if len(skills) == 0 {
		return "Not specified"
	}
	return strings.Join(skills, ", ")
}

// highlights summarizes the most recent experience entries, one per line
func highlights(experience []types.Experience) string {
	n := len(experience)
	if n == 0 {
		return "- No prior experience listed"
	}
	if n > highlightCount {
		n = highlightCount
	}

	lines := make([]string, 0, n)
	for _, exp := range experience[:n] {
		role := exp.Role
		if role == "" {
			role = "Role"
		}
		desc := exp.Description
		if len(desc) > 100 {
			desc = desc[:100] + "..."
		}
		if desc == "" {
			desc = "Not specified"
		}
		lines = append(lines, fmt.Sprintf("- %s at %s: %s", role, exp.Company, desc))
	}
	return strings.Join(lines, "\n")
}

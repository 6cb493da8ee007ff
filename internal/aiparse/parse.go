// Package aiparse implements the model-backed resume parsing path: the
// resume text goes to the LLM with a structured-output prompt, and the
// JSON response is schema-checked before it becomes a PartialProfile.
package aiparse

import (
	"context"
	_ "embed"
	"encoding/json"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/mkarlsen/resume-profiler/internal/heuristic"
	"github.com/mkarlsen/resume-profiler/internal/llm"
	"github.com/mkarlsen/resume-profiler/internal/prompts"
	"github.com/mkarlsen/resume-profiler/internal/types"
)

//go:embed schema.json
var responseSchema string

// ParseResume extracts a PartialProfile from resume text using the model.
// The caller bounds the call with ctx; a deadline of about 30 seconds is
// the expected contract. Failures are reported as *APICallError,
// *ParseError, or *ValidationError so callers can phrase them differently
// to the user.
func ParseResume(ctx context.Context, client llm.Client, text string) (*types.PartialProfile, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &ValidationError{Message: "resume text is empty"}
	}

	prompt := buildParsePrompt(text)

	response, err := client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, &APICallError{Message: "failed to generate parse response", Cause: err}
	}

	partial, err := decodeResponse(response)
	if err != nil {
		return nil, err
	}

	if partial.Bio == "" {
		partial.Bio = fallbackBio(ctx, client, partial)
	}

	partial.Normalize()
	return partial, nil
}

func buildParsePrompt(text string) string {
	template := prompts.MustGet("resume.json", "parse_resume")
	return prompts.Format(template, map[string]string{
		"ResumeText": text,
	})
}

// decodeResponse validates the raw model output against the response
// schema and unmarshals it.
func decodeResponse(response string) (*types.PartialProfile, error) {
	response = llm.CleanJSONBlock(response)
	if response == "" {
		return nil, &ParseError{Message: "empty response from model"}
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(responseSchema),
		gojsonschema.NewStringLoader(response),
	)
	if err != nil {
		return nil, &ParseError{Message: "response is not valid JSON", Cause: err}
	}
	if !result.Valid() {
		desc := result.Errors()[0]
		return nil, &ValidationError{Field: desc.Field(), Message: desc.Description()}
	}

	var partial types.PartialProfile
	if err := json.Unmarshal([]byte(response), &partial); err != nil {
		return nil, &ParseError{Message: "failed to unmarshal response", Cause: err}
	}

	// Extractors never allocate identifiers; merge does
	stripIDs(&partial)

	return &partial, nil
}

// fallbackBio asks the model for a bio built from the fields it did
// return, falling back further to the deterministic summary when that
// call fails too.
func fallbackBio(ctx context.Context, client llm.Client, partial *types.PartialProfile) string {
	var topExperience string
	if len(partial.Experience) > 0 {
		topExperience = partial.Experience[0].Role + " at " + partial.Experience[0].Company
	}

	template := prompts.MustGet("resume.json", "fallback_bio")
	prompt := prompts.Format(template, map[string]string{
		"Name":       partial.Name,
		"Title":      partial.Title,
		"Experience": topExperience,
		"Skills":     strings.Join(partial.Skills, ", "),
	})

	bio, err := client.GenerateContent(ctx, prompt, llm.TierLite)
	if err != nil {
		return heuristic.Summary(partial.Title, partial.Skills)
	}
	return strings.TrimSpace(bio)
}

func stripIDs(partial *types.PartialProfile) {
	for i := range partial.Experience {
		partial.Experience[i].ID = ""
	}
	for i := range partial.Education {
		partial.Education[i].ID = ""
	}
	for i := range partial.Projects {
		partial.Projects[i].ID = ""
	}
	for i := range partial.Achievements {
		partial.Achievements[i].ID = ""
	}
}

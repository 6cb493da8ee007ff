// Package heuristic implements the pattern-matching resume field
// extractor: plain resume text in, sparse PartialProfile out. Every
// sub-heuristic degrades to an empty value: the extractor never fails,
// and partial or entirely empty output is valid output.
package heuristic

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mkarlsen/resume-profiler/internal/types"
)

var (
	emailRe = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	phoneRe = regexp.MustCompile(`(?:\+\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)

	// nameCandidateRe accepts letters, spaces, hyphens, apostrophes, and
	// periods, the shapes human names take on a resume's first lines.
	nameCandidateRe = regexp.MustCompile(`^[A-Za-z][A-Za-z .'-]*$`)
)

// nameScanLines bounds how far into the document the name heuristic looks
const nameScanLines = 5

// ExtractProfile applies all field heuristics to resume text and returns a
// sparse PartialProfile. Deterministic for a given input; identifiers are
// never allocated here.
func ExtractProfile(text string) *types.PartialProfile {
	partial := &types.PartialProfile{}
	partial.Normalize()

	text = strings.TrimSpace(text)
	if text == "" {
		return partial
	}

	partial.Email = firstMatch(emailRe, text)
	partial.Phone = firstMatch(phoneRe, text)
	partial.Name = extractName(text)

	sections := SplitSections(text)

	if sections.Skills != "" {
		if skills := MatchTechnologies(sections.Skills); skills != nil {
			partial.Skills = skills
		}
	}
	if exp := parseExperience(sections.Experience); exp != nil {
		partial.Experience = exp
	}
	if edu := parseEducation(sections.Education); edu != nil {
		partial.Education = edu
	}
	if projects := parseProjects(sections.Projects); projects != nil {
		partial.Projects = projects
	}

	if len(partial.Experience) > 0 {
		partial.Title = partial.Experience[0].Role
	}
	partial.Bio = buildSummary(partial.Title, summaryTechnologies(partial))

	return partial
}

// firstMatch returns the first regexp match in text, or ""
func firstMatch(re *regexp.Regexp, text string) string {
	return re.FindString(text)
}

// extractName inspects the first few non-empty lines for a name-shaped
// candidate. Separator-delimited contact fragments ("John Smith | NYC |
// john@x.com") are stripped before testing the shape.
func extractName(text string) string {
	scanned := 0
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if scanned++; scanned > nameScanLines {
			break
		}
		if isSectionHeader(line) {
			continue
		}

		candidate := stripContactFragments(line)
		if candidate == "" || !nameCandidateRe.MatchString(candidate) {
			continue
		}
		if words := len(strings.Fields(candidate)); words >= 1 && words <= 5 {
			return candidate
		}
	}
	return ""
}

// stripContactFragments removes fragments containing emails, URLs, or
// digits from a separator-delimited line and returns what remains.
func stripContactFragments(line string) string {
	fragments := strings.FieldsFunc(line, func(r rune) bool {
		return r == '|' || r == '•' || r == '·' || r == ','
	})

	var kept []string
	for _, fragment := range fragments {
		fragment = strings.TrimSpace(fragment)
		if fragment == "" || strings.ContainsAny(fragment, "@0123456789/") {
			continue
		}
		kept = append(kept, fragment)
	}
	return strings.Join(kept, " ")
}

// Summary builds the deterministic one-line professional summary used
// whenever no model-written bio is available.
func Summary(role string, technologies []string) string {
	return buildSummary(role, technologies)
}

// buildSummary fills a fixed sentence pattern with the most recent role
// and the top detected technologies. This is the deterministic, non-AI
// summary path; it yields "" when there is nothing to say.
func buildSummary(role string, technologies []string) string {
	const maxSummaryTechs = 3
	if len(technologies) > maxSummaryTechs {
		technologies = technologies[:maxSummaryTechs]
	}

	switch {
	case role != "" && len(technologies) > 0:
		return fmt.Sprintf("%s with hands-on experience in %s.", role, joinNatural(technologies))
	case role != "":
		return fmt.Sprintf("%s with a track record of delivering software projects.", role)
	case len(technologies) > 0:
		return fmt.Sprintf("Software professional with hands-on experience in %s.", joinNatural(technologies))
	default:
		return ""
	}
}

// summaryTechnologies picks the technology list the summary draws from:
// top-level skills when present, otherwise the latest experience entry's.
func summaryTechnologies(partial *types.PartialProfile) []string {
	if len(partial.Skills) > 0 {
		return partial.Skills
	}
	if len(partial.Experience) > 0 {
		return partial.Experience[0].Technologies
	}
	return nil
}

// joinNatural joins items as "a, b and c"
func joinNatural(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
	}
}

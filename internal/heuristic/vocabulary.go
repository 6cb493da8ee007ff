package heuristic

import (
	"regexp"
	"strings"
)

// technologyVocabulary is the fixed, enumerated list of skill and
// technology names the extractor is allowed to emit. Matching is
// word-boundary-safe, so "Go" never matches inside "Google" or "Golang".
var technologyVocabulary = []string{
	// Languages
	"JavaScript", "TypeScript", "Python", "Java", "C++", "C#", "Go", "Rust",
	"Ruby", "PHP", "Swift", "Kotlin", "Scala", "R",
	// Frameworks and runtimes
	"React", "Angular", "Vue", "Node.js", "Express", "Next.js", "Django",
	"Flask", "FastAPI", "Spring", "Rails", ".NET",
	// Data stores
	"MongoDB", "PostgreSQL", "MySQL", "Redis", "SQLite", "Elasticsearch",
	"Cassandra", "DynamoDB",
	// Cloud and infrastructure
	"AWS", "Azure", "GCP", "Docker", "Kubernetes", "Terraform", "Jenkins",
	"Kafka", "RabbitMQ", "Nginx",
	// Tools and practices
	"Git", "CI/CD", "REST API", "GraphQL", "gRPC", "Linux", "Agile",
	"HTML", "CSS", "Sass", "Tailwind", "Machine Learning",
}

// vocabularyMatchers pairs each vocabulary entry with its compiled pattern.
// Built once at init; entries containing regex metacharacters (C++, C#,
// Node.js) are escaped, and word boundaries are only anchored against
// word characters so entries ending in symbols still match.
var vocabularyMatchers = buildMatchers(technologyVocabulary)

type vocabularyMatcher struct {
	name string
	re   *regexp.Regexp
}

func buildMatchers(vocabulary []string) []vocabularyMatcher {
	matchers := make([]vocabularyMatcher, 0, len(vocabulary))
	for _, entry := range vocabulary {
		matchers = append(matchers, vocabularyMatcher{
			name: entry,
			re:   regexp.MustCompile(boundaryPattern(entry)),
		})
	}
	return matchers
}

// boundaryPattern builds a case-insensitive pattern for a vocabulary entry
// with \b anchors applied only where the entry starts or ends with a word
// character ("C++" has no trailing word boundary to anchor against).
func boundaryPattern(entry string) string {
	quoted := regexp.QuoteMeta(entry)

	var sb strings.Builder
	sb.WriteString("(?i)")
	if isWordChar(entry[0]) {
		sb.WriteString(`\b`)
	}
	sb.WriteString(quoted)
	if isWordChar(entry[len(entry)-1]) {
		sb.WriteString(`\b`)
	}
	return sb.String()
}

func isWordChar(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// MatchTechnologies intersects text against the technology vocabulary and
// returns the canonical names of every entry found, in vocabulary order.
// It never guesses: only exact word-boundary matches are returned.
func MatchTechnologies(text string) []string {
	if text == "" {
		return nil
	}

	var found []string
	for _, m := range vocabularyMatchers {
		if m.re.MatchString(text) {
			found = append(found, m.name)
		}
	}
	return found
}

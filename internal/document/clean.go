package document

import (
	"regexp"
	"strings"
)

var (
	multiSpaceRe = regexp.MustCompile(`\s+`)
	blankRunsRe  = regexp.MustCompile(`\n\n\n+`)
)

// CleanText normalizes extracted resume text while preserving the line
// boundaries that section segmentation depends on.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	// Normalize line endings (CRLF → LF)
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, cleanLine(line))
	}

	result := strings.Join(cleaned, "\n")

	// Reduce 3+ consecutive blank lines to one blank line
	result = blankRunsRe.ReplaceAllString(result, "\n\n")

	return strings.TrimSpace(result)
}

// cleanLine trims a single line and collapses internal runs of whitespace,
// keeping bullet markers intact so they survive as description lines.
func cleanLine(line string) string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return ""
	}

	if marker, rest, ok := splitBullet(trimmed); ok {
		return marker + " " + multiSpaceRe.ReplaceAllString(strings.TrimSpace(rest), " ")
	}

	return multiSpaceRe.ReplaceAllString(trimmed, " ")
}

// bulletMarkers are the prefixes treated as description bullets
var bulletMarkers = []string{"•", "·", "-", "*", "–"}

// splitBullet splits a trimmed line into its bullet marker and remainder
func splitBullet(line string) (marker, rest string, ok bool) {
	for _, m := range bulletMarkers {
		if strings.HasPrefix(line, m+" ") {
			return m, strings.TrimPrefix(line, m+" "), true
		}
	}
	return "", "", false
}

// IsBulletLine reports whether a line is a bullet description line
func IsBulletLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	for _, m := range bulletMarkers {
		if strings.HasPrefix(trimmed, m+" ") {
			return true
		}
	}
	return false
}

// StripBullet removes a leading bullet marker from a line, if present
func StripBullet(line string) string {
	trimmed := strings.TrimSpace(line)
	if _, rest, ok := splitBullet(trimmed); ok {
		return strings.TrimSpace(rest)
	}
	return trimmed
}

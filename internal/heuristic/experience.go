package heuristic

import (
	"strings"

	"github.com/mkarlsen/resume-profiler/internal/document"
	"github.com/mkarlsen/resume-profiler/internal/types"
)

// maxHeaderLines bounds how many lines above a date-range line are treated
// as an entry's company/role header.
const maxHeaderLines = 2

// parseExperience splits the experience section into entries delimited by
// date-range lines. Each range line closes over at most two preceding
// non-bullet lines (company, and optionally a role line) and the bullet
// lines that follow it. Entries lacking both a company and a role are
// discarded.
func parseExperience(section string) []types.Experience {
	if section == "" {
		return nil
	}

	lines := strings.Split(section, "\n")

	// Indices of lines carrying a date range outside of bullets
	var rangeIdx []int
	for i, line := range lines {
		if !document.IsBulletLine(line) && ContainsDateRange(line) {
			rangeIdx = append(rangeIdx, i)
		}
	}
	if len(rangeIdx) == 0 {
		return nil
	}

	var entries []types.Experience
	for k, di := range rangeIdx {
		prevEnd := -1
		if k > 0 {
			prevEnd = rangeIdx[k-1]
		}
		headerStart := headerStartBefore(lines, di, prevEnd)

		descEnd := len(lines)
		if k+1 < len(rangeIdx) {
			descEnd = headerStartBefore(lines, rangeIdx[k+1], di)
		}

		entry := buildExperience(lines, headerStart, di, descEnd)
		if entry.Company == "" && entry.Role == "" {
			continue
		}
		entries = append(entries, entry)
	}

	return entries
}

// headerStartBefore walks backwards from a date-range line collecting the
// contiguous non-empty, non-bullet lines that form the entry header.
func headerStartBefore(lines []string, rangeLine, floor int) int {
	start := rangeLine
	for start-1 > floor && rangeLine-start < maxHeaderLines {
		prev := strings.TrimSpace(lines[start-1])
		if prev == "" || document.IsBulletLine(lines[start-1]) || ContainsDateRange(lines[start-1]) {
			break
		}
		start--
	}
	return start
}

// buildExperience assembles one entry from its header lines, date-range
// line, and trailing description lines.
func buildExperience(lines []string, headerStart, rangeLine, descEnd int) types.Experience {
	var entry types.Experience

	if r, ok := ParseDateRange(lines[rangeLine]); ok {
		entry.StartDate = r.Start
		entry.EndDate = r.End
		entry.Current = r.Current
	}

	// The date-range line doubles as the role line when text remains
	// after the range is stripped.
	entry.Role = StripDateRange(lines[rangeLine])

	headers := make([]string, 0, maxHeaderLines)
	for i := headerStart; i < rangeLine; i++ {
		if trimmed := strings.TrimSpace(lines[i]); trimmed != "" {
			headers = append(headers, trimmed)
		}
	}

	if len(headers) > 0 {
		company := headers[0]
		// "Software Engineer at Acme Corp" puts role and company on one line
		if role, rest, ok := splitRoleAt(company); ok {
			if entry.Role == "" {
				entry.Role = role
			}
			company = rest
		}
		entry.Company, entry.Location = splitLocation(company)
	}
	if entry.Role == "" && len(headers) > 1 {
		entry.Role = headers[1]
	}

	// Bullet lines after the range line form the description
	var bullets []string
	for i := rangeLine + 1; i < descEnd; i++ {
		if document.IsBulletLine(lines[i]) {
			bullets = append(bullets, document.StripBullet(lines[i]))
		}
	}
	entry.Description = strings.Join(bullets, "\n")

	entryText := strings.Join(lines[headerStart:descEnd], "\n")
	entry.Technologies = MatchTechnologies(entryText)

	return entry
}

// splitRoleAt splits "Role at Company" lines on the first " at " token
func splitRoleAt(line string) (role, company string, ok bool) {
	idx := strings.Index(strings.ToLower(line), " at ")
	if idx <= 0 {
		return "", "", false
	}
	role = strings.TrimSpace(line[:idx])
	company = strings.TrimSpace(line[idx+len(" at "):])
	if role == "" || company == "" {
		return "", "", false
	}
	return role, company, true
}

// splitLocation splits an optional trailing location off a company line,
// recognizing "Acme Corp | Berlin" and "Acme Corp, Berlin" forms.
func splitLocation(line string) (company, location string) {
	for _, sep := range []string{"|", "·", ","} {
		if idx := strings.Index(line, sep); idx > 0 {
			return strings.TrimSpace(line[:idx]), strings.TrimSpace(line[idx+len(sep):])
		}
	}
	return strings.TrimSpace(line), ""
}

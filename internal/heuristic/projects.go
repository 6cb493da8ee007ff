package heuristic

import (
	"regexp"
	"strings"

	"github.com/mkarlsen/resume-profiler/internal/document"
	"github.com/mkarlsen/resume-profiler/internal/types"
)

var (
	// projectTitleRe matches a capitalized phrase optionally followed by a
	// parenthetical, e.g. "Inventory Tracker (React, Go)".
	projectTitleRe = regexp.MustCompile(`^[A-Z][A-Za-z0-9 .&'/+-]{0,60}(\s*\([^)]*\))?$`)

	techStackRe = regexp.MustCompile(`(?i)^(?:tech stack|technologies|built with)\s*[:\-]\s*(.+)$`)

	absoluteURLRe = regexp.MustCompile(`https?://[^\s)>\]]+`)
)

// repoHosts are the source-repository domains recognized for project links
var repoHosts = []string{"github.com", "gitlab.com", "bitbucket.org"}

// metadataPrefixes label credential lines that must not leak into a
// project description (demo accounts and the like).
var metadataPrefixes = []string{"user:", "admin:", "username:", "password:", "login:"}

func isMetadataLine(line string) bool {
	lower := strings.ToLower(strings.TrimSpace(line))
	for _, prefix := range metadataPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}

// parseProjects splits the projects section on title-shaped lines and
// assembles a record per block: a "Tech Stack:" line populates the
// technology list, bullet lines become the description, and links are
// routed to repo or demo URL by host.
func parseProjects(section string) []types.Project {
	if section == "" {
		return nil
	}

	lines := strings.Split(section, "\n")

	var projects []types.Project
	var cur *types.Project
	var curLines []string

	finish := func() {
		if cur == nil {
			return
		}
		if len(cur.Technologies) == 0 {
			cur.Technologies = MatchTechnologies(strings.Join(curLines, "\n"))
		}
		if cur.Name != "" {
			projects = append(projects, *cur)
		}
		cur = nil
		curLines = nil
	}

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if isProjectTitle(line) {
			finish()
			cur = &types.Project{Name: stripTitleParenthetical(line)}
			curLines = []string{line}
			continue
		}
		if cur == nil {
			continue
		}
		curLines = append(curLines, line)

		if m := techStackRe.FindStringSubmatch(line); m != nil {
			cur.Technologies = splitTechList(m[1])
			continue
		}

		if url, isRepo, ok := extractLink(line); ok {
			if isRepo && cur.RepoURL == "" {
				cur.RepoURL = url
			} else if !isRepo && cur.DemoURL == "" {
				cur.DemoURL = url
			}
			continue
		}

		if document.IsBulletLine(raw) {
			bullet := document.StripBullet(raw)
			if isMetadataLine(bullet) {
				continue
			}
			if cur.Description == "" {
				cur.Description = bullet
			} else {
				cur.Description += "\n" + bullet
			}
		}
	}
	finish()

	return projects
}

// isProjectTitle reports whether a line looks like a project heading
func isProjectTitle(line string) bool {
	if document.IsBulletLine(line) || ContainsDateRange(line) {
		return false
	}
	if techStackRe.MatchString(line) || absoluteURLRe.MatchString(line) {
		return false
	}
	if !projectTitleRe.MatchString(line) {
		return false
	}
	// Headings are short; long capitalized sentences are description text
	return len(strings.Fields(line)) <= 8
}

// stripTitleParenthetical drops a trailing parenthetical from a title line
func stripTitleParenthetical(line string) string {
	if idx := strings.Index(line, "("); idx > 0 {
		return strings.TrimSpace(line[:idx])
	}
	return strings.TrimSpace(line)
}

// splitTechList splits a comma-separated technology list
func splitTechList(list string) []string {
	parts := strings.Split(list, ",")
	techs := make([]string, 0, len(parts))
	for _, part := range parts {
		if tech := strings.TrimSpace(part); tech != "" {
			techs = append(techs, tech)
		}
	}
	return techs
}

// extractLink pulls the first absolute URL out of a line and classifies
// it as a source-repository or live-demo link.
func extractLink(line string) (url string, isRepo, ok bool) {
	url = absoluteURLRe.FindString(line)
	if url == "" {
		// A bare repo host without a scheme still counts as a repo link
		for _, host := range repoHosts {
			if idx := strings.Index(line, host); idx >= 0 {
				for _, field := range strings.Fields(line) {
					if strings.Contains(field, host) {
						return field, true, true
					}
				}
			}
		}
		return "", false, false
	}

	url = strings.TrimRight(url, ".,;")
	for _, host := range repoHosts {
		if strings.Contains(url, host) {
			return url, true, true
		}
	}
	return url, false, true
}

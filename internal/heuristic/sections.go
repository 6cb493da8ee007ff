package heuristic

import "strings"

// sectionKind identifies a recognized resume section
type sectionKind int

const (
	sectionNone sectionKind = iota
	sectionExperience
	sectionEducation
	sectionProjects
	sectionSkills
	sectionAchievements
)

// sectionHeaders maps lowercase header labels to their section kind.
// A line is a header only when it consists of exactly one of these labels
// (optionally with a trailing colon), so "10 years of experience" in a
// summary never starts a section.
var sectionHeaders = map[string]sectionKind{
	"experience":              sectionExperience,
	"work experience":         sectionExperience,
	"professional experience": sectionExperience,
	"employment":              sectionExperience,
	"employment history":      sectionExperience,
	"work history":            sectionExperience,
	"education":               sectionEducation,
	"academic background":     sectionEducation,
	"academics":               sectionEducation,
	"projects":                sectionProjects,
	"personal projects":       sectionProjects,
	"academic projects":       sectionProjects,
	"skills":                  sectionSkills,
	"technical skills":        sectionSkills,
	"technologies":            sectionSkills,
	"core competencies":       sectionSkills,
	"achievements":            sectionAchievements,
	"awards":                  sectionAchievements,
	"honors":                  sectionAchievements,
	"accomplishments":         sectionAchievements,
}

// Sections holds the text of each recognized resume section. A section
// whose header was absent is the empty string.
type Sections struct {
	Preamble     string // text before the first recognized header
	Experience   string
	Education    string
	Projects     string
	Skills       string
	Achievements string
}

// SplitSections slices resume text into named regions. Each region spans
// from its header line (exclusive) to the next recognized header or end of
// text. A missing header yields an empty region, never an error.
func SplitSections(text string) Sections {
	lines := strings.Split(text, "\n")

	var sections Sections
	current := sectionNone
	var buf []string

	flush := func() {
		content := strings.TrimSpace(strings.Join(buf, "\n"))
		buf = buf[:0]
		switch current {
		case sectionNone:
			sections.Preamble = content
		case sectionExperience:
			sections.Experience = content
		case sectionEducation:
			sections.Education = content
		case sectionProjects:
			sections.Projects = content
		case sectionSkills:
			sections.Skills = content
		case sectionAchievements:
			sections.Achievements = content
		}
	}

	for _, line := range lines {
		if kind := headerKind(line); kind != sectionNone {
			flush()
			current = kind
			continue
		}
		buf = append(buf, line)
	}
	flush()

	return sections
}

// headerKind classifies a line as a section header, or sectionNone
func headerKind(line string) sectionKind {
	label := strings.ToLower(strings.TrimSpace(line))
	label = strings.TrimSuffix(label, ":")
	label = strings.TrimSpace(label)
	if label == "" {
		return sectionNone
	}
	if kind, ok := sectionHeaders[label]; ok {
		return kind
	}
	return sectionNone
}

// isSectionHeader reports whether a line is any recognized section header
func isSectionHeader(line string) bool {
	return headerKind(line) != sectionNone
}

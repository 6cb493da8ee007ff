package heuristic

import (
	"regexp"
	"strings"

	"github.com/mkarlsen/resume-profiler/internal/types"
)

// degreeKeywords start a new education record when matched on a line.
// Longer forms come first so "B.Tech" wins over a later bare "B".
var degreeKeywords = []string{
	"Bachelor of Technology", "Bachelor of Science", "Bachelor of Arts",
	"Bachelor of Engineering", "Master of Technology", "Master of Science",
	"Master of Arts", "Master of Business Administration",
	"Bachelor", "Master", "B.Tech", "M.Tech", "B.Sc", "M.Sc", "B.E", "M.E",
	"Ph.D", "PhD", "MBA", "BSc", "MSc", "BS", "MS", "BA", "MA", "Diploma",
}

// institutionKeywords mark a line as naming the awarding institution
var institutionKeywords = []string{
	"University", "College", "Institute", "Institution", "School", "Academy",
}

// fieldsOfStudy is the fixed list of recognized field-of-study labels
var fieldsOfStudy = []string{
	"Computer Science", "Computer Engineering", "Software Engineering",
	"Information Technology", "Information Systems", "Data Science",
	"Electrical Engineering", "Electronics", "Mechanical Engineering",
	"Civil Engineering", "Mathematics", "Physics", "Chemistry",
	"Business Administration", "Economics", "Finance",
}

var (
	yearRangeRe = regexp.MustCompile(`(\d{4})\s*(?:-|–|—|to)\s*(\d{4}|(?i:Present))`)
	gradeRe     = regexp.MustCompile(`(?i)(?:C?GPA|Grade)\s*[:\-]?\s*([0-9]+(?:\.[0-9]+)?(?:\s*/\s*[0-9.]+)?|[A-F][+-]?)`)
)

// parseEducation scans the education section line by line. A degree
// keyword starts a new record; institution keywords, year ranges, grade
// markers, and field-of-study labels fill the current one. A record is
// only emitted once it has an institution or a degree, so all-empty noise
// records never surface.
func parseEducation(section string) []types.Education {
	if section == "" {
		return nil
	}

	var records []types.Education
	var cur *types.Education

	emit := func() {
		if cur != nil && (cur.Institution != "" || cur.Degree != "") {
			if cur.Field == "" {
				cur.Field = cur.Degree
			}
			records = append(records, *cur)
		}
		cur = nil
	}
	ensure := func() *types.Education {
		if cur == nil {
			cur = &types.Education{}
		}
		return cur
	}

	for _, raw := range strings.Split(section, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if degree := matchDegree(line); degree != "" {
			emit()
			rec := ensure()
			rec.Degree = degree
			if field := matchFieldOfStudy(line); field != "" {
				rec.Field = field
			}
			continue
		}

		if isInstitutionLine(line) {
			rec := ensure()
			if rec.Institution != "" {
				emit()
				rec = ensure()
			}
			rec.Institution = line
			continue
		}

		if m := yearRangeRe.FindStringSubmatch(line); m != nil {
			rec := ensure()
			if rec.StartDate == "" {
				rec.StartDate = m[1]
				rec.EndDate = m[2]
			}
			continue
		}

		if m := gradeRe.FindStringSubmatch(line); m != nil {
			rec := ensure()
			if rec.Grade == "" {
				rec.Grade = m[1]
			}
			continue
		}

		if cur != nil && cur.Field == "" {
			if field := matchFieldOfStudy(line); field != "" {
				cur.Field = field
			}
		}
	}
	emit()

	return records
}

// matchDegree returns the first degree keyword found in a line as a
// standalone token, or "".
func matchDegree(line string) string {
	for _, kw := range degreeKeywords {
		if matchesKeyword(line, kw) {
			return kw
		}
	}
	return ""
}

// isInstitutionLine reports whether a line names an institution
func isInstitutionLine(line string) bool {
	for _, kw := range institutionKeywords {
		if matchesKeyword(line, kw) {
			return true
		}
	}
	return false
}

// matchFieldOfStudy returns the first recognized field-of-study label in
// a line, or "".
func matchFieldOfStudy(line string) string {
	lower := strings.ToLower(line)
	for _, field := range fieldsOfStudy {
		if strings.Contains(lower, strings.ToLower(field)) {
			return field
		}
	}
	return ""
}

// matchesKeyword does a case-insensitive word-boundary match of keyword
// within line, tolerating the dots in forms like "B.Tech".
func matchesKeyword(line, keyword string) bool {
	lower := strings.ToLower(line)
	kw := strings.ToLower(keyword)

	idx := strings.Index(lower, kw)
	for idx >= 0 {
		beforeOK := idx == 0 || !isWordChar(lower[idx-1])
		after := idx + len(kw)
		afterOK := after >= len(lower) || !isWordChar(lower[after])
		if beforeOK && afterOK {
			return true
		}
		next := strings.Index(lower[idx+1:], kw)
		if next < 0 {
			return false
		}
		idx = idx + 1 + next
	}
	return false
}

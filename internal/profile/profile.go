// Package profile owns the canonical profile record: construction, the
// merge of extraction results into it, and the session guard that keeps
// concurrent parses from clobbering newer data with older results.
package profile

import (
	"github.com/google/uuid"

	"github.com/mkarlsen/resume-profiler/internal/types"
)

// New returns an all-empty canonical profile. Every list is non-nil so
// callers can range and append without nil checks.
func New() *types.Profile {
	return &types.Profile{
		Skills:       []string{},
		Experience:   []types.Experience{},
		Education:    []types.Education{},
		Projects:     []types.Project{},
		Achievements: []types.Achievement{},
	}
}

// Merge folds a sparse extraction result into an existing profile and
// returns the merged copy. The input profile is not mutated.
//
// Merge is explicit per field: a non-empty scalar in the partial
// overwrites the existing value, an empty one preserves it. A non-empty
// list replaces the existing list wholesale; an empty list never blanks
// one. List items are assigned fresh identifiers here; this is the only
// place identifiers are allocated.
func Merge(existing *types.Profile, partial *types.PartialProfile) *types.Profile {
	merged := clone(existing)

	setScalar(&merged.BasicInfo.Name, partial.Name)
	setScalar(&merged.BasicInfo.Title, partial.Title)
	setScalar(&merged.BasicInfo.Bio, partial.Bio)
	setScalar(&merged.BasicInfo.Email, partial.Email)
	setScalar(&merged.BasicInfo.Phone, partial.Phone)
	setScalar(&merged.BasicInfo.Location, partial.Location)

	if len(partial.Skills) > 0 {
		merged.Skills = append([]string{}, partial.Skills...)
	}
	if len(partial.Experience) > 0 {
		merged.Experience = withExperienceIDs(partial.Experience)
	}
	if len(partial.Education) > 0 {
		merged.Education = withEducationIDs(partial.Education)
	}
	if len(partial.Projects) > 0 {
		merged.Projects = withProjectIDs(partial.Projects)
	}
	if len(partial.Achievements) > 0 {
		merged.Achievements = withAchievementIDs(partial.Achievements)
	}

	return merged
}

func setScalar(dst *string, src string) {
	if src != "" {
		*dst = src
	}
}

func withExperienceIDs(items []types.Experience) []types.Experience {
	out := make([]types.Experience, len(items))
	for i, item := range items {
		if item.ID == "" {
			item.ID = uuid.New().String()
		}
		item.Technologies = append([]string{}, item.Technologies...)
		out[i] = item
	}
	return out
}

func withEducationIDs(items []types.Education) []types.Education {
	out := make([]types.Education, len(items))
	for i, item := range items {
		if item.ID == "" {
			item.ID = uuid.New().String()
		}
		out[i] = item
	}
	return out
}

func withProjectIDs(items []types.Project) []types.Project {
	out := make([]types.Project, len(items))
	for i, item := range items {
		if item.ID == "" {
			item.ID = uuid.New().String()
		}
		item.Technologies = append([]string{}, item.Technologies...)
		out[i] = item
	}
	return out
}

func withAchievementIDs(items []types.Achievement) []types.Achievement {
	out := make([]types.Achievement, len(items))
	for i, item := range items {
		if item.ID == "" {
			item.ID = uuid.New().String()
		}
		out[i] = item
	}
	return out
}

func clone(p *types.Profile) *types.Profile {
	c := *p
	c.Skills = append([]string{}, p.Skills...)
	c.Experience = append([]types.Experience{}, p.Experience...)
	c.Education = append([]types.Education{}, p.Education...)
	c.Projects = append([]types.Project{}, p.Projects...)
	c.Achievements = append([]types.Achievement{}, p.Achievements...)
	return &c
}

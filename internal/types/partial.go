package types

// PartialProfile is a sparse, best-effort extraction result mirroring the
// canonical Profile shape. Scalar fields are empty strings when the
// extractor could not identify a value; list fields are empty slices, never
// nil after Normalize. Items never carry identifiers; those are allocated
// at merge time, not by the extractor.
type PartialProfile struct {
	Name         string        `json:"name,omitempty"`
	Title        string        `json:"title,omitempty"`
	Bio          string        `json:"bio,omitempty"`
	Email        string        `json:"email,omitempty"`
	Phone        string        `json:"phone,omitempty"`
	Location     string        `json:"location,omitempty"`
	Skills       []string      `json:"skills"`
	Experience   []Experience  `json:"experience"`
	Education    []Education   `json:"education"`
	Projects     []Project     `json:"projects"`
	Achievements []Achievement `json:"achievements"`
}

// Normalize ensures all list fields are non-nil so downstream consumers
// never have to distinguish a missing list from an empty one.
func (p *PartialProfile) Normalize() {
	if p.Skills == nil {
		p.Skills = []string{}
	}
	if p.Experience == nil {
		p.Experience = []Experience{}
	}
	if p.Education == nil {
		p.Education = []Education{}
	}
	if p.Projects == nil {
		p.Projects = []Project{}
	}
	if p.Achievements == nil {
		p.Achievements = []Achievement{}
	}
}

// IsEmpty reports whether the partial carries no extracted data at all
func (p *PartialProfile) IsEmpty() bool {
	return p.Name == "" && p.Title == "" && p.Bio == "" &&
		p.Email == "" && p.Phone == "" && p.Location == "" &&
		len(p.Skills) == 0 && len(p.Experience) == 0 &&
		len(p.Education) == 0 && len(p.Projects) == 0 &&
		len(p.Achievements) == 0
}

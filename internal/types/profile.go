// Package types provides type definitions for structured profile data used throughout the resume-profiler system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Profile is the canonical, form-editable profile record. Every collection
// is guaranteed non-nil and every list item carries a stable identifier so
// callers can key and mutate individual rows.
type Profile struct {
	BasicInfo    BasicInfo     `json:"basic_info"`
	Skills       []string      `json:"skills"`
	Experience   []Experience  `json:"experience"`
	Education    []Education   `json:"education"`
	Projects     []Project     `json:"projects"`
	Achievements []Achievement `json:"achievements"`
}

// BasicInfo holds the scalar contact and summary fields of a profile
type BasicInfo struct {
	Name        string `json:"name"`
	Title       string `json:"title,omitempty"`
	Bio         string `json:"bio,omitempty"`
	Email       string `json:"email" validate:"omitempty,email"`
	Phone       string `json:"phone,omitempty"`
	Location    string `json:"location,omitempty"`
	DesiredRole string `json:"desired_role,omitempty"`
}

// Experience represents a single work experience entry
type Experience struct {
	ID           string   `json:"id"`
	Company      string   `json:"company"`
	Role         string   `json:"role"`
	StartDate    string   `json:"start_date,omitempty"` // YYYY-MM or YYYY
	EndDate      string   `json:"end_date,omitempty"`   // YYYY-MM, YYYY, or "Present"
	Current      bool     `json:"current,omitempty"`
	Location     string   `json:"location,omitempty"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
}

// Education represents a single education entry
type Education struct {
	ID          string `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	Grade       string `json:"grade,omitempty"`
}

// Project represents a personal or professional project entry
type Project struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	RepoURL      string   `json:"repo_url,omitempty"`
	DemoURL      string   `json:"demo_url,omitempty"`
}

// Achievement represents an award, recognition, or other notable result
type Achievement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date,omitempty"`
}

// EndDatePresent is the sentinel end date for an ongoing experience.
// Current=true on an Experience implies EndDate == EndDatePresent.
const EndDatePresent = "Present"

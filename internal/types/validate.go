package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is shared across calls; the validator caches struct metadata.
var validate = validator.New()

// ValidateProfile checks a canonical profile before persistence: the email
// must be well-formed when present, and every list item must carry an ID.
func ValidateProfile(p *Profile) error {
	if p == nil {
		return fmt.Errorf("profile is nil")
	}

	if err := validate.Struct(p.BasicInfo); err != nil {
		return fmt.Errorf("invalid basic info: %w", err)
	}

	for i, exp := range p.Experience {
		if exp.ID == "" {
			return fmt.Errorf("experience[%d] is missing an id", i)
		}
		if exp.Current && exp.EndDate != EndDatePresent {
			return fmt.Errorf("experience[%d] is current but end date is %q", i, exp.EndDate)
		}
	}
	for i, edu := range p.Education {
		if edu.ID == "" {
			return fmt.Errorf("education[%d] is missing an id", i)
		}
	}
	for i, proj := range p.Projects {
		if proj.ID == "" {
			return fmt.Errorf("projects[%d] is missing an id", i)
		}
	}
	for i, ach := range p.Achievements {
		if ach.ID == "" {
			return fmt.Errorf("achievements[%d] is missing an id", i)
		}
	}

	return nil
}

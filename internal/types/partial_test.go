package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartialProfileNormalize(t *testing.T) {
	p := &PartialProfile{}
	p.Normalize()

	assert.NotNil(t, p.Skills, "skills should be non-nil after normalize")
	assert.NotNil(t, p.Experience, "experience should be non-nil after normalize")
	assert.NotNil(t, p.Education, "education should be non-nil after normalize")
	assert.NotNil(t, p.Projects, "projects should be non-nil after normalize")
	assert.NotNil(t, p.Achievements, "achievements should be non-nil after normalize")
}

func TestPartialProfileNormalizePreservesData(t *testing.T) {
	p := &PartialProfile{
		Skills:     []string{"Go"},
		Experience: []Experience{{Company: "Acme"}},
	}
	p.Normalize()

	assert.Equal(t, []string{"Go"}, p.Skills)
	assert.Len(t, p.Experience, 1)
	assert.Empty(t, p.Education)
}

func TestPartialProfileIsEmpty(t *testing.T) {
	tests := []struct {
		name     string
		partial  PartialProfile
		expected bool
	}{
		{"zero value", PartialProfile{}, true},
		{"normalized empty", func() PartialProfile {
			p := PartialProfile{}
			p.Normalize()
			return p
		}(), true},
		{"has email", PartialProfile{Email: "a@b.com"}, false},
		{"has skills", PartialProfile{Skills: []string{"Go"}}, false},
		{"has education", PartialProfile{Education: []Education{{Degree: "B.Tech"}}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.partial.IsEmpty())
		})
	}
}

func TestTemplateTypeValid(t *testing.T) {
	for _, tt := range AllTemplateTypes {
		assert.True(t, tt.Valid(), "built-in type %s should be valid", tt)
	}
	assert.False(t, TemplateType("newsletter").Valid())
	assert.False(t, TemplateType("").Valid())
}

package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkarlsen/resume-profiler/internal/types"
)

func TestNew(t *testing.T) {
	p := New()

	assert.NotNil(t, p.Skills)
	assert.NotNil(t, p.Experience)
	assert.NotNil(t, p.Education)
	assert.NotNil(t, p.Projects)
	assert.NotNil(t, p.Achievements)
	assert.Equal(t, types.BasicInfo{}, p.BasicInfo)
}

func TestMerge(t *testing.T) {
	t.Run("non-empty scalars overwrite", func(t *testing.T) {
		existing := New()
		existing.BasicInfo.Name = "Old Name"
		existing.BasicInfo.Email = "old@example.com"

		merged := Merge(existing, &types.PartialProfile{Name: "New Name"})

		assert.Equal(t, "New Name", merged.BasicInfo.Name)
		assert.Equal(t, "old@example.com", merged.BasicInfo.Email)
	})

	t.Run("empty partial changes nothing", func(t *testing.T) {
		existing := New()
		existing.BasicInfo.Name = "Keep Me"
		existing.Skills = []string{"Go"}

		merged := Merge(existing, &types.PartialProfile{})

		assert.Equal(t, "Keep Me", merged.BasicInfo.Name)
		assert.Equal(t, []string{"Go"}, merged.Skills)
	})

	t.Run("non-empty list replaces wholesale", func(t *testing.T) {
		existing := New()
		existing.Skills = []string{"Go", "Rust"}

		merged := Merge(existing, &types.PartialProfile{Skills: []string{"Python"}})

		assert.Equal(t, []string{"Python"}, merged.Skills)
	})

	t.Run("empty list never blanks an existing one", func(t *testing.T) {
		existing := New()
		existing.Skills = []string{"Go"}
		existing.Experience = []types.Experience{{ID: "e1", Company: "Acme"}}

		merged := Merge(existing, &types.PartialProfile{Skills: []string{}})

		assert.Equal(t, []string{"Go"}, merged.Skills)
		assert.Len(t, merged.Experience, 1)
	})

	t.Run("list items receive unique identifiers", func(t *testing.T) {
		partial := &types.PartialProfile{
			Experience: []types.Experience{
				{Company: "Acme", Role: "Engineer"},
				{Company: "Initech", Role: "Intern"},
			},
			Education: []types.Education{{Institution: "XYZ University"}},
		}

		merged := Merge(New(), partial)

		require.Len(t, merged.Experience, 2)
		assert.NotEmpty(t, merged.Experience[0].ID)
		assert.NotEmpty(t, merged.Experience[1].ID)
		assert.NotEqual(t, merged.Experience[0].ID, merged.Experience[1].ID)
		require.Len(t, merged.Education, 1)
		assert.NotEmpty(t, merged.Education[0].ID)
	})

	t.Run("pre-assigned identifiers are preserved", func(t *testing.T) {
		partial := &types.PartialProfile{
			Projects: []types.Project{{ID: "p1", Name: "Tracker"}},
		}

		merged := Merge(New(), partial)

		require.Len(t, merged.Projects, 1)
		assert.Equal(t, "p1", merged.Projects[0].ID)
	})

	t.Run("input profile is not mutated", func(t *testing.T) {
		existing := New()
		existing.BasicInfo.Name = "Original"
		existing.Skills = []string{"Go"}

		Merge(existing, &types.PartialProfile{
			Name:   "Changed",
			Skills: []string{"Python"},
		})

		assert.Equal(t, "Original", existing.BasicInfo.Name)
		assert.Equal(t, []string{"Go"}, existing.Skills)
	})

	t.Run("merging the same partial twice is idempotent", func(t *testing.T) {
		partial := &types.PartialProfile{
			Name:   "Jane Doe",
			Skills: []string{"Go", "Docker"},
			Experience: []types.Experience{
				{Company: "Acme", Role: "Engineer"},
			},
		}

		once := Merge(New(), partial)
		twice := Merge(once, partial)

		assert.Equal(t, once.BasicInfo, twice.BasicInfo)
		assert.Equal(t, once.Skills, twice.Skills)
		require.Len(t, twice.Experience, 1)
		assert.Equal(t, once.Experience[0].Company, twice.Experience[0].Company)
		assert.Equal(t, once.Experience[0].Role, twice.Experience[0].Role)
	})
}

func TestSession(t *testing.T) {
	t.Run("latest generation wins regardless of completion order", func(t *testing.T) {
		s := NewSession()

		first := s.Begin()
		second := s.Begin()

		applied := s.Apply(second, &types.PartialProfile{Name: "Newer Upload"})
		assert.True(t, applied)

		applied = s.Apply(first, &types.PartialProfile{Name: "Older Upload"})
		assert.False(t, applied)

		assert.Equal(t, "Newer Upload", s.Profile().BasicInfo.Name)
	})

	t.Run("sequential attempts all apply", func(t *testing.T) {
		s := NewSession()

		gen := s.Begin()
		assert.True(t, s.Apply(gen, &types.PartialProfile{Name: "First"}))

		gen = s.Begin()
		assert.True(t, s.Apply(gen, &types.PartialProfile{Email: "second@example.com"}))

		p := s.Profile()
		assert.Equal(t, "First", p.BasicInfo.Name)
		assert.Equal(t, "second@example.com", p.BasicInfo.Email)
	})

	t.Run("reset invalidates in-flight attempts", func(t *testing.T) {
		s := NewSession()

		gen := s.Begin()
		s.Reset()

		assert.False(t, s.Apply(gen, &types.PartialProfile{Name: "Stale"}))
		assert.Empty(t, s.Profile().BasicInfo.Name)
	})
}

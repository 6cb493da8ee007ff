package heuristic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitSections(t *testing.T) {
	t.Run("recognizes headers with variant labels", func(t *testing.T) {
		text := "John Smith\n" +
			"WORK EXPERIENCE\n" +
			"Engineer at Acme\n" +
			"Technical Skills:\n" +
			"Go, Python\n" +
			"Academics\n" +
			"XYZ University"

		sections := SplitSections(text)

		assert.Equal(t, "John Smith", sections.Preamble)
		assert.Equal(t, "Engineer at Acme", sections.Experience)
		assert.Equal(t, "Go, Python", sections.Skills)
		assert.Equal(t, "XYZ University", sections.Education)
		assert.Empty(t, sections.Projects)
		assert.Empty(t, sections.Achievements)
	})

	t.Run("header labels must stand alone", func(t *testing.T) {
		text := "10 years of experience building backends\nand shipping projects on time"

		sections := SplitSections(text)

		assert.Equal(t, text, sections.Preamble)
		assert.Empty(t, sections.Experience)
		assert.Empty(t, sections.Projects)
	})

	t.Run("no headers leaves everything in the preamble", func(t *testing.T) {
		sections := SplitSections("free form resume text")

		assert.Equal(t, "free form resume text", sections.Preamble)
		assert.Empty(t, sections.Experience)
		assert.Empty(t, sections.Education)
		assert.Empty(t, sections.Skills)
	})

	t.Run("later section of same kind overwrites earlier", func(t *testing.T) {
		text := "PROJECTS\nFirst block\nEXPERIENCE\nwork\nPERSONAL PROJECTS\nSecond block"

		sections := SplitSections(text)

		assert.Equal(t, "Second block", sections.Projects)
		assert.Equal(t, "work", sections.Experience)
	})
}

package heuristic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEducation(t *testing.T) {
	t.Run("degree line with field and institution", func(t *testing.T) {
		section := "B.Tech Computer Science\nXYZ University\n2016 - 2020"

		records := parseEducation(section)
		require.Len(t, records, 1)

		rec := records[0]
		assert.Equal(t, "B.Tech", rec.Degree)
		assert.Equal(t, "Computer Science", rec.Field)
		assert.Equal(t, "XYZ University", rec.Institution)
		assert.Equal(t, "2016", rec.StartDate)
		assert.Equal(t, "2020", rec.EndDate)
	})

	t.Run("field defaults to degree when none recognized", func(t *testing.T) {
		records := parseEducation("Diploma\nTechnical College of Trades")
		require.Len(t, records, 1)

		assert.Equal(t, "Diploma", records[0].Degree)
		assert.Equal(t, "Diploma", records[0].Field)
		assert.Equal(t, "Technical College of Trades", records[0].Institution)
	})

	t.Run("grade marker fills the grade field", func(t *testing.T) {
		records := parseEducation("Master of Science Data Science\nABC University\nCGPA: 8.5/10")
		require.Len(t, records, 1)

		assert.Equal(t, "Master of Science", records[0].Degree)
		assert.Equal(t, "Data Science", records[0].Field)
		assert.Equal(t, "8.5/10", records[0].Grade)
	})

	t.Run("second degree starts a new record", func(t *testing.T) {
		section := "M.Sc Physics\nState University\n2020 - 2022\n" +
			"BSc Physics\nCity College\n2016 - 2020"

		records := parseEducation(section)
		require.Len(t, records, 2)

		assert.Equal(t, "M.Sc", records[0].Degree)
		assert.Equal(t, "State University", records[0].Institution)
		assert.Equal(t, "BSc", records[1].Degree)
		assert.Equal(t, "City College", records[1].Institution)
		assert.Equal(t, "2016", records[1].StartDate)
	})

	t.Run("degree keyword must be a standalone token", func(t *testing.T) {
		assert.Nil(t, parseEducation("Embassy programs and scholarships"))
	})

	t.Run("empty section", func(t *testing.T) {
		assert.Nil(t, parseEducation(""))
	})
}

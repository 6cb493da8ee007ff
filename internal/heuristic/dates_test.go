package heuristic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDateRange(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected DateRange
		ok       bool
	}{
		{
			name:     "month year to present",
			input:    "Jan 2020 - Present",
			expected: DateRange{Start: "2020-01", End: "Present", Current: true},
			ok:       true,
		},
		{
			name:     "full month names",
			input:    "March 2021 to June 2023",
			expected: DateRange{Start: "2021-03", End: "2023-06"},
			ok:       true,
		},
		{
			name:     "bare years",
			input:    "2016 - 2020",
			expected: DateRange{Start: "2016", End: "2020"},
			ok:       true,
		},
		{
			name:     "en dash separator",
			input:    "Sep 2019 – Dec 2022",
			expected: DateRange{Start: "2019-09", End: "2022-12"},
			ok:       true,
		},
		{
			name:     "current keyword",
			input:    "Feb 2018 - Current",
			expected: DateRange{Start: "2018-02", End: "Present", Current: true},
			ok:       true,
		},
		{
			name:     "embedded in role line",
			input:    "Senior Engineer | Jul 2017 - Aug 2019",
			expected: DateRange{Start: "2017-07", End: "2019-08"},
			ok:       true,
		},
		{
			name:  "no range",
			input: "Software Engineer at Acme Corp",
			ok:    false,
		},
		{
			name:  "lone year is not a range",
			input: "Graduated 2020",
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, ok := ParseDateRange(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, r)
			}
		})
	}
}

func TestStripDateRange(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "range only leaves nothing",
			input:    "Jan 2020 - Present",
			expected: "",
		},
		{
			name:     "role survives with separators trimmed",
			input:    "Senior Engineer | Jul 2017 - Aug 2019",
			expected: "Senior Engineer",
		},
		{
			name:     "parenthesized range",
			input:    "Backend Developer (2016 - 2018)",
			expected: "Backend Developer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StripDateRange(tt.input))
		})
	}
}

func TestContainsDateRange(t *testing.T) {
	assert.True(t, ContainsDateRange("2016 - 2020"))
	assert.False(t, ContainsDateRange("no dates here"))
}

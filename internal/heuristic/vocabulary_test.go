package heuristic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchTechnologies(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "empty input",
			input:    "",
			expected: nil,
		},
		{
			name:     "no vocabulary entries",
			input:    "managed a team of five people",
			expected: nil,
		},
		{
			name:     "single match",
			input:    "built services in Python",
			expected: []string{"Python"},
		},
		{
			name:     "vocabulary order preserved",
			input:    "Docker, Go, and TypeScript projects",
			expected: []string{"TypeScript", "Go", "Docker"},
		},
		{
			name:     "case insensitive",
			input:    "experience with POSTGRESQL and redis",
			expected: []string{"PostgreSQL", "Redis"},
		},
		{
			name:     "Go does not match inside Google or Golang",
			input:    "worked at Google on Golang tooling",
			expected: nil,
		},
		{
			name:     "Go matches as a standalone word",
			input:    "rewrote the pipeline in Go for throughput",
			expected: []string{"Go"},
		},
		{
			name:     "symbol-suffixed entries match",
			input:    "C++ and C# backends on .NET",
			expected: []string{"C++", "C#", ".NET"},
		},
		{
			name:     "C# does not match bare C usage",
			input:    "wrote C bindings for the driver",
			expected: nil,
		},
		{
			name:     "dotted entry matches",
			input:    "Node.js API gateway",
			expected: []string{"Node.js"},
		},
		{
			name:     "slash entry matches",
			input:    "owned the CI/CD pipeline",
			expected: []string{"CI/CD"},
		},
		{
			name:     "Java does not match inside JavaScript",
			input:    "JavaScript frontend work",
			expected: []string{"JavaScript"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MatchTechnologies(tt.input))
		})
	}
}

package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"trims surrounding whitespace", "  John Smith  \n", "John Smith"},
		{"normalizes CRLF", "line one\r\nline two", "line one\nline two"},
		{"collapses internal spaces", "Software   Engineer    at  Acme", "Software Engineer at Acme"},
		{"preserves bullet markers", "• Built   APIs\n- Shipped  things", "• Built APIs\n- Shipped things"},
		{"collapses blank runs", "a\n\n\n\n\nb", "a\n\nb"},
		{"keeps single blank separator", "EXPERIENCE\n\nAcme Corp", "EXPERIENCE\n\nAcme Corp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanText(tt.input))
		})
	}
}

func TestIsBulletLine(t *testing.T) {
	assert.True(t, IsBulletLine("• Built APIs"))
	assert.True(t, IsBulletLine("  - Shipped the thing"))
	assert.True(t, IsBulletLine("* Did work"))
	assert.False(t, IsBulletLine("Jan 2020 - Present"))
	assert.False(t, IsBulletLine("Software Engineer"))
	assert.False(t, IsBulletLine(""))
}

func TestStripBullet(t *testing.T) {
	assert.Equal(t, "Built APIs", StripBullet("• Built APIs"))
	assert.Equal(t, "Shipped", StripBullet("- Shipped"))
	assert.Equal(t, "No marker here", StripBullet("No marker here"))
}

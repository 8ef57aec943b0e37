package normalize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApply(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "null bytes dropped",
			input:    "x\x00y",
			expected: "xy",
		},
		{
			name:     "tabs and newlines become spaces",
			input:    "x\t+\ny",
			expected: "x + y",
		},
		{
			name:     "control characters dropped",
			input:    "a\x01\x02b",
			expected: "ab",
		},
		{
			name:     "surrounding whitespace trimmed",
			input:    "  x + y  ",
			expected: "x + y",
		},
		{
			name:     "plain notation untouched",
			input:    `\frac{1}{2}`,
			expected: `\frac{1}{2}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Apply(tc.input))
		})
	}
}

func TestCheckCeilings(t *testing.T) {
	assert.NoError(t, Check("x + y"))
	assert.NoError(t, Check(strings.Repeat("{x}", MaxBraceDepth)))

	assert.Error(t, Check(strings.Repeat("a", MaxInputLength+1)))
	assert.Error(t, Check(strings.Repeat("{", MaxBraceDepth+1)))
}

func TestCheckToleratesUnbalancedClosers(t *testing.T) {
	assert.NoError(t, Check(strings.Repeat("}", 1000)))
}

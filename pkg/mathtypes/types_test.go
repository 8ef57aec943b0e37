package mathtypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAudienceLevelRoundTrip(t *testing.T) {
	levels := []AudienceLevel{
		AudienceElementary,
		AudienceMiddleSchool,
		AudienceHighSchool,
		AudienceUndergraduate,
		AudienceGraduate,
		AudienceResearch,
	}
	for _, level := range levels {
		assert.Equal(t, level, ParseAudienceLevel(level.String()))
	}
}

func TestParseAudienceLevelUnknownDefaults(t *testing.T) {
	assert.Equal(t, AudienceUndergraduate, ParseAudienceLevel("kindergarten"))
	assert.Equal(t, AudienceUndergraduate, ParseAudienceLevel(""))
}

func TestHasUnknownCommands(t *testing.T) {
	empty := ProcessedExpression{}
	assert.False(t, empty.HasUnknownCommands())

	withUnknown := ProcessedExpression{UnknownCommands: []string{`\foo`}}
	assert.True(t, withUnknown.HasUnknownCommands())
}

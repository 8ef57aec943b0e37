package rules

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"mathspeak/pkg/mathtypes"
)

func TestHandlerPriorityOrdering(t *testing.T) {
	// Both rules cover "abc"; the higher priority one must decide the output.
	h := NewHandler("test", []PatternRule{
		{
			Matcher:     regexp.MustCompile(`abc`),
			Replacement: Literal("low"),
			Priority:    1,
			Description: "low priority",
		},
		{
			Matcher:     regexp.MustCompile(`abc`),
			Replacement: Literal("high"),
			Priority:    2,
			Description: "high priority",
		},
	})

	assert.Equal(t, "high", h.Process("abc", Options{}))
}

func TestHandlerSpecificityTieBreak(t *testing.T) {
	// Equal priority: the matcher with the longer literal span wins even
	// though it is declared later.
	h := NewHandler("test", []PatternRule{
		{
			Matcher:     regexp.MustCompile(`a`),
			Replacement: Literal("short"),
			Priority:    5,
			Description: "short literal",
		},
		{
			Matcher:     regexp.MustCompile(`ab`),
			Replacement: Literal("long"),
			Priority:    5,
			Description: "long literal",
		},
	})

	assert.Equal(t, "long", h.Process("ab", Options{}))
}

func TestHandlerDeclarationOrderTieBreak(t *testing.T) {
	h := NewHandler("test", []PatternRule{
		{
			Matcher:     regexp.MustCompile(`xy`),
			Replacement: Literal("first"),
			Priority:    5,
			Description: "declared first",
		},
		{
			Matcher:     regexp.MustCompile(`xy`),
			Replacement: Literal("second"),
			Priority:    5,
			Description: "declared second",
		},
	})

	assert.Equal(t, "first", h.Process("xy", Options{}))
}

func TestHandlerSinglePassPerRule(t *testing.T) {
	// A rule whose output matches its own pattern must not loop: one global
	// pass only.
	h := NewHandler("test", []PatternRule{
		{
			Matcher:     regexp.MustCompile(`a`),
			Replacement: Literal("aa"),
			Priority:    1,
			Description: "self-feeding rule",
		},
	})

	assert.Equal(t, "aa", h.Process("a", Options{}))
}

func TestHandlerComputedPanicLeavesMatchUntouched(t *testing.T) {
	h := NewHandler("test", []PatternRule{
		{
			Matcher: regexp.MustCompile(`\b[a-z]\b`),
			Replacement: Computed(func(c []string, _ Options) string {
				if c[0] == "x" {
					panic("unexpected capture")
				}
				return "Q"
			}),
			Priority:    1,
			Description: "partially broken rule",
		},
	})

	// The broken match stays as-is, the healthy match is still rewritten.
	assert.Equal(t, "x Q", h.Process("x y", Options{}))
}

func TestHandlerReferentialTransparency(t *testing.T) {
	h := Arithmetic()
	opts := Options{Audience: mathtypes.AudienceUndergraduate, Context: mathtypes.ContextGeneral}

	first := h.Process(`\frac{1}{2} + 1`, opts)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, h.Process(`\frac{1}{2} + 1`, opts))
	}
}

func TestHandlerEmptyInput(t *testing.T) {
	assert.Equal(t, "", Arithmetic().Process("", Options{}))
}

func TestLiteralTemplateExpansion(t *testing.T) {
	h := NewHandler("test", []PatternRule{
		{
			Matcher:     regexp.MustCompile(`(\w+)=(\w+)`),
			Replacement: Literal("${1} gets ${2}"),
			Priority:    1,
			Description: "template expansion",
		},
	})

	assert.Equal(t, "a gets b", h.Process("a=b", Options{}))
}

func TestReplacementVariantTag(t *testing.T) {
	assert.False(t, Literal("x").IsComputed())
	assert.True(t, Computed(func([]string, Options) string { return "" }).IsComputed())
}

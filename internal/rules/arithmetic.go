package rules

import (
	"regexp"

	"mathspeak/pkg/mathtypes"
)

// Arithmetic builds the handler for fractions, basic operators, and
// relations. It is deliberately late in the precedence list: by the time its
// generic fraction rule runs, every derivative-shaped or otherwise special
// fraction has already been consumed by an earlier handler.
func Arithmetic() *Handler {
	return NewHandler(DomainArithmetic, []PatternRule{
		{
			// 2 \frac{1}{2} reads as a mixed number
			Matcher: regexp.MustCompile(`(\d+)\s+\\frac\{(\d{1,2})\}\{(\d{1,3})\}`),
			Replacement: Computed(func(c []string, _ Options) string {
				if spoken := SpokenFraction(c[2], c[3]); spoken != "" {
					return c[1] + " and " + spoken
				}
				return c[1] + " and " + c[2] + " over " + c[3]
			}),
			Priority:    100,
			Description: "mixed number",
		},
		{
			// Numeric fractions get their spoken names when one exists,
			// otherwise fall back to "over" phrasing.
			Matcher: regexp.MustCompile(`\\frac\{(\d{1,2})\}\{(\d{1,3})\}`),
			Replacement: Computed(func(c []string, _ Options) string {
				if spoken := SpokenFraction(c[1], c[2]); spoken != "" {
					return spoken
				}
				return c[1] + " over " + c[2]
			}),
			Priority:    95,
			Description: "named numeric fraction",
		},
		{
			Matcher:     regexp.MustCompile(`\\frac\{([^{}]*)\}\{([^{}]*)\}`),
			Replacement: Literal("${1} over ${2}"),
			Priority:    90,
			Description: "generic fraction",
		},
		{
			Matcher:     regexp.MustCompile(`\\pm\b`),
			Replacement: Literal("plus or minus"),
			Priority:    80,
			Description: "plus-minus",
		},
		{
			Matcher:     regexp.MustCompile(`\\mp\b`),
			Replacement: Literal("minus or plus"),
			Priority:    80,
			Description: "minus-plus",
		},
		{
			Matcher:     regexp.MustCompile(`\+`),
			Replacement: Literal(" plus "),
			Priority:    70,
			Description: "plus sign",
		},
		{
			// Unary minus at the start of an expression or after an opening
			// delimiter or relation.
			Matcher:     regexp.MustCompile(`(^|[(=,])\s*-\s*([0-9a-zA-Z\\])`),
			Replacement: Literal("${1} negative ${2}"),
			Priority:    68,
			Description: "unary minus",
		},
		{
			Matcher:     regexp.MustCompile(`([0-9a-zA-Z\)\}])\s*-\s*([0-9a-zA-Z\(\\])`),
			Replacement: Literal("${1} minus ${2}"),
			Priority:    66,
			Description: "binary minus",
		},
		{
			Matcher:     regexp.MustCompile(`\\div\b|÷`),
			Replacement: Literal(" divided by "),
			Priority:    64,
			Description: "division sign",
		},
		{
			Matcher:     regexp.MustCompile(`×`),
			Replacement: Literal(" times "),
			Priority:    64,
			Description: "unicode times sign",
		},
		{
			Matcher:     regexp.MustCompile(`\*`),
			Replacement: Literal(" times "),
			Priority:    63,
			Description: "asterisk",
		},
		{
			// Simple slash division between plain tokens. Derivative slashes
			// like d/dx were consumed by the calculus handler long before.
			Matcher: regexp.MustCompile(`([0-9a-zA-Z])\s*/\s*([0-9a-zA-Z])`),
			Replacement: Computed(func(c []string, opts Options) string {
				if opts.Audience <= mathtypes.AudienceMiddleSchool {
					return c[1] + " divided by " + c[2]
				}
				return c[1] + " over " + c[2]
			}),
			Priority:    62,
			Description: "slash division",
		},
		{
			Matcher:     regexp.MustCompile(`\\leq?\b`),
			Replacement: Literal("is less than or equal to"),
			Priority:    56,
			Description: "less than or equal",
		},
		{
			Matcher:     regexp.MustCompile(`\\geq?\b`),
			Replacement: Literal("is greater than or equal to"),
			Priority:    56,
			Description: "greater than or equal",
		},
		{
			Matcher:     regexp.MustCompile(`<`),
			Replacement: Literal(" is less than "),
			Priority:    54,
			Description: "less than",
		},
		{
			Matcher:     regexp.MustCompile(`>`),
			Replacement: Literal(" is greater than "),
			Priority:    54,
			Description: "greater than",
		},
		{
			// "2 + 2 is 4" in arithmetic context, "f of x equals y" elsewhere.
			Matcher: regexp.MustCompile(`=`),
			Replacement: Computed(func(_ []string, opts Options) string {
				if opts.Context == mathtypes.ContextArithmetic {
					return " is "
				}
				return " equals "
			}),
			Priority:    50,
			Description: "equals sign",
		},
		{
			Matcher:     regexp.MustCompile(`(\d)\s*\\?%`),
			Replacement: Literal("${1} percent"),
			Priority:    48,
			Description: "percent sign",
		},
	})
}

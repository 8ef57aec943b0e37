package rules

import (
	"regexp"

	"mathspeak/pkg/mathtypes"
)

// SetTheory builds the handler for set and logic notation. It runs before
// the arithmetic handler so relational commands like \neq are phrased here
// before the bare equals-sign rule fires.
func SetTheory() *Handler {
	return NewHandler(DomainSetTheory, []PatternRule{
		{
			// \{a \mid b\} set-builder with explicit mid
			Matcher:     regexp.MustCompile(`\\\{\s*([^{}]*?)\s*\\mid\s*([^{}]*?)\s*\\\}`),
			Replacement: Literal("the set of ${1} such that ${2}"),
			Priority:    100,
			Description: "set-builder notation",
		},
		{
			Matcher:     regexp.MustCompile(`\\\{\s*([^{}]*?)\s*:\s*([^{}]*?)\s*\\\}`),
			Replacement: Literal("the set of ${1} such that ${2}"),
			Priority:    98,
			Description: "colon set-builder notation",
		},
		{
			Matcher:     regexp.MustCompile(`\\\{\s*([^{}]*?)\s*\\\}`),
			Replacement: Literal("the set containing ${1}"),
			Priority:    96,
			Description: "set literal",
		},
		{
			Matcher:     regexp.MustCompile(`\\(?:emptyset|varnothing)\b`),
			Replacement: Literal("the empty set"),
			Priority:    90,
			Description: "empty set",
		},
		{
			Matcher:     regexp.MustCompile(`\\mathbb\{R\}`),
			Replacement: Literal("the real numbers"),
			Priority:    88,
			Description: "reals",
		},
		{
			Matcher:     regexp.MustCompile(`\\mathbb\{N\}`),
			Replacement: Literal("the natural numbers"),
			Priority:    88,
			Description: "naturals",
		},
		{
			Matcher:     regexp.MustCompile(`\\mathbb\{Z\}`),
			Replacement: Literal("the integers"),
			Priority:    88,
			Description: "integers",
		},
		{
			Matcher:     regexp.MustCompile(`\\mathbb\{Q\}`),
			Replacement: Literal("the rational numbers"),
			Priority:    88,
			Description: "rationals",
		},
		{
			Matcher:     regexp.MustCompile(`\\mathbb\{C\}`),
			Replacement: Literal("the complex numbers"),
			Priority:    88,
			Description: "complex numbers",
		},
		{
			Matcher:     regexp.MustCompile(`\\cup\b`),
			Replacement: Literal("union"),
			Priority:    80,
			Description: "union",
		},
		{
			Matcher:     regexp.MustCompile(`\\cap\b`),
			Replacement: Literal("intersect"),
			Priority:    80,
			Description: "intersection",
		},
		{
			Matcher:     regexp.MustCompile(`\\setminus\b`),
			Replacement: Literal("set minus"),
			Priority:    80,
			Description: "set difference",
		},
		{
			Matcher:     regexp.MustCompile(`\\notin\b`),
			Replacement: Literal("is not an element of"),
			Priority:    78,
			Description: "non-membership",
		},
		{
			Matcher:     regexp.MustCompile(`\\in\b`),
			Replacement: Literal("is an element of"),
			Priority:    76,
			Description: "membership",
		},
		{
			Matcher:     regexp.MustCompile(`\\subseteq\b`),
			Replacement: Literal("is a subset of or equal to"),
			Priority:    74,
			Description: "subset or equal",
		},
		{
			Matcher:     regexp.MustCompile(`\\subset\b`),
			Replacement: Literal("is a subset of"),
			Priority:    72,
			Description: "subset",
		},
		{
			Matcher:     regexp.MustCompile(`\\supseteq\b`),
			Replacement: Literal("is a superset of or equal to"),
			Priority:    74,
			Description: "superset or equal",
		},
		{
			Matcher:     regexp.MustCompile(`\\supset\b`),
			Replacement: Literal("is a superset of"),
			Priority:    72,
			Description: "superset",
		},
		{
			Matcher:     regexp.MustCompile(`([A-Z])\^\{?c\}?\b`),
			Replacement: Literal("${1} complement"),
			Priority:    70,
			Description: "set complement",
		},
		{
			Matcher:     regexp.MustCompile(`\\forall\b`),
			Replacement: Literal("for all"),
			Priority:    60,
			Description: "universal quantifier",
		},
		{
			Matcher:     regexp.MustCompile(`\\exists\b`),
			Replacement: Literal("there exists"),
			Priority:    60,
			Description: "existential quantifier",
		},
		{
			Matcher:     regexp.MustCompile(`\\neg\b`),
			Replacement: Literal("not"),
			Priority:    58,
			Description: "negation",
		},
		{
			Matcher:     regexp.MustCompile(`\\(?:land|wedge)\b`),
			Replacement: Literal("and"),
			Priority:    58,
			Description: "conjunction",
		},
		{
			Matcher:     regexp.MustCompile(`\\(?:lor|vee)\b`),
			Replacement: Literal("or"),
			Priority:    58,
			Description: "disjunction",
		},
		{
			Matcher:     regexp.MustCompile(`\\(?:implies|Rightarrow)\b`),
			Replacement: Literal("implies"),
			Priority:    56,
			Description: "implication",
		},
		{
			Matcher:     regexp.MustCompile(`\\(?:iff|Leftrightarrow)\b`),
			Replacement: Literal("if and only if"),
			Priority:    56,
			Description: "biconditional",
		},
		{
			Matcher:     regexp.MustCompile(`\\mid\b`),
			Replacement: Literal("such that"),
			Priority:    50,
			Description: "mid bar",
		},
		{
			Matcher: regexp.MustCompile(`\\equiv\b`),
			Replacement: Computed(func(_ []string, opts Options) string {
				if opts.Context == mathtypes.ContextDefinition {
					return "is defined as"
				}
				return "is equivalent to"
			}),
			Priority:    48,
			Description: "equivalence",
		},
		{
			Matcher:     regexp.MustCompile(`\\neq\b|\\ne\b`),
			Replacement: Literal("is not equal to"),
			Priority:    46,
			Description: "not equal",
		},
		{
			Matcher:     regexp.MustCompile(`\\approx\b`),
			Replacement: Literal("is approximately equal to"),
			Priority:    46,
			Description: "approximately equal",
		},
		{
			Matcher:     regexp.MustCompile(`\\cong\b`),
			Replacement: Literal("is congruent to"),
			Priority:    46,
			Description: "congruence",
		},
		{
			Matcher:     regexp.MustCompile(`\\propto\b`),
			Replacement: Literal("is proportional to"),
			Priority:    46,
			Description: "proportionality",
		},
	})
}

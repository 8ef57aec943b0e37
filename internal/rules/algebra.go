package rules

import (
	"regexp"

	"mathspeak/pkg/mathtypes"
)

var rootNames = map[string]string{
	"2": "square", "3": "cube", "4": "fourth", "5": "fifth",
	"6": "sixth", "7": "seventh", "8": "eighth", "9": "ninth",
}

// trigNames maps command names to spoken operator names.
var trigNames = map[string]string{
	"sin": "sine", "cos": "cosine", "tan": "tangent",
	"sec": "secant", "csc": "cosecant", "cot": "cotangent",
	"sinh": "hyperbolic sine", "cosh": "hyperbolic cosine", "tanh": "hyperbolic tangent",
	"arcsin": "inverse sine", "arccos": "inverse cosine", "arctan": "inverse tangent",
}

// Algebra builds the handler for roots, powers, subscripts, logarithms,
// trigonometric functions, absolute value, and function application. It runs
// after the calculus and linear-algebra handlers, so derivative fractions and
// transpose superscripts are already consumed by the time its power rules fire.
func Algebra() *Handler {
	return NewHandler(DomainAlgebra, []PatternRule{
		{
			Matcher: regexp.MustCompile(`\\sqrt\[(\d+)\]\{([^{}]+)\}`),
			Replacement: Computed(func(c []string, _ Options) string {
				if name, ok := rootNames[c[1]]; ok {
					return "the " + name + " root of " + c[2]
				}
				return "the " + c[1] + "th root of " + c[2]
			}),
			Priority:    100,
			Description: "nth root",
		},
		{
			Matcher:     regexp.MustCompile(`\\sqrt\{([^{}]+)\}`),
			Replacement: Literal("the square root of ${1}"),
			Priority:    98,
			Description: "square root",
		},
		{
			Matcher:     regexp.MustCompile(`\\sqrt\s*([0-9a-zA-Z])`),
			Replacement: Literal("the square root of ${1}"),
			Priority:    96,
			Description: "braceless square root",
		},
		{
			Matcher:     regexp.MustCompile(`\^\{?\\circ\}?`),
			Replacement: Literal(" degrees"),
			Priority:    94,
			Description: "degree superscript",
		},
		{
			// \sin(x), \cos(2x), ... with an explicit argument
			Matcher: regexp.MustCompile(`\\(arcsin|arccos|arctan|sinh|cosh|tanh|sin|cos|tan|sec|csc|cot)\s*\(([^()]+)\)`),
			Replacement: Computed(func(c []string, _ Options) string {
				return "the " + trigNames[c[1]] + " of " + c[2]
			}),
			Priority:    92,
			Description: "trig function with argument",
		},
		{
			Matcher: regexp.MustCompile(`\\(arcsin|arccos|arctan|sinh|cosh|tanh|sin|cos|tan|sec|csc|cot)\b\s*`),
			Replacement: Computed(func(c []string, _ Options) string {
				return "the " + trigNames[c[1]] + " of "
			}),
			Priority:    90,
			Description: "bare trig function",
		},
		{
			Matcher:     regexp.MustCompile(`\\log_\{([^{}]+)\}\s*`),
			Replacement: Literal("log base ${1} of "),
			Priority:    88,
			Description: "log with braced base",
		},
		{
			Matcher:     regexp.MustCompile(`\\log_([0-9a-zA-Z])\s*`),
			Replacement: Literal("log base ${1} of "),
			Priority:    87,
			Description: "log with base",
		},
		{
			Matcher:     regexp.MustCompile(`\\ln\b\s*`),
			Replacement: Literal("the natural log of "),
			Priority:    86,
			Description: "natural log",
		},
		{
			Matcher:     regexp.MustCompile(`\\log\b\s*`),
			Replacement: Literal("the log of "),
			Priority:    85,
			Description: "common log",
		},
		{
			Matcher:     regexp.MustCompile(`\\exp\b\s*`),
			Replacement: Literal("the exponential of "),
			Priority:    84,
			Description: "exponential",
		},
		{
			Matcher:     regexp.MustCompile(`([0-9a-zA-Z\)\}])\^2\b`),
			Replacement: Literal("${1} squared"),
			Priority:    80,
			Description: "squared",
		},
		{
			Matcher:     regexp.MustCompile(`([0-9a-zA-Z\)\}])\^\{2\}`),
			Replacement: Literal("${1} squared"),
			Priority:    80,
			Description: "braced squared",
		},
		{
			Matcher:     regexp.MustCompile(`([0-9a-zA-Z\)\}])\^3\b`),
			Replacement: Literal("${1} cubed"),
			Priority:    79,
			Description: "cubed",
		},
		{
			Matcher:     regexp.MustCompile(`([0-9a-zA-Z\)\}])\^\{3\}`),
			Replacement: Literal("${1} cubed"),
			Priority:    79,
			Description: "braced cubed",
		},
		{
			Matcher:     regexp.MustCompile(`\^\{([^{}]+)\}`),
			Replacement: Computed(powerPhrase),
			Priority:    76,
			Description: "braced power",
		},
		{
			Matcher:     regexp.MustCompile(`\^([0-9a-zA-Z])`),
			Replacement: Computed(powerPhrase),
			Priority:    75,
			Description: "single-character power",
		},
		{
			Matcher:     regexp.MustCompile(`_\{([^{}]+)\}`),
			Replacement: Literal(" sub ${1}"),
			Priority:    70,
			Description: "braced subscript",
		},
		{
			Matcher:     regexp.MustCompile(`_([0-9a-zA-Z])`),
			Replacement: Literal(" sub ${1}"),
			Priority:    69,
			Description: "single-character subscript",
		},
		{
			Matcher:     regexp.MustCompile(`\|([^|]+)\|`),
			Replacement: Literal("the absolute value of ${1}"),
			Priority:    60,
			Description: "absolute value bars",
		},
		{
			Matcher:     regexp.MustCompile(`\\lfloor\s*([^{}]+?)\s*\\rfloor`),
			Replacement: Literal("the floor of ${1}"),
			Priority:    58,
			Description: "floor brackets",
		},
		{
			Matcher:     regexp.MustCompile(`\\lceil\s*([^{}]+?)\s*\\rceil`),
			Replacement: Literal("the ceiling of ${1}"),
			Priority:    58,
			Description: "ceiling brackets",
		},
		{
			// f(x), g(x, y): single-letter function names only, so ordinary
			// parenthesized grouping like (a + b) is left alone.
			Matcher:     regexp.MustCompile(`\b([a-zA-Z])\(([0-9a-zA-Z, +\-]*)\)`),
			Replacement: Literal("${1} of ${2}"),
			Priority:    50,
			Description: "function application",
		},
	})
}

// powerPhrase words a generic exponent. Research and graduate audiences get
// the terse reading mathematicians actually use.
func powerPhrase(c []string, opts Options) string {
	if opts.Audience >= mathtypes.AudienceGraduate {
		return " to the " + c[1]
	}
	return " to the power of " + c[1]
}

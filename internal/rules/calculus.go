package rules

import (
	"regexp"
	"strings"

	"mathspeak/pkg/mathtypes"
)

// Calculus builds the handler for derivative, integral, limit, and series
// notation. It must run before the arithmetic handler in the engine's
// precedence list: every derivative-shaped fraction is consumed here so the
// generic "X over Y" fraction rule can never touch it.
func Calculus() *Handler {
	return NewHandler(DomainCalculus, []PatternRule{
		{
			// \frac{\partial^2 f}{\partial x \partial y}
			Matcher: regexp.MustCompile(`\\frac\{\\partial\^\{?2\}?\s*([a-zA-Z]?)\}\{\\partial\s*([a-zA-Z])\s*\\partial\s*([a-zA-Z])\}`),
			Replacement: Computed(func(c []string, _ Options) string {
				if c[1] == "" {
					return "the second partial derivative with respect to " + c[2] + " and " + c[3] + " of"
				}
				return "the second partial derivative of " + c[1] + " with respect to " + c[2] + " and " + c[3]
			}),
			Priority:    100,
			Description: "mixed second partial derivative",
		},
		{
			// \frac{\partial^2 f}{\partial x^2}
			Matcher: regexp.MustCompile(`\\frac\{\\partial\^\{?2\}?\s*([a-zA-Z]?)\}\{\\partial\s*([a-zA-Z])\^\{?2\}?\}`),
			Replacement: Computed(func(c []string, _ Options) string {
				if c[1] == "" {
					return "the second partial derivative with respect to " + c[2] + " of"
				}
				return "the second partial derivative of " + c[1] + " with respect to " + c[2]
			}),
			Priority:    95,
			Description: "second partial derivative",
		},
		{
			// \frac{\partial f}{\partial x}
			Matcher:     regexp.MustCompile(`\\frac\{\\partial\s*([a-zA-Z])\}\{\\partial\s*([a-zA-Z])\}`),
			Replacement: Literal("the partial derivative of ${1} with respect to ${2}"),
			Priority:    90,
			Description: "partial derivative of a function",
		},
		{
			// \frac{\partial}{\partial x} as an operator
			Matcher:     regexp.MustCompile(`\\frac\{\\partial\}\{\\partial\s*([a-zA-Z])\}`),
			Replacement: Literal("the partial derivative with respect to ${1} of"),
			Priority:    88,
			Description: "partial derivative operator",
		},
		{
			// \frac{d^n f}{dx^n}
			Matcher: regexp.MustCompile(`\\frac\{d\^\{?(\d+)\}?\s*([a-zA-Z]?)\}\{d\s*([a-zA-Z])\^\{?\d+\}?\}`),
			Replacement: Computed(func(c []string, _ Options) string {
				order := derivativeOrder(c[1])
				if c[2] == "" {
					return "the " + order + " derivative with respect to " + c[3] + " of"
				}
				return "the " + order + " derivative of " + c[2] + " with respect to " + c[3]
			}),
			Priority:    85,
			Description: "higher-order derivative",
		},
		{
			// \frac{df}{dx}
			Matcher:     regexp.MustCompile(`\\frac\{d\s*([a-zA-Z])\}\{d\s*([a-zA-Z])\}`),
			Replacement: Literal("the derivative of ${1} with respect to ${2}"),
			Priority:    80,
			Description: "derivative of a function",
		},
		{
			// \frac{d}{dx} as an operator
			Matcher:     regexp.MustCompile(`\\frac\{d\}\{d\s*([a-zA-Z])\}`),
			Replacement: Literal("the derivative with respect to ${1} of"),
			Priority:    78,
			Description: "derivative operator",
		},
		{
			// plain d/dx without braces
			Matcher:     regexp.MustCompile(`\bd/d([a-zA-Z])\b`),
			Replacement: Literal("the derivative with respect to ${1} of"),
			Priority:    76,
			Description: "slash derivative operator",
		},
		{
			Matcher:     regexp.MustCompile(`([a-zA-Z])'''`),
			Replacement: Literal("${1} triple prime"),
			Priority:    74,
			Description: "triple prime",
		},
		{
			Matcher:     regexp.MustCompile(`([a-zA-Z])''`),
			Replacement: Literal("${1} double prime"),
			Priority:    73,
			Description: "double prime",
		},
		{
			Matcher:     regexp.MustCompile(`([a-zA-Z])'`),
			Replacement: Literal("${1} prime"),
			Priority:    72,
			Description: "prime",
		},
		{
			// \iint over a region
			Matcher:     regexp.MustCompile(`\\iint(?:_\{?([^{}\s^]+)\}?)?`),
			Replacement: Computed(func(c []string, _ Options) string {
				if c[1] == "" {
					return "the double integral of"
				}
				return "the double integral over " + c[1] + " of"
			}),
			Priority:    68,
			Description: "double integral",
		},
		{
			Matcher:     regexp.MustCompile(`\\oint`),
			Replacement: Literal("the contour integral of"),
			Priority:    67,
			Description: "contour integral",
		},
		{
			// \int_{a}^{b}
			Matcher:     regexp.MustCompile(`\\int_\{?([^{}\s^]+)\}?\^\{?([^{}\s]+)\}?`),
			Replacement: Literal("the integral from ${1} to ${2} of"),
			Priority:    66,
			Description: "definite integral",
		},
		{
			Matcher:     regexp.MustCompile(`\\int`),
			Replacement: Literal("the integral of"),
			Priority:    64,
			Description: "indefinite integral",
		},
		{
			// \lim_{x \to a}
			Matcher:     regexp.MustCompile(`\\lim_\{\s*([a-zA-Z])\s*\\to\s*([^{}]+?)\s*\}`),
			Replacement: Literal("the limit as ${1} approaches ${2} of"),
			Priority:    62,
			Description: "limit with bound",
		},
		{
			Matcher:     regexp.MustCompile(`\\lim\b`),
			Replacement: Literal("the limit of"),
			Priority:    60,
			Description: "bare limit",
		},
		{
			// \sum_{i=1}^{n}
			Matcher:     regexp.MustCompile(`\\sum_\{\s*([^{}=]+?)\s*=\s*([^{}]+?)\s*\}\^\{?([^{}\s]+)\}?`),
			Replacement: Literal("the sum from ${1} equals ${2} to ${3} of"),
			Priority:    58,
			Description: "bounded sum",
		},
		{
			Matcher:     regexp.MustCompile(`\\sum\b`),
			Replacement: Literal("the sum of"),
			Priority:    56,
			Description: "bare sum",
		},
		{
			Matcher:     regexp.MustCompile(`\\prod_\{\s*([^{}=]+?)\s*=\s*([^{}]+?)\s*\}\^\{?([^{}\s]+)\}?`),
			Replacement: Literal("the product from ${1} equals ${2} to ${3} of"),
			Priority:    54,
			Description: "bounded product",
		},
		{
			Matcher:     regexp.MustCompile(`\\prod\b`),
			Replacement: Literal("the product of"),
			Priority:    52,
			Description: "bare product",
		},
		{
			Matcher:     regexp.MustCompile(`\\nabla\s*\\cdot`),
			Replacement: Literal("the divergence of"),
			Priority:    50,
			Description: "divergence",
		},
		{
			Matcher:     regexp.MustCompile(`\\nabla\s*\\times`),
			Replacement: Literal("the curl of"),
			Priority:    49,
			Description: "curl",
		},
		{
			Matcher:     regexp.MustCompile(`\\nabla`),
			Replacement: Literal("the gradient of"),
			Priority:    48,
			Description: "gradient",
		},
		{
			// \to reads as convergence in analysis but as a mapping arrow in
			// definitions and set contexts.
			Matcher: regexp.MustCompile(`\\to\b`),
			Replacement: Computed(func(_ []string, opts Options) string {
				switch opts.Context {
				case mathtypes.ContextDefinition, mathtypes.ContextSetTheory:
					return "maps to"
				default:
					return "approaches"
				}
			}),
			Priority:    40,
			Description: "arrow",
		},
		{
			// Trailing differential after the integral rules have fired.
			Matcher:     regexp.MustCompile(`\bd([a-zA-Z])\b`),
			Replacement: Literal("with respect to ${1}"),
			Priority:    20,
			Description: "integration differential",
		},
	})
}

func derivativeOrder(digits string) string {
	switch strings.TrimSpace(digits) {
	case "2":
		return "second"
	case "3":
		return "third"
	case "4":
		return "fourth"
	case "5":
		return "fifth"
	default:
		return digits + "th"
	}
}

package rules

import "regexp"

// Domain tags. The engine's precedence list is built from these.
const (
	DomainCrossDomain   = "crossdomain"
	DomainCalculus      = "calculus"
	DomainLinearAlgebra = "linear_algebra"
	DomainProbability   = "probability"
	DomainSetTheory     = "set_theory"
	DomainAlgebra       = "algebra"
	DomainArithmetic    = "arithmetic"
	DomainSymbols       = "symbols"
)

// CrossDomain builds the domain-agnostic pre-pass handler. It strips layout
// and sizing commands that carry no spoken meaning and canonicalizes notation
// variants so the domain handlers only have to recognize one spelling.
func CrossDomain() *Handler {
	return NewHandler(DomainCrossDomain, []PatternRule{
		{
			Matcher:     regexp.MustCompile(`\$+`),
			Replacement: Literal(" "),
			Priority:    100,
			Description: "math-mode dollar delimiters",
		},
		{
			Matcher:     regexp.MustCompile(`\\left\s*`),
			Replacement: Literal(""),
			Priority:    90,
			Description: "left sizing command",
		},
		{
			Matcher:     regexp.MustCompile(`\\right\s*`),
			Replacement: Literal(""),
			Priority:    90,
			Description: "right sizing command",
		},
		{
			Matcher:     regexp.MustCompile(`\\[Bb]igg?[lr]?\s*`),
			Replacement: Literal(""),
			Priority:    90,
			Description: "big delimiter sizing commands",
		},
		{
			Matcher:     regexp.MustCompile(`\\displaystyle\s*`),
			Replacement: Literal(""),
			Priority:    90,
			Description: "displaystyle command",
		},
		{
			Matcher:     regexp.MustCompile(`\\(?:quad|qquad)\b`),
			Replacement: Literal(" "),
			Priority:    85,
			Description: "quad spacing commands",
		},
		{
			Matcher:     regexp.MustCompile(`\\[,;:!]`),
			Replacement: Literal(" "),
			Priority:    85,
			Description: "thin-space commands",
		},
		{
			Matcher:     regexp.MustCompile(`~`),
			Replacement: Literal(" "),
			Priority:    85,
			Description: "non-breaking space tie",
		},
		{
			Matcher:     regexp.MustCompile(`\\(?:text|textrm|mbox)\{([^{}]*)\}`),
			Replacement: Literal(" ${1} "),
			Priority:    80,
			Description: "embedded text blocks",
		},
		{
			Matcher:     regexp.MustCompile(`\\(?:mathrm|mathit|operatorname)\{([^{}]*)\}`),
			Replacement: Literal("${1}"),
			Priority:    80,
			Description: "upright and operator-name wrappers",
		},
		{
			// Canonical fraction spelling so every later rule only sees \frac.
			Matcher:     regexp.MustCompile(`\\[dt]frac\b`),
			Replacement: Literal(`\frac`),
			Priority:    75,
			Description: "dfrac and tfrac variants",
		},
		{
			// Canonical inequality spelling; also keeps the factorial rule
			// from eating the bang of "!=".
			Matcher:     regexp.MustCompile(`!=`),
			Replacement: Literal(`\neq`),
			Priority:    75,
			Description: "ASCII not-equal",
		},
		{
			Matcher:     regexp.MustCompile(`<=`),
			Replacement: Literal(`\leq`),
			Priority:    75,
			Description: "ASCII less-or-equal",
		},
		{
			Matcher:     regexp.MustCompile(`>=`),
			Replacement: Literal(`\geq`),
			Priority:    75,
			Description: "ASCII greater-or-equal",
		},
		{
			Matcher:     regexp.MustCompile(`->`),
			Replacement: Literal(`\to`),
			Priority:    75,
			Description: "ASCII arrow",
		},
	})
}

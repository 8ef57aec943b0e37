package rules

import "regexp"

// Probability builds the handler for probability and statistics notation.
// It runs before the algebra handler so P(A|B) is consumed as a conditional
// probability rather than as a generic function application.
func Probability() *Handler {
	return NewHandler(DomainProbability, []PatternRule{
		{
			Matcher:     regexp.MustCompile(`(?:\\Pr|P)\s*\(\s*([^()|]+?)\s*\|\s*([^()]+?)\s*\)`),
			Replacement: Literal("the probability of ${1} given ${2}"),
			Priority:    100,
			Description: "conditional probability",
		},
		{
			Matcher:     regexp.MustCompile(`(?:\\Pr|P)\s*\(\s*([^()]+?)\s*\)`),
			Replacement: Literal("the probability of ${1}"),
			Priority:    95,
			Description: "probability",
		},
		{
			Matcher:     regexp.MustCompile(`(?:\\mathbb\{E\}|E)\s*\[\s*([^\[\]]+?)\s*\]`),
			Replacement: Literal("the expected value of ${1}"),
			Priority:    90,
			Description: "expected value",
		},
		{
			Matcher:     regexp.MustCompile(`Var\s*\(\s*([^()]+?)\s*\)`),
			Replacement: Literal("the variance of ${1}"),
			Priority:    85,
			Description: "variance",
		},
		{
			Matcher:     regexp.MustCompile(`Cov\s*\(\s*([^(),]+?)\s*,\s*([^()]+?)\s*\)`),
			Replacement: Literal("the covariance of ${1} and ${2}"),
			Priority:    84,
			Description: "covariance",
		},
		{
			Matcher:     regexp.MustCompile(`\\binom\{([^{}]+)\}\{([^{}]+)\}`),
			Replacement: Literal("${1} choose ${2}"),
			Priority:    80,
			Description: "binomial coefficient",
		},
		{
			Matcher:     regexp.MustCompile(`\\sim\b`),
			Replacement: Literal("is distributed as"),
			Priority:    70,
			Description: "distribution tilde",
		},
		{
			Matcher:     regexp.MustCompile(`([0-9a-zA-Z\)])\s*!`),
			Replacement: Literal("${1} factorial"),
			Priority:    60,
			Description: "factorial",
		},
	})
}

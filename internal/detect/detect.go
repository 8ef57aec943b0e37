// Package detect classifies raw input into a phrasing context before any
// rewriting happens. The detector is an ordered list of indicator predicates;
// the first match wins and the default is the general context. Detection is a
// pure function of the input text and only ever steers phrasing choices, never
// which tokens are recognized as math syntax.
package detect

import (
	"regexp"
	"strings"

	"mathspeak/pkg/mathtypes"
)

// indicator pairs a context with the pattern that signals it. Order matters:
// the first matching indicator decides.
type indicator struct {
	context mathtypes.Context
	pattern *regexp.Regexp
}

var indicators = []indicator{
	{mathtypes.ContextCalculus, regexp.MustCompile(`\\int|\\lim\b|\\partial\b|\\frac\{d[\^\s}]|\\frac\{d[a-zA-Z]\}|\\sum|\\prod|\\nabla|\bd/d[a-zA-Z]\b`)},
	{mathtypes.ContextLinearAlgebra, regexp.MustCompile(`\\begin\{[pbvBV]?matrix\}|\\det\b|\\vec\{|\\mathbf\{|\^\{?(?:T|\\top)\}?|\\langle|\\operatorname\{(?:rank|tr)\}`)},
	{mathtypes.ContextProbability, regexp.MustCompile(`\\Pr\b|\bP\s*\(|\bE\s*\[|\\mathbb\{E\}|\bVar\s*\(|\bCov\s*\(|\\binom\{|\\sim\b`)},
	{mathtypes.ContextSetTheory, regexp.MustCompile(`\\cup\b|\\cap\b|\\in\b|\\notin\b|\\subset|\\supset|\\emptyset\b|\\varnothing\b|\\forall\b|\\exists\b|\\setminus\b|\\mathbb\{[RNZQC]\}`)},
	{mathtypes.ContextDefinition, regexp.MustCompile(`[a-zA-Z]\([a-zA-Z](?:\s*,\s*[a-zA-Z])*\)\s*(?:=|\\equiv)|:=|\\equiv\b|^\s*[Ll]et\b|\\triangleq`)},
	{mathtypes.ContextArithmetic, regexp.MustCompile(`^[\d\s+\-*/×÷=().,%]+$`)},
}

// Detect returns the phrasing context for the given raw input. Empty and
// whitespace-only input is general.
func Detect(text string) mathtypes.Context {
	if strings.TrimSpace(text) == "" {
		return mathtypes.ContextGeneral
	}
	for _, ind := range indicators {
		if ind.pattern.MatchString(text) {
			return ind.context
		}
	}
	return mathtypes.ContextGeneral
}

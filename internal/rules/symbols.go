package rules

import "regexp"

// greekLetters maps command names to spoken names. Variant forms read the
// same as the plain letter.
var greekLetters = []struct {
	command string
	spoken  string
}{
	{"alpha", "alpha"}, {"beta", "beta"}, {"gamma", "gamma"}, {"delta", "delta"},
	{"epsilon", "epsilon"}, {"varepsilon", "epsilon"}, {"zeta", "zeta"},
	{"eta", "eta"}, {"theta", "theta"}, {"vartheta", "theta"}, {"iota", "iota"},
	{"kappa", "kappa"}, {"lambda", "lambda"}, {"mu", "mu"}, {"nu", "nu"},
	{"xi", "xi"}, {"pi", "pi"}, {"varpi", "pi"}, {"rho", "rho"}, {"varrho", "rho"},
	{"sigma", "sigma"}, {"varsigma", "sigma"}, {"tau", "tau"}, {"upsilon", "upsilon"},
	{"phi", "phi"}, {"varphi", "phi"}, {"chi", "chi"}, {"psi", "psi"},
	{"omega", "omega"},
	{"Gamma", "capital gamma"}, {"Delta", "capital delta"}, {"Theta", "capital theta"},
	{"Lambda", "capital lambda"}, {"Xi", "capital xi"}, {"Pi", "capital pi"},
	{"Sigma", "capital sigma"}, {"Upsilon", "capital upsilon"}, {"Phi", "capital phi"},
	{"Psi", "capital psi"}, {"Omega", "capital omega"},
}

// Symbols builds the final domain handler. It speaks Greek letters and the
// miscellaneous symbols no earlier domain claimed, then scrubs residual
// structural characters so the cleanup pass sees words, not markup. It is
// last in the precedence list on purpose: anything still carrying a backslash
// after it runs is an unknown command.
func Symbols() *Handler {
	ruleSet := make([]PatternRule, 0, len(greekLetters)+16)
	for _, g := range greekLetters {
		// Longer command names are declared first inside the same priority,
		// but \b makes each match exact regardless. The spoken name carries
		// guard spaces so adjacent commands like \alpha\beta stay separate
		// words; cleanup collapses the runs.
		ruleSet = append(ruleSet, PatternRule{
			Matcher:     regexp.MustCompile(`\\` + g.command + `\b`),
			Replacement: Literal(" " + g.spoken + " "),
			Priority:    80,
			Description: "greek letter " + g.command,
		})
	}

	ruleSet = append(ruleSet,
		PatternRule{
			Matcher:     regexp.MustCompile(`\\infty\b`),
			Replacement: Literal(" infinity "),
			Priority:    90,
			Description: "infinity",
		},
		PatternRule{
			Matcher:     regexp.MustCompile(`\\(?:cdots|ldots|dots)\b|\.\.\.`),
			Replacement: Literal(" and so on "),
			Priority:    88,
			Description: "ellipsis",
		},
		PatternRule{
			Matcher:     regexp.MustCompile(`\\partial\b`),
			Replacement: Literal(" partial "),
			Priority:    86,
			Description: "residual partial symbol",
		},
		PatternRule{
			Matcher:     regexp.MustCompile(`\\degree\b`),
			Replacement: Literal(" degrees "),
			Priority:    86,
			Description: "degree command",
		},
		PatternRule{
			Matcher:     regexp.MustCompile(`\\(?:ell)\b`),
			Replacement: Literal(" script l "),
			Priority:    84,
			Description: "script l",
		},
		PatternRule{
			Matcher:     regexp.MustCompile(`\\mathbb\{([A-Z])\}`),
			Replacement: Literal(" blackboard ${1} "),
			Priority:    60,
			Description: "residual blackboard letter",
		},
		PatternRule{
			Matcher:     regexp.MustCompile(`\\(?:mathbf|mathcal|mathfrak|boldsymbol)\{([^{}]*)\}`),
			Replacement: Literal("${1}"),
			Priority:    58,
			Description: "residual font wrappers",
		},
		PatternRule{
			Matcher:     regexp.MustCompile(`\\\\`),
			Replacement: Literal(", "),
			Priority:    30,
			Description: "residual line break",
		},
		PatternRule{
			Matcher:     regexp.MustCompile(`&`),
			Replacement: Literal(", "),
			Priority:    30,
			Description: "residual alignment tab",
		},
		PatternRule{
			// Unwrap the braces around arguments of commands nothing
			// consumed, so the unknown token stays visible while its
			// argument still gets spoken.
			Matcher:     regexp.MustCompile(`[{}]`),
			Replacement: Literal(" "),
			Priority:    10,
			Description: "residual braces",
		},
	)

	return NewHandler(DomainSymbols, ruleSet)
}

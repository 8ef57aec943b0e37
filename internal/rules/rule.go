// Package rules implements the priority-ordered rewrite rules that turn
// mathematical notation into speakable English. The atomic unit is the
// PatternRule: a compiled matcher, a literal or computed replacement, a
// priority, and a domain tag. Rules are grouped into immutable Handlers, one
// per mathematical area, which the engine applies in a fixed precedence order.
package rules

import (
	"regexp"
	"sort"

	"mathspeak/internal/logger"
	"mathspeak/pkg/mathtypes"
)

// Options carries the phrasing inputs available to computed replacements.
// Neither field ever changes which syntax a matcher recognizes.
type Options struct {
	Audience mathtypes.AudienceLevel
	Context  mathtypes.Context
}

// ComputedFunc maps the captured groups of one match to replacement text.
// captures[0] is the whole match, captures[1..] the submatches. Implementations
// must return a string for any well-formed capture; a panic is contained at
// the single-match level by the handler and leaves that match untouched.
type ComputedFunc func(captures []string, opts Options) string

// Replacement is a tagged variant: either a literal template or a computed
// function. Literal templates may reference capture groups with ${1} syntax.
type Replacement struct {
	literal  string
	computed ComputedFunc
}

// Literal builds a replacement from a template string. Capture groups are
// referenced as ${1}, ${2}, and so on.
func Literal(text string) Replacement {
	return Replacement{literal: text}
}

// Computed builds a replacement from a function of the captured groups.
func Computed(fn ComputedFunc) Replacement {
	return Replacement{computed: fn}
}

// IsComputed reports which variant this replacement is.
func (r Replacement) IsComputed() bool {
	return r.computed != nil
}

// PatternRule is the atomic rewrite unit.
type PatternRule struct {
	Matcher     *regexp.Regexp
	Replacement Replacement
	Domain      string
	Priority    int
	Description string

	// Set at handler construction, used for deterministic ordering.
	literalLen int
	declared   int
}

// Handler is an immutable, ordered set of PatternRules for one mathematical
// area. Rules are sorted once at construction: priority descending, then
// longer compiled literal prefix (more specific matcher), then declaration
// order. Process is referentially transparent: same input and options always
// produce the same output.
type Handler struct {
	domain string
	rules  []PatternRule
}

// NewHandler builds a handler for the given domain. The rule slice is copied;
// the handler never mutates after construction.
func NewHandler(domain string, ruleSet []PatternRule) *Handler {
	sorted := make([]PatternRule, len(ruleSet))
	copy(sorted, ruleSet)
	for i := range sorted {
		sorted[i].Domain = domain
		sorted[i].declared = i
		prefix, _ := sorted[i].Matcher.LiteralPrefix()
		sorted[i].literalLen = len(prefix)
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Priority != sorted[j].Priority {
			return sorted[i].Priority > sorted[j].Priority
		}
		if sorted[i].literalLen != sorted[j].literalLen {
			return sorted[i].literalLen > sorted[j].literalLen
		}
		return sorted[i].declared < sorted[j].declared
	})
	return &Handler{domain: domain, rules: sorted}
}

// Domain returns the handler's domain tag.
func (h *Handler) Domain() string {
	return h.domain
}

// Rules returns a copy of the handler's rules in application order.
func (h *Handler) Rules() []PatternRule {
	out := make([]PatternRule, len(h.rules))
	copy(out, h.rules)
	return out
}

// Process applies every rule in order, one global substitution pass per rule.
// A rule's own output is never re-scanned for further matches of the same
// rule, and a computed replacement that panics leaves that single match
// untouched while the rest of the pass continues.
func (h *Handler) Process(text string, opts Options) string {
	if text == "" {
		return ""
	}
	input := text
	for i := range h.rules {
		text = applyRule(&h.rules[i], text, opts)
	}
	if text != input {
		logger.HandlerPass(h.domain, input, text)
	}
	return text
}

// applyRule performs the single global pass for one rule.
func applyRule(rule *PatternRule, text string, opts Options) string {
	if !rule.Matcher.MatchString(text) {
		return text
	}
	out := rule.Matcher.ReplaceAllStringFunc(text, func(match string) string {
		return replaceMatch(rule, match, opts)
	})
	if out != text {
		logger.RuleApplication(rule.Domain, rule.Description, text, out)
	}
	return out
}

// replaceMatch rewrites one match. Panics from computed replacements are
// contained here so one broken rule can never abort the handler.
func replaceMatch(rule *PatternRule, match string, opts Options) (result string) {
	defer func() {
		if r := recover(); r != nil {
			logger.Warn("Rule replacement failed, match left untouched",
				"domain", rule.Domain, "rule", rule.Description, "match", match, "error", r)
			result = match
		}
	}()

	if rule.Replacement.IsComputed() {
		captures := rule.Matcher.FindStringSubmatch(match)
		if captures == nil {
			return match
		}
		return rule.Replacement.computed(captures, opts)
	}
	return rule.Matcher.ReplaceAllString(match, rule.Replacement.literal)
}

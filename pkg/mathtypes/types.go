// Package mathtypes defines the public types for the mathspeak engine.
// This file contains the audience levels, phrasing contexts, and the
// processed-expression result returned to callers.
package mathtypes

// AudienceLevel selects how verbose and how formal the spoken phrasing is.
// It never changes which notation is recognized, only how it is worded.
type AudienceLevel int

const (
	// AudienceElementary targets elementary-school listeners
	AudienceElementary AudienceLevel = iota
	// AudienceMiddleSchool targets middle-school listeners
	AudienceMiddleSchool
	// AudienceHighSchool targets high-school listeners
	AudienceHighSchool
	// AudienceUndergraduate targets undergraduate listeners (default)
	AudienceUndergraduate
	// AudienceGraduate targets graduate listeners
	AudienceGraduate
	// AudienceResearch targets research-level listeners
	AudienceResearch
)

// String returns the canonical lowercase name used in cache keys and CLI flags.
func (a AudienceLevel) String() string {
	switch a {
	case AudienceElementary:
		return "elementary"
	case AudienceMiddleSchool:
		return "middle_school"
	case AudienceHighSchool:
		return "high_school"
	case AudienceUndergraduate:
		return "undergraduate"
	case AudienceGraduate:
		return "graduate"
	case AudienceResearch:
		return "research"
	default:
		return "undergraduate"
	}
}

// ParseAudienceLevel converts a user-supplied name to an AudienceLevel.
// Unknown names normalize to AudienceUndergraduate so a bad flag value can
// never make processing fail.
func ParseAudienceLevel(name string) AudienceLevel {
	switch name {
	case "elementary":
		return AudienceElementary
	case "middle_school", "middleschool":
		return AudienceMiddleSchool
	case "high_school", "highschool":
		return AudienceHighSchool
	case "undergraduate", "college":
		return AudienceUndergraduate
	case "graduate":
		return AudienceGraduate
	case "research":
		return AudienceResearch
	default:
		return AudienceUndergraduate
	}
}

// Context is the phrasing context detected from the raw input. It steers
// wording choices ("X plus Y is Z" vs "f of x equals ...") and is part of the
// cache key, but it never changes which tokens are recognized as math syntax.
type Context string

const (
	// ContextGeneral is the default when no indicator matches
	ContextGeneral Context = "general"
	// ContextArithmetic covers plain numeric computation
	ContextArithmetic Context = "arithmetic"
	// ContextDefinition covers function and symbol definitions
	ContextDefinition Context = "definition"
	// ContextCalculus covers derivative, integral, and limit expressions
	ContextCalculus Context = "calculus"
	// ContextLinearAlgebra covers matrix and vector expressions
	ContextLinearAlgebra Context = "linear_algebra"
	// ContextSetTheory covers set and logic expressions
	ContextSetTheory Context = "set_theory"
	// ContextProbability covers probability and statistics expressions
	ContextProbability Context = "probability"
)

// ProcessedExpression is the immutable result of one Process call. It is
// created once per call and owned by the caller.
type ProcessedExpression struct {
	Original        string   `json:"original"`         // input exactly as received
	Processed       string   `json:"processed"`        // speakable text
	Context         Context  `json:"context"`          // detected phrasing context
	UnknownCommands []string `json:"unknown_commands"` // escape tokens left unconsumed, sorted, deduplicated
}

// HasUnknownCommands reports whether any escape token survived the pipeline.
func (p *ProcessedExpression) HasUnknownCommands() bool {
	return len(p.UnknownCommands) > 0
}

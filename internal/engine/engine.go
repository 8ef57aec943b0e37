// Package engine orchestrates the full rewrite pipeline: pre-normalization,
// context detection, the fixed domain-handler precedence sequence, the
// cleanup pass, the unknown-command scan, and the result cache. Process is a
// pure function of its inputs aside from the cache, so any number of callers
// may invoke it concurrently.
package engine

import (
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"mathspeak/internal/cache"
	"mathspeak/internal/cleanup"
	"mathspeak/internal/detect"
	"mathspeak/internal/logger"
	"mathspeak/internal/normalize"
	"mathspeak/internal/rules"
	"mathspeak/internal/tracker"
	"mathspeak/pkg/mathtypes"
)

// Precedence is the fixed order in which domain handlers are applied, after
// the cross-domain pre-pass. This list is the single most important
// correctness artifact in the system: it resolves every cross-domain
// ambiguity by handler order. In particular, calculus precedes arithmetic so
// a derivative-shaped fraction is always consumed before the generic
// "X over Y" fraction rule can see it. The list is defined here once, never
// inferred from registration order, and never mutated at runtime.
var Precedence = []string{
	rules.DomainCalculus,
	rules.DomainLinearAlgebra,
	rules.DomainProbability,
	rules.DomainSetTheory,
	rules.DomainAlgebra,
	rules.DomainArithmetic,
	rules.DomainSymbols,
}

// maxPipelinePasses is a defensive backstop on the stage loop. The pipeline
// is a fixed sequence and can never legitimately exceed it.
const maxPipelinePasses = 16

// processingState names the request lifecycle stages for debug logging.
type processingState int

const (
	stateReceived processingState = iota
	stateContextDetected
	stateHandlersApplied
	stateCleaned
	stateUnknownScanned
	stateCached
	stateReturned
)

func (s processingState) String() string {
	switch s {
	case stateReceived:
		return "RECEIVED"
	case stateContextDetected:
		return "CONTEXT_DETECTED"
	case stateHandlersApplied:
		return "HANDLERS_APPLIED"
	case stateCleaned:
		return "CLEANED"
	case stateUnknownScanned:
		return "UNKNOWN_SCANNED"
	case stateCached:
		return "CACHED"
	case stateReturned:
		return "RETURNED"
	default:
		return "UNKNOWN"
	}
}

// Config is the explicit, immutable configuration for one engine instance.
// There are no ambient registries: everything the engine touches is listed
// here, which keeps tests isolated and concurrent instances independent.
type Config struct {
	// PrePass holds the domain-agnostic rules applied before the
	// precedence sequence.
	PrePass *rules.Handler
	// Handlers is the domain precedence sequence. Defaults to
	// DefaultHandlers(), whose order matches Precedence.
	Handlers []*rules.Handler
	// Cache memoizes whole-pipeline results. Nil disables caching.
	Cache *cache.ExpressionCache
	// Tracker records unknown commands. Nil disables tracking (scanning
	// still happens; results always carry the unknown list).
	Tracker *tracker.Tracker
}

// DefaultHandlers builds the standard domain handlers in precedence order.
func DefaultHandlers() []*rules.Handler {
	return []*rules.Handler{
		rules.Calculus(),
		rules.LinearAlgebra(),
		rules.Probability(),
		rules.SetTheory(),
		rules.Algebra(),
		rules.Arithmetic(),
		rules.Symbols(),
	}
}

// DefaultConfig returns a config with the standard rule tables, a default
// cache, and no counter persistence.
func DefaultConfig() Config {
	return Config{
		PrePass:  rules.CrossDomain(),
		Handlers: DefaultHandlers(),
		Cache:    cache.New(cache.DefaultMaxEntries, cache.DefaultMaxBytes),
	}
}

// Engine applies the rewrite pipeline. Construct once, share freely.
type Engine struct {
	cfg Config
	log *log.Logger
}

// New creates an engine from the given config, filling unset rule tables
// with the defaults.
func New(cfg Config) *Engine {
	if cfg.PrePass == nil {
		cfg.PrePass = rules.CrossDomain()
	}
	if len(cfg.Handlers) == 0 {
		cfg.Handlers = DefaultHandlers()
	}
	return &Engine{
		cfg: cfg,
		log: logger.NewStyledLogger("Engine"),
	}
}

// Process rewrites one expression into speakable text. It never returns an
// error and never panics: the worst case is literal pass-through of
// unrecognized notation plus a list of unknown commands.
func (e *Engine) Process(expression string, audience mathtypes.AudienceLevel) mathtypes.ProcessedExpression {
	trace := uuid.NewString()
	e.logState(trace, stateReceived, expression)

	if expression == "" {
		return mathtypes.ProcessedExpression{Context: mathtypes.ContextGeneral}
	}

	cleaned := normalize.Apply(expression)
	ctx := detect.Detect(cleaned)
	e.logState(trace, stateContextDetected, string(ctx))

	if err := normalize.Check(cleaned); err != nil {
		// Oversize or over-nested input: pass through rather than burn
		// unbounded time on it.
		logger.Warn("Input exceeds processing ceilings, passing through", "error", err)
		result := mathtypes.ProcessedExpression{
			Original:        expression,
			Processed:       cleaned,
			Context:         ctx,
			UnknownCommands: tracker.Scan(cleaned),
		}
		e.logState(trace, stateReturned, "")
		return result
	}

	key := cache.MakeKey(cleaned, ctx, audience)
	if e.cfg.Cache != nil {
		if hit, ok := e.cfg.Cache.Get(key); ok {
			// Different raw spellings can normalize to the same key; the
			// caller still gets back exactly what it sent in.
			hit.Original = expression
			e.logState(trace, stateReturned, "cache hit")
			return hit
		}
	}

	opts := rules.Options{Audience: audience, Context: ctx}
	text := cleaned
	passes := 0
	for _, h := range append([]*rules.Handler{e.cfg.PrePass}, e.cfg.Handlers...) {
		passes++
		if passes > maxPipelinePasses {
			logger.Error("Pipeline pass cap exceeded, stopping early", "passes", passes)
			break
		}
		text = h.Process(text, opts)
	}
	e.logState(trace, stateHandlersApplied, text)

	text = cleanup.Apply(text)
	e.logState(trace, stateCleaned, text)

	unknown := tracker.Scan(text)
	if e.cfg.Tracker != nil {
		e.cfg.Tracker.Record(unknown, string(ctx))
	}
	e.logState(trace, stateUnknownScanned, "")

	result := mathtypes.ProcessedExpression{
		Original:        expression,
		Processed:       text,
		Context:         ctx,
		UnknownCommands: unknown,
	}

	if e.cfg.Cache != nil {
		e.cfg.Cache.Put(key, result)
		e.logState(trace, stateCached, "")
	}

	e.logState(trace, stateReturned, "")
	return result
}

// CacheStats exposes the cache counters for diagnostic surfaces. The zero
// Stats is returned when caching is disabled.
func (e *Engine) CacheStats() cache.Stats {
	if e.cfg.Cache == nil {
		return cache.Stats{}
	}
	return e.cfg.Cache.Stats()
}

func (e *Engine) logState(trace string, state processingState, detail string) {
	if detail == "" {
		e.log.Debug("Pipeline state", "trace", trace, "state", state.String())
		return
	}
	e.log.Debug("Pipeline state", "trace", trace, "state", state.String(), "detail", detail)
}

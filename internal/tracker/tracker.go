// Package tracker scans final pipeline output for escape tokens no rule
// consumed and maintains an advisory on-disk counter of how often each one
// was seen. The counter file is a diagnostic side channel: writes are
// best-effort and last-writer-wins, and it is never read back during
// processing.
package tracker

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"mathspeak/internal/logger"
)

// escapeToken matches a backslash command left in rewritten text.
var escapeToken = regexp.MustCompile(`\\[a-zA-Z]+`)

// knownResidue lists tokens that legitimately survive the pipeline and are
// not unknown commands (currently none; the symbols handler consumes all
// residue it knows about).
var knownResidue = map[string]bool{}

// Scan returns the sorted, deduplicated escape tokens present in the text.
func Scan(text string) []string {
	matches := escapeToken.FindAllString(text, -1)
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(matches))
	var tokens []string
	for _, m := range matches {
		if knownResidue[m] || seen[m] {
			continue
		}
		seen[m] = true
		tokens = append(tokens, m)
	}
	sort.Strings(tokens)
	return tokens
}

// Entry is one persisted counter record. Context is the phrasing context
// detected when the token was first seen, a hint for whoever triages the
// counter file.
type Entry struct {
	Count   int    `yaml:"count"`
	Context string `yaml:"context"`
}

// Tracker accumulates unknown-command counts in memory and flushes them to a
// YAML counter file. All failures are logged and swallowed: the tracker can
// never fail a Process call.
type Tracker struct {
	path string

	mutex  sync.Mutex
	counts map[string]*Entry
}

// New creates a tracker that persists to the given path. An empty path
// disables persistence but keeps in-memory counting.
func New(path string) *Tracker {
	return &Tracker{
		path:   path,
		counts: make(map[string]*Entry),
	}
}

// Record bumps the counters for the given tokens and opportunistically
// flushes the counter file.
func (t *Tracker) Record(tokens []string, context string) {
	if len(tokens) == 0 {
		return
	}

	t.mutex.Lock()
	for _, token := range tokens {
		if entry, ok := t.counts[token]; ok {
			entry.Count++
		} else {
			t.counts[token] = &Entry{Count: 1, Context: context}
		}
	}
	snapshot := make(map[string]Entry, len(t.counts))
	for token, entry := range t.counts {
		snapshot[token] = *entry
	}
	t.mutex.Unlock()

	t.flush(snapshot)
}

// Counts returns a copy of the in-memory counters.
func (t *Tracker) Counts() map[string]Entry {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	out := make(map[string]Entry, len(t.counts))
	for token, entry := range t.counts {
		out[token] = *entry
	}
	return out
}

// flush writes the snapshot to the counter file. Concurrent writers race
// benignly: the file is advisory and the last writer wins.
func (t *Tracker) flush(snapshot map[string]Entry) {
	if t.path == "" {
		return
	}
	data, err := yaml.Marshal(snapshot)
	if err != nil {
		logger.Warn("Failed to encode unknown-command counters", "error", err)
		return
	}
	if dir := filepath.Dir(t.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logger.Warn("Failed to create counter directory", "path", dir, "error", err)
			return
		}
	}
	if err := os.WriteFile(t.path, data, 0o644); err != nil {
		logger.Warn("Failed to write unknown-command counters", "path", t.path, "error", err)
	}
}

// Package normalize provides pre-pass input hygiene for the rewrite pipeline.
// It strips control bytes, applies Unicode NFC normalization, and enforces the
// input-size and brace-nesting ceilings that defend against pathological inputs.
package normalize

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

const (
	// MaxInputLength is the hard ceiling on input size in bytes. Longer
	// inputs are passed through unprocessed rather than rewritten.
	MaxInputLength = 64 * 1024

	// MaxBraceDepth is the hard ceiling on brace nesting. Deeper inputs are
	// passed through unprocessed rather than rewritten.
	MaxBraceDepth = 32
)

// Check reports whether the input is within the processing ceilings.
// A non-nil error means the caller should fall back to pass-through.
func Check(text string) error {
	if len(text) > MaxInputLength {
		return fmt.Errorf("input length %d exceeds limit %d", len(text), MaxInputLength)
	}
	if depth := maxBraceDepth(text); depth > MaxBraceDepth {
		return fmt.Errorf("brace nesting depth %d exceeds limit %d", depth, MaxBraceDepth)
	}
	return nil
}

// Apply returns the hygienic form of the input: NUL and other C0 control
// bytes removed (tabs and newlines become spaces), Unicode normalized to NFC,
// surrounding whitespace trimmed. It never fails.
func Apply(text string) string {
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r == '\t' || r == '\n' || r == '\r':
			b.WriteByte(' ')
		case r < 0x20 || r == 0x7f:
			// Drop NUL and remaining control characters outright
		default:
			b.WriteRune(r)
		}
	}

	return strings.TrimSpace(norm.NFC.String(b.String()))
}

// maxBraceDepth returns the deepest brace nesting in the input. Unbalanced
// closers never drive the depth negative, so a run of "}}}" is harmless.
func maxBraceDepth(text string) int {
	depth, max := 0, 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '{':
			depth++
			if depth > max {
				max = depth
			}
		case '}':
			if depth > 0 {
				depth--
			}
		}
	}
	return max
}

// Package cleanup provides the final normalization pass over rewritten text.
// It runs after every domain handler, so it operates on words rather than
// escape tokens, and it is idempotent: applying it twice gives the same
// output as applying it once.
package cleanup

import (
	"regexp"
	"strings"
)

var (
	whitespaceRun     = regexp.MustCompile(`\s+`)
	spaceBeforePunct  = regexp.MustCompile(`\s+([.,;:!?])`)
	missingSpaceAfter = regexp.MustCompile(`([,;:])([^\s0-9])`)
)

// Words that start with a vowel letter but a consonant sound, so "a" stays.
var consonantSound = map[string]bool{
	"one": true, "once": true, "unit": true, "union": true, "unique": true,
	"uniform": true, "unified": true, "university": true, "universal": true,
	"euler": true, "european": true, "u": true, "use": true, "used": true,
	"user": true, "usual": true, "utility": true,
}

// Words that start with a consonant letter but a vowel sound, so "a" becomes "an".
var vowelSound = map[string]bool{
	"hour": true, "honest": true, "honor": true, "heir": true,
	"x": true, "n": true, "m": true, "f": true, "l": true, "r": true, "s": true,
}

// Apply normalizes whitespace, punctuation spacing, and indefinite articles.
func Apply(text string) string {
	if text == "" {
		return ""
	}

	text = whitespaceRun.ReplaceAllString(text, " ")
	text = spaceBeforePunct.ReplaceAllString(text, "${1}")
	text = missingSpaceAfter.ReplaceAllString(text, "${1} ${2}")
	text = fixArticles(text)

	return strings.TrimSpace(text)
}

// fixArticles corrects "a" to "an" before vowel sounds. It walks the word
// list so every article is decided against its following word, consecutive
// articles included; a regex that consumed the following word would skip the
// second of two adjacent articles.
func fixArticles(text string) string {
	words := strings.Split(text, " ")
	for i := 0; i < len(words)-1; i++ {
		switch words[i] {
		case "a":
			if wantAn(words[i+1]) {
				words[i] = "an"
			}
		case "A":
			if wantAn(words[i+1]) {
				words[i] = "An"
			}
		}
	}
	return strings.Join(words, " ")
}

// wantAn reports whether the given word takes "an". Attached punctuation is
// ignored.
func wantAn(word string) bool {
	lower := strings.Trim(strings.ToLower(word), ".,;:!?()")
	if lower == "" {
		return false
	}
	if consonantSound[lower] || strings.HasPrefix(lower, "uni") || strings.HasPrefix(lower, "eu") || strings.HasPrefix(lower, "use") {
		return false
	}
	if vowelSound[lower] {
		return true
	}
	return strings.ContainsRune("aeiou", rune(lower[0]))
}

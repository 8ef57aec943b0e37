package rules

import (
	"strconv"
	"strings"
)

var cardinalWords = map[int]string{
	0: "zero", 1: "one", 2: "two", 3: "three", 4: "four",
	5: "five", 6: "six", 7: "seven", 8: "eight", 9: "nine",
	10: "ten", 11: "eleven", 12: "twelve", 13: "thirteen", 14: "fourteen",
	15: "fifteen", 16: "sixteen", 17: "seventeen", 18: "eighteen",
	19: "nineteen", 20: "twenty",
}

// Denominator words for spoken fractions. "half" and "quarter" are irregular,
// the rest are ordinals.
var fractionWords = map[int]string{
	2: "half", 3: "third", 4: "quarter", 5: "fifth", 6: "sixth",
	7: "seventh", 8: "eighth", 9: "ninth", 10: "tenth", 11: "eleventh",
	12: "twelfth", 16: "sixteenth", 20: "twentieth", 100: "hundredth",
}

// CardinalWord returns the English word for small non-negative integers, or
// the digits unchanged when no word form is defined. Speech backends read
// digits fine, so only fraction phrasing needs word forms.
func CardinalWord(digits string) string {
	n, err := strconv.Atoi(strings.TrimSpace(digits))
	if err != nil {
		return digits
	}
	if word, ok := cardinalWords[n]; ok {
		return word
	}
	return digits
}

// SpokenFraction renders numerator/denominator pairs the way they are read
// aloud: "one half", "three quarters", "seven tenths". The empty string
// signals that no natural word form exists and the caller should fall back
// to "over" phrasing.
func SpokenFraction(numerator, denominator string) string {
	num, err := strconv.Atoi(strings.TrimSpace(numerator))
	if err != nil || num < 1 {
		return ""
	}
	den, err := strconv.Atoi(strings.TrimSpace(denominator))
	if err != nil {
		return ""
	}
	word, ok := fractionWords[den]
	if !ok {
		return ""
	}
	numWord, ok := cardinalWords[num]
	if !ok {
		return ""
	}
	if num == 1 {
		return numWord + " " + word
	}
	if word == "half" {
		return numWord + " halves"
	}
	return numWord + " " + word + "s"
}

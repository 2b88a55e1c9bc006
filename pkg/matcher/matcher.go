// Package matcher implements the keyword intent matching used by the
// dialogue engine: normalization of free text into word tokens and
// membership tests against configured keyword lists.
package matcher

import (
	"regexp"
	"strings"
)

var wordPattern = regexp.MustCompile(`\w+`)

// panPattern matches a Permanent Account Number: five letters, four digits,
// one letter. Applied to the uppercased raw text, anywhere in the message.
var panPattern = regexp.MustCompile(`[A-Z]{5}[0-9]{4}[A-Z]`)

// Tokenize lowercases the message and splits it into word tokens
// (letters, digits, underscore), preserving order.
func Tokenize(message string) []string {
	return wordPattern.FindAllString(strings.ToLower(message), -1)
}

// Matches reports whether any keyword is present in the message.
//
// A keyword is itself tokenized; it matches when its token sequence appears
// contiguously in the message's token sequence. Single-word keywords reduce
// to plain token membership ("yes" never matches "yesterday"); multi-word
// keywords match as phrases ("only salary" matches "I have only salary
// income"). Matching is never raw substring search.
func Matches(message string, keywords []string) bool {
	tokens := Tokenize(message)
	for _, kw := range keywords {
		if containsSequence(tokens, Tokenize(kw)) {
			return true
		}
	}
	return false
}

// ExtractPAN returns the first PAN found in the message, uppercased,
// and whether one was found.
func ExtractPAN(message string) (string, bool) {
	pan := panPattern.FindString(strings.ToUpper(message))
	return pan, pan != ""
}

func containsSequence(tokens, seq []string) bool {
	if len(seq) == 0 || len(seq) > len(tokens) {
		return false
	}
	for i := 0; i+len(seq) <= len(tokens); i++ {
		match := true
		for j, w := range seq {
			if tokens[i+j] != w {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

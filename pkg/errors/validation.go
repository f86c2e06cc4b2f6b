package errors

import (
	"unicode"
	"unicode/utf8"
)

// MaxWordLength bounds words accepted from users. Distances are quadratic in
// word length, so very long inputs are rejected up front.
const MaxWordLength = 256

// ValidateWord validates a word supplied on the command line or over HTTP.
//
// Rules:
//   - No empty words
//   - No control characters or null bytes
//   - No surrounding whitespace (word lists are trimmed on load)
//   - At most MaxWordLength characters
func ValidateWord(word string) error {
	if word == "" {
		return New(ErrCodeInvalidWord, "word cannot be empty")
	}
	if !utf8.ValidString(word) {
		return New(ErrCodeInvalidWord, "word is not valid UTF-8")
	}
	if n := utf8.RuneCountInString(word); n > MaxWordLength {
		return New(ErrCodeInvalidWord, "word too long (%d characters, max %d)", n, MaxWordLength)
	}
	for _, r := range word {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidWord, "word contains invalid control characters")
		}
	}
	first, _ := utf8.DecodeRuneInString(word)
	last, _ := utf8.DecodeLastRuneInString(word)
	if unicode.IsSpace(first) || unicode.IsSpace(last) {
		return New(ErrCodeInvalidWord, "word has surrounding whitespace: %q", word)
	}
	return nil
}

// ValidateDegree validates an expansion degree against an upper limit.
// Negative degrees are accepted: they expand to an empty network. A max of
// zero or less disables the upper bound.
func ValidateDegree(degree, max int) error {
	if max > 0 && degree > max {
		return New(ErrCodeInvalidDegree, "degree %d exceeds limit %d", degree, max)
	}
	return nil
}

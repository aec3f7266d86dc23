package signs

import (
	"errors"
	"strings"
	"unicode"
)

// ErrNoValidCharacters is returned when normalization leaves nothing to sign.
var ErrNoValidCharacters = errors.New("no valid characters in text")

// Normalize lowercases text and strips every rune that is neither
// alphanumeric nor whitespace. It fails when the result is empty after
// trimming.
func Normalize(text string) (string, error) {
	var b strings.Builder
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}

	clean := b.String()
	if strings.TrimSpace(clean) == "" {
		return "", ErrNoValidCharacters
	}
	return clean, nil
}

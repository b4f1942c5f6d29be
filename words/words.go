package words

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalize trims surrounding space and composes the word to NFC,
// so "é" typed as e + U+0301 is a single symbol on the tape.
func Normalize(word string) string {
	return norm.NFC.String(strings.TrimSpace(word))
}

// IsPalindrome compares runes directly, without a machine.
func IsPalindrome(word string) bool {
	runes := []rune(word)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		if runes[i] != runes[j] {
			return false
		}
	}
	return true
}

package service

import (
	"strings"
	"unicode"
)

// normalizeCode uppercases a company or project code and reports whether
// it is exactly 3 letters.
func normalizeCode(code string) (string, bool) {
	runes := []rune(strings.ToUpper(code))
	if len(runes) != 3 {
		return "", false
	}
	for _, r := range runes {
		if !unicode.IsLetter(r) {
			return "", false
		}
	}
	return string(runes), true
}

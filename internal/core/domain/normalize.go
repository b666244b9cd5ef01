package domain

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/net/idna"
)

// NormalizeDomain converts a raw domain token to the canonical stored form:
// trimmed, no trailing dot, lowercase, non-ASCII labels punycoded.
func NormalizeDomain(raw string) string {
	name := strings.TrimSpace(raw)
	name = strings.TrimSuffix(name, ".")
	if name == "" {
		return ""
	}

	if isASCII(name) {
		return strings.ToLower(name)
	}

	ascii, err := idna.Lookup.ToASCII(name)
	if err != nil {
		// Not a valid IDN; keep the lowercased input so the user can
		// still remove it again.
		return strings.ToLower(name)
	}

	return strings.ToLower(ascii)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

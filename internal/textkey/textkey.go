// Package textkey holds the ASCII-only string-folding rules shared across
// the module: the strip-and-lowercase key used by uninstall dedupe and
// matching token bags, and the lowercase-only-ASCII-letters fold used
// anywhere a key must agree with a path or directory name folded by
// internal/roots. Centralizing both here keeps every consumer in sync.
package textkey

import "strings"

// Normalize keeps ASCII alphanumerics only, lowercases them, and
// concatenates the result.
func Normalize(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r - 'A' + 'a')
		}
	}
	return b.String()
}

// IsASCIIAlnum reports whether r is an ASCII letter or digit.
func IsASCIIAlnum(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// FoldASCII lower-cases ASCII letters only, leaving every other rune
// (including non-ASCII letters) unchanged, so folding stays
// locale-independent instead of following Unicode case rules.
func FoldASCII(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			r = r - 'A' + 'a'
		}
		out = append(out, r)
	}
	return string(out)
}

package domain

import "strings"

// NormalizeText is the comparison form of a word: trimmed and lowercased.
// Inner whitespace, diacritics and punctuation are kept, so "a  b" and
// "a b" differ, as do "Café" and "cafe".
func NormalizeText(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// SplitList splits a comma-separated list, trims every item and drops
// blank ones. Order is preserved.
func SplitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// SameWord reports whether two words are equal after normalization.
func SameWord(a, b string) bool {
	return NormalizeText(a) == NormalizeText(b)
}

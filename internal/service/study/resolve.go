package study

import (
	"strings"

	"github.com/heartmarshall/vocab-builder/internal/domain"
)

// ResolveHeadwords maps a displayed word back to the headwords it came
// from. For from-to the displayed text is a translation; for to-from it is
// a headword. Comma-joined text is split and each item resolved when the
// whole text does not match. A to-from word that is no longer a headword
// resolves to nothing, even when it is another entry's translation. The
// result has no duplicates.
func ResolveHeadwords(set *domain.VocabularySet, order domain.WordOrder, displayed string) []string {
	displayed = strings.TrimSpace(displayed)
	if displayed == "" {
		return nil
	}

	if order.ShowsTranslations() {
		if hs := headwordsWithTranslation(set, displayed); len(hs) > 0 {
			return hs
		}
		var out []string
		for _, item := range domain.SplitList(displayed) {
			out = appendUnique(out, headwordsWithTranslation(set, item)...)
		}
		return out
	}

	if _, ok := set.Entry(displayed); ok {
		return []string{displayed}
	}
	var out []string
	for _, item := range domain.SplitList(displayed) {
		if _, ok := set.Entry(item); ok {
			out = appendUnique(out, item)
		}
	}
	return out
}

// WordInOtherLang returns the counterpart of a displayed word: headwords for
// from-to, translations for to-from.
func WordInOtherLang(set *domain.VocabularySet, order domain.WordOrder, displayed string) []string {
	heads := ResolveHeadwords(set, order, displayed)
	if order.ShowsTranslations() {
		return heads
	}
	var out []string
	for _, h := range heads {
		e, _ := set.Entry(h)
		out = appendUnique(out, e.Translations...)
	}
	return out
}

// Answer is WordInOtherLang joined with ", ".
func Answer(set *domain.VocabularySet, order domain.WordOrder, displayed string) string {
	return strings.Join(WordInOtherLang(set, order, displayed), ", ")
}

func headwordsWithTranslation(set *domain.VocabularySet, w string) []string {
	var out []string
	for _, h := range set.Headwords() {
		e, _ := set.Entry(h)
		if e.HasTranslation(w) {
			out = append(out, h)
		}
	}
	return out
}

func appendUnique(dst []string, items ...string) []string {
	for _, it := range items {
		dup := false
		for _, d := range dst {
			if d == it {
				dup = true
				break
			}
		}
		if !dup {
			dst = append(dst, it)
		}
	}
	return dst
}

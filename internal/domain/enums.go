package domain

import "strings"

// WordOrder selects which side of an entry is shown during review.
type WordOrder string

const (
	// WordOrderFromTo shows value-language translations and asks for the headword.
	WordOrderFromTo WordOrder = "from-to"
	// WordOrderToFrom shows key-language headwords and asks for a translation.
	WordOrderToFrom WordOrder = "to-from"
)

func (o WordOrder) String() string { return string(o) }

func (o WordOrder) IsValid() bool {
	switch o {
	case WordOrderFromTo, WordOrderToFrom:
		return true
	}
	return false
}

// ShowsTranslations reports whether selected items are translations
// rather than headwords.
func (o WordOrder) ShowsTranslations() bool { return o == WordOrderFromTo }

// ParseWordOrder converts user input into a WordOrder.
func ParseWordOrder(s string) (WordOrder, error) {
	o := WordOrder(strings.ToLower(strings.TrimSpace(s)))
	if !o.IsValid() {
		return "", NewValidationError("word_order", "must be one of: from-to, to-from")
	}
	return o, nil
}

// PartAnyLabel is the wire and config spelling of the match-all filter.
const PartAnyLabel = "Any"

// PartFilter restricts selection to entries with a given part of speech.
// The zero value matches every entry.
type PartFilter struct {
	part string
}

// AnyPart returns the match-all filter.
func AnyPart() PartFilter { return PartFilter{} }

// OnlyPart returns a filter matching entries whose part equals p exactly.
// A blank p yields the match-all filter.
func OnlyPart(p string) PartFilter {
	return PartFilter{part: strings.TrimSpace(p)}
}

// ParsePartFilter accepts "Any" (any case) or a blank string as the
// match-all filter and any other value as an exact part.
func ParsePartFilter(s string) PartFilter {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, PartAnyLabel) {
		return AnyPart()
	}
	return OnlyPart(s)
}

func (f PartFilter) IsAny() bool { return f.part == "" }

// Part returns the required part of speech, or "" for the match-all filter.
func (f PartFilter) Part() string { return f.part }

// Matches reports whether an entry tagged with part passes the filter.
func (f PartFilter) Matches(part string) bool {
	if f.IsAny() {
		return true
	}
	return strings.TrimSpace(part) == f.part
}

func (f PartFilter) String() string {
	if f.IsAny() {
		return PartAnyLabel
	}
	return f.part
}

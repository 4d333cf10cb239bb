package study

import (
	"time"

	"github.com/heartmarshall/vocab-builder/internal/domain"
)

// IsDue reports whether e should be reviewed on today. An entry is due when
// it has been answered correctly at most MinCorrect times, or has never been
// answered correctly, or was last answered correctly MinAgeDays or more days
// ago. An unparseable lastCorrect counts as never answered. The part filter
// must match in every case.
func IsDue(e *domain.Entry, opts Options, today time.Time) bool {
	if !opts.Part.Matches(e.Part) {
		return false
	}
	if e.Count <= opts.MinCorrect {
		return true
	}
	last, ok := e.LastCorrectDate()
	if !ok {
		return true
	}
	return daysBetween(last, today) >= opts.MinAgeDays
}

// SelectWords returns the due words of set in the shown language: the
// translations of due entries for from-to, the headwords for to-from.
// Insertion order is kept.
func SelectWords(set *domain.VocabularySet, opts Options, today time.Time) []string {
	selected := []string{}
	for _, h := range set.Headwords() {
		e, _ := set.Entry(h)
		if !IsDue(e, opts, today) {
			continue
		}
		selected = append(selected, project(h, e, opts.WordOrder)...)
	}
	return selected
}

// project returns what a review in order shows for headword h.
func project(h string, e *domain.Entry, order domain.WordOrder) []string {
	if order.ShowsTranslations() {
		return append([]string(nil), e.Translations...)
	}
	return []string{h}
}

// civilDay drops the clock time of t, keeping its calendar date.
func civilDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(civilDay(to).Sub(civilDay(from)).Hours() / 24)
}

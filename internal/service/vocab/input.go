package vocab

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/vocab-builder/internal/domain"
)

// MergePair is one incoming (values, key, part) triple. Key is a headword
// in the key language; Values are its translations.
type MergePair struct {
	Values []string
	Key    string
	Part   string
}

// MergeOptions controls Merge.
type MergeOptions struct {
	// Force skips interactive confirmation in callers. It does not change
	// what Merge stores.
	Force bool
	// Update removes entries whose translations equal the incoming values
	// before inserting a new key. Matching is by translation list only, so
	// an unrelated headword with the same translations is removed too.
	Update bool
}

// MergeResult reports what a Merge call changed.
type MergeResult struct {
	Added   []string
	Updated []string
	Removed []string
}

// ParseValues splits a comma-separated translation list. Items are trimmed
// and blanks dropped.
func ParseValues(s string) []string {
	return domain.SplitList(s)
}

// normalize trims every field, drops blank values and removes
// case-insensitive duplicates, keeping the first spelling.
func (p MergePair) normalize() MergePair {
	out := MergePair{
		Key:  strings.TrimSpace(p.Key),
		Part: strings.TrimSpace(p.Part),
	}
	seen := make(map[string]bool, len(p.Values))
	for _, v := range p.Values {
		for _, item := range ParseValues(v) {
			norm := domain.NormalizeText(item)
			if seen[norm] {
				continue
			}
			seen[norm] = true
			out.Values = append(out.Values, item)
		}
	}
	return out
}

// validatePairs normalizes pairs and collects every contract violation.
func validatePairs(pairs []MergePair) ([]MergePair, error) {
	var errs []domain.FieldError
	out := make([]MergePair, len(pairs))

	for i, p := range pairs {
		n := p.normalize()
		prefix := fmt.Sprintf("pairs[%d]", i)
		switch {
		case n.Key == "":
			errs = append(errs, domain.FieldError{Field: prefix + ".key", Message: "required"})
		case domain.IsReservedKey(n.Key):
			errs = append(errs, domain.FieldError{Field: prefix + ".key", Message: "reserved"})
		}
		if len(n.Values) == 0 {
			errs = append(errs, domain.FieldError{Field: prefix + ".values", Message: "required"})
		}
		out[i] = n
	}

	if len(errs) > 0 {
		return nil, &domain.ValidationError{Errors: errs}
	}
	return out, nil
}

package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// MetaKey is the reserved top-level key holding the set's Meta record.
const MetaKey = "meta"

// DateLayout is the calendar-date format of Entry.LastCorrect.
const DateLayout = "2006-01-02"

// IsReservedKey reports whether k can never be a headword.
func IsReservedKey(k string) bool {
	return k == MetaKey || strings.TrimSpace(k) == ""
}

// LangPair identifies one vocabulary set. To is the studied (key) language,
// From is the known (value) language.
type LangPair struct {
	From string
	To   string
}

// Validate checks that both language codes are present and distinct.
func (p LangPair) Validate() error {
	var errs []FieldError
	if strings.TrimSpace(p.From) == "" {
		errs = append(errs, FieldError{Field: "from_lang", Message: "required"})
	}
	if strings.TrimSpace(p.To) == "" {
		errs = append(errs, FieldError{Field: "to_lang", Message: "required"})
	}
	if len(errs) == 0 && strings.EqualFold(p.From, p.To) {
		errs = append(errs, FieldError{Field: "to_lang", Message: "must differ from from_lang"})
	}
	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// String returns the storage name prefix, "<to>_<from>".
func (p LangPair) String() string { return p.To + "_" + p.From }

// Meta declares which language is the key side and which is the value side.
type Meta struct {
	ValLangID   string `json:"val_langid"`
	ValLangName string `json:"val_langname"`
	KeyLangID   string `json:"key_langid"`
	KeyLangName string `json:"key_langname"`
}

// NewMeta builds the meta record for pair. Blank names fall back to codes.
func NewMeta(pair LangPair, fromName, toName string) Meta {
	if fromName == "" {
		fromName = pair.From
	}
	if toName == "" {
		toName = pair.To
	}
	return Meta{
		ValLangID:   pair.From,
		ValLangName: fromName,
		KeyLangID:   pair.To,
		KeyLangName: toName,
	}
}

// Pair returns the language pair described by the meta record.
func (m Meta) Pair() LangPair {
	return LangPair{From: m.ValLangID, To: m.KeyLangID}
}

// Entry is one headword's record.
type Entry struct {
	Translations []string `json:"translations"`
	LastCorrect  string   `json:"lastCorrect"`
	Count        int      `json:"count"`
	Part         string   `json:"part"`
}

// HasTranslation reports whether w is already present, ignoring case and
// surrounding whitespace.
func (e *Entry) HasTranslation(w string) bool {
	for _, t := range e.Translations {
		if SameWord(t, w) {
			return true
		}
	}
	return false
}

// AddTranslation appends the trimmed w unless it is blank or already present.
func (e *Entry) AddTranslation(w string) bool {
	w = strings.TrimSpace(w)
	if w == "" || e.HasTranslation(w) {
		return false
	}
	e.Translations = append(e.Translations, w)
	return true
}

// LastCorrectDate parses LastCorrect. ok is false when it is empty or
// not a valid date.
func (e *Entry) LastCorrectDate() (time.Time, bool) {
	if e.LastCorrect == "" {
		return time.Time{}, false
	}
	d, err := time.Parse(DateLayout, e.LastCorrect)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// MarkCorrect records a successful review on day.
func (e *Entry) MarkCorrect(day time.Time) {
	e.Count++
	e.LastCorrect = day.Format(DateLayout)
}

// Validate reports every way e breaks the entry invariants: a missing or
// blank translation, a case-insensitive duplicate, a lastCorrect that is not
// a date and a negative count. Field names are prefixed with prefix.
func (e *Entry) Validate(prefix string) []FieldError {
	var errs []FieldError
	if len(e.Translations) == 0 {
		errs = append(errs, FieldError{Field: prefix + ".translations", Message: "at least one required"})
	}
	seen := make(map[string]string, len(e.Translations))
	for i, t := range e.Translations {
		norm := NormalizeText(t)
		first, dup := seen[norm]
		switch {
		case norm == "":
			errs = append(errs, FieldError{Field: fmt.Sprintf("%s.translations[%d]", prefix, i), Message: "blank"})
		case dup:
			errs = append(errs, FieldError{Field: fmt.Sprintf("%s.translations[%d]", prefix, i), Message: fmt.Sprintf("duplicate of %q", first)})
		default:
			seen[norm] = t
		}
	}
	if e.LastCorrect != "" {
		if _, err := time.Parse(DateLayout, e.LastCorrect); err != nil {
			errs = append(errs, FieldError{Field: prefix + ".lastCorrect", Message: "must be a YYYY-MM-DD date"})
		}
	}
	if e.Count < 0 {
		errs = append(errs, FieldError{Field: prefix + ".count", Message: "must not be negative"})
	}
	return errs
}

func (e *Entry) clone() *Entry {
	c := *e
	c.Translations = append(make([]string, 0, len(e.Translations)), e.Translations...)
	return &c
}

// VocabularySet is the full durable state for one language pair.
// Headword insertion order is preserved through JSON encoding.
type VocabularySet struct {
	Meta Meta

	entries map[string]*Entry
	order   []string
}

// NewVocabularySet returns an empty set carrying meta.
func NewVocabularySet(meta Meta) *VocabularySet {
	return &VocabularySet{Meta: meta, entries: make(map[string]*Entry)}
}

// Len returns the number of headwords.
func (s *VocabularySet) Len() int { return len(s.order) }

// Entry returns the live entry for headword h.
func (s *VocabularySet) Entry(h string) (*Entry, bool) {
	e, ok := s.entries[h]
	return e, ok
}

// Put inserts or replaces the entry for h. Replacing keeps h's position.
// Reserved keys are rejected and Put returns false.
func (s *VocabularySet) Put(h string, e Entry) bool {
	if IsReservedKey(h) {
		return false
	}
	if s.entries == nil {
		s.entries = make(map[string]*Entry)
	}
	if _, ok := s.entries[h]; !ok {
		s.order = append(s.order, h)
	}
	s.entries[h] = e.clone()
	return true
}

// Delete removes h and reports whether it was present.
func (s *VocabularySet) Delete(h string) bool {
	if _, ok := s.entries[h]; !ok {
		return false
	}
	delete(s.entries, h)
	for i, k := range s.order {
		if k == h {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Headwords returns all headwords in insertion order.
func (s *VocabularySet) Headwords() []string {
	return append([]string(nil), s.order...)
}

// Validate checks meta and every entry and returns one ValidationError
// listing all failures, or nil.
func (s *VocabularySet) Validate() error {
	var errs []FieldError
	if err := s.Meta.Pair().Validate(); err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			for _, fe := range ve.Errors {
				errs = append(errs, FieldError{Field: MetaKey + "." + fe.Field, Message: fe.Message})
			}
		}
	}
	for _, h := range s.order {
		errs = append(errs, s.entries[h].Validate(h)...)
	}
	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// CheckSetPair rejects an invalid pair and a set whose meta describes a
// different pair. Stores call it before writing set under pair.
func CheckSetPair(pair LangPair, set *VocabularySet) error {
	if err := pair.Validate(); err != nil {
		return err
	}
	if got := set.Meta.Pair(); got != pair {
		return NewValidationError(MetaKey, fmt.Sprintf("describes %s, expected %s", got, pair))
	}
	return nil
}

// Clone returns a deep copy.
func (s *VocabularySet) Clone() *VocabularySet {
	c := NewVocabularySet(s.Meta)
	for _, h := range s.order {
		c.Put(h, *s.entries[h])
	}
	return c
}

// MarshalJSON writes meta first, then every entry in insertion order.
func (s *VocabularySet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	meta, err := json.Marshal(s.Meta)
	if err != nil {
		return nil, err
	}
	buf.WriteString(`"` + MetaKey + `":`)
	buf.Write(meta)

	for _, h := range s.order {
		key, err := json.Marshal(h)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(s.entries[h])
		if err != nil {
			return nil, err
		}
		buf.WriteByte(',')
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads the flat object form. Blank keys are skipped.
func (s *VocabularySet) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("vocabulary set: expected object, got %v", tok)
	}

	*s = VocabularySet{entries: make(map[string]*Entry)}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := tok.(string)

		switch {
		case key == MetaKey:
			if err := dec.Decode(&s.Meta); err != nil {
				return fmt.Errorf("vocabulary set: meta: %w", err)
			}
		case IsReservedKey(key):
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return err
			}
		default:
			var e Entry
			if err := dec.Decode(&e); err != nil {
				return fmt.Errorf("vocabulary set: entry %q: %w", key, err)
			}
			if e.Count < 0 {
				e.Count = 0
			}
			s.Put(key, e)
		}
	}

	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

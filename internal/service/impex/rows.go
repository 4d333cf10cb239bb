package impex

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/heartmarshall/vocab-builder/internal/domain"
	"github.com/heartmarshall/vocab-builder/internal/service/vocab"
)

// Import row columns: value word, part of speech, key word, then any number
// of extra value words for the same key.
const (
	colValue = 0
	colPart  = 1
	colKey   = 2
)

// ImportResult reports the outcome of an import.
type ImportResult struct {
	Rows     int      `json:"rows"`
	Imported []string `json:"imported"`
	Missed   []string `json:"missed"`
	Skipped  int      `json:"skipped"`
}

// importRows turns raw rows into merge pairs and merges them. The store is
// backed up before anything is merged.
func (s *Service) importRows(ctx context.Context, pair domain.LangPair, rows [][]string, lookup bool) (ImportResult, error) {
	res := ImportResult{Rows: len(rows), Imported: []string{}, Missed: []string{}}

	if err := s.vocab.Backup(ctx, pair); err != nil {
		return res, err
	}

	var pairs []vocab.MergePair
	for _, row := range rows {
		p, missed, ok := s.parseRow(ctx, pair, row, &lookup)
		switch {
		case ok:
			pairs = append(pairs, p)
			res.Imported = append(res.Imported, p.Key)
		case missed != "":
			res.Missed = append(res.Missed, missed)
		default:
			res.Skipped++
		}
	}

	if len(pairs) > 0 {
		if _, err := s.vocab.Merge(ctx, pair, pairs, vocab.MergeOptions{Force: true}); err != nil {
			return res, err
		}
	}

	if len(res.Missed) > 0 {
		s.log.InfoContext(ctx, "words not imported: no translation found or provided",
			slog.Any("words", res.Missed),
		)
	}
	s.log.InfoContext(ctx, "import finished",
		slog.String("pair", pair.String()),
		slog.Int("rows", res.Rows),
		slog.Int("imported", len(res.Imported)),
		slog.Int("missed", len(res.Missed)),
		slog.Int("skipped", res.Skipped),
	)
	return res, nil
}

// parseRow returns the merge pair for row. When a side cannot be filled, or
// the key is reserved, the word that is present is returned as missed. A row with nothing usable
// returns neither. A provider outage turns lookup off for the rest of the
// run.
func (s *Service) parseRow(ctx context.Context, pair domain.LangPair, row []string, lookup *bool) (vocab.MergePair, string, bool) {
	for len(row) <= colKey {
		row = append(row, "")
	}

	key := strings.TrimSpace(row[colKey])
	part := strings.TrimSpace(row[colPart])
	values := nonBlank(append([]string{row[colValue]}, row[colKey+1:]...))

	switch {
	case domain.IsReservedKey(key) && key != "":
		return vocab.MergePair{}, key, false

	case key != "" && len(values) > 0:
		return vocab.MergePair{Values: values, Key: key, Part: part}, "", true

	case key != "":
		v, ok := s.lookup(ctx, pair.To, pair.From, key, lookup)
		if !ok {
			return vocab.MergePair{}, key, false
		}
		return vocab.MergePair{Values: []string{v}, Key: key, Part: part}, "", true

	case len(values) > 0:
		k, ok := s.lookup(ctx, pair.From, pair.To, values[0], lookup)
		if !ok || domain.IsReservedKey(k) {
			return vocab.MergePair{}, values[0], false
		}
		return vocab.MergePair{Values: values, Key: k, Part: part}, "", true

	default:
		return vocab.MergePair{}, "", false
	}
}

// lookup translates word. A failed lookup, or one that returns the word
// itself, reports ok=false.
func (s *Service) lookup(ctx context.Context, from, to, word string, enabled *bool) (string, bool) {
	if !*enabled || s.translator == nil {
		return "", false
	}

	out, err := s.translator.Translate(ctx, from, to, word)
	if err != nil {
		if errors.Is(err, domain.ErrProviderUnavailable) {
			s.log.InfoContext(ctx, "translation provider unavailable, lookup disabled for this import",
				slog.String("error", err.Error()),
			)
			*enabled = false
		} else {
			s.log.DebugContext(ctx, "lookup failed", slog.String("word", word), slog.String("error", err.Error()))
		}
		return "", false
	}

	out = strings.TrimSpace(out)
	if out == "" || domain.SameWord(out, word) {
		return "", false
	}
	return out, true
}

func nonBlank(items []string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if it = strings.TrimSpace(it); it != "" {
			out = append(out, it)
		}
	}
	return out
}

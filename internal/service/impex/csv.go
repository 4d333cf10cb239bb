package impex

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/heartmarshall/vocab-builder/internal/domain"
)

const utf8BOM = "\ufeff"

// ImportCSV merges the rows of r into the pair's set. When lookup is on, a
// row missing one side gets it from the translator. After the merge a CSV
// snapshot of the whole set is written.
func (s *Service) ImportCSV(ctx context.Context, pair domain.LangPair, r io.Reader, lookup bool) (ImportResult, error) {
	if err := pair.Validate(); err != nil {
		return ImportResult{}, err
	}

	rows, err := readCSV(r)
	if err != nil {
		return ImportResult{}, err
	}

	res, err := s.importRows(ctx, pair, rows, lookup)
	if err != nil {
		return res, err
	}

	if err := s.WriteSnapshot(ctx, pair); err != nil {
		return res, err
	}
	return res, nil
}

// ExportCSV writes one row per headword: headword, part, translations...
func (s *Service) ExportCSV(ctx context.Context, pair domain.LangPair, w io.Writer) error {
	set, err := s.vocab.Load(ctx, pair)
	if err != nil {
		return err
	}
	return writeCSV(w, set)
}

// WriteSnapshot writes <to>_<from>_exported_words.csv into the snapshot
// directory.
func (s *Service) WriteSnapshot(ctx context.Context, pair domain.LangPair) error {
	if s.snapshotDir == "" {
		return nil
	}
	if err := os.MkdirAll(s.snapshotDir, 0o755); err != nil {
		return fmt.Errorf("create snapshot dir: %w", err)
	}

	set, err := s.vocab.Load(ctx, pair)
	if err != nil {
		return err
	}

	path := filepath.Join(s.snapshotDir, pair.String()+"_exported_words.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	if err := writeCSV(f, set); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close snapshot: %w", err)
	}

	s.log.InfoContext(ctx, "csv snapshot written", slog.String("path", path), slog.Int("entries", set.Len()))
	return nil
}

func readCSV(r io.Reader) ([][]string, error) {
	br := bufio.NewReader(r)
	if b, err := br.Peek(len(utf8BOM)); err == nil && string(b) == utf8BOM {
		br.Discard(len(utf8BOM))
	}

	reader := csv.NewReader(br)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var rows [][]string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, domain.NewValidationError("csv", err.Error())
		}
		rows = append(rows, record)
	}
	return rows, nil
}

func writeCSV(w io.Writer, set *domain.VocabularySet) error {
	cw := csv.NewWriter(w)
	for _, row := range exportRows(set) {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

func exportRows(set *domain.VocabularySet) [][]string {
	rows := make([][]string, 0, set.Len())
	for _, h := range set.Headwords() {
		e, _ := set.Entry(h)
		row := make([]string, 0, 2+len(e.Translations))
		row = append(row, h, e.Part)
		row = append(row, e.Translations...)
		rows = append(rows, row)
	}
	return rows
}

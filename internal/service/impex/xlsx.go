package impex

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/heartmarshall/vocab-builder/internal/domain"
)

const sheetName = "Vocabulary"

// ExportXLSX writes the same rows as ExportCSV into a single-sheet workbook.
func (s *Service) ExportXLSX(ctx context.Context, pair domain.LangPair, w io.Writer) error {
	set, err := s.vocab.Load(ctx, pair)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("xlsx sheet: %w", err)
	}
	for i, row := range exportRows(set) {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("xlsx cell: %w", err)
		}
		values := make([]any, len(row))
		for j, v := range row {
			values[j] = v
		}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return fmt.Errorf("xlsx row %d: %w", i+1, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}

// ImportXLSX reads the first sheet of a workbook with the CSV import
// layout and merges it like ImportCSV.
func (s *Service) ImportXLSX(ctx context.Context, pair domain.LangPair, r io.Reader, lookup bool) (ImportResult, error) {
	if err := pair.Validate(); err != nil {
		return ImportResult{}, err
	}

	f, err := excelize.OpenReader(r)
	if err != nil {
		return ImportResult{}, domain.NewValidationError("xlsx", err.Error())
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return ImportResult{}, domain.NewValidationError("xlsx", "workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return ImportResult{}, fmt.Errorf("xlsx rows: %w", err)
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

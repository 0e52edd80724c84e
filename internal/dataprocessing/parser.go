package dataprocessing

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	"azmarcli/internal/config"
	apperrors "azmarcli/internal/errors"
	"azmarcli/pkg/contracts/domain"
)

const (
	// ArtifactSheetName is the workbook sheet holding the artifact inventory
	ArtifactSheetName = config.DefaultArtifactSheet
	// ArtifactPreambleRows is the number of title/metadata rows above the header
	ArtifactPreambleRows = config.DefaultPreambleRows
)

// LoadArtifactData reads the artifact inventory from the "Main Chamber" sheet
// of the workbook at path, skipping its three preamble rows.
func LoadArtifactData(path string) (*domain.Table, error) {
	return LoadSheet(path, ArtifactSheetName, ArtifactPreambleRows)
}

// LoadSheet reads sheet from the workbook at path. The first skipRows rows are
// discarded, the next row supplies column names and the rest are data rows.
// Data rows shorter than the header are padded with missing values; a row
// with a value beyond the header width is a FORMAT error.
func LoadSheet(path, sheet string, skipRows int) (*domain.Table, error) {
	f, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	wb, err := excelize.OpenReader(f)
	if err != nil {
		return nil, apperrors.NewFormatError(fmt.Sprintf("%s is not a readable workbook", path), err).
			WithContext("path", path)
	}
	defer wb.Close()

	if !hasSheet(wb, sheet) {
		return nil, apperrors.NewFormatError(fmt.Sprintf("sheet %q not found in %s", sheet, path), nil).
			WithContext("path", path).
			WithContext("sheets", wb.GetSheetList())
	}

	// Raw values keep number formats such as #,##0 or mm-dd-yy out of the
	// data; date-formatted serials are converted by the resolver below.
	rows, err := wb.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, apperrors.NewFormatError(fmt.Sprintf("failed to read sheet %q", sheet), err).
			WithContext("path", path)
	}
	rows = trimTrailingEmptyRows(rows)

	slog.Debug("Read workbook sheet",
		slog.String("path", path),
		slog.String("sheet_name", sheet),
		slog.Int("total_rows", len(rows)),
		slog.Int("skip_rows", skipRows))

	if skipRows < 0 {
		skipRows = 0
	}
	if len(rows) <= skipRows {
		return nil, apperrors.NewFormatError(fmt.Sprintf("sheet %q has no header row after %d preamble rows", sheet, skipRows), nil).
			WithContext("path", path).
			WithContext("rows", len(rows))
	}

	resolver, err := newCellResolver(wb, sheet)
	if err == nil {
		err = resolver.resolveRows(rows, skipRows)
	}
	if err != nil {
		return nil, apperrors.NewFormatError(fmt.Sprintf("failed to read cell values of sheet %q", sheet), err).
			WithContext("path", path)
	}

	header := rows[skipRows]
	if len(header) == 0 {
		return nil, apperrors.NewFormatError(fmt.Sprintf("sheet %q header row %d is empty", sheet, skipRows+1), nil).
			WithContext("path", path)
	}

	data := make([][]string, 0, len(rows)-skipRows-1)
	for i, row := range rows[skipRows+1:] {
		padded, err := fitRow(row, len(header))
		if err != nil {
			// Sheet rows are 1-based in the workbook
			sheetRow := skipRows + 2 + i
			return nil, apperrors.NewFormatError(fmt.Sprintf("sheet %q row %d: %v", sheet, sheetRow, err), nil).
				WithContext("path", path).
				WithContext("row", sheetRow)
		}
		data = append(data, padded)
	}

	table := buildTable(header, data, buildOptions{parseDates: true})

	slog.Debug("Loaded workbook table",
		slog.String("sheet_name", sheet),
		slog.Int("columns", table.NumColumns()),
		slog.Int("rows", table.NumRows()))

	return table, nil
}

func hasSheet(wb *excelize.File, sheet string) bool {
	for _, name := range wb.GetSheetList() {
		if name == sheet {
			return true
		}
	}
	return false
}

// fitRow pads row with empty cells up to width. Cells past width must be blank.
func fitRow(row []string, width int) ([]string, error) {
	if len(row) > width {
		for j := width; j < len(row); j++ {
			if strings.TrimSpace(row[j]) != "" {
				return nil, fmt.Errorf("value in column %d beyond the %d header columns", j+1, width)
			}
		}
		return row[:width], nil
	}

	padded := make([]string, width)
	copy(padded, row)
	return padded, nil
}

// trimTrailingEmptyRows drops rows at the end of the sheet with no content
func trimTrailingEmptyRows(rows [][]string) [][]string {
	end := len(rows)
	for end > 0 && isBlankRow(rows[end-1]) {
		end--
	}
	return rows[:end]
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

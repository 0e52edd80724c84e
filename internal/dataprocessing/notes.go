package dataprocessing

import (
	"bytes"
	"encoding/csv"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"

	apperrors "azmarcli/internal/errors"
	"azmarcli/pkg/contracts/domain"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// LoadLocationNotes reads the tab-separated location notes at path. The first
// record supplies column names; empty fields are missing values. Every record
// must have as many fields as the header.
func LoadLocationNotes(path string) (*domain.Table, error) {
	data, err := readInput(path)
	if err != nil {
		return nil, err
	}

	header, rows, err := readDelimited(bytes.TrimPrefix(data, utf8BOM), '\t')
	if err != nil {
		return nil, apperrors.NewFormatError(fmt.Sprintf("failed to parse %s", path), err).
			WithContext("path", path)
	}

	table := buildTable(header, rows, buildOptions{})

	slog.Debug("Loaded delimited table",
		slog.String("path", path),
		slog.Int("columns", table.NumColumns()),
		slog.Int("rows", table.NumRows()))

	return table, nil
}

// readDelimited splits data into a header record and data records. Blank
// lines are skipped; a record whose field count differs from the header's is
// rejected.
func readDelimited(data []byte, delim rune) ([]string, [][]string, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = delim
	r.LazyQuotes = true
	r.FieldsPerRecord = 0

	header, err := r.Read()
	if err == io.EOF {
		return nil, nil, stderrors.New("no header row")
	}
	if err != nil {
		return nil, nil, err
	}

	var rows [][]string
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if stderrors.As(err, &pe) && stderrors.Is(pe.Err, csv.ErrFieldCount) {
				return nil, nil, fmt.Errorf("line %d has %d fields, header has %d: %w",
					pe.StartLine, len(record), len(header), csv.ErrFieldCount)
			}
			return nil, nil, err
		}
		rows = append(rows, record)
	}

	return header, rows, nil
}

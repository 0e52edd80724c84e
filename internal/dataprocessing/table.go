package dataprocessing

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	apperrors "azmarcli/internal/errors"
	"azmarcli/pkg/contracts/domain"
)

// buildOptions controls how raw rows become a table
type buildOptions struct {
	parseDates bool
}

// buildTable assembles a table from a header and rows that are exactly as
// wide as the header.
func buildTable(header []string, rows [][]string, opts buildOptions) *domain.Table {
	names := normalizeHeader(header)
	table := &domain.Table{Columns: make([]domain.Column, len(names))}

	cells := make([]string, len(rows))
	for j, name := range names {
		for i, row := range rows {
			cells[i] = row[j]
		}

		kind := inferKind(cells, opts.parseDates)
		values := make([]domain.Value, len(rows))
		for i, c := range cells {
			values[i] = convertCell(c, kind)
		}

		table.Columns[j] = domain.Column{Name: name, Kind: kind, Values: values}
	}

	return table
}

// normalizeHeader names blank header cells "Unnamed: <index>" and suffixes
// repeated names with ".1", ".2", ...
func normalizeHeader(header []string) []string {
	names := make([]string, len(header))
	counts := make(map[string]int, len(header))

	for i, h := range header {
		name := h
		if strings.TrimSpace(name) == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}

		// A generated "x.1" may itself collide with a real header, so keep
		// suffixing until the name is unused.
		cur := counts[name]
		for cur > 0 {
			counts[name] = cur + 1
			name = name + "." + strconv.Itoa(cur)
			cur = counts[name]
		}

		names[i] = name
		counts[name] = cur + 1
	}

	return names
}

// readInput reads the whole file at path. Anything that keeps the path from
// being read as a regular file is reported as NOT_FOUND.
func readInput(path string) ([]byte, error) {
	f, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, apperrors.NewNotFoundError(path, err)
	}
	return data, nil
}

// openInput opens path for reading, rejecting directories
func openInput(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.NewNotFoundError(path, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, apperrors.NewNotFoundError(path, err)
	}
	if info.IsDir() {
		f.Close()
		return nil, apperrors.NewNotFoundError(path, fmt.Errorf("%s is a directory", path))
	}

	return f, nil
}

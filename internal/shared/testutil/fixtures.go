package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// ChamberSheet is the sheet name the artifact fixtures are written to
const ChamberSheet = "Main Chamber"

// ChamberRows is a small artifact inventory: three preamble rows, the header,
// then three data rows (the last one short).
func ChamberRows() [][]interface{} {
	return [][]interface{}{
		{"Lost Temple of Azmar - Artifact Inventory"},
		{"Recorded by Dr. Evelyn Reed"},
		{},
		{"Artifact ID", "Name", "Depth (m)", "Count", "Material"},
		{"AZMAR-001", "Jade mask", 1.5, 1, "Jade"},
		{"AZMAR-002", "Obsidian blade", 2.25, 3, "Obsidian"},
		{"AZMAR-003", "Clay pot", 3, 12},
	}
}

// WriteWorkbook saves rows into sheet of a new workbook under dir and returns
// its path. Row i lands on spreadsheet row i+1.
func WriteWorkbook(t *testing.T, dir, sheet string, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetName(f.GetSheetName(0), sheet))

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		values := row
		require.NoError(t, f.SetSheetRow(sheet, cell, &values))
	}

	path := filepath.Join(dir, "artifacts.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

// WriteFile writes content to dir/name and returns the path
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

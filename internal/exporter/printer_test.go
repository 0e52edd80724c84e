package exporter

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"azmarcli/pkg/contracts/domain"
)

func artifactTable(rows int) *domain.Table {
	names := make([]domain.Value, rows)
	depths := make([]domain.Value, rows)
	for i := 0; i < rows; i++ {
		names[i] = domain.StringValue(fmt.Sprintf("artifact-%d", i))
		depths[i] = domain.FloatValue(float64(i) + 0.5)
	}
	if rows > 1 {
		depths[1] = domain.Null()
	}
	return &domain.Table{Columns: []domain.Column{
		{Name: "Name", Kind: domain.KindString, Values: names},
		{Name: "Depth", Kind: domain.KindFloat, Values: depths},
	}}
}

func TestPrinter_Head(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.Head(artifactTable(8), 5)

	out := buf.String()
	assert.Contains(t, out, "Name")
	assert.Contains(t, out, "Depth")
	assert.Contains(t, out, "artifact-0")
	assert.Contains(t, out, "artifact-4")
	assert.NotContains(t, out, "artifact-5")
	assert.Contains(t, out, "NaN")
	assert.Contains(t, out, "0.5")
}

func TestPrinter_HeadEmptyTable(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).Head(artifactTable(0), 5)

	assert.Contains(t, buf.String(), "Name")
	assert.NotContains(t, buf.String(), "artifact-")
}

func TestPrinter_Info(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).Info(artifactTable(3))

	out := buf.String()
	assert.Contains(t, out, "RangeIndex: 3 entries, 0 to 2")
	assert.Contains(t, out, "Data columns (total 2 columns):")
	assert.Contains(t, out, "3 non-null")
	assert.Contains(t, out, "2 non-null")
	assert.Contains(t, out, "dtypes: float64(1), string(1)")
}

func TestPrinter_SectionLineTokens(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.Section("Processing Journal from %s", "journal.txt")
	p.Line("Extracting Dates...")
	p.Tokens("Found dates", []string{"05/21/1920"})
	p.Tokens("Found codes", nil)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, []string{
		"--- Processing Journal from journal.txt ---",
		"Extracting Dates...",
		`Found dates: ["05/21/1920"]`,
		"Found codes: []",
	}, lines)
}

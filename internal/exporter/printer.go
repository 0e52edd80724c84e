package exporter

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"azmarcli/pkg/contracts/domain"
)

// Printer writes the human-readable expedition report
type Printer struct {
	w      io.Writer
	border lipgloss.Border
}

// NewPrinter creates a printer writing to w
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w, border: lipgloss.NormalBorder()}
}

// Section starts a new report section
func (p *Printer) Section(format string, args ...any) {
	fmt.Fprintf(p.w, "\n--- %s ---\n", fmt.Sprintf(format, args...))
}

// Line writes a single line of text
func (p *Printer) Line(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

// Head writes the first n rows of t with a leading row-index column
func (p *Printer) Head(t *domain.Table, n int) {
	head := t.Head(n)

	headers := append([]string{""}, head.ColumnNames()...)
	rows := make([][]string, head.NumRows())
	for i := range rows {
		values, _ := head.Row(i)
		row := make([]string, 0, len(values)+1)
		row = append(row, strconv.Itoa(i))
		for _, v := range values {
			row = append(row, v.String())
		}
		rows[i] = row
	}

	tbl := table.New().
		Border(p.border).
		Headers(headers...).
		Rows(rows...)

	fmt.Fprintln(p.w, tbl.Render())
}

// Info writes the column/type summary of t
func (p *Printer) Info(t *domain.Table) {
	infos := t.Info()

	rows := make([][]string, len(infos))
	for i, info := range infos {
		rows[i] = []string{
			strconv.Itoa(info.Index),
			info.Name,
			fmt.Sprintf("%d non-null", info.NonNullCount),
			string(info.Kind),
		}
	}

	fmt.Fprintf(p.w, "RangeIndex: %s\n", formatRange(t.NumRows()))
	fmt.Fprintf(p.w, "Data columns (total %d columns):\n", len(infos))

	tbl := table.New().
		Border(p.border).
		Headers("#", "Column", "Non-Null Count", "Dtype").
		Rows(rows...)
	fmt.Fprintln(p.w, tbl.Render())

	fmt.Fprintf(p.w, "dtypes: %s\n", formatKindCounts(infos))
}

// Tokens writes a labelled token list
func (p *Printer) Tokens(label string, tokens []string) {
	fmt.Fprintf(p.w, "%s: %s\n", label, formatTokens(tokens))
}

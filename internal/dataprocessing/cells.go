package dataprocessing

import (
	"regexp"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"
)

// cellResolver turns raw workbook values (read with RawCellValue) into the
// text kinds are inferred from. Serial numbers under a date or time number
// format become ISO timestamps and booleans become TRUE/FALSE; every other
// value is kept as stored, so number formats never leak into the data.
type cellResolver struct {
	wb       *excelize.File
	sheet    string
	date1904 bool
	// dateStyles caches whether a style index carries a date/time format
	dateStyles map[int]bool
}

func newCellResolver(wb *excelize.File, sheet string) (*cellResolver, error) {
	props, err := wb.GetWorkbookProps()
	if err != nil {
		return nil, err
	}

	r := &cellResolver{wb: wb, sheet: sheet, dateStyles: make(map[int]bool)}
	if props.Date1904 != nil {
		r.date1904 = *props.Date1904
	}
	return r, nil
}

// resolveRows rewrites rows[from:] in place. Row i and column j of rows are
// sheet cell (j+1, i+1), as returned by GetRows.
func (r *cellResolver) resolveRows(rows [][]string, from int) error {
	for i := from; i < len(rows); i++ {
		for j, raw := range rows[i] {
			if raw == "" {
				continue
			}
			text, err := r.resolve(j+1, i+1, raw)
			if err != nil {
				return err
			}
			rows[i][j] = text
		}
	}
	return nil
}

func (r *cellResolver) resolve(col, row int, raw string) (string, error) {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return "", err
	}

	typ, err := r.wb.GetCellType(r.sheet, cell)
	if err != nil {
		return "", err
	}
	switch typ {
	case excelize.CellTypeBool:
		return boolText(raw), nil
	case excelize.CellTypeUnset, excelize.CellTypeNumber:
	default:
		return raw, nil
	}

	isDate, err := r.hasDateFormat(cell)
	if err != nil || !isDate {
		return raw, err
	}

	serial, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return raw, nil
	}
	t, err := excelize.ExcelDateToTime(serial, r.date1904)
	if err != nil {
		return raw, nil
	}
	return formatCellTime(t), nil
}

func (r *cellResolver) hasDateFormat(cell string) (bool, error) {
	idx, err := r.wb.GetCellStyle(r.sheet, cell)
	if err != nil {
		return false, err
	}
	if isDate, ok := r.dateStyles[idx]; ok {
		return isDate, nil
	}

	style, err := r.wb.GetStyle(idx)
	if err != nil {
		return false, err
	}
	isDate := isDateNumFmt(style.NumFmt)
	if style.CustomNumFmt != nil {
		isDate = isDateFormatCode(*style.CustomNumFmt)
	}
	r.dateStyles[idx] = isDate
	return isDate, nil
}

// isDateNumFmt reports whether a built-in number format ID renders a date or
// time, including the language-specific (CJK and Thai) date formats.
func isDateNumFmt(id int) bool {
	switch {
	case 14 <= id && id <= 22:
	case 27 <= id && id <= 36:
	case 45 <= id && id <= 47:
	case 50 <= id && id <= 58:
	case 71 <= id && id <= 81:
	default:
		return false
	}
	return true
}

var (
	// quoted literals, bracketed sections ([Red], [$-409], [h]) and escapes
	formatLiterals = regexp.MustCompile(`"[^"]*"|\[[^\]]*\]|\\.`)
	dateTokens     = regexp.MustCompile(`[yYmMdDhHsS]`)
)

// isDateFormatCode reports whether a custom format code contains date or
// time placeholders outside literal text.
func isDateFormatCode(code string) bool {
	if code == "" || code == "General" || code == "@" {
		return false
	}
	return dateTokens.MatchString(formatLiterals.ReplaceAllString(code, ""))
}

func boolText(raw string) string {
	switch raw {
	case "1":
		return "TRUE"
	case "0":
		return "FALSE"
	}
	return raw
}

// formatCellTime renders t in a layout parseDate accepts, dropping a
// midnight time of day
func formatCellTime(t time.Time) string {
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return t.Format("2006-01-02")
	}
	return t.Format("2006-01-02 15:04:05")
}

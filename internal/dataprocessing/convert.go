package dataprocessing

// convert.go turns raw cell text into typed domain values.
//
// Inference is per column: a column is int64 when every present cell parses as
// an integer, float64 when every present cell parses as a number, datetime when
// date parsing is enabled and every present cell matches one of dateLayouts,
// and string otherwise. Cells listed in missingTokens are missing values.

import (
	"strconv"
	"strings"
	"time"

	"azmarcli/pkg/contracts/domain"
)

// missingTokens are the cell texts read as the missing-value marker
var missingTokens = map[string]struct{}{
	"":     {},
	"NA":   {},
	"N/A":  {},
	"n/a":  {},
	"#N/A": {},
	"NaN":  {},
	"nan":  {},
	"-NaN": {},
	"-nan": {},
	"NULL": {},
	"null": {},
	"None": {},
	"<NA>": {},
}

// dateLayouts covers ISO dates and four-digit-year US layouts. Workbook date
// cells arrive here already rendered as ISO text; two-digit years are left as
// text rather than guessing the century.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"01-02-2006",
	"01/02/2006 15:04:05",
	"Jan 2, 2006",
	"2 Jan 2006",
}

// isMissing reports whether raw is a missing-value token
func isMissing(raw string) bool {
	_, ok := missingTokens[strings.TrimSpace(raw)]
	return ok
}

func parseInt(raw string) (int64, bool) {
	i, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	return i, err == nil
}

func parseFloat(raw string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	return f, err == nil
}

func parseDate(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// inferKind picks the narrowest kind every present cell satisfies
func inferKind(cells []string, parseDates bool) domain.ValueKind {
	present := 0
	allInt, allFloat, allDate := true, true, parseDates
	for _, c := range cells {
		if isMissing(c) {
			continue
		}
		present++
		if allInt {
			if _, ok := parseInt(c); !ok {
				allInt = false
			}
		}
		if allFloat {
			if _, ok := parseFloat(c); !ok {
				allFloat = false
			}
		}
		if allDate {
			if _, ok := parseDate(c); !ok {
				allDate = false
			}
		}
		if !allInt && !allFloat && !allDate {
			break
		}
	}

	switch {
	case present == 0:
		return domain.KindString
	case allInt:
		return domain.KindInt
	case allFloat:
		return domain.KindFloat
	case allDate:
		return domain.KindTime
	default:
		return domain.KindString
	}
}

// convertCell converts raw to a value of kind. The kind must come from
// inferKind over a set of cells that includes raw.
func convertCell(raw string, kind domain.ValueKind) domain.Value {
	if isMissing(raw) {
		return domain.Null()
	}
	switch kind {
	case domain.KindInt:
		i, _ := parseInt(raw)
		return domain.IntValue(i)
	case domain.KindFloat:
		f, _ := parseFloat(raw)
		return domain.FloatValue(f)
	case domain.KindTime:
		t, _ := parseDate(raw)
		return domain.TimeValue(t)
	default:
		return domain.StringValue(raw)
	}
}

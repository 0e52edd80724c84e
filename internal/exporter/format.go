package exporter

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"azmarcli/pkg/contracts/domain"
)

// formatTokens renders a token list as ["a", "b"]
func formatTokens(tokens []string) string {
	quoted := make([]string, len(tokens))
	for i, tok := range tokens {
		quoted[i] = strconv.Quote(tok)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// formatKindCounts renders the kind histogram as "float64(1), string(2)"
func formatKindCounts(infos []domain.ColumnInfo) string {
	counts := make(map[domain.ValueKind]int)
	for _, info := range infos {
		counts[info.Kind]++
	}

	kinds := make([]string, 0, len(counts))
	for k := range counts {
		kinds = append(kinds, string(k))
	}
	sort.Strings(kinds)

	parts := make([]string, len(kinds))
	for i, k := range kinds {
		parts[i] = fmt.Sprintf("%s(%d)", k, counts[domain.ValueKind(k)])
	}
	return strings.Join(parts, ", ")
}

// formatRange describes the row index like "3 entries, 0 to 2"
func formatRange(rows int) string {
	if rows == 0 {
		return "0 entries"
	}
	return fmt.Sprintf("%d entries, 0 to %d", rows, rows-1)
}

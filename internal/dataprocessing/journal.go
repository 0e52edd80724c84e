package dataprocessing

import (
	"fmt"
	"regexp"
	"unicode"
	"unicode/utf8"

	apperrors "azmarcli/internal/errors"
)

var (
	// datePattern matches MM/DD/YYYY-shaped text without validating the date
	datePattern = regexp.MustCompile(`\p{Nd}{2}/\p{Nd}{2}/\p{Nd}{4}`)
	// codePattern matches artifact codes such as AZMAR-042
	codePattern = regexp.MustCompile(`AZMAR-\p{Nd}{3}`)
)

// LoadJournal reads the expedition journal at path as UTF-8 text
func LoadJournal(path string) (string, error) {
	data, err := readInput(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", apperrors.NewFormatError(fmt.Sprintf("%s is not valid UTF-8", path), nil).
			WithContext("path", path)
	}
	return string(data), nil
}

// ExtractJournalDates returns every MM/DD/YYYY-shaped date in text, in order
// of appearance and with duplicates.
func ExtractJournalDates(text string) []string {
	return findAllWords(datePattern, text)
}

// ExtractSecretCodes returns every AZMAR-NNN code in text, in order of
// appearance and with duplicates. AZMAR-12 and AZMAR-0001 are not codes.
func ExtractSecretCodes(text string) []string {
	return findAllWords(codePattern, text)
}

// findAllWords returns the non-overlapping matches of re that start and end
// on a word boundary, scanning left to right. Boundaries follow Unicode word
// characters (letters, numbers, underscore), which RE2's ASCII-only \b does
// not, so they are checked here and a rejected match resumes one rune later.
func findAllWords(re *regexp.Regexp, text string) []string {
	matches := []string{}
	for pos := 0; pos < len(text); {
		loc := re.FindStringIndex(text[pos:])
		if loc == nil {
			break
		}
		start, end := pos+loc[0], pos+loc[1]
		if isWordBoundary(text, start) && isWordBoundary(text, end) {
			matches = append(matches, text[start:end])
			pos = end
			continue
		}
		_, size := utf8.DecodeRuneInString(text[start:])
		pos = start + size
	}
	return matches
}

// isWordBoundary reports whether byte offset i in text sits between a word
// and a non-word character, or between a word character and either end.
func isWordBoundary(text string, i int) bool {
	before, after := false, false
	if i > 0 {
		r, _ := utf8.DecodeLastRuneInString(text[:i])
		before = isWordRune(r)
	}
	if i < len(text) {
		r, _ := utf8.DecodeRuneInString(text[i:])
		after = isWordRune(r)
	}
	return before != after
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

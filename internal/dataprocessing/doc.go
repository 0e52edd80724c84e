// Package dataprocessing loads the expedition's input files and extracts
// patterned tokens from the journal.
//
// # Loaders
//
// LoadArtifactData reads the "Main Chamber" sheet of the artifact workbook,
// skipping three preamble rows before the header. LoadLocationNotes reads the
// tab-separated location notes. Both return a *domain.Table with one inferred
// type per column and fail with typed errors from internal/errors:
//
//	- NOT_FOUND when the path cannot be read as a file
//	- FORMAT when the content is not the expected table
//
// # Extractors
//
// ExtractJournalDates and ExtractSecretCodes scan free text and return the
// matches in order of appearance, keeping duplicates:
//
//	text, err := dataprocessing.LoadJournal("journal.txt")
//	if err != nil {
//	    return err
//	}
//	dates := dataprocessing.ExtractJournalDates(text) // ["05/21/1920", ...]
//	codes := dataprocessing.ExtractSecretCodes(text)  // ["AZMAR-001", ...]
//
// Every function is stateless; nothing is cached between calls.
package dataprocessing

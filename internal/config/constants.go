package config

import "azmarcli/pkg/contracts"

// Application constants
const (
	AppName    = "azmar-expedition"
	AppVersion = contracts.Version

	// EnvPrefix namespaces every environment variable, e.g. AZMAR_LOGGING_LEVEL
	EnvPrefix = "AZMAR"

	// Input files (relative to the working directory)
	DefaultArtifactsFile = "artifacts.xlsx"
	DefaultNotesFile     = "locations.tsv"
	DefaultJournalFile   = "journal.txt"

	// Artifact workbook layout
	DefaultArtifactSheet = "Main Chamber"
	DefaultPreambleRows  = 3

	DefaultPreviewRows = 5
	DefaultLogFile     = "logs/expedition.log"
)

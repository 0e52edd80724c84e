// Package config provides configuration for the expedition tool.
//
// # Configuration Sources
//
// Configuration is resolved in the following order, later sources winning:
//
//	1. Built-in defaults (Default)
//	2. An optional YAML file passed to Load
//	3. Environment variables
//
// # Environment Variables
//
// All environment variables follow the pattern AZMAR_<SECTION>_<FIELD>:
//
//	AZMAR_LOGGING_LEVEL=debug
//	AZMAR_LOGGING_OUTPUT=both
//	AZMAR_INPUTS_ARTIFACTS_FILE=data/artifacts.xlsx
//	AZMAR_INPUTS_PREAMBLE_ROWS=3
//	AZMAR_REPORT_PREVIEW_ROWS=10
//	AZMAR_TELEMETRY_TRACE_EXPORTER=stdout
//
// # Validation
//
// Load validates the merged configuration with go-playground/validator tags
// and reports failures as CONFIG application errors.
package config

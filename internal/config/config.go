package config

import (
	stderrors "errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	apperrors "azmarcli/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Logging   LoggingConfig   `yaml:"logging" envconfig:"LOGGING"`
	Inputs    InputsConfig    `yaml:"inputs" envconfig:"INPUTS"`
	Report    ReportConfig    `yaml:"report" envconfig:"REPORT"`
	Telemetry TelemetryConfig `yaml:"telemetry" envconfig:"TELEMETRY"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn warning error"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" validate:"required_unless=Output console"`
}

// InputsConfig names the three expedition input files
type InputsConfig struct {
	ArtifactsFile string `yaml:"artifacts_file" envconfig:"ARTIFACTS_FILE" validate:"required"`
	ArtifactSheet string `yaml:"artifact_sheet" envconfig:"ARTIFACT_SHEET" validate:"required"`
	PreambleRows  int    `yaml:"preamble_rows" envconfig:"PREAMBLE_ROWS" validate:"min=0"`
	NotesFile     string `yaml:"notes_file" envconfig:"NOTES_FILE" validate:"required"`
	JournalFile   string `yaml:"journal_file" envconfig:"JOURNAL_FILE" validate:"required"`
}

// ReportConfig controls the printed summary
type ReportConfig struct {
	PreviewRows int `yaml:"preview_rows" envconfig:"PREVIEW_ROWS" validate:"min=0"`
}

// TelemetryConfig controls tracing of the processing steps
type TelemetryConfig struct {
	TraceExporter string `yaml:"trace_exporter" envconfig:"TRACE_EXPORTER" validate:"oneof=none stdout"`
	ServiceName   string `yaml:"service_name" envconfig:"SERVICE_NAME" validate:"required"`
}

// Default returns the configuration used when nothing overrides it
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:    "info",
			Output:   "console",
			FilePath: DefaultLogFile,
		},
		Inputs: InputsConfig{
			ArtifactsFile: DefaultArtifactsFile,
			ArtifactSheet: DefaultArtifactSheet,
			PreambleRows:  DefaultPreambleRows,
			NotesFile:     DefaultNotesFile,
			JournalFile:   DefaultJournalFile,
		},
		Report: ReportConfig{
			PreviewRows: DefaultPreviewRows,
		},
		Telemetry: TelemetryConfig{
			TraceExporter: "none",
			ServiceName:   AppName,
		},
	}
}

// Load builds the configuration from defaults, then the YAML file at path
// (skipped when path is empty), then AZMAR_* environment variables.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFromFile(path, cfg); err != nil {
			return nil, err
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, apperrors.NewConfigError("failed to load config from env", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFromFile overlays the YAML document at filePath onto cfg
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return apperrors.NewConfigError(fmt.Sprintf("failed to read config file %s", filePath), err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return apperrors.NewConfigError(fmt.Sprintf("failed to parse config file %s", filePath), err)
	}

	return nil
}

var validate = validator.New()

// Validate checks every field against its validate tag
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) {
		return apperrors.NewConfigError("config validation failed", err)
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, formatValidationError(fe))
	}
	return apperrors.NewConfigError("config validation failed", stderrors.New(strings.Join(messages, "; "))).
		WithContext("fields", len(fieldErrs))
}

// formatValidationError formats validation error messages
func formatValidationError(fe validator.FieldError) string {
	field := fe.Namespace()
	param := fe.Param()

	switch fe.Tag() {
	case "required", "required_unless":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(param, " ", ", "))
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}

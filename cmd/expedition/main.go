package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"go.opentelemetry.io/otel/trace"

	"azmarcli/internal/config"
	"azmarcli/internal/dataprocessing"
	apperrors "azmarcli/internal/errors"
	"azmarcli/internal/exporter"
	"azmarcli/internal/infrastructure"
	"azmarcli/pkg/contracts"
	"azmarcli/pkg/contracts/domain"
)

// options holds command-line overrides; flags left unset leave config untouched
type options struct {
	configPath string
	artifacts  string
	notes      string
	journal    string
	rows       int
	rowsSet    bool
	version    bool
}

func parseFlags(args []string, output io.Writer) (options, error) {
	fs := flag.NewFlagSet("expedition", flag.ContinueOnError)
	fs.SetOutput(output)

	var opts options
	fs.StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	fs.StringVar(&opts.artifacts, "artifacts", "", "artifact workbook (.xlsx), overrides config")
	fs.StringVar(&opts.notes, "notes", "", "tab-separated location notes, overrides config")
	fs.StringVar(&opts.journal, "journal", "", "UTF-8 journal text, overrides config")
	fs.IntVar(&opts.rows, "rows", config.DefaultPreviewRows, "number of preview rows to print, overrides config")
	fs.BoolVar(&opts.version, "version", false, "print version information and exit")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "rows" {
			opts.rowsSet = true
		}
	})
	return opts, nil
}

// apply copies the set overrides onto cfg
func (o options) apply(cfg *config.Config) {
	if o.artifacts != "" {
		cfg.Inputs.ArtifactsFile = o.artifacts
	}
	if o.notes != "" {
		cfg.Inputs.NotesFile = o.notes
	}
	if o.journal != "" {
		cfg.Inputs.JournalFile = o.journal
	}
	if o.rowsSet {
		cfg.Report.PreviewRows = o.rows
	}
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(2)
	}
	if opts.version {
		fmt.Println(contracts.GetFullVersionString(config.AppName))
		return
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	opts.apply(cfg)
	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid command-line options", "error", err)
		os.Exit(1)
	}

	if _, err := infrastructure.InitializeLogger(cfg.Logging); err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
	}
	logger := infrastructure.GetLogger()

	tracing, err := infrastructure.InitTracing(cfg.Telemetry, os.Stderr, logger)
	if err != nil {
		logger.Error("Failed to initialize tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := infrastructure.EnsureTraceID(context.Background())
	code := run(ctx, cfg, os.Stdout, tracing.Tracer, logger)

	if err := tracing.Shutdown(ctx); err != nil {
		logger.WarnContext(ctx, "Failed to flush traces", slog.String("error", err.Error()))
	}
	infrastructure.CloseLogFile()
	os.Exit(code)
}

// run processes the three inputs in order and writes the report to out.
// A missing input is reported and skipped; any other failure is reported,
// processing continues, and the exit code becomes 1.
func run(ctx context.Context, cfg *config.Config, out io.Writer, tracer trace.Tracer, logger *slog.Logger) int {
	r := &runner{
		cfg:     cfg,
		printer: exporter.NewPrinter(out),
		tracer:  tracer,
		logger:  infrastructure.WithComponent(logger, "expedition"),
	}

	r.logger.InfoContext(ctx, "Starting expedition processing",
		slog.String("artifacts_file", cfg.Inputs.ArtifactsFile),
		slog.String("notes_file", cfg.Inputs.NotesFile),
		slog.String("journal_file", cfg.Inputs.JournalFile))

	r.step(ctx, "load-artifacts", cfg.Inputs.ArtifactsFile, r.loadArtifacts)
	r.step(ctx, "load-notes", cfg.Inputs.NotesFile, r.loadNotes)
	r.step(ctx, "process-journal", cfg.Inputs.JournalFile, r.processJournal)

	r.logger.InfoContext(ctx, "Expedition processing complete", slog.Bool("failed", r.failed))

	if r.failed {
		return 1
	}
	return 0
}

type runner struct {
	cfg     *config.Config
	printer *exporter.Printer
	tracer  trace.Tracer
	logger  *slog.Logger
	failed  bool
}

func (r *runner) step(ctx context.Context, name, path string, fn func(context.Context, string) error) {
	ctx, span := infrastructure.StartStep(ctx, r.tracer, name, path)
	err := fn(ctx, path)
	infrastructure.EndStep(span, err)

	switch {
	case err == nil:
		r.logger.InfoContext(ctx, "Step complete", slog.String("step", name), slog.String("path", path))
	case apperrors.IsNotFound(err):
		r.printer.Line("Error: File not found at %s", path)
		r.logger.WarnContext(ctx, "Input file not found",
			slog.String("step", name),
			slog.String("path", path),
			slog.String("error", err.Error()))
	default:
		r.failed = true
		r.printer.Line("Error: %v", err)
		r.logger.ErrorContext(ctx, "Step failed",
			slog.String("step", name),
			slog.String("path", path),
			slog.String("error_type", string(apperrors.TypeOf(err))),
			slog.String("error", err.Error()))
	}
}

func (r *runner) loadArtifacts(ctx context.Context, path string) error {
	r.printer.Section("Loading Artifact Data from %s", path)

	table, err := dataprocessing.LoadSheet(path, r.cfg.Inputs.ArtifactSheet, r.cfg.Inputs.PreambleRows)
	if err != nil {
		return err
	}

	r.logger.DebugContext(ctx, "Artifact sheet loaded",
		slog.String("sheet_name", r.cfg.Inputs.ArtifactSheet),
		slog.Int("rows", table.NumRows()),
		slog.Int("columns", table.NumColumns()))

	r.printTable(table)
	return nil
}

func (r *runner) loadNotes(ctx context.Context, path string) error {
	r.printer.Section("Loading Location Notes from %s", path)

	table, err := dataprocessing.LoadLocationNotes(path)
	if err != nil {
		return err
	}

	r.logger.DebugContext(ctx, "Location notes loaded",
		slog.Int("rows", table.NumRows()),
		slog.Int("columns", table.NumColumns()))

	r.printTable(table)
	return nil
}

func (r *runner) processJournal(ctx context.Context, path string) error {
	r.printer.Section("Processing Journal from %s", path)

	text, err := dataprocessing.LoadJournal(path)
	if err != nil {
		return err
	}

	r.printer.Line("\nExtracting Dates...")
	dates := dataprocessing.ExtractJournalDates(text)
	r.printer.Tokens("Found dates", dates)

	r.printer.Line("\nExtracting Secret Codes...")
	codes := dataprocessing.ExtractSecretCodes(text)
	r.printer.Tokens("Found codes", codes)

	r.logger.DebugContext(ctx, "Journal tokens extracted",
		slog.Int("dates", len(dates)),
		slog.Int("codes", len(codes)))
	return nil
}

func (r *runner) printTable(table *domain.Table) {
	r.printer.Line("Successfully loaded table. First %d rows:", r.cfg.Report.PreviewRows)
	r.printer.Head(table, r.cfg.Report.PreviewRows)
	r.printer.Line("\nTable Info:")
	r.printer.Info(table)
}

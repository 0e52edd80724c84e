package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"

	"azmarcli/internal/config"
	apperrors "azmarcli/internal/errors"
	"azmarcli/internal/shared/testutil"
)

// fixture writes the three expedition inputs into a temp dir and returns a
// config pointing at them.
func fixture(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()

	cfg := config.Default()
	cfg.Inputs.ArtifactsFile = testutil.WriteWorkbook(t, dir, testutil.ChamberSheet, testutil.ChamberRows())
	cfg.Inputs.NotesFile = testutil.WriteFile(t, dir, "locations.tsv", "Location\tGrid\nNorth wall\tB4\nAltar\tC2\n")
	cfg.Inputs.JournalFile = testutil.WriteFile(t, dir, "journal.txt",
		"05/21/1920: reached the temple.\nFound AZMAR-001 near the altar on 05/22/1920.\nAZMAR-12 is a smudge.\n")
	return cfg
}

func runForTest(t *testing.T, cfg *config.Config) (string, int, *testutil.LogCapture) {
	t.Helper()
	var out bytes.Buffer
	logger, capture := testutil.NewTestLogger(t)
	code := run(context.Background(), cfg, &out, noop.NewTracerProvider().Tracer("test"), logger)
	return out.String(), code, capture
}

func TestRun_AllInputs(t *testing.T) {
	out, code, logs := runForTest(t, fixture(t))

	assert.Equal(t, 0, code)
	assert.Equal(t, 0, logs.Count(slog.LevelError))
	testutil.AssertLogged(t, logs, slog.LevelDebug, "Artifact sheet loaded")
	testutil.AssertLogged(t, logs, slog.LevelDebug, "Location notes loaded")
	assert.Contains(t, out, "--- Loading Artifact Data from ")
	assert.Contains(t, out, "Jade mask")
	assert.Contains(t, out, "RangeIndex: 3 entries, 0 to 2")
	assert.Contains(t, out, "--- Loading Location Notes from ")
	assert.Contains(t, out, "North wall")
	assert.Contains(t, out, "--- Processing Journal from ")
	assert.Contains(t, out, `Found dates: ["05/21/1920", "05/22/1920"]`)
	assert.Contains(t, out, `Found codes: ["AZMAR-001"]`)
	assert.NotContains(t, out, "Error:")
}

func TestRun_MissingInputsAreSkipped(t *testing.T) {
	cfg := fixture(t)
	missing := filepath.Join(t.TempDir(), "artifacts.xlsx")
	cfg.Inputs.ArtifactsFile = missing

	out, code, logs := runForTest(t, cfg)

	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Error: File not found at "+missing)
	rec := testutil.AssertLogged(t, logs, slog.LevelWarn, "Input file not found")
	assert.Equal(t, "load-artifacts", rec.Attrs["step"])
	// Later steps still run
	assert.Contains(t, out, "North wall")
	assert.Contains(t, out, `Found codes: ["AZMAR-001"]`)
}

func TestRun_AllMissing(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Inputs.ArtifactsFile = filepath.Join(dir, "a.xlsx")
	cfg.Inputs.NotesFile = filepath.Join(dir, "b.tsv")
	cfg.Inputs.JournalFile = filepath.Join(dir, "c.txt")

	out, code, _ := runForTest(t, cfg)

	assert.Equal(t, 0, code)
	assert.Equal(t, 3, strings.Count(out, "Error: File not found at "))
}

func TestRun_FormatErrorFailsRun(t *testing.T) {
	cfg := fixture(t)
	cfg.Inputs.ArtifactSheet = "Burial Chamber"

	out, code, logs := runForTest(t, cfg)

	assert.Equal(t, 1, code)
	rec := testutil.AssertLogged(t, logs, slog.LevelError, "Step failed")
	assert.Equal(t, "FORMAT", rec.Attrs["error_type"])
	assert.Equal(t, "expedition", rec.Attrs["component"])
	assert.Contains(t, out, `Error: [FORMAT] sheet "Burial Chamber" not found`)
	assert.Contains(t, out, "North wall")
	assert.Contains(t, out, "Found dates:")
}

func TestRun_PreviewRows(t *testing.T) {
	cfg := fixture(t)
	cfg.Report.PreviewRows = 1

	out, code, _ := runForTest(t, cfg)

	assert.Equal(t, 0, code)
	assert.Contains(t, out, "First 1 rows:")
	assert.Contains(t, out, "Jade mask")
	assert.NotContains(t, out, "Clay pot")
	assert.NotContains(t, out, "Altar")
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
		check   func(*testing.T, *config.Config)
	}{
		{
			name: "no flags keeps config",
			args: nil,
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, config.Default(), cfg)
			},
		},
		{
			name: "overrides",
			args: []string{"-artifacts", "a.xlsx", "-notes", "n.tsv", "-journal", "j.txt", "-rows", "0"},
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "a.xlsx", cfg.Inputs.ArtifactsFile)
				assert.Equal(t, "n.tsv", cfg.Inputs.NotesFile)
				assert.Equal(t, "j.txt", cfg.Inputs.JournalFile)
				assert.Equal(t, 0, cfg.Report.PreviewRows)
			},
		},
		{
			name: "version",
			args: []string{"-version"},
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, config.Default(), cfg)
			},
		},
		{
			name: "rows equal to the default still overrides config",
			args: []string{"-rows", "5"},
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, 5, cfg.Report.PreviewRows)
			},
		},
		{
			name: "negative rows reaches validation",
			args: []string{"-rows", "-3"},
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, -3, cfg.Report.PreviewRows)
				err := cfg.Validate()
				require.Error(t, err)
				assert.True(t, apperrors.IsConfig(err))
				assert.Contains(t, err.Error(), "PreviewRows")
			},
		},
		{
			name:    "unknown flag",
			args:    []string{"-verbose"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := parseFlags(tt.args, io.Discard)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			cfg := config.Default()
			opts.apply(cfg)
			tt.check(t, cfg)
		})
	}
}

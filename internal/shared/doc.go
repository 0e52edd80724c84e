// Package shared holds helpers used by more than one package.
//
// The testutil subpackage writes input fixtures (artifact workbooks, notes and
// journal files) and captures slog output so tests can assert on what the
// loaders and the expedition command logged:
//
//	logger, capture := testutil.NewTestLogger(t)
//	path := testutil.WriteWorkbook(t, t.TempDir(), testutil.ChamberSheet, testutil.ChamberRows())
//	testutil.AssertLogged(t, capture, slog.LevelWarn, "Input file not found")
package shared

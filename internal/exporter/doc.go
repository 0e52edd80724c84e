// Package exporter renders loaded tables and extracted tokens as the
// human-readable report printed by the expedition command.
//
// A Printer writes, per input, a section banner, a preview of the first rows,
// a column/type summary and any token lists:
//
//	p := exporter.NewPrinter(os.Stdout)
//	p.Section("Loading Artifact Data from %s", path)
//	p.Head(table, 5)
//	p.Info(table)
//	p.Tokens("Found dates", dates)
package exporter

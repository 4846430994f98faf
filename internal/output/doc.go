// Package output formats audit reports for display or machine consumption.
//
// Four formats are supported:
//   - text: colored, human-readable terminal card (default)
//   - json: full structured JSON report
//   - markdown: exportable report with timestamp header, score lines,
//     bulleted issues and recommendations
//   - yaml: full report as YAML
//
// A failed analysis renders through the same writers as a successful one;
// the degraded result is structurally identical, so no writer branches on
// failure.
//
// Use [GetWriter] to obtain a [Writer] for a given format string, or
// [WriteReport] to handle destination selection (file path or stdout).
package output

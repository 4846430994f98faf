package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/cwray/audex/internal/analysis"
)

// TextWriter outputs a human-readable audit card for the terminal.
type TextWriter struct{}

func (t *TextWriter) Write(w io.Writer, report *analysis.Report) error {
	ew := &errWriter{w: w}
	res := report.Result

	ew.printf("Audex Code Audit: %s (%s)\n", report.Filename, report.Language)
	ew.printf("Provider: %s | Model: %s", report.Provider, report.Model)
	if report.Cached {
		ew.printf(" | cached")
	}
	ew.println("")
	ew.println(strings.Repeat("─", 60))

	scoreColor := colorForScore(res.OverallScore)
	ew.printf("Overall Score: %s\n", scoreColor.Sprintf("%.1f/10", res.OverallScore))
	ew.printf("  Quality:     %2d/10\n", res.Scores.Quality)
	ew.printf("  Security:    %2d/10\n", res.Scores.Security)
	ew.printf("  Performance: %2d/10\n", res.Scores.Performance)
	ew.println(strings.Repeat("─", 60))

	if len(res.Issues) == 0 {
		ew.println("\nNo issues found. Looks good!")
	} else {
		ew.printf("\nIssues (%d):\n", len(res.Issues))
		for _, sev := range []analysis.Severity{
			analysis.SeverityCritical,
			analysis.SeverityHigh,
			analysis.SeverityMedium,
			analysis.SeverityLow,
		} {
			for _, issue := range res.Issues {
				if issue.Severity != sev {
					continue
				}
				ew.printf("\n  %s %s [%s]\n",
					severityColor(sev).Sprintf("[%s]", strings.ToUpper(string(sev))),
					issue.Type, lineLabel(issue.Line))
				for _, line := range wrapText(issue.Description, 70) {
					ew.printf("    %s\n", line)
				}
				if issue.Code != nil && *issue.Code != "" {
					ew.printf("    > %s\n", strings.ReplaceAll(*issue.Code, "\n", "\n    > "))
				}
			}
		}
	}

	if len(res.Recommendations) > 0 {
		ew.println("\nRecommendations:")
		for i, rec := range res.Recommendations {
			ew.printf("  %d. %s\n", i+1, rec)
		}
	}

	ew.printf("\nSummary: %s\n", res.Summary)
	ew.println(strings.Repeat("─", 60))
	ew.printf("Completed in %dms (LLM: %dms)\n", report.Timing.TotalMs, report.Timing.LLMMs)

	return ew.err
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}

// colorForScore maps an overall score to a terminal color band.
func colorForScore(score float64) *color.Color {
	switch {
	case score >= 8:
		return color.New(color.FgGreen, color.Bold)
	case score >= 6:
		return color.New(color.FgCyan, color.Bold)
	case score >= 4:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgRed, color.Bold)
	}
}

func severityColor(s analysis.Severity) *color.Color {
	switch s {
	case analysis.SeverityCritical:
		return color.New(color.FgRed, color.Bold)
	case analysis.SeverityHigh:
		return color.New(color.FgRed)
	case analysis.SeverityMedium:
		return color.New(color.FgYellow)
	case analysis.SeverityLow:
		return color.New(color.FgGreen)
	default:
		return color.New(color.FgWhite)
	}
}

func lineLabel(line *int) string {
	if line == nil {
		return "line N/A"
	}
	return fmt.Sprintf("line %d", *line)
}

func wrapText(text string, width int) []string {
	if len(text) <= width {
		return []string{text}
	}
	var lines []string
	words := strings.Fields(text)
	var current strings.Builder
	for _, word := range words {
		if current.Len()+len(word)+1 > width && current.Len() > 0 {
			lines = append(lines, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteString(" ")
		}
		current.WriteString(word)
	}
	if current.Len() > 0 {
		lines = append(lines, current.String())
	}
	return lines
}

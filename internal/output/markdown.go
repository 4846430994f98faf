package output

import (
	"fmt"
	"io"

	"github.com/cwray/audex/internal/analysis"
)

// MarkdownWriter outputs the exportable audit report: a header with
// timestamp and overall score, score lines, bulleted issues, and bulleted
// recommendations.
type MarkdownWriter struct{}

func (m *MarkdownWriter) Write(w io.Writer, report *analysis.Report) error {
	res := report.Result

	fmt.Fprintf(w, "# AI Code Audit Report\n\n")
	fmt.Fprintf(w, "**Generated:** %s\n", report.Timestamp.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "**File:** %s\n", report.Filename)
	fmt.Fprintf(w, "**Overall Score:** %.1f/10\n\n", res.OverallScore)

	fmt.Fprintf(w, "## Scores\n")
	fmt.Fprintf(w, "- Quality: %d/10\n", res.Scores.Quality)
	fmt.Fprintf(w, "- Security: %d/10\n", res.Scores.Security)
	fmt.Fprintf(w, "- Performance: %d/10\n\n", res.Scores.Performance)

	fmt.Fprintf(w, "## Issues Found\n")
	if len(res.Issues) == 0 {
		fmt.Fprintf(w, "No issues found.\n")
	}
	for _, issue := range res.Issues {
		if issue.Line != nil {
			fmt.Fprintf(w, "- %s (%s, line %d): %s\n", issue.Type, issue.Severity, *issue.Line, issue.Description)
		} else {
			fmt.Fprintf(w, "- %s (%s): %s\n", issue.Type, issue.Severity, issue.Description)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "## Recommendations\n")
	if len(res.Recommendations) == 0 {
		fmt.Fprintf(w, "No specific recommendations at this time.\n")
	}
	for _, rec := range res.Recommendations {
		fmt.Fprintf(w, "- %s\n", rec)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "## Summary\n%s\n", res.Summary)

	return nil
}

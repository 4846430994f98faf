package analysis

import "time"

// AspectType classifies an issue by audit axis.
type AspectType string

const (
	AspectQuality     AspectType = "Quality"
	AspectSecurity    AspectType = "Security"
	AspectPerformance AspectType = "Performance"
)

// ParseAspect returns the matching aspect, or "" if the value is not one of
// the three audit axes.
func ParseAspect(s string) AspectType {
	switch AspectType(s) {
	case AspectQuality, AspectSecurity, AspectPerformance:
		return AspectType(s)
	}
	return ""
}

// Severity represents the severity level of an issue.
type Severity string

const (
	SeverityLow      Severity = "Low"
	SeverityMedium   Severity = "Medium"
	SeverityHigh     Severity = "High"
	SeverityCritical Severity = "Critical"
)

// SeverityRank returns a numeric rank for sorting (higher = more severe).
func SeverityRank(s Severity) int {
	switch s {
	case SeverityCritical:
		return 4
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	default:
		return 0
	}
}

// ParseSeverity returns the matching severity, or "" if the value is not one
// of the four levels.
func ParseSeverity(s string) Severity {
	switch Severity(s) {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return Severity(s)
	}
	return ""
}

// Issue represents a single problem reported by the model.
type Issue struct {
	Type        AspectType `json:"type"`
	Severity    Severity   `json:"severity"`
	Description string     `json:"description"`
	Line        *int       `json:"line"`
	Code        *string    `json:"code"`
}

// Scores holds the per-axis integer scores. The struct has exactly the three
// audit axes so unknown keys from the model are rejected at the boundary
// rather than silently coexisting in an open map.
type Scores struct {
	Quality     int `json:"Quality"`
	Security    int `json:"Security"`
	Performance int `json:"Performance"`
}

// Result is the normalized audit outcome. It is constructed once per analysis
// (successful or failed) and never mutated afterwards.
type Result struct {
	OverallScore    float64  `json:"overallScore"`
	Scores          Scores   `json:"scores"`
	Issues          []Issue  `json:"issues"`
	Recommendations []string `json:"recommendations"`
	Summary         string   `json:"summary"`
}

// Timing contains performance metrics for a single run.
type Timing struct {
	LLMMs   int64 `json:"llmMs"`
	TotalMs int64 `json:"totalMs"`
}

// Report wraps a Result with run metadata. This is the top-level structure
// handed to the output writers.
type Report struct {
	Tool       string    `json:"tool"`
	Version    string    `json:"version"`
	RunID      string    `json:"runId"`
	Filename   string    `json:"filename"`
	Language   string    `json:"language"`
	Provider   string    `json:"provider"`
	Model      string    `json:"model"`
	Timestamp  time.Time `json:"timestamp"`
	Result     Result    `json:"result"`
	Timing     Timing    `json:"timing"`
	TokensUsed int       `json:"tokensUsed,omitempty"`
	Cached     bool      `json:"cached,omitempty"`
	Failed     bool      `json:"failed,omitempty"`
}

// Request describes a single audit: the code to analyze, where it came from,
// and which aspects to request. Immutable once constructed.
type Request struct {
	Code     string
	Filename string
	Language string

	IncludeStyle       bool
	IncludeSecurity    bool
	IncludePerformance bool
}

// NewRequest builds a Request, deriving the language from the filename
// extension when lang is empty.
func NewRequest(code, filename, lang string, style, security, performance bool) Request {
	if lang == "" {
		lang = DetectLanguage(filename)
	}
	return Request{
		Code:               code,
		Filename:           filename,
		Language:           lang,
		IncludeStyle:       style,
		IncludeSecurity:    security,
		IncludePerformance: performance,
	}
}

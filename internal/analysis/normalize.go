package analysis

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/cwray/audex/internal/config"
)

const (
	defaultScore       = 5
	defaultSummary     = "Analysis completed"
	defaultDescription = "No description provided"
)

// Normalize converts an untrusted model reply into a well-formed Result.
// It never fails: malformed JSON and schema mismatches degrade into
// ErrorResult or per-field defaults.
func Normalize(replyText string, w config.Weights) Result {
	content := stripFences(strings.TrimSpace(replyText))

	var raw map[string]any
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return ErrorResult(fmt.Sprintf("Failed to parse AI response: %v", err))
	}

	res := Result{
		Scores:          normalizeScores(raw["scores"]),
		Issues:          normalizeIssues(raw["issues"]),
		Recommendations: normalizeRecommendations(raw["recommendations"]),
		Summary:         defaultSummary,
	}

	if s, ok := raw["summary"].(string); ok && s != "" {
		res.Summary = s
	}

	// Overall-score reconciliation: a missing, non-numeric, zero, or
	// exactly-default overall score is recomputed from the weighted axis
	// scores. A model that genuinely means 5 is indistinguishable from one
	// that omitted the field; the recompute-on-5 behavior is intentional.
	overall, numeric := toFloat(raw["overall_score"])
	if !numeric || overall == 0 || overall == defaultScore {
		overall = float64(res.Scores.Quality)*w.Quality +
			float64(res.Scores.Security)*w.Security +
			float64(res.Scores.Performance)*w.Performance
	}
	res.OverallScore = roundOne(clampFloat(overall, 0, 10))

	return res
}

// ErrorResult produces the uniform degraded result used for every failure
// mode: transport errors, malformed JSON, schema mismatches. Callers never
// branch on "did normalization fail" -- they always receive a structurally
// valid Result.
func ErrorResult(message string) Result {
	return Result{
		OverallScore: 0,
		Scores:       Scores{},
		Issues: []Issue{
			{
				Type:        AspectQuality,
				Severity:    SeverityHigh,
				Description: "Analysis failed: " + message,
			},
		},
		Recommendations: []string{
			"Please check your code syntax and try again",
			"Ensure your API key is valid and has sufficient credits",
		},
		Summary: "Analysis failed due to: " + message,
	}
}

// normalizeScores builds the fixed three-axis score set. Each axis defaults
// to 5; a numeric raw value overwrites it clamped to [1,10]. Non-numeric
// values are ignored and unknown keys are dropped.
func normalizeScores(v any) Scores {
	s := Scores{
		Quality:     defaultScore,
		Security:    defaultScore,
		Performance: defaultScore,
	}
	m, ok := v.(map[string]any)
	if !ok {
		return s
	}
	if f, ok := toFloat(m["Quality"]); ok {
		s.Quality = clampInt(int(math.Round(f)), 1, 10)
	}
	if f, ok := toFloat(m["Security"]); ok {
		s.Security = clampInt(int(math.Round(f)), 1, 10)
	}
	if f, ok := toFloat(m["Performance"]); ok {
		s.Performance = clampInt(int(math.Round(f)), 1, 10)
	}
	return s
}

// normalizeIssues reshapes raw issue entries into typed Issues. Entries that
// are not JSON objects are dropped entirely; order is preserved.
func normalizeIssues(v any) []Issue {
	entries, ok := v.([]any)
	if !ok {
		return []Issue{}
	}
	issues := make([]Issue, 0, len(entries))
	for _, e := range entries {
		m, ok := e.(map[string]any)
		if !ok {
			continue
		}
		issue := Issue{
			Type:        AspectQuality,
			Severity:    SeverityMedium,
			Description: defaultDescription,
		}
		if t, ok := m["type"].(string); ok {
			if parsed := ParseAspect(t); parsed != "" {
				issue.Type = parsed
			}
		}
		if sev, ok := m["severity"].(string); ok {
			if parsed := ParseSeverity(sev); parsed != "" {
				issue.Severity = parsed
			}
		}
		if d, present := m["description"]; present && d != nil {
			if s, ok := d.(string); ok {
				issue.Description = s
			} else {
				issue.Description = fmt.Sprintf("%v", d)
			}
		}
		if f, ok := toFloat(m["line"]); ok {
			n := int(f)
			issue.Line = &n
		}
		if c, ok := m["code"].(string); ok {
			issue.Code = &c
		}
		issues = append(issues, issue)
	}
	return issues
}

// normalizeRecommendations accepts either a single string (wrapped into a
// one-element list) or a list whose string elements are kept in order.
func normalizeRecommendations(v any) []string {
	switch val := v.(type) {
	case string:
		if val == "" {
			return []string{}
		}
		return []string{val}
	case []any:
		recs := make([]string, 0, len(val))
		for _, r := range val {
			if s, ok := r.(string); ok && s != "" {
				recs = append(recs, s)
			}
		}
		return recs
	default:
		return []string{}
	}
}

// stripFences removes a surrounding markdown code fence. Models routinely
// wrap JSON replies in ```json blocks despite instructions not to.
func stripFences(content string) string {
	if !strings.HasPrefix(content, "```") {
		return content
	}
	lines := strings.Split(content, "\n")
	if len(lines) < 2 {
		return content
	}
	end := len(lines)
	if strings.TrimSpace(lines[end-1]) == "```" {
		end--
	}
	return strings.Join(lines[1:end], "\n")
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func roundOne(v float64) float64 {
	return math.Round(v*10) / 10
}

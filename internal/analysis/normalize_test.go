package analysis

import (
	"strings"
	"testing"

	"github.com/cwray/audex/internal/config"
)

var testWeights = config.Weights{Quality: 0.4, Security: 0.35, Performance: 0.25}

func TestNormalizeWellFormedReply(t *testing.T) {
	reply := `{
		"overall_score": 7.5,
		"scores": {"Quality": 8, "Security": 7, "Performance": 6},
		"issues": [
			{"type": "Security", "severity": "High", "description": "SQL injection in query builder", "line": 42, "code": "db.exec(q)"}
		],
		"recommendations": ["Use parameterized queries"],
		"summary": "One serious security issue."
	}`

	res := Normalize(reply, testWeights)

	if res.OverallScore != 7.5 {
		t.Errorf("OverallScore = %v, want 7.5", res.OverallScore)
	}
	if res.Scores.Quality != 8 || res.Scores.Security != 7 || res.Scores.Performance != 6 {
		t.Errorf("Scores = %+v, want {8 7 6}", res.Scores)
	}
	if len(res.Issues) != 1 {
		t.Fatalf("got %d issues, want 1", len(res.Issues))
	}
	issue := res.Issues[0]
	if issue.Type != AspectSecurity {
		t.Errorf("issue type = %q, want Security", issue.Type)
	}
	if issue.Severity != SeverityHigh {
		t.Errorf("issue severity = %q, want High", issue.Severity)
	}
	if issue.Line == nil || *issue.Line != 42 {
		t.Errorf("issue line = %v, want 42", issue.Line)
	}
	if issue.Code == nil || *issue.Code != "db.exec(q)" {
		t.Errorf("issue code = %v, want db.exec(q)", issue.Code)
	}
	if res.Summary != "One serious security issue." {
		t.Errorf("summary = %q", res.Summary)
	}
}

func TestNormalizeRecomputesWeightedOverall(t *testing.T) {
	// scores {8,6,9} with weights {0.4,0.35,0.25}:
	// 8*0.4 + 6*0.35 + 9*0.25 = 3.2 + 2.1 + 2.25 = 7.55 -> 7.6
	tests := []struct {
		name  string
		reply string
		want  float64
	}{
		{
			name:  "absent",
			reply: `{"scores": {"Quality": 8, "Security": 6, "Performance": 9}}`,
			want:  7.6,
		},
		{
			name:  "zero",
			reply: `{"overall_score": 0, "scores": {"Quality": 8, "Security": 6, "Performance": 9}}`,
			want:  7.6,
		},
		{
			name:  "non-numeric",
			reply: `{"overall_score": "great", "scores": {"Quality": 8, "Security": 6, "Performance": 9}}`,
			want:  7.6,
		},
		{
			// A reported 5 is indistinguishable from the default and is
			// recomputed, even when the model genuinely meant 5.
			name:  "exactly default",
			reply: `{"overall_score": 5, "scores": {"Quality": 8, "Security": 6, "Performance": 9}}`,
			want:  7.6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Normalize(tt.reply, testWeights)
			if res.OverallScore != tt.want {
				t.Errorf("OverallScore = %v, want %v", res.OverallScore, tt.want)
			}
		})
	}
}

func TestNormalizePassesThroughNonDefaultOverall(t *testing.T) {
	reply := `{"overall_score": 3.2, "scores": {"Quality": 9, "Security": 9, "Performance": 9}}`
	res := Normalize(reply, testWeights)
	if res.OverallScore != 3.2 {
		t.Errorf("OverallScore = %v, want 3.2 (no recompute)", res.OverallScore)
	}
}

func TestNormalizeScoreDefaults(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  Scores
	}{
		{
			name:  "missing scores map",
			reply: `{"summary": "ok"}`,
			want:  Scores{Quality: 5, Security: 5, Performance: 5},
		},
		{
			name:  "scores not a map",
			reply: `{"scores": [1, 2, 3]}`,
			want:  Scores{Quality: 5, Security: 5, Performance: 5},
		},
		{
			name:  "partial scores",
			reply: `{"scores": {"Security": 9}}`,
			want:  Scores{Quality: 5, Security: 9, Performance: 5},
		},
		{
			name:  "non-numeric axis ignored",
			reply: `{"scores": {"Quality": "high", "Security": 7}}`,
			want:  Scores{Quality: 5, Security: 7, Performance: 5},
		},
		{
			name:  "out of range clamped",
			reply: `{"scores": {"Quality": 15, "Security": -3, "Performance": 0}}`,
			want:  Scores{Quality: 10, Security: 1, Performance: 1},
		},
		{
			name:  "fractional rounded",
			reply: `{"scores": {"Quality": 7.6, "Security": 7.4, "Performance": 7.5}}`,
			want:  Scores{Quality: 8, Security: 7, Performance: 8},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Normalize(tt.reply, testWeights)
			if res.Scores != tt.want {
				t.Errorf("Scores = %+v, want %+v", res.Scores, tt.want)
			}
		})
	}
}

func TestNormalizeIssues(t *testing.T) {
	reply := `{
		"issues": [
			"just a string",
			42,
			{"type": "Unknown", "severity": "Blocker"},
			{"type": "Performance", "severity": "Critical", "description": "O(n^2) loop", "line": 7},
			{"description": 123}
		]
	}`

	res := Normalize(reply, testWeights)
	if len(res.Issues) != 3 {
		t.Fatalf("got %d issues, want 3 (non-object entries dropped)", len(res.Issues))
	}

	// Unknown type and severity fall back to defaults.
	if res.Issues[0].Type != AspectQuality {
		t.Errorf("issue 0 type = %q, want Quality", res.Issues[0].Type)
	}
	if res.Issues[0].Severity != SeverityMedium {
		t.Errorf("issue 0 severity = %q, want Medium", res.Issues[0].Severity)
	}
	if res.Issues[0].Description != "No description provided" {
		t.Errorf("issue 0 description = %q", res.Issues[0].Description)
	}

	if res.Issues[1].Type != AspectPerformance || res.Issues[1].Severity != SeverityCritical {
		t.Errorf("issue 1 = %+v", res.Issues[1])
	}
	if res.Issues[1].Line == nil || *res.Issues[1].Line != 7 {
		t.Errorf("issue 1 line = %v, want 7", res.Issues[1].Line)
	}

	// Non-string descriptions are stringified, not dropped.
	if res.Issues[2].Description != "123" {
		t.Errorf("issue 2 description = %q, want 123", res.Issues[2].Description)
	}
}

func TestNormalizeIssuesNotAList(t *testing.T) {
	res := Normalize(`{"issues": "none found"}`, testWeights)
	if res.Issues == nil {
		t.Fatal("Issues is nil, want empty slice")
	}
	if len(res.Issues) != 0 {
		t.Errorf("got %d issues, want 0", len(res.Issues))
	}
}

func TestNormalizeRecommendations(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  []string
	}{
		{
			name:  "bare string wrapped",
			reply: `{"recommendations": "Add input validation"}`,
			want:  []string{"Add input validation"},
		},
		{
			name:  "list keeps strings",
			reply: `{"recommendations": ["One", 2, "Three", null]}`,
			want:  []string{"One", "Three"},
		},
		{
			name:  "absent",
			reply: `{}`,
			want:  []string{},
		},
		{
			name:  "wrong type",
			reply: `{"recommendations": {"a": 1}}`,
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Normalize(tt.reply, testWeights)
			if len(res.Recommendations) != len(tt.want) {
				t.Fatalf("got %d recommendations, want %d", len(res.Recommendations), len(tt.want))
			}
			for i := range tt.want {
				if res.Recommendations[i] != tt.want[i] {
					t.Errorf("recommendation %d = %q, want %q", i, res.Recommendations[i], tt.want[i])
				}
			}
		})
	}
}

func TestNormalizeSummaryDefault(t *testing.T) {
	res := Normalize(`{"summary": ""}`, testWeights)
	if res.Summary != "Analysis completed" {
		t.Errorf("summary = %q, want default", res.Summary)
	}
	res = Normalize(`{"summary": 42}`, testWeights)
	if res.Summary != "Analysis completed" {
		t.Errorf("summary = %q, want default for non-string", res.Summary)
	}
}

func TestNormalizeMalformedJSON(t *testing.T) {
	res := Normalize("not json at all", testWeights)

	if res.OverallScore != 0 {
		t.Errorf("OverallScore = %v, want 0", res.OverallScore)
	}
	if res.Scores != (Scores{}) {
		t.Errorf("Scores = %+v, want all zero", res.Scores)
	}
	if len(res.Issues) != 1 {
		t.Fatalf("got %d issues, want 1", len(res.Issues))
	}
	if res.Issues[0].Type != AspectQuality || res.Issues[0].Severity != SeverityHigh {
		t.Errorf("error issue = %+v", res.Issues[0])
	}
	if !strings.HasPrefix(res.Issues[0].Description, "Analysis failed: Failed to parse AI response:") {
		t.Errorf("description = %q", res.Issues[0].Description)
	}
	if len(res.Recommendations) != 2 {
		t.Errorf("got %d recommendations, want 2", len(res.Recommendations))
	}
	if !strings.HasPrefix(res.Summary, "Analysis failed due to:") {
		t.Errorf("summary = %q", res.Summary)
	}
}

func TestNormalizeStripsCodeFences(t *testing.T) {
	tests := []struct {
		name  string
		reply string
	}{
		{
			name:  "json fence",
			reply: "```json\n{\"overall_score\": 7, \"scores\": {\"Quality\": 7, \"Security\": 7, \"Performance\": 7}}\n```",
		},
		{
			name:  "bare fence",
			reply: "```\n{\"overall_score\": 7, \"scores\": {\"Quality\": 7, \"Security\": 7, \"Performance\": 7}}\n```",
		},
		{
			name:  "surrounding whitespace",
			reply: "\n\n```json\n{\"overall_score\": 7, \"scores\": {\"Quality\": 7, \"Security\": 7, \"Performance\": 7}}\n```\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Normalize(tt.reply, testWeights)
			if res.OverallScore != 7 {
				t.Errorf("OverallScore = %v, want 7 (fence not stripped?)", res.OverallScore)
			}
		})
	}
}

func TestNormalizeOverallClamped(t *testing.T) {
	res := Normalize(`{"overall_score": 42, "scores": {"Quality": 10, "Security": 10, "Performance": 10}}`, testWeights)
	if res.OverallScore != 10 {
		t.Errorf("OverallScore = %v, want 10", res.OverallScore)
	}
	res = Normalize(`{"overall_score": -3, "scores": {"Quality": 1, "Security": 1, "Performance": 1}}`, testWeights)
	if res.OverallScore != 0 {
		t.Errorf("OverallScore = %v, want 0", res.OverallScore)
	}
}

func TestErrorResult(t *testing.T) {
	res := ErrorResult("connection refused")

	if res.OverallScore != 0 {
		t.Errorf("OverallScore = %v, want 0", res.OverallScore)
	}
	if len(res.Issues) != 1 {
		t.Fatalf("got %d issues, want 1", len(res.Issues))
	}
	if res.Issues[0].Description != "Analysis failed: connection refused" {
		t.Errorf("description = %q", res.Issues[0].Description)
	}
	if res.Summary != "Analysis failed due to: connection refused" {
		t.Errorf("summary = %q", res.Summary)
	}
	if len(res.Recommendations) != 2 {
		t.Errorf("got %d recommendations, want 2", len(res.Recommendations))
	}
}

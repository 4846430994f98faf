package analysis

import "testing"

func TestParseAspect(t *testing.T) {
	tests := []struct {
		in   string
		want AspectType
	}{
		{"Quality", AspectQuality},
		{"Security", AspectSecurity},
		{"Performance", AspectPerformance},
		{"quality", ""},
		{"Style", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := ParseAspect(tt.in); got != tt.want {
			t.Errorf("ParseAspect(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		in   string
		want Severity
	}{
		{"Low", SeverityLow},
		{"Medium", SeverityMedium},
		{"High", SeverityHigh},
		{"Critical", SeverityCritical},
		{"critical", ""},
		{"Blocker", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := ParseSeverity(tt.in); got != tt.want {
			t.Errorf("ParseSeverity(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSeverityRankOrdering(t *testing.T) {
	if !(SeverityRank(SeverityCritical) > SeverityRank(SeverityHigh) &&
		SeverityRank(SeverityHigh) > SeverityRank(SeverityMedium) &&
		SeverityRank(SeverityMedium) > SeverityRank(SeverityLow) &&
		SeverityRank(SeverityLow) > SeverityRank("")) {
		t.Error("severity ranks are not strictly ordered")
	}
}

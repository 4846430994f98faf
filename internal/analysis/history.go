package analysis

import (
	"math"
	"time"
)

// History accumulates completed reports for the lifetime of a session.
// Reports are appended once, read-only, by the single logical thread of
// execution; there are no concurrent writers and no locking.
type History struct {
	entries []*Report
}

// NewHistory returns an empty history.
func NewHistory() *History {
	return &History{}
}

// Add appends a completed report.
func (h *History) Add(r *Report) {
	h.entries = append(h.entries, r)
}

// Len returns the number of recorded analyses.
func (h *History) Len() int {
	return len(h.entries)
}

// Entries returns the recorded reports in insertion order.
func (h *History) Entries() []*Report {
	return h.entries
}

// Stats summarizes the session history.
type Stats struct {
	TotalAnalyses int       `json:"totalAnalyses"`
	AverageScore  float64   `json:"averageScore"`
	Latest        time.Time `json:"latestAnalysis"`
}

// Stats computes the session statistics. The average overall score is
// rounded to one decimal.
func (h *History) Stats() Stats {
	if len(h.entries) == 0 {
		return Stats{}
	}
	var sum float64
	for _, r := range h.entries {
		sum = sum + r.Result.OverallScore
	}
	avg := sum / float64(len(h.entries))
	return Stats{
		TotalAnalyses: len(h.entries),
		AverageScore:  math.Round(avg*10) / 10,
		Latest:        h.entries[len(h.entries)-1].Timestamp,
	}
}

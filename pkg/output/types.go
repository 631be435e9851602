// Package output provides formatting for level count reports.
package output

import (
	"time"

	"github.com/ccollicutt/logtally/pkg/analyzer"
)

// Report is the complete analysis output.
type Report struct {
	// Summary provides aggregate statistics.
	Summary Summary `json:"summary"`

	// Counts has one row per level, sorted by level ascending.
	Counts []analyzer.LevelCount `json:"counts"`

	// Filter is the level filter outcome, if a level was requested.
	Filter *analyzer.FilterResult `json:"filter,omitempty"`

	// Metadata provides context about the analysis.
	Metadata Metadata `json:"metadata"`
}

// Summary provides aggregate statistics.
type Summary struct {
	// Records is the number of parsed records.
	Records int `json:"records"`

	// Levels is the number of distinct stored level strings.
	Levels int `json:"levels"`

	// SkippedLines is the number of non-blank lines that did not parse.
	SkippedLines int `json:"skipped_lines"`
}

// Metadata provides context about the analysis run.
type Metadata struct {
	// Source is the log file that was analyzed.
	Source string `json:"source"`

	// AnalyzedAt is when the analysis was performed.
	AnalyzedAt time.Time `json:"analyzed_at"`

	// Duration is how long the analysis took.
	Duration time.Duration `json:"duration"`
}

// NewReport creates a Report from analysis results.
func NewReport(result *analyzer.AnalysisResult) *Report {
	return &Report{
		Summary: Summary{
			Records:      result.Total,
			Levels:       len(result.Counts),
			SkippedLines: result.Skipped,
		},
		Counts: result.Counts.Sorted(),
		Filter: result.Filter,
		Metadata: Metadata{
			Source:     result.Metadata.Source,
			AnalyzedAt: result.Metadata.EndTime,
			Duration:   result.Metadata.EndTime.Sub(result.Metadata.StartTime),
		},
	}
}

// Empty returns true if the log produced no records.
func (r *Report) Empty() bool {
	return r.Summary.Records == 0
}

// HasMatches returns true if a level filter was requested and matched records.
func (r *Report) HasMatches() bool {
	return r.Filter != nil && len(r.Filter.Records) > 0
}

// Package analyzer counts and filters parsed log records by severity level.
package analyzer

import (
	"time"

	"github.com/ccollicutt/logtally/pkg/parser"
)

// LevelCount is one row of a per-level tally.
type LevelCount struct {
	Level string `json:"level"`
	Count int    `json:"count"`
}

// AnalysisResult contains the complete analysis output for one collection.
type AnalysisResult struct {
	// Counts maps each stored level string to its number of records.
	Counts Counts

	// Total is the number of records analyzed.
	Total int

	// Skipped is the number of non-blank lines the parser rejected.
	Skipped int

	// Filter holds the level filter outcome; nil when no level was requested.
	Filter *FilterResult

	// Metadata provides context about the analysis.
	Metadata AnalysisMetadata
}

// Empty reports whether the analyzed collection had no records.
func (r *AnalysisResult) Empty() bool {
	return r.Total == 0
}

// FilterResult is the outcome of filtering by a requested level.
type FilterResult struct {
	// Level is the requested level, uppercased.
	Level string `json:"level"`

	// Known reports whether Level appears among the counted levels.
	Known bool `json:"known"`

	// Records are the matching records in file order.
	Records []parser.Record `json:"records"`
}

// AnalysisMetadata provides context about the analysis run.
type AnalysisMetadata struct {
	// Source is the log file the records came from.
	Source string

	// StartTime is when analysis began.
	StartTime time.Time

	// EndTime is when analysis completed.
	EndTime time.Time
}

package analyzer

import (
	"context"
	"strings"
	"time"

	"github.com/ccollicutt/logtally/pkg/parser"
)

// Analyzer tallies a record collection and optionally filters it by level.
type Analyzer struct {
	// Options
	level     string
	hasFilter bool
}

// AnalyzerOption configures analyzer behavior.
type AnalyzerOption func(*Analyzer)

// WithLevelFilter selects records of the given level (case-insensitive).
// An empty level disables filtering.
func WithLevelFilter(level string) AnalyzerOption {
	return func(a *Analyzer) {
		a.level = strings.ToUpper(level)
		a.hasFilter = level != ""
	}
}

// NewAnalyzer creates a new analyzer.
func NewAnalyzer(opts ...AnalyzerOption) *Analyzer {
	a := &Analyzer{}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze counts the collection by level and applies the level filter, if any.
func (a *Analyzer) Analyze(ctx context.Context, coll *parser.Collection) (*AnalysisResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	records := coll.Records()
	counts := CountByLevel(records)

	result := &AnalysisResult{
		Counts:  counts,
		Total:   len(records),
		Skipped: coll.Skipped(),
		Metadata: AnalysisMetadata{
			Source:    coll.Source(),
			StartTime: start,
		},
	}

	if a.hasFilter {
		filter := &FilterResult{
			Level:   a.level,
			Known:   counts.Has(a.level),
			Records: []parser.Record{},
		}
		if filter.Known {
			filter.Records = FilterByLevel(records, a.level)
		}
		result.Filter = filter
	}

	result.Metadata.EndTime = time.Now()
	return result, nil
}

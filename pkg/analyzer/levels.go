package analyzer

import (
	"sort"
	"strings"

	"github.com/ccollicutt/logtally/pkg/parser"
)

// Counts maps a level string, exactly as stored, to its number of records.
type Counts map[string]int

// CountByLevel groups records by their stored level. Matching is exact and
// case-sensitive, so "INFO" and "info" are counted separately.
func CountByLevel(records []parser.Record) Counts {
	counts := make(Counts)
	for _, r := range records {
		counts[r.Level]++
	}
	return counts
}

// FilterByLevel returns the records whose level equals level, ignoring case.
// Order is preserved.
func FilterByLevel(records []parser.Record, level string) []parser.Record {
	want := strings.ToUpper(level)
	matched := make([]parser.Record, 0)
	for _, r := range records {
		if strings.ToUpper(r.Level) == want {
			matched = append(matched, r)
		}
	}
	return matched
}

// KnownLevels returns the distinct levels in counts, sorted ascending.
func KnownLevels(counts Counts) []string {
	levels := make([]string, 0, len(counts))
	for level := range counts {
		levels = append(levels, level)
	}
	sort.Strings(levels)
	return levels
}

// Has reports whether level is among the counted levels. Both sides are
// uppercased: counted keys keep their original case but filter queries do not.
func (c Counts) Has(level string) bool {
	want := strings.ToUpper(level)
	for known := range c {
		if strings.ToUpper(known) == want {
			return true
		}
	}
	return false
}

// Total returns the sum of all counts.
func (c Counts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// Sorted returns one row per level, ordered by level string ascending.
func (c Counts) Sorted() []LevelCount {
	rows := make([]LevelCount, 0, len(c))
	for _, level := range KnownLevels(c) {
		rows = append(rows, LevelCount{Level: level, Count: c[level]})
	}
	return rows
}

// Package numbers extracts real numbers from free text and totals them.
package numbers

import (
	"iter"
	"strconv"
	"strings"
)

// Generator produces the numbers found in a piece of text.
type Generator func(text string) iter.Seq[float64]

// Numbers yields every whitespace-delimited token of text that parses as a
// float, in order. Tokens that do not parse are skipped.
func Numbers(text string) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for _, word := range strings.Fields(text) {
			n, err := strconv.ParseFloat(word, 64)
			if err != nil {
				continue
			}
			if !yield(n) {
				return
			}
		}
	}
}

// SumProfit totals every number gen finds in text.
func SumProfit(text string, gen Generator) float64 {
	var total float64
	for n := range gen(text) {
		total += n
	}
	return total
}

// Format renders a number the way it is reported, always keeping a
// fractional part for whole values ("0.0", "12.0").
func Format(n float64) string {
	s := strconv.FormatFloat(n, 'f', -1, 64)
	if !strings.ContainsAny(s, ".naI") {
		s += ".0"
	}
	return s
}

package numbers

import (
	"iter"
	"math"
	"slices"
	"testing"
)

func TestNumbers(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []float64
	}{
		{"empty", "", nil},
		{"no numbers", "this text has no numeric values.", nil},
		{"mixed", "base 1000.01 plus 27.45 and 324.00 dollars.", []float64{1000.01, 27.45, 324}},
		{"integers and signs", "-5 +3 7", []float64{-5, 3, 7}},
		{"exponent", "1e3 2.5E-1", []float64{1000, 0.25}},
		{"punctuation attached", "12, 13. 14", []float64{13, 14}},
		{"tabs and newlines", "1\t2\n3", []float64{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slices.Collect(Numbers(tt.text))
			if !slices.Equal(got, tt.want) {
				t.Errorf("Numbers(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestNumbers_StopsEarly(t *testing.T) {
	var seen []float64
	for n := range Numbers("1 2 3 4") {
		seen = append(seen, n)
		if n == 2 {
			break
		}
	}
	if !slices.Equal(seen, []float64{1, 2}) {
		t.Errorf("expected iteration to stop after 2, got %v", seen)
	}
}

func TestSumProfit(t *testing.T) {
	text := "Total income consists of 1000.01 as base income, plus extra receipts of 27.45 and 324.00 dollars."
	got := SumProfit(text, Numbers)
	if math.Abs(got-1351.46) > 1e-9 {
		t.Errorf("SumProfit() = %v, want 1351.46", got)
	}

	if got := SumProfit("nothing to see here", Numbers); got != 0 {
		t.Errorf("SumProfit() with no numbers = %v, want 0", got)
	}
}

func TestSumProfit_CustomGenerator(t *testing.T) {
	ones := func(text string) iter.Seq[float64] {
		return func(yield func(float64) bool) {
			for range len(text) {
				if !yield(1) {
					return
				}
			}
		}
	}
	if got := SumProfit("abcd", ones); got != 4 {
		t.Errorf("SumProfit() = %v, want 4", got)
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.0"},
		{12, "12.0"},
		{1351.46, "1351.46"},
		{-2.5, "-2.5"},
		{math.Inf(1), "+Inf"},
		{math.NaN(), "NaN"},
	}
	for _, tt := range tests {
		if got := Format(tt.in); got != tt.want {
			t.Errorf("Format(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

package output

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/ccollicutt/logtally/pkg/analyzer"
	"github.com/ccollicutt/logtally/pkg/style"
)

// Messages printed by the text formatter.
const (
	EmptyWarning = "Warning: log file is empty or contains no valid records."
	tableRule    = 20
	listingRule  = 50
)

// TextFormatter formats reports as a human-readable table.
type TextFormatter struct {
	opts    FormatOptions
	palette style.Palette
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts, palette: style.New(opts.Color)}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if report.Empty() {
		_, err := fmt.Fprintln(w, f.palette.Render(style.Warning, EmptyWarning))
		return err
	}

	f.formatCounts(report.Counts, w)

	if report.Filter != nil {
		f.formatFilter(report.Filter, w)
	}
	return nil
}

func (f *TextFormatter) formatCounts(rows []analyzer.LevelCount, w io.Writer) {
	fmt.Fprintln(w, f.palette.Render(style.Header, fmt.Sprintf("%-8s | %s", "Level", "Count")))
	fmt.Fprintln(w, strings.Repeat("-", tableRule))
	for _, row := range rows {
		// Pad before styling so escape codes do not break the column.
		level := f.palette.Render(style.Level(row.Level), fmt.Sprintf("%-8s", row.Level))
		fmt.Fprintf(w, "%s | %d\n", level, row.Count)
	}
}

func (f *TextFormatter) formatFilter(filter *analyzer.FilterResult, w io.Writer) {
	fmt.Fprintln(w)

	if !filter.Known {
		fmt.Fprintln(w, f.palette.Render(style.Warning,
			fmt.Sprintf("Warning: level '%s' not found in logs.", filter.Level)))
		return
	}

	if len(filter.Records) == 0 {
		fmt.Fprintln(w, f.palette.Render(style.Warning,
			fmt.Sprintf("No records with level %s.", filter.Level)))
		return
	}

	fmt.Fprintln(w, f.palette.Render(style.Header, fmt.Sprintf("Records with level %s:", filter.Level)))
	fmt.Fprintln(w, strings.Repeat("-", listingRule))
	for _, r := range filter.Records {
		fmt.Fprintf(w, "%s %s - %s\n", r.Date, r.Time, r.Message)
	}
}

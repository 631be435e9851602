// Package export writes parsed log records to external file formats.
package export

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ccollicutt/logtally/pkg/parser"
)

// Format identifies the output format.
type Format string

const (
	FormatParquet Format = "parquet"
	FormatCSV     Format = "csv"
	FormatJSONL   Format = "jsonl"
)

// Writer writes records to an output format.
type Writer interface {
	Write(parser.Record) error
	Close() error
}

// ParseFormat validates a format name, ignoring case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "parquet":
		return FormatParquet, nil
	case "csv":
		return FormatCSV, nil
	case "jsonl":
		return FormatJSONL, nil
	default:
		return "", fmt.Errorf("unsupported format %q: expected parquet, csv, or jsonl", s)
	}
}

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".parquet":
		return FormatParquet, nil
	case ".csv":
		return FormatCSV, nil
	case ".jsonl", ".ndjson":
		return FormatJSONL, nil
	default:
		return "", fmt.Errorf("cannot infer export format from %q", path)
	}
}

// Export writes records to dst in the given format and returns how many
// records were written. The destination file is replaced if it exists.
func Export(records []parser.Record, dst string, format Format) (int, error) {
	w, err := NewWriter(dst, format)
	if err != nil {
		return 0, fmt.Errorf("create writer: %w", err)
	}

	written := 0
	for _, r := range records {
		if err := w.Write(r); err != nil {
			_ = w.Close()
			return written, fmt.Errorf("write record %d: %w", written+1, err)
		}
		written++
	}

	if err := w.Close(); err != nil {
		return written, fmt.Errorf("close writer: %w", err)
	}
	return written, nil
}

// NewWriter creates a Writer for path in the given format.
func NewWriter(path string, format Format) (Writer, error) {
	switch format {
	case FormatParquet:
		return newParquetWriter(path)
	case FormatCSV:
		return newCSVWriter(path)
	case FormatJSONL:
		return newJSONLWriter(path)
	default:
		return nil, fmt.Errorf("unsupported format: %q", format)
	}
}

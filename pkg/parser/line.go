package parser

import "strings"

// ParseLine turns one raw line into a Record.
// The second return value is false when the line is blank or has fewer than
// three whitespace-separated tokens. Malformed content is never an error.
func ParseLine(line string) (Record, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Record{}, false
	}

	parts := strings.Fields(line)
	if len(parts) < minTokens {
		return Record{}, false
	}

	return Record{
		Date:    parts[0],
		Time:    parts[1],
		Level:   parts[2],
		Message: strings.Join(parts[minTokens:], " "),
	}, true
}

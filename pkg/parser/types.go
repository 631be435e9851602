// Package parser provides log line parsing and log file loading.
package parser

// Record is a single structured log entry.
type Record struct {
	// Date is the first token of the line, taken verbatim.
	Date string `json:"date"`

	// Time is the second token of the line, taken verbatim.
	Time string `json:"time"`

	// Level is the severity label, case preserved as read.
	Level string `json:"level"`

	// Message is every token after the level joined by single spaces.
	// It is empty when the line has exactly three tokens.
	Message string `json:"message"`
}

// minTokens is the number of tokens a line needs to produce a Record.
const minTokens = 3

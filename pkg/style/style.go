// Package style renders terminal text in a small fixed set of tones.
package style

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Tone is the intent of a piece of output.
type Tone int

const (
	Plain Tone = iota
	Success
	Info
	Warning
	Error
	Help
	Header
)

var tones = map[Tone]lipgloss.Style{
	Success: lipgloss.NewStyle().Foreground(lipgloss.Color("34")),             // green
	Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("33")),             // blue
	Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("220")),            // yellow
	Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true), // red bold
	Help:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),             // cyan
	Header:  lipgloss.NewStyle().Bold(true),
}

// Palette renders text with or without color.
type Palette struct {
	color bool
}

// New returns a palette. When color is false, Render returns text unchanged.
func New(color bool) Palette {
	return Palette{color: color}
}

// Enabled reports whether the palette emits color.
func (p Palette) Enabled() bool {
	return p.color
}

// Render styles s for tone t.
func (p Palette) Render(t Tone, s string) string {
	if !p.color {
		return s
	}
	st, ok := tones[t]
	if !ok {
		return s
	}
	return st.Render(s)
}

// Level picks a tone for a log level label, ignoring case.
func Level(level string) Tone {
	switch strings.ToUpper(level) {
	case "ERROR", "FATAL", "CRITICAL":
		return Error
	case "WARN", "WARNING":
		return Warning
	case "DEBUG", "TRACE":
		return Help
	default:
		return Info
	}
}

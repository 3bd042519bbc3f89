// Package pprint provides styled terminal output for the primitive CLI.
package pprint

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// ─────────────────────────────────────────────────────────────────────────────
// Colour palette
// ─────────────────────────────────────────────────────────────────────────────

var (
	ColorError = lipgloss.Color("#FC8181") // Red
	ColorText  = lipgloss.Color("#E2E8F0") // Off-white
)

// ─────────────────────────────────────────────────────────────────────────────
// Styles
// ─────────────────────────────────────────────────────────────────────────────

var (
	StyleError = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	StyleText  = lipgloss.NewStyle().Foreground(ColorText)
)

// Error writes a red ✗ error line to w.
func Error(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, StyleError.Render("✗ ")+StyleText.Render(fmt.Sprintf(format, args...)))
}

package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

// styled reports whether w is a terminal. stdout and stderr can each be
// redirected independently, so the check is per writer, not global.
func styled(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

func render(w io.Writer, style lipgloss.Style, format string, args ...any) string {
	msg := fmt.Sprintf(format, args...)
	if !styled(w) {
		return msg
	}
	return style.Render(msg)
}

// Info prints an informational message.
func Info(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintln(w, render(w, infoStyle, format, args...))
}

// Warn prints a warning message.
func Warn(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintln(w, render(w, warnStyle, format, args...))
}

// Error prints an error message.
func Error(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintln(w, render(w, errorStyle, format, args...))
}

// Success prints a success message.
func Success(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintln(w, render(w, successStyle, format, args...))
}

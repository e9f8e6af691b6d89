// Package ui provides terminal output helpers: aligned tables and styled
// status messages. Styling degrades to plain text when the destination
// stream is not a TTY.
package ui

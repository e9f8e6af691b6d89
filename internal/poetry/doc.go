// Package poetry wraps the Poetry CLI commands used by monoranger. Every
// operation takes an explicit working directory so callers can redirect
// where the underlying tool acts. The tool's own stdout/stderr stream
// through unchanged and its exit codes are preserved.
package poetry

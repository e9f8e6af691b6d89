// Package lock reads the shared poetry.lock file for reporting purposes.
// The file is only ever written by the underlying tool; this package never
// modifies it and does not interpret the solved dependency graph beyond
// the pinned package list.
package lock

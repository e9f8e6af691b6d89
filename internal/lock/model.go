package lock

import "strings"

// File represents the subset of poetry.lock this tool reads.
type File struct {
	Packages []Package `toml:"package"`
	Metadata Metadata  `toml:"metadata"`
}

// Package records one pinned package.
type Package struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
}

// Metadata carries the solver's manifest fingerprint.
type Metadata struct {
	ContentHash string `toml:"content-hash"`
}

// Package looks up a pinned package by name (case-insensitive, as package
// names are normalized by the underlying tool).
func (f *File) Package(name string) *Package {
	for i := range f.Packages {
		if strings.EqualFold(f.Packages[i].Name, name) {
			return &f.Packages[i]
		}
	}
	return nil
}

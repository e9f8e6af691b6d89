package rewrite

import (
	"fmt"
	"os"

	"github.com/ag14774/monoranger/internal/pyproject"
)

// Scope holds a manifest whose on-disk content has been temporarily replaced
// by a rewritten copy. Restore must run on every exit path; the caller is
// expected to defer it immediately after Begin succeeds.
type Scope struct {
	path     string
	original []byte
	restored bool
}

// Begin backs up the manifest file and writes the rewritten dependency set
// in its place. On any error the original file is left untouched.
func Begin(m *pyproject.Manifest, deps []pyproject.Dependency) (*Scope, error) {
	original, err := os.ReadFile(m.Path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest before rewrite: %w", err)
	}

	data, err := m.WithDependencies(deps)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(m.Path, data, 0644); err != nil {
		return nil, fmt.Errorf("writing rewritten manifest: %w", err)
	}

	return &Scope{path: m.Path, original: original}, nil
}

// Restore writes the pre-rewrite manifest content back. It is idempotent.
func (s *Scope) Restore() error {
	if s.restored {
		return nil
	}
	if err := os.WriteFile(s.path, s.original, 0644); err != nil {
		return fmt.Errorf("restoring manifest: %w", err)
	}
	s.restored = true
	return nil
}

package rewrite

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ag14774/monoranger/internal/pyproject"
)

// SiblingManifestError indicates a path dependency inside the monorepo whose
// own manifest cannot provide a name and version to pin against.
type SiblingManifestError struct {
	Name string
	Dir  string
	Err  error
}

func (e *SiblingManifestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot pin path dependency %q: %v", e.Name, e.Err)
	}
	return fmt.Sprintf("cannot pin path dependency %q: no version declared in %s", e.Name, e.Dir)
}

func (e *SiblingManifestError) Unwrap() error { return e.Err }

// Pin returns the project's dependency list with path dependencies that
// resolve inside root replaced by version constraints under the given rule.
// Non-path entries and path entries pointing outside root pass through
// untouched. The second return value reports whether anything was replaced.
func Pin(m *pyproject.Manifest, root string, rule Rule) ([]pyproject.Dependency, bool, error) {
	projectDir := filepath.Dir(m.Path)

	out := make([]pyproject.Dependency, 0, len(m.Dependencies))
	changed := false
	for _, dep := range m.Dependencies {
		if dep.Kind != pyproject.KindPath {
			out = append(out, dep)
			continue
		}
		target := filepath.Clean(filepath.Join(projectDir, dep.Path))
		if !within(root, target) {
			out = append(out, dep)
			continue
		}

		pinned, err := pinDependency(dep, target, rule)
		if err != nil {
			return nil, false, err
		}
		out = append(out, pinned)
		changed = true
	}
	return out, changed, nil
}

func pinDependency(dep pyproject.Dependency, dir string, rule Rule) (pyproject.Dependency, error) {
	sibling, err := pyproject.Load(dir)
	if err != nil {
		return pyproject.Dependency{}, &SiblingManifestError{Name: dep.Name, Dir: dir, Err: err}
	}
	if sibling.Version == "" {
		return pyproject.Dependency{}, &SiblingManifestError{Name: dep.Name, Dir: dir}
	}

	constraint, err := rule.Constraint(sibling.Version)
	if err != nil {
		return pyproject.Dependency{}, &SiblingManifestError{Name: dep.Name, Dir: dir, Err: err}
	}

	return pyproject.Dependency{
		Name:     sibling.Name,
		Kind:     pyproject.KindVersion,
		Version:  constraint,
		Optional: dep.Optional,
		Extras:   dep.Extras,
	}, nil
}

// within reports whether target is root or a descendant of it.
func within(root, target string) bool {
	rel, err := filepath.Rel(root, target)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

package pyproject

import (
	"fmt"
	"regexp"
	"strings"
)

// Filename is the manifest file name expected in every project directory.
const Filename = "pyproject.toml"

// Kind classifies how a dependency constraint is expressed.
type Kind string

const (
	// KindVersion is a semantic version constraint (plain string or table with "version").
	KindVersion Kind = "version"
	// KindPath points at another project by filesystem location.
	KindPath Kind = "path"
	// KindGit references a git repository.
	KindGit Kind = "git"
	// KindURL references a remote archive.
	KindURL Kind = "url"
	// KindOther covers constraint shapes this tool does not interpret
	// (e.g. multiple-constraint arrays). They are carried through untouched.
	KindOther Kind = "other"
)

// Dependency is one entry of a project's dependency table.
type Dependency struct {
	Name     string
	Kind     Kind
	Version  string // constraint string, when Kind == KindVersion
	Path     string // relative path, when Kind == KindPath
	Git      string
	URL      string
	Develop  bool
	Optional bool
	Extras   []string

	// raw holds the original TOML value for entries this tool does not
	// rewrite, so serialization reproduces them exactly.
	raw any
}

// Manifest is the typed view of a single pyproject.toml.
type Manifest struct {
	// Path is the absolute location of the manifest file.
	Path string
	// Name and Version come from [tool.poetry], falling back to [project].
	Name    string
	Version string
	// Dependencies lists the main dependency group in deterministic
	// (name-sorted) order.
	Dependencies []Dependency
	// Plugin is the raw [tool.monoranger] table, nil when absent.
	Plugin map[string]any

	raw map[string]any
}

var nameSeparators = regexp.MustCompile(`[-_.]+`)

// NormalizeName canonicalizes a package name per PEP 503: lowercase, with
// runs of "-", "_" and "." collapsed into a single "-".
func NormalizeName(name string) string {
	return nameSeparators.ReplaceAllString(strings.ToLower(name), "-")
}

// Dependency returns the named dependency entry. Lookup uses normalized
// names, so "Typing_Extensions" finds a "typing-extensions" entry.
func (m *Manifest) Dependency(name string) (Dependency, error) {
	want := NormalizeName(name)
	for _, d := range m.Dependencies {
		if NormalizeName(d.Name) == want {
			return d, nil
		}
	}
	return Dependency{}, &UnknownDependencyError{Project: m.Name, Name: name}
}

// HasDependency reports whether the project declares the named dependency.
func (m *Manifest) HasDependency(name string) bool {
	_, err := m.Dependency(name)
	return err == nil
}

// UnknownDependencyError indicates a dependency name not declared by a project.
type UnknownDependencyError struct {
	Project string
	Name    string
}

func (e *UnknownDependencyError) Error() string {
	return fmt.Sprintf("project %q does not declare dependency %q", e.Project, e.Name)
}

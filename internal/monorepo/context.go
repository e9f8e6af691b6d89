package monorepo

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/ag14774/monoranger/internal/config"
	"github.com/ag14774/monoranger/internal/pyproject"
)

// LockFilename is the shared lock file name at the monorepo root.
const LockFilename = "poetry.lock"

// Context holds the resolved paths for one command invocation.
type Context struct {
	// ProjectDir is the directory of the project the command was invoked in.
	ProjectDir string
	// ProjectManifest is the invoking project's parsed manifest.
	ProjectManifest *pyproject.Manifest
	// Root is the absolute monorepo root directory.
	Root string
	// RootManifestPath locates the root manifest.
	RootManifestPath string
	// RootLockPath locates the shared lock file (which may not exist yet).
	RootLockPath string
}

// RootNotFoundError indicates the configured monorepo root does not contain
// a manifest.
type RootNotFoundError struct {
	Dir string
}

func (e *RootNotFoundError) Error() string {
	return fmt.Sprintf("monorepo root %s does not contain a %s", e.Dir, pyproject.Filename)
}

// Resolve derives the monorepo context from a project manifest and the
// plugin configuration. It is idempotent and performs no writes.
func Resolve(m *pyproject.Manifest, cfg config.Config) (*Context, error) {
	projectDir := filepath.Dir(m.Path)

	root := filepath.Join(projectDir, cfg.MonorepoRoot)
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving monorepo root: %w", err)
	}

	if !pyproject.Exists(root) {
		return nil, &RootNotFoundError{Dir: root}
	}

	return &Context{
		ProjectDir:       projectDir,
		ProjectManifest:  m,
		Root:             root,
		RootManifestPath: filepath.Join(root, pyproject.Filename),
		RootLockPath:     filepath.Join(root, LockFilename),
	}, nil
}

// Project is a member project discovered under the monorepo root.
type Project struct {
	Dir      string
	Manifest *pyproject.Manifest
	// Err records a manifest that exists but could not be parsed.
	Err error
}

// Projects enumerates the immediate subdirectories of the root that contain
// a manifest, plus the root project itself, sorted by directory.
func (c *Context) Projects() ([]Project, error) {
	entries, err := os.ReadDir(c.Root)
	if err != nil {
		return nil, fmt.Errorf("listing monorepo root: %w", err)
	}

	projects := []Project{loadProject(c.Root)}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		dir := filepath.Join(c.Root, e.Name())
		if !pyproject.Exists(dir) {
			continue
		}
		projects = append(projects, loadProject(dir))
	}

	sort.Slice(projects, func(i, j int) bool { return projects[i].Dir < projects[j].Dir })
	return projects, nil
}

func loadProject(dir string) Project {
	m, err := pyproject.Load(dir)
	return Project{Dir: dir, Manifest: m, Err: err}
}

package monorepo

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/ag14774/monoranger/internal/config"
	"github.com/ag14774/monoranger/internal/pyproject"
	"github.com/ag14774/monoranger/internal/testutil"
)

func resolveFrom(t *testing.T, dir string) (*Context, error) {
	t.Helper()
	m, err := pyproject.Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := config.Load(m)
	if err != nil {
		t.Fatal(err)
	}
	return Resolve(m, cfg)
}

func TestResolve(t *testing.T) {
	root := testutil.Monorepo(t, "^")

	ctx, err := resolveFrom(t, filepath.Join(root, "libb"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ctx.Root != root {
		t.Errorf("root = %q, want %q", ctx.Root, root)
	}
	if ctx.RootManifestPath != filepath.Join(root, "pyproject.toml") {
		t.Errorf("root manifest = %q", ctx.RootManifestPath)
	}
	if ctx.RootLockPath != filepath.Join(root, "poetry.lock") {
		t.Errorf("root lock = %q", ctx.RootLockPath)
	}
	if ctx.ProjectDir != filepath.Join(root, "libb") {
		t.Errorf("project dir = %q", ctx.ProjectDir)
	}
}

// Root resolution is directory-invariant: every project inside the monorepo
// resolves to the same root.
func TestResolve_directoryInvariant(t *testing.T) {
	root := testutil.Monorepo(t, "^")

	fromA, err := resolveFrom(t, filepath.Join(root, "liba"))
	if err != nil {
		t.Fatal(err)
	}
	fromB, err := resolveFrom(t, filepath.Join(root, "libb"))
	if err != nil {
		t.Fatal(err)
	}
	if fromA.Root != fromB.Root {
		t.Errorf("roots differ: %q vs %q", fromA.Root, fromB.Root)
	}
}

func TestResolve_idempotent(t *testing.T) {
	root := testutil.Monorepo(t, "^")

	first, err := resolveFrom(t, filepath.Join(root, "libb"))
	if err != nil {
		t.Fatal(err)
	}
	second, err := resolveFrom(t, filepath.Join(root, "libb"))
	if err != nil {
		t.Fatal(err)
	}
	if first.Root != second.Root || first.RootLockPath != second.RootLockPath {
		t.Error("repeated resolution must yield the same context")
	}
}

func TestResolve_rootNotFound(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "standalone")
	testutil.WriteProject(t, dir, testutil.ProjectTOML("standalone", "1.0.0", nil, testutil.PluginTOML("../", "^")))

	_, err := resolveFrom(t, dir)
	var notFound *RootNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("error = %v, want RootNotFoundError", err)
	}
}

func TestProjects(t *testing.T) {
	root := testutil.Monorepo(t, "^")

	ctx, err := resolveFrom(t, filepath.Join(root, "libb"))
	if err != nil {
		t.Fatal(err)
	}
	projects, err := ctx.Projects()
	if err != nil {
		t.Fatal(err)
	}
	if len(projects) != 3 {
		t.Fatalf("got %d projects, want 3 (root, liba, libb)", len(projects))
	}

	names := make(map[string]bool)
	for _, p := range projects {
		if p.Err != nil {
			t.Errorf("project %s: %v", p.Dir, p.Err)
			continue
		}
		names[p.Manifest.Name] = true
	}
	for _, want := range []string{"monorepo-root", "liba", "libb"} {
		if !names[want] {
			t.Errorf("project %q not discovered", want)
		}
	}
}

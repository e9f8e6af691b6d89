package main

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/ag14774/monoranger/internal/pyproject"
	"github.com/ag14774/monoranger/internal/testutil"
)

func TestRunRemove_prunesSharedEnv(t *testing.T) {
	log := testutil.FakePoetry(t)
	root := testutil.Monorepo(t, "^")
	projectDir := filepath.Join(root, "liba")

	_, _, err := execMonoranger(t, "-C", projectDir, "remove", "requests")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	calls := testutil.Invocations(t, log)
	if len(calls) != 3 {
		t.Fatalf("got %d invocations, want 3", len(calls))
	}
	assertCall(t, calls[0], projectDir, "remove", "--lock", "requests")
	assertCall(t, calls[1], root, "lock")
	// Sync install prunes packages no longer referenced by any project;
	// packages still used by siblings survive because the root manifest
	// still reaches them.
	assertCall(t, calls[2], root, "install", "--sync")
}

// Only the leading package names are validated; flags and flag values after
// them pass through to the underlying command.
func TestRunRemove_forwardsExtraFlags(t *testing.T) {
	log := testutil.FakePoetry(t)
	root := testutil.Monorepo(t, "^")
	projectDir := filepath.Join(root, "liba")

	_, _, err := execMonoranger(t, "-C", projectDir, "remove", "requests", "--group", "main")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	calls := testutil.Invocations(t, log)
	if len(calls) != 3 {
		t.Fatalf("got %d invocations, want 3", len(calls))
	}
	assertCall(t, calls[0], projectDir, "remove", "--lock", "requests", "--group", "main")
}

// Declared-dependency validation matches the underlying tool's name
// normalization instead of requiring the exact manifest spelling.
func TestRunRemove_normalizedName(t *testing.T) {
	log := testutil.FakePoetry(t)
	root := testutil.Monorepo(t, "^")
	projectDir := filepath.Join(root, "liba")

	_, _, err := execMonoranger(t, "-C", projectDir, "remove", "Requests")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	calls := testutil.Invocations(t, log)
	if len(calls) != 3 {
		t.Fatalf("got %d invocations, want 3", len(calls))
	}
	assertCall(t, calls[0], projectDir, "remove", "--lock", "Requests")
}

func TestRunRemove_unknownDependency(t *testing.T) {
	log := testutil.FakePoetry(t)
	root := testutil.Monorepo(t, "^")

	_, _, err := execMonoranger(t, "-C", filepath.Join(root, "liba"), "remove", "nosuchpkg")
	var unknownErr *pyproject.UnknownDependencyError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("error = %v, want UnknownDependencyError", err)
	}

	if calls := testutil.Invocations(t, log); len(calls) != 0 {
		t.Errorf("no mutation may happen for an undeclared dependency, got %v", calls)
	}
}

func TestRunRemove_disabledPassesThrough(t *testing.T) {
	log := testutil.FakePoetry(t)
	dir := standaloneProject(t)

	_, _, err := execMonoranger(t, "-C", dir, "remove", "requests")
	if err != nil {
		t.Fatal(err)
	}

	calls := testutil.Invocations(t, log)
	if len(calls) != 1 {
		t.Fatalf("got %d invocations, want 1", len(calls))
	}
	assertCall(t, calls[0], dir, "remove", "requests")
}

package main

import (
	"path/filepath"
	"testing"

	"github.com/ag14774/monoranger/internal/testutil"
)

func TestRunRun_redirectsToSharedEnv(t *testing.T) {
	log := testutil.FakePoetry(t)
	root := testutil.Monorepo(t, "^")
	projectDir := filepath.Join(root, "libb")

	t.Setenv("VIRTUAL_ENV", "")
	t.Setenv("CONDA_PREFIX", "")

	_, _, err := execMonoranger(t, "-C", projectDir, "run", "--", "python", "-V")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	calls := testutil.Invocations(t, log)
	if len(calls) != 1 {
		t.Fatalf("got %d invocations, want 1", len(calls))
	}
	assertCall(t, calls[0], projectDir, "--project", root, "run", "--", "python", "-V")
}

// Arguments from the first non-flag token on belong to the command being
// run; the separator is only needed when that command starts with a flag.
func TestRunRun_commandWithFlagsNeedsNoSeparator(t *testing.T) {
	log := testutil.FakePoetry(t)
	root := testutil.Monorepo(t, "^")
	projectDir := filepath.Join(root, "liba")

	t.Setenv("VIRTUAL_ENV", "")
	t.Setenv("CONDA_PREFIX", "")

	_, _, err := execMonoranger(t, "-C", projectDir, "run", "pytest", "-x", "--tb=short")
	if err != nil {
		t.Fatal(err)
	}

	calls := testutil.Invocations(t, log)
	if len(calls) != 1 {
		t.Fatalf("got %d invocations, want 1", len(calls))
	}
	assertCall(t, calls[0], projectDir, "--project", root, "run", "--", "pytest", "-x", "--tb=short")
}

func TestRunRun_activatedEnvWins(t *testing.T) {
	log := testutil.FakePoetry(t)
	root := testutil.Monorepo(t, "^")
	projectDir := filepath.Join(root, "libb")

	t.Setenv("VIRTUAL_ENV", "/opt/venvs/other")

	_, _, err := execMonoranger(t, "-C", projectDir, "run", "python", "-V")
	if err != nil {
		t.Fatal(err)
	}

	calls := testutil.Invocations(t, log)
	if len(calls) != 1 {
		t.Fatalf("got %d invocations, want 1", len(calls))
	}
	assertCall(t, calls[0], projectDir, "run", "--", "python", "-V")
}

func TestRunRun_condaBaseDoesNotCount(t *testing.T) {
	log := testutil.FakePoetry(t)
	root := testutil.Monorepo(t, "^")
	projectDir := filepath.Join(root, "libb")

	t.Setenv("VIRTUAL_ENV", "")
	t.Setenv("CONDA_PREFIX", "/opt/conda")
	t.Setenv("CONDA_DEFAULT_ENV", "base")

	_, _, err := execMonoranger(t, "-C", projectDir, "run", "python", "-V")
	if err != nil {
		t.Fatal(err)
	}

	calls := testutil.Invocations(t, log)
	if len(calls) != 1 {
		t.Fatalf("got %d invocations, want 1", len(calls))
	}
	assertCall(t, calls[0], projectDir, "--project", root, "run", "--", "python", "-V")
}

func TestRunRun_requiresCommand(t *testing.T) {
	log := testutil.FakePoetry(t)
	root := testutil.Monorepo(t, "^")

	_, _, err := execMonoranger(t, "-C", filepath.Join(root, "libb"), "run")
	if err == nil {
		t.Fatal("expected an error for a missing command")
	}
	if calls := testutil.Invocations(t, log); len(calls) != 0 {
		t.Errorf("got %d invocations, want 0", len(calls))
	}
}

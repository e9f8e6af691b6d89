package main

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/ag14774/monoranger/internal/testutil"
)

func TestRunAdd_threeSteps(t *testing.T) {
	log := testutil.FakePoetry(t)
	root := testutil.Monorepo(t, "^")
	projectDir := filepath.Join(root, "liba")

	_, _, err := execMonoranger(t, "-C", projectDir, "add", "httpx")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	calls := testutil.Invocations(t, log)
	if len(calls) != 3 {
		t.Fatalf("got %d invocations, want 3", len(calls))
	}
	// The manifest mutation targets the current project; lock and install
	// target the root.
	assertCall(t, calls[0], projectDir, "add", "--lock", "httpx")
	assertCall(t, calls[1], root, "lock")
	assertCall(t, calls[2], root, "install")
}

// Flags following the package specs belong to the underlying add command
// and are forwarded uninterpreted, no separator required.
func TestRunAdd_forwardsGroupFlags(t *testing.T) {
	log := testutil.FakePoetry(t)
	root := testutil.Monorepo(t, "^")
	projectDir := filepath.Join(root, "liba")

	_, _, err := execMonoranger(t, "-C", projectDir, "add", "httpx", "--group", "dev")
	if err != nil {
		t.Fatal(err)
	}

	calls := testutil.Invocations(t, log)
	if len(calls) != 3 {
		t.Fatalf("got %d invocations, want 3", len(calls))
	}
	assertCall(t, calls[0], projectDir, "add", "--lock", "httpx", "--group", "dev")
	assertCall(t, calls[1], root, "lock")
	assertCall(t, calls[2], root, "install")
}

func TestRunAdd_lockFailureKeepsManifestChange(t *testing.T) {
	log := testutil.FakePoetry(t)
	root := testutil.Monorepo(t, "^")
	projectDir := filepath.Join(root, "liba")
	t.Setenv("FAKE_POETRY_FAIL", "lock")

	_, stderr, err := execMonoranger(t, "-C", projectDir, "add", "httpx")
	if err == nil {
		t.Fatal("expected the root lock failure to propagate")
	}
	if !strings.Contains(stderr, "stale") {
		t.Errorf("stderr should warn about stale shared state, got:\n%s", stderr)
	}

	calls := testutil.Invocations(t, log)
	if len(calls) != 2 {
		t.Fatalf("got %d invocations, want 2 (add, then failing lock)", len(calls))
	}
	assertCall(t, calls[0], projectDir, "add", "--lock", "httpx")
	assertCall(t, calls[1], root, "lock")
}

func TestRunAdd_dryRunSkipsSharedState(t *testing.T) {
	log := testutil.FakePoetry(t)
	root := testutil.Monorepo(t, "^")
	projectDir := filepath.Join(root, "liba")

	_, _, err := execMonoranger(t, "-C", projectDir, "add", "--dry-run", "httpx")
	if err != nil {
		t.Fatal(err)
	}

	calls := testutil.Invocations(t, log)
	if len(calls) != 1 {
		t.Fatalf("got %d invocations, want 1", len(calls))
	}
	assertCall(t, calls[0], projectDir, "add", "--lock", "--dry-run", "httpx")
}

func TestRunAdd_disabledPassesThrough(t *testing.T) {
	log := testutil.FakePoetry(t)
	dir := standaloneProject(t)

	_, _, err := execMonoranger(t, "-C", dir, "add", "httpx")
	if err != nil {
		t.Fatal(err)
	}

	calls := testutil.Invocations(t, log)
	if len(calls) != 1 {
		t.Fatalf("got %d invocations, want 1", len(calls))
	}
	assertCall(t, calls[0], dir, "add", "httpx")
}

package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/ag14774/monoranger/internal/testutil"
)

// execMonoranger runs the CLI with the given arguments against a fresh
// command tree, returning captured stdout, stderr and the execution error.
func execMonoranger(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

// standaloneProject creates a project with the plugin disabled in its own
// directory, outside any monorepo.
func standaloneProject(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "solo")
	testutil.WriteProject(t, dir, testutil.ProjectTOML("solo", "1.0.0", map[string]string{
		"requests": `"^2.31"`,
	}, ""))
	return dir
}

func assertCall(t *testing.T, call testutil.Invocation, wantDir string, wantArgs ...string) {
	t.Helper()
	if call.Dir != testutil.Resolve(t, wantDir) {
		t.Errorf("invocation dir = %q, want %q", call.Dir, wantDir)
	}
	if len(call.Args) != len(wantArgs) {
		t.Fatalf("invocation args = %v, want %v", call.Args, wantArgs)
	}
	for i := range wantArgs {
		if call.Args[i] != wantArgs[i] {
			t.Fatalf("invocation args = %v, want %v", call.Args, wantArgs)
		}
	}
}

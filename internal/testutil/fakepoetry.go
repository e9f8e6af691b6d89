package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// manifestSnapshot is where the fake poetry copies the manifest it sees
// during build/export, so tests can assert on the rewritten content.
const manifestSnapshot = "seen-pyproject.toml"

// SeenManifest returns the manifest content the fake poetry observed during
// its last build or export invocation.
func SeenManifest(t *testing.T, logPath string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(filepath.Dir(logPath), manifestSnapshot))
	if err != nil {
		t.Fatalf("fake poetry recorded no manifest: %v", err)
	}
	return string(data)
}

// Invocation is one recorded call of the fake poetry binary.
type Invocation struct {
	Dir  string
	Args []string
}

// FakePoetry installs a stub poetry executable at the front of PATH and
// returns the path of its invocation log. The stub appends one line per
// call ("cwd\targv...") and exits 0, printing a fake env path for
// `env info --path`. Set FAKE_POETRY_FAIL to a space-separated list of
// subcommands that should exit 1 instead.
func FakePoetry(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	logPath := filepath.Join(dir, "invocations.log")

	script := `#!/bin/sh
{ printf '%s' "$PWD"; for a in "$@"; do printf '\t%s' "$a"; done; printf '\n'; } >> "` + logPath + `"
if [ "$1" = "env" ] && [ "$2" = "info" ]; then
  echo "$PWD/.venv"
fi
if [ "$1" = "build" ] || [ "$1" = "export" ]; then
  cp pyproject.toml "` + filepath.Join(dir, manifestSnapshot) + `" 2>/dev/null
fi
for f in $FAKE_POETRY_FAIL; do
  if [ "$1" = "$f" ]; then exit 1; fi
done
exit 0
`
	if err := os.WriteFile(filepath.Join(dir, "poetry"), []byte(script), 0755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
	return logPath
}

// Resolve normalizes a fixture path for comparison with recorded working
// directories (temp dirs may sit behind symlinks).
func Resolve(t *testing.T, path string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return path
	}
	return resolved
}

// Invocations parses the fake poetry log. A missing log means no calls.
func Invocations(t *testing.T, logPath string) []Invocation {
	t.Helper()
	data, err := os.ReadFile(logPath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatal(err)
	}

	var calls []Invocation
	for _, line := range strings.Split(strings.TrimRight(string(data), "\n"), "\n") {
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		dir, err := filepath.EvalSymlinks(fields[0])
		if err != nil {
			dir = fields[0]
		}
		calls = append(calls, Invocation{Dir: dir, Args: fields[1:]})
	}
	return calls
}

// Package testutil provides monorepo fixtures and a fake poetry binary for
// tests. The fake records every invocation (working directory plus argv) so
// tests can assert exactly where and how the underlying tool was called.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

// PluginTOML renders a [tool.monoranger] table.
func PluginTOML(root, rule string) string {
	var b strings.Builder
	b.WriteString("[tool.monoranger]\nenabled = true\n")
	if root != "" {
		fmt.Fprintf(&b, "monorepo-root = %q\n", root)
	}
	if rule != "" {
		fmt.Fprintf(&b, "version-rewrite-rule = %q\n", rule)
	}
	return b.String()
}

// ProjectTOML renders a minimal poetry-style pyproject.toml. Dependency
// values are raw TOML (e.g. `"^2.0"` or `{ path = "../liba", develop = true }`).
// extra is appended verbatim, typically a PluginTOML block.
func ProjectTOML(name, version string, deps map[string]string, extra string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[tool.poetry]\nname = %q\nversion = %q\ndescription = \"\"\nauthors = []\n\n", name, version)
	b.WriteString("[tool.poetry.dependencies]\npython = \"^3.11\"\n")

	names := make([]string, 0, len(deps))
	for n := range deps {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Fprintf(&b, "%s = %s\n", n, deps[n])
	}

	if extra != "" {
		b.WriteString("\n" + extra)
	}
	return b.String()
}

// WriteProject creates dir (if needed) and writes content as its pyproject.toml.
func WriteProject(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "pyproject.toml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

// Monorepo builds a two-project monorepo in a temp directory:
//
//	root/
//	  pyproject.toml   (declares liba and libb as path deps)
//	  liba/pyproject.toml  (version 0.3.1)
//	  libb/pyproject.toml  (depends on liba via path, plugin enabled)
//
// rule is the version-rewrite-rule configured on both subprojects.
// It returns the root directory.
func Monorepo(t *testing.T, rule string) string {
	t.Helper()
	root := t.TempDir()

	WriteProject(t, root, ProjectTOML("monorepo-root", "0.0.0", map[string]string{
		"liba": `{ path = "liba", develop = true }`,
		"libb": `{ path = "libb", develop = true }`,
	}, ""))
	WriteProject(t, filepath.Join(root, "liba"), ProjectTOML("liba", "0.3.1", map[string]string{
		"requests": `"^2.31"`,
	}, PluginTOML("../", rule)))
	WriteProject(t, filepath.Join(root, "libb"), ProjectTOML("libb", "1.2.0", map[string]string{
		"liba": `{ path = "../liba", develop = true }`,
	}, PluginTOML("../", rule)))

	return root
}

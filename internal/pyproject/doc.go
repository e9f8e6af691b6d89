// Package pyproject parses and serializes project manifests (pyproject.toml).
// It exposes a strongly-typed view of the dependency table and the plugin
// configuration sub-table while retaining the raw TOML tree, so a modified
// dependency set can be materialized back into a complete manifest.
package pyproject

package pyproject

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"
)

// Exists reports whether a manifest file is present in dir.
func Exists(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, Filename))
	return err == nil && !info.IsDir()
}

// Load reads and parses the manifest in the given project directory.
func Load(dir string) (*Manifest, error) {
	path := filepath.Join(dir, Filename)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	return Parse(data, path)
}

// Parse parses pyproject.toml content. path is recorded on the manifest so
// relative path dependencies can be resolved against it.
func Parse(data []byte, path string) (*Manifest, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing manifest TOML: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving manifest path: %w", err)
	}

	m := &Manifest{Path: abs, raw: raw}

	poetry := tableAt(raw, "tool", "poetry")
	project := tableAt(raw, "project")

	m.Name = stringAt(poetry, "name")
	if m.Name == "" {
		m.Name = stringAt(project, "name")
	}
	m.Version = stringAt(poetry, "version")
	if m.Version == "" {
		m.Version = stringAt(project, "version")
	}
	if m.Name == "" {
		return nil, fmt.Errorf("manifest %s: project name is required", path)
	}

	m.Plugin = tableAt(raw, "tool", "monoranger")
	m.Dependencies = parseDependencies(tableAt(poetry, "dependencies"))

	return m, nil
}

func parseDependencies(table map[string]any) []Dependency {
	if len(table) == 0 {
		return nil
	}
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)

	deps := make([]Dependency, 0, len(names))
	for _, name := range names {
		deps = append(deps, parseDependency(name, table[name]))
	}
	return deps
}

func parseDependency(name string, value any) Dependency {
	d := Dependency{Name: name, raw: value}

	switch v := value.(type) {
	case string:
		d.Kind = KindVersion
		d.Version = v
	case map[string]any:
		d.Optional, _ = v["optional"].(bool)
		d.Extras = stringList(v["extras"])
		switch {
		case hasKey(v, "path"):
			d.Kind = KindPath
			d.Path = stringAt(v, "path")
			d.Develop, _ = v["develop"].(bool)
		case hasKey(v, "git"):
			d.Kind = KindGit
			d.Git = stringAt(v, "git")
		case hasKey(v, "url"):
			d.Kind = KindURL
			d.URL = stringAt(v, "url")
		case hasKey(v, "version"):
			d.Kind = KindVersion
			d.Version = stringAt(v, "version")
		default:
			d.Kind = KindOther
		}
	default:
		d.Kind = KindOther
	}
	return d
}

// WithDependencies serializes a complete manifest with the main dependency
// table replaced by deps. The receiver and its backing tree are not modified.
func (m *Manifest) WithDependencies(deps []Dependency) ([]byte, error) {
	root, ok := copyTree(m.raw).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("manifest %s: malformed TOML tree", m.Path)
	}

	poetry := ensureTable(ensureTable(root, "tool"), "poetry")
	table := make(map[string]any, len(deps))
	for _, d := range deps {
		table[d.Name] = encodeDependency(d)
	}
	poetry["dependencies"] = table

	data, err := toml.Marshal(root)
	if err != nil {
		return nil, fmt.Errorf("serializing manifest: %w", err)
	}
	return data, nil
}

func encodeDependency(d Dependency) any {
	switch d.Kind {
	case KindVersion:
		if !d.Optional && len(d.Extras) == 0 {
			return d.Version
		}
		v := map[string]any{"version": d.Version}
		if d.Optional {
			v["optional"] = true
		}
		if len(d.Extras) > 0 {
			v["extras"] = anyList(d.Extras)
		}
		return v
	case KindPath:
		v := map[string]any{"path": d.Path}
		if d.Develop {
			v["develop"] = true
		}
		if d.Optional {
			v["optional"] = true
		}
		if len(d.Extras) > 0 {
			v["extras"] = anyList(d.Extras)
		}
		return v
	default:
		return d.raw
	}
}

// tableAt walks nested tables, returning nil when any key is absent or not a table.
func tableAt(m map[string]any, keys ...string) map[string]any {
	cur := m
	for _, k := range keys {
		next, ok := cur[k].(map[string]any)
		if !ok {
			return nil
		}
		cur = next
	}
	return cur
}

func stringAt(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func hasKey(m map[string]any, key string) bool {
	_, ok := m[key]
	return ok
}

func stringList(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		if s, ok := it.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func anyList(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

func ensureTable(m map[string]any, key string) map[string]any {
	if t, ok := m[key].(map[string]any); ok {
		return t
	}
	t := make(map[string]any)
	m[key] = t
	return t
}

func copyTree(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = copyTree(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = copyTree(val)
		}
		return out
	default:
		return v
	}
}

package config

import (
	"fmt"

	"github.com/ag14774/monoranger/internal/pyproject"
	"github.com/ag14774/monoranger/internal/rewrite"
)

// Defaults for missing configuration keys.
const (
	DefaultMonorepoRoot = "../"
	DefaultRewriteRule  = rewrite.RuleExact
)

// Config holds the plugin settings for one command invocation. It is
// immutable once loaded.
type Config struct {
	// Enabled gates all behavior; when false every command must act exactly
	// like the unmodified underlying tool.
	Enabled bool
	// MonorepoRoot is the root directory path relative to the project.
	MonorepoRoot string
	// VersionRewriteRule converts path dependencies at build time.
	VersionRewriteRule rewrite.Rule
}

// ConfigError indicates an invalid or unsupported configuration value.
type ConfigError struct {
	Key   string
	Value any
	Err   error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid [tool.monoranger] config: %s = %v: %v", e.Key, e.Value, e.Err)
	}
	return fmt.Sprintf("invalid [tool.monoranger] config: %s = %v", e.Key, e.Value)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// Load reads the plugin configuration from a manifest, applying defaults.
// A nil manifest yields the disabled default configuration.
func Load(m *pyproject.Manifest) (Config, error) {
	cfg := Config{
		Enabled:            false,
		MonorepoRoot:       DefaultMonorepoRoot,
		VersionRewriteRule: DefaultRewriteRule,
	}
	if m == nil || m.Plugin == nil {
		return cfg, nil
	}

	table := m.Plugin
	if v, ok := table["enabled"]; ok {
		b, ok := v.(bool)
		if !ok {
			return Config{}, &ConfigError{Key: "enabled", Value: v}
		}
		cfg.Enabled = b
	}
	if v, ok := table["monorepo-root"]; ok {
		s, ok := v.(string)
		if !ok || s == "" {
			return Config{}, &ConfigError{Key: "monorepo-root", Value: v}
		}
		cfg.MonorepoRoot = s
	}
	if v, ok := table["version-rewrite-rule"]; ok {
		s, ok := v.(string)
		if !ok {
			return Config{}, &ConfigError{Key: "version-rewrite-rule", Value: v}
		}
		rule, err := rewrite.ParseRule(s)
		if err != nil {
			return Config{}, &ConfigError{Key: "version-rewrite-rule", Value: s, Err: err}
		}
		cfg.VersionRewriteRule = rule
	}

	return cfg, nil
}

// Package config loads monoranger plugin settings from a project manifest's
// [tool.monoranger] table. Loading is a pure read with defaults applied for
// missing keys.
package config

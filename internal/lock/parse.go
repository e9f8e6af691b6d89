package lock

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Load reads a poetry.lock file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading lock file: %w", err)
	}
	return Parse(data)
}

// Parse parses poetry.lock content.
func Parse(data []byte) (*File, error) {
	var lf File
	if err := toml.Unmarshal(data, &lf); err != nil {
		return nil, fmt.Errorf("parsing lock TOML: %w", err)
	}
	return &lf, nil
}

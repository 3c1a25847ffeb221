package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// ReadFile parses a TOML configuration file into a Config. Fields the file
// leaves unset stay empty so Load can fill them from the environment.
func ReadFile(path string) (Config, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("error reading config file %s: %w", path, err)
	}
	var parsed Config
	if err := toml.Unmarshal(contents, &parsed); err != nil {
		return Config{}, fmt.Errorf("error parsing config file %s: %w", path, err)
	}
	return parsed, nil
}

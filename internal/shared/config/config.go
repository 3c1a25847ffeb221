package config

import "fmt"

// Config is the read-only, process-lifetime configuration of the publication
// workflow: collaborator endpoints, publishing credentials, and OS command
// templates.
type Config struct {
	Publisher PublisherConfig `toml:"publisher"`
	Checkers  CheckerConfig   `toml:"checkers"`
	Commands  CommandConfig   `toml:"commands"`
}

// Load returns a copy of this Config where any missing fields are populated
// from the environment.
func (c Config) Load() (Config, error) {
	publisherConfig, err := c.Publisher.Load()
	if err != nil {
		return Config{}, fmt.Errorf("error loading publisher config: %w", err)
	}
	checkerConfig, err := c.Checkers.Load()
	if err != nil {
		return Config{}, fmt.Errorf("error loading checker config: %w", err)
	}
	commandConfig, err := c.Commands.Load()
	if err != nil {
		return Config{}, fmt.Errorf("error loading command config: %w", err)
	}
	return Config{
		Publisher: publisherConfig,
		Checkers:  checkerConfig,
		Commands:  commandConfig,
	}, nil
}

// LoadConfig builds the deployed configuration entirely from the environment.
func LoadConfig() (Config, error) {
	return Config{}.Load()
}

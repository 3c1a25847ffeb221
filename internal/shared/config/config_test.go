package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/publab/publication-service/internal/shared/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv(config.PublisherBaseURLKey, "publishing.example.org")
	t.Setenv(config.PublisherUsernameKey, "publisher-user")
	t.Setenv(config.PublisherPasswordKey, "publisher-pass")
	t.Setenv(config.ValidatorURLKey, "https://validator.example.org")
	t.Setenv(config.TokenServiceURLKey, "https://tokens.example.org")
	t.Setenv(config.ResourceCheckerURLKey, "https://resources.example.org")

	loaded, err := config.LoadConfig()
	require.NoError(t, err)

	// bare hosts get an https scheme
	assert.Equal(t, "https://publishing.example.org", loaded.Publisher.BaseURL)
	assert.Equal(t, "publisher-user", loaded.Publisher.Username)
	assert.Equal(t, "publisher-pass", loaded.Publisher.Password)
	assert.Equal(t, "https://validator.example.org", loaded.Checkers.ValidatorURL)
	assert.Equal(t, "https://tokens.example.org", loaded.Checkers.TokenServiceURL)
	assert.Equal(t, "https://resources.example.org", loaded.Checkers.ResourceCheckerURL)
	assert.Equal(t, config.DefaultInstallCommand, loaded.Commands.InstallTemplate)
	assert.Equal(t, config.DefaultShortlinkCommand, loaded.Commands.ShortlinkTemplate)
}

func TestLoadConfig_MissingRequiredSetting(t *testing.T) {
	t.Setenv(config.PublisherBaseURLKey, "publishing.example.org")
	t.Setenv(config.PublisherUsernameKey, "publisher-user")
	// no password anywhere
	os.Unsetenv(config.PublisherPasswordKey)

	_, err := config.LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.PublisherPasswordKey)
}

func TestConfig_OptionsWinOverEnvironment(t *testing.T) {
	t.Setenv(config.PublisherBaseURLKey, "https://wrong.example.org")
	t.Setenv(config.PublisherUsernameKey, "wrong-user")
	t.Setenv(config.PublisherPasswordKey, "wrong-pass")

	publisherConfig, err := config.NewPublisherConfig(
		config.WithPublisherBaseURL("https://publishing.example.org"),
		config.WithPublisherCredentials("publisher-user", "publisher-pass"),
	).Load()
	require.NoError(t, err)

	assert.Equal(t, "https://publishing.example.org", publisherConfig.BaseURL)
	assert.Equal(t, "publisher-user", publisherConfig.Username)
	assert.Equal(t, "publisher-pass", publisherConfig.Password)
}

func TestReadFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "publication.toml")
	contents := `
[publisher]
base_url = "https://publishing.example.org"
username = "publisher-user"
password = "publisher-pass"

[checkers]
validator_url = "https://validator.example.org"
token_service_url = "https://tokens.example.org"
resource_checker_url = "https://resources.example.org"

[commands]
install_command = "rsync -a {{.Source}}/ {{.Dest}}/"
shortlink_command = "update-shortlink {{.URI}}"
`
	require.NoError(t, os.WriteFile(configPath, []byte(contents), 0o600))

	parsed, err := config.ReadFile(configPath)
	require.NoError(t, err)

	// nothing left for the environment to fill
	loaded, err := parsed.Load()
	require.NoError(t, err)
	assert.Equal(t, "https://publishing.example.org", loaded.Publisher.BaseURL)
	assert.Equal(t, "rsync -a {{.Source}}/ {{.Dest}}/", loaded.Commands.InstallTemplate)
	assert.Equal(t, "https://tokens.example.org", loaded.Checkers.TokenServiceURL)
}

func TestReadFile_Missing(t *testing.T) {
	_, err := config.ReadFile(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
}

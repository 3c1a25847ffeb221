package config

import (
	"fmt"
	"strings"
)

const PublisherBaseURLKey = "PUBLISHER_BASE_URL"
const PublisherUsernameKey = "PUBLISHER_USERNAME"
const PublisherPasswordKey = "PUBLISHER_PASSWORD"

// PublisherConfig locates and authenticates against the publishing backend.
type PublisherConfig struct {
	BaseURL  string `toml:"base_url"`
	Username string `toml:"username"`
	Password string `toml:"password"`
}

type PublisherOption func(publisherConfig *PublisherConfig)

func NewPublisherConfig(options ...PublisherOption) PublisherConfig {
	publisherConfig := PublisherConfig{}
	for _, option := range options {
		option(&publisherConfig)
	}
	return publisherConfig
}

func WithPublisherBaseURL(baseURL string) PublisherOption {
	return func(publisherConfig *PublisherConfig) {
		publisherConfig.BaseURL = baseURL
	}
}

func WithPublisherCredentials(username, password string) PublisherOption {
	return func(publisherConfig *PublisherConfig) {
		publisherConfig.Username = username
		publisherConfig.Password = password
	}
}

type PublisherEnvironmentSettings struct {
	BaseURL  EnvironmentSetting
	Username EnvironmentSetting
	Password EnvironmentSetting
}

var DeployedPublisherEnvironmentSettings = PublisherEnvironmentSettings{
	BaseURL:  NewEnvironmentSetting(PublisherBaseURLKey),
	Username: NewEnvironmentSetting(PublisherUsernameKey),
	Password: NewEnvironmentSetting(PublisherPasswordKey),
}

// LoadWithEnvSettings returns a copy of this PublisherConfig where any missing
// fields are populated by the given PublisherEnvironmentSettings.
func (c PublisherConfig) LoadWithEnvSettings(environmentSettings PublisherEnvironmentSettings) (PublisherConfig, error) {
	if len(c.BaseURL) == 0 {
		baseURL, err := environmentSettings.BaseURL.Get()
		if err != nil {
			return PublisherConfig{}, err
		}
		if !strings.HasPrefix(baseURL, "http") {
			baseURL = fmt.Sprintf("https://%s", baseURL)
		}
		c.BaseURL = baseURL
	}
	if len(c.Username) == 0 {
		username, err := environmentSettings.Username.Get()
		if err != nil {
			return PublisherConfig{}, err
		}
		c.Username = username
	}
	if len(c.Password) == 0 {
		password, err := environmentSettings.Password.Get()
		if err != nil {
			return PublisherConfig{}, err
		}
		c.Password = password
	}
	return c, nil
}

func (c PublisherConfig) Load() (PublisherConfig, error) {
	return c.LoadWithEnvSettings(DeployedPublisherEnvironmentSettings)
}

package config

const ValidatorURLKey = "VALIDATOR_URL"
const TokenServiceURLKey = "TOKEN_SERVICE_URL"
const ResourceCheckerURLKey = "RESOURCE_CHECKER_URL"

// CheckerConfig locates the validation and authorization collaborators.
type CheckerConfig struct {
	ValidatorURL       string `toml:"validator_url"`
	TokenServiceURL    string `toml:"token_service_url"`
	ResourceCheckerURL string `toml:"resource_checker_url"`
}

type CheckerOption func(checkerConfig *CheckerConfig)

func NewCheckerConfig(options ...CheckerOption) CheckerConfig {
	checkerConfig := CheckerConfig{}
	for _, option := range options {
		option(&checkerConfig)
	}
	return checkerConfig
}

func WithValidatorURL(url string) CheckerOption {
	return func(checkerConfig *CheckerConfig) {
		checkerConfig.ValidatorURL = url
	}
}

func WithTokenServiceURL(url string) CheckerOption {
	return func(checkerConfig *CheckerConfig) {
		checkerConfig.TokenServiceURL = url
	}
}

func WithResourceCheckerURL(url string) CheckerOption {
	return func(checkerConfig *CheckerConfig) {
		checkerConfig.ResourceCheckerURL = url
	}
}

type CheckerEnvironmentSettings struct {
	ValidatorURL       EnvironmentSetting
	TokenServiceURL    EnvironmentSetting
	ResourceCheckerURL EnvironmentSetting
}

var DeployedCheckerEnvironmentSettings = CheckerEnvironmentSettings{
	ValidatorURL:       NewEnvironmentSetting(ValidatorURLKey),
	TokenServiceURL:    NewEnvironmentSetting(TokenServiceURLKey),
	ResourceCheckerURL: NewEnvironmentSetting(ResourceCheckerURLKey),
}

// LoadWithEnvSettings returns a copy of this CheckerConfig where any missing
// fields are populated by the given CheckerEnvironmentSettings.
func (c CheckerConfig) LoadWithEnvSettings(environmentSettings CheckerEnvironmentSettings) (CheckerConfig, error) {
	if len(c.ValidatorURL) == 0 {
		url, err := environmentSettings.ValidatorURL.Get()
		if err != nil {
			return CheckerConfig{}, err
		}
		c.ValidatorURL = url
	}
	if len(c.TokenServiceURL) == 0 {
		url, err := environmentSettings.TokenServiceURL.Get()
		if err != nil {
			return CheckerConfig{}, err
		}
		c.TokenServiceURL = url
	}
	if len(c.ResourceCheckerURL) == 0 {
		url, err := environmentSettings.ResourceCheckerURL.Get()
		if err != nil {
			return CheckerConfig{}, err
		}
		c.ResourceCheckerURL = url
	}
	return c, nil
}

func (c CheckerConfig) Load() (CheckerConfig, error) {
	return c.LoadWithEnvSettings(DeployedCheckerEnvironmentSettings)
}

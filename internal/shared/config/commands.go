package config

const InstallCommandKey = "INSTALL_COMMAND"
const ShortlinkCommandKey = "SHORTLINK_COMMAND"

const DefaultInstallCommand = "cp -R {{.Source}} {{.Dest}}"
const DefaultShortlinkCommand = "update-shortlink {{.URI}}"

// CommandConfig holds the OS command templates for the install and
// shortlink-update steps. Install templates see {{.Source}} and {{.Dest}};
// shortlink templates see {{.URI}}.
type CommandConfig struct {
	InstallTemplate   string `toml:"install_command"`
	ShortlinkTemplate string `toml:"shortlink_command"`
}

type CommandOption func(commandConfig *CommandConfig)

func NewCommandConfig(options ...CommandOption) CommandConfig {
	commandConfig := CommandConfig{}
	for _, option := range options {
		option(&commandConfig)
	}
	return commandConfig
}

func WithInstallTemplate(template string) CommandOption {
	return func(commandConfig *CommandConfig) {
		commandConfig.InstallTemplate = template
	}
}

func WithShortlinkTemplate(template string) CommandOption {
	return func(commandConfig *CommandConfig) {
		commandConfig.ShortlinkTemplate = template
	}
}

type CommandEnvironmentSettings struct {
	InstallTemplate   EnvironmentSetting
	ShortlinkTemplate EnvironmentSetting
}

var DeployedCommandEnvironmentSettings = CommandEnvironmentSettings{
	InstallTemplate:   NewEnvironmentSettingWithDefault(InstallCommandKey, DefaultInstallCommand),
	ShortlinkTemplate: NewEnvironmentSettingWithDefault(ShortlinkCommandKey, DefaultShortlinkCommand),
}

// LoadWithEnvSettings returns a copy of this CommandConfig where any missing
// fields are populated by the given CommandEnvironmentSettings.
func (c CommandConfig) LoadWithEnvSettings(environmentSettings CommandEnvironmentSettings) (CommandConfig, error) {
	if len(c.InstallTemplate) == 0 {
		template, err := environmentSettings.InstallTemplate.Get()
		if err != nil {
			return CommandConfig{}, err
		}
		c.InstallTemplate = template
	}
	if len(c.ShortlinkTemplate) == 0 {
		template, err := environmentSettings.ShortlinkTemplate.Get()
		if err != nil {
			return CommandConfig{}, err
		}
		c.ShortlinkTemplate = template
	}
	return c, nil
}

func (c CommandConfig) Load() (CommandConfig, error) {
	return c.LoadWithEnvSettings(DeployedCommandEnvironmentSettings)
}

package config

import (
	"fmt"
	"os"
)

type EnvironmentSetting struct {
	Key     string
	Default *string
}

func NewEnvironmentSetting(key string) EnvironmentSetting {
	return EnvironmentSetting{Key: key}
}

func NewEnvironmentSettingWithDefault(key string, defaultValue string) EnvironmentSetting {
	return EnvironmentSetting{
		Key:     key,
		Default: &defaultValue,
	}
}

func (e EnvironmentSetting) Get() (string, error) {
	value, exists := os.LookupEnv(e.Key)
	if !exists {
		if e.Default != nil {
			return *e.Default, nil
		}
		return "", fmt.Errorf("environment variable '%s' is not set and has no default", e.Key)
	}
	return value, nil
}

func (e EnvironmentSetting) GetOrEmpty() string {
	value, exists := os.LookupEnv(e.Key)
	if !exists {
		if e.Default != nil {
			return *e.Default
		}
		return ""
	}
	return value
}

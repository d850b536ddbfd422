package config

import (
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Settings holds the runtime options read from the environment.
// Everything user-visible stays a compile-time constant; Settings only
// covers knobs an operator may want to change without a rebuild.
type Settings struct {
	// LogLevel selects the minimum slog level (debug, info, warn, error).
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// LogFile overrides the default cache-dir log destination when set.
	LogFile string `mapstructure:"log_file"`
}

// LoadSettings reads settings from ASSISTANT_* environment variables,
// applies defaults, and validates the result.
func LoadSettings() (*Settings, error) {
	v := viper.New()

	// Set default values
	v.SetDefault(SettingLogLevel, DefaultLogLevel)
	v.SetDefault(SettingLogFile, "")

	// Configure environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	// Explicitly bind the supported environment variables
	bindEnvs := []struct {
		key    string
		envVar string
	}{
		{SettingLogLevel, EnvLogLevel},
		{SettingLogFile, EnvLogFile},
	}

	for _, env := range bindEnvs {
		if err := v.BindEnv(env.key, env.envVar); err != nil {
			return nil, fmt.Errorf("%s %s: %w", ErrSettingsBind, env.envVar, err)
		}
	}

	// Unmarshal and validate
	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrSettingsParse, err)
	}

	validate := validator.New()
	if err := validate.Struct(&settings); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrSettingsInvalid, err)
	}

	return &settings, nil
}

// Level maps the configured log level onto its slog counterpart.
func (s *Settings) Level() slog.Level {
	switch s.LogLevel {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

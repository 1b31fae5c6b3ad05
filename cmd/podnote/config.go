package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Settings are the persisted user preferences, read from a podnote.yaml
// config file or PODNOTE_* environment variables. Command-line flags
// override them.
type Settings struct {
	Template     string `mapstructure:"template"`
	TemplateFile string `mapstructure:"template_file"`
	Filename     string `mapstructure:"filename"`
	Folder       string `mapstructure:"folder"`
	AtCursor     bool   `mapstructure:"at_cursor"`
}

// LoadSettings reads settings from the given config file, or when path is
// empty, from podnote.yaml in the working directory or
// ~/.config/podnote/. A missing config file is not an error; all settings
// have usable zero values.
func LoadSettings(path string) (Settings, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("podnote")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "podnote"))
		}
	}

	v.SetEnvPrefix("PODNOTE")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("decoding config: %w", err)
	}

	return s, nil
}

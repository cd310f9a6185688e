package config

import (
	"github.com/spf13/viper"

	"github.com/temirov/modparser/internal/utils"
)

const (
	// BaseDirectoryKey names the base directory setting and its MODPARSER_RIOTBASE override.
	BaseDirectoryKey = "riotbase"
	// ConfigPathKey names the configuration document path setting.
	ConfigPathKey = "config"
	// VerboseKey names the debug logging setting.
	VerboseKey = "verbose"

	// DefaultBaseDirectory is used when no base directory is supplied.
	DefaultBaseDirectory = "../.."
)

// Settings holds the resolved command settings.
type Settings struct {
	BaseDirectory string
	ConfigPath    string
	Verbose       bool
}

// NewSettingsReader returns a viper instance seeded with defaults and environment overrides.
func NewSettingsReader() *viper.Viper {
	reader := viper.New()
	reader.SetEnvPrefix(utils.EnvironmentPrefix)
	reader.AutomaticEnv()
	reader.SetDefault(BaseDirectoryKey, DefaultBaseDirectory)
	reader.SetDefault(ConfigPathKey, utils.ConfigFileName)
	reader.SetDefault(VerboseKey, false)
	return reader
}

// ResolveSettings reads the settings from reader. The base directory is returned verbatim,
// including an explicitly empty value; the default applies only when nothing set it.
func ResolveSettings(reader *viper.Viper) Settings {
	settings := Settings{
		BaseDirectory: reader.GetString(BaseDirectoryKey),
		ConfigPath:    reader.GetString(ConfigPathKey),
		Verbose:       reader.GetBool(VerboseKey),
	}
	if settings.ConfigPath == "" {
		settings.ConfigPath = utils.ConfigFileName
	}
	return settings
}

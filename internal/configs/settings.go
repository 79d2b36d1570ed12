package configs

import (
	"os"
	"path/filepath"
)

// ConfigEnv overrides the location of the configuration file.
const ConfigEnv = "PASSIFIER_CONFIG"

type UserSettings struct {
	UserConfigsPath string
	ConfigFilePath  string
}

var UserPassifierSettings *UserSettings

func init() {
	UserPassifierSettings = ResolveUserSettings()
}

// ResolveUserSettings computes where the configuration lives. PASSIFIER_CONFIG
// wins over the platform config directory; without either the working directory
// is used.
func ResolveUserSettings() *UserSettings {
	if path := os.Getenv(ConfigEnv); path != "" {
		return &UserSettings{
			UserConfigsPath: filepath.Dir(path),
			ConfigFilePath:  path,
		}
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = "."
	}

	dir := filepath.Join(configDir, "passifier")
	return &UserSettings{
		UserConfigsPath: dir,
		ConfigFilePath:  filepath.Join(dir, "config.toml"),
	}
}

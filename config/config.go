// ABOUTME: System settings loading from XDG config dir and environment
// ABOUTME: Handles settings.env discovery, defaults, and env overrides
package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"

	"github.com/harperreed/nurture/models"
)

// AppName is the application name for config paths.
const AppName = "nurture"

// SettingsFileName is the optional dotenv file holding settings overrides.
const SettingsFileName = "settings.env"

// SettingsPath returns the XDG-compliant path for the settings file.
func SettingsPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, SettingsFileName)
}

// LoadSettings builds the system settings record. Precedence, lowest to
// highest: built-in defaults, the settings.env file (if present), then
// process environment variables:
// - NURTURE_SYSTEM_PROMPT
// - NURTURE_USER_EMAIL
// - NURTURE_BCC_EMAIL
// A missing file is not an error; defaults apply.
func LoadSettings() (models.SystemSettings, error) {
	settings := models.DefaultSettings()

	fileVars := map[string]string{}
	path := SettingsPath()
	if _, err := os.Stat(path); err == nil {
		fileVars, err = godotenv.Read(path)
		if err != nil {
			return settings, err
		}
	}

	lookup := func(key string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return fileVars[key]
	}

	if v := lookup("NURTURE_SYSTEM_PROMPT"); v != "" {
		settings.SystemPrompt = v
	}
	if v := lookup("NURTURE_USER_EMAIL"); v != "" {
		settings.UserEmail = v
	}
	if v := lookup("NURTURE_BCC_EMAIL"); v != "" {
		settings.BCCEmail = v
	}

	return settings, nil
}

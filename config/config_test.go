// ABOUTME: Tests for system settings loading
// ABOUTME: Validates defaults, settings.env files, and env overrides
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperreed/nurture/models"
)

// pointConfigHome redirects XDG config discovery to a temp dir for the
// duration of the test.
func pointConfigHome(t *testing.T, dir string) {
	t.Helper()
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_CONFIG_HOME", dir)
	xdg.Reload()
}

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("NURTURE_SYSTEM_PROMPT", "")
	t.Setenv("NURTURE_USER_EMAIL", "")
	t.Setenv("NURTURE_BCC_EMAIL", "")
}

func TestLoadSettings_Defaults(t *testing.T) {
	pointConfigHome(t, t.TempDir())
	clearEnv(t)

	settings, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, models.DefaultSystemPrompt, settings.SystemPrompt)
	assert.Empty(t, settings.UserEmail)
	assert.Empty(t, settings.BCCEmail)
}

func TestLoadSettings_FromFile(t *testing.T) {
	dir := t.TempDir()
	pointConfigHome(t, dir)
	clearEnv(t)

	appDir := filepath.Join(dir, AppName)
	require.NoError(t, os.MkdirAll(appDir, 0o755))
	content := "NURTURE_SYSTEM_PROMPT=Keep it short\nNURTURE_USER_EMAIL=me@example.com\n"
	require.NoError(t, os.WriteFile(filepath.Join(appDir, SettingsFileName), []byte(content), 0o644))

	settings, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, "Keep it short", settings.SystemPrompt)
	assert.Equal(t, "me@example.com", settings.UserEmail)
}

func TestLoadSettings_EnvBeatsFile(t *testing.T) {
	dir := t.TempDir()
	pointConfigHome(t, dir)
	clearEnv(t)

	appDir := filepath.Join(dir, AppName)
	require.NoError(t, os.MkdirAll(appDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(appDir, SettingsFileName),
		[]byte("NURTURE_BCC_EMAIL=file@example.com\n"), 0o644))

	t.Setenv("NURTURE_BCC_EMAIL", "env@example.com")

	settings, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, "env@example.com", settings.BCCEmail)
}

func TestSettingsPath(t *testing.T) {
	dir := t.TempDir()
	pointConfigHome(t, dir)
	assert.Equal(t, filepath.Join(dir, AppName, SettingsFileName), SettingsPath())
}

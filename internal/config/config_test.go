package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultSettingsAreValid(t *testing.T) {
	settings := Default()
	require.NoError(t, Validate(&settings))
	require.Equal(t, "info", settings.LogLevel)
	require.Equal(t, "€", settings.CurrencySymbol)
	require.Equal(t, "minimal", settings.DefaultTemplate)
}

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	settings, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, Default().LogLevel, settings.LogLevel)
}

func TestLoadReadsYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "facturakit.yaml")
	body := "store_path: /tmp/accounts.json\nlog_level: debug\ndefault_template: tech\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	settings, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "/tmp/accounts.json", settings.StorePath)
	require.Equal(t, "debug", settings.LogLevel)
	require.Equal(t, "tech", settings.DefaultTemplate)
	require.Equal(t, "€", settings.CurrencySymbol)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "facturakit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("store_path: [unclosed"), 0644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "facturakit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: debug\n"), 0644))

	t.Setenv("FACTURAKIT_LOG_LEVEL", "warn")
	t.Setenv("FACTURAKIT_DEFAULT_TEMPLATE", "mono")

	settings, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "warn", settings.LogLevel)
	require.Equal(t, "mono", settings.DefaultTemplate)
}

func TestValidateRejectsUnknownLogLevel(t *testing.T) {
	settings := Default()
	settings.LogLevel = "loud"
	require.Error(t, Validate(&settings))
}

func TestValidateRejectsUnknownTemplate(t *testing.T) {
	settings := Default()
	settings.DefaultTemplate = "ghost"
	require.Error(t, Validate(&settings))
}

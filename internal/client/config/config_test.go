package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/rollbook/internal/models"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `
[server]
url = "https://rollbook.example.org"

[storage]
path = "/tmp/rollbook-test.db"

[sync]
default_section = "junior"

[log]
level = "debug"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "https://rollbook.example.org", cfg.Server.URL)
	assert.Equal(t, "/tmp/rollbook-test.db", cfg.Storage.Path)
	assert.Equal(t, models.SectionJunior, cfg.DefaultSection())
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)

	assert.Equal(t, models.SectionCompany, cfg.DefaultSection())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.NotEmpty(t, cfg.Storage.Path)
}

func TestLoad_PartialConfigKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
[server]
url = "https://rollbook.example.org"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://rollbook.example.org", cfg.Server.URL)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, models.SectionCompany, cfg.DefaultSection())
}

func TestLoad_MalformedTOML(t *testing.T) {
	path := writeConfig(t, `[server` + "\n")

	_, err := Load(path)
	require.Error(t, err)
}

func TestValidate_MissingServerURL(t *testing.T) {
	cfg := Default()
	require.Error(t, cfg.Validate())
}

func TestValidate_BadSection(t *testing.T) {
	cfg := Default()
	cfg.Server.URL = "https://rollbook.example.org"
	cfg.Sync.DefaultSection = "seniors"
	require.Error(t, cfg.Validate())
}

func TestValidate_BadLogLevel(t *testing.T) {
	cfg := Default()
	cfg.Server.URL = "https://rollbook.example.org"
	cfg.Log.Level = "trace"
	require.Error(t, cfg.Validate())
}

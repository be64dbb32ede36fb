package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.ServerAddr)
	assert.Equal(t, "static", cfg.StaticDir)
	assert.Equal(t, "public", cfg.OutputDir)
	assert.Empty(t, cfg.ContentPath)
	assert.False(t, cfg.ShowExperience)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server_addr: \":9000\"\nshow_experience: true\nread_timeout: 2s\n"), 0644))
	t.Setenv("PORTFOLIO_LOG_LEVEL", "debug")

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.ServerAddr)
	assert.True(t, cfg.ShowExperience)
	assert.Equal(t, 2*time.Second, cfg.ReadTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLegacyServerAddr(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SERVER_ADDR", ":7070")

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.ServerAddr)
}

func TestValidate(t *testing.T) {
	cfg := Config{ServerAddr: ":8080", OutputDir: "public", ShutdownTimeout: time.Second}
	assert.NoError(t, cfg.Validate())

	cfg.ServerAddr = ""
	assert.Error(t, cfg.Validate())
}

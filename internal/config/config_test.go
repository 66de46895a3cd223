package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 25.0, cfg.Speech.DefaultCPS)
	assert.True(t, cfg.Speech.WatchAsset)
	assert.Equal(t, "127.0.0.1:8675", cfg.Server.ListenAddr)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.Log.Console)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("MOUTHSYNC_SPEECH_DEFAULT_CPS", "42")
	t.Setenv("MOUTHSYNC_SERVER_LISTEN_ADDR", "0.0.0.0:9000")
	t.Setenv("MOUTHSYNC_LOG_LEVEL", "debug")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 42.0, cfg.Speech.DefaultCPS)
	assert.Equal(t, "0.0.0.0:9000", cfg.Server.ListenAddr)
	assert.Equal(t, "debug", cfg.Log.Level)
	// Untouched keys keep their defaults.
	assert.True(t, cfg.Speech.WatchAsset)
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `speech:
  default_cps: 18
  watch_asset: false
server:
  listen_addr: "127.0.0.1:7000"
  read_timeout: 5s
log:
  level: warn
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 18.0, cfg.Speech.DefaultCPS)
	assert.False(t, cfg.Speech.WatchAsset)
	assert.Equal(t, "127.0.0.1:7000", cfg.Server.ListenAddr)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "warn", cfg.Log.Level)
	// Keys absent from the file fall back to defaults.
	assert.Equal(t, 10*time.Second, cfg.Server.WriteTimeout)
}

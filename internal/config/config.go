// Package config provides configuration management for mouthsync.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Speech SpeechConfig `mapstructure:"speech"`
	Server ServerConfig `mapstructure:"server"`
	Log    LogConfig    `mapstructure:"log"`
}

// SpeechConfig configures the text→viseme pipeline
type SpeechConfig struct {
	DefaultCPS float64 `mapstructure:"default_cps"` // reveal rate when no override is given
	TablesPath string  `mapstructure:"tables_path"` // viseme table asset; empty means built-in tables
	WatchAsset bool    `mapstructure:"watch_asset"` // hot-reload the asset on change
}

// ServerConfig configures the WebSocket server
type ServerConfig struct {
	ListenAddr   string        `mapstructure:"listen_addr"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// LogConfig configures logging
type LogConfig struct {
	Level   string `mapstructure:"level"`
	Dir     string `mapstructure:"dir"` // empty disables the log file
	Console bool   `mapstructure:"console"`
}

// DefaultConfig returns sensible default configuration
func DefaultConfig() *Config {
	return &Config{
		Speech: SpeechConfig{
			DefaultCPS: 25,
			TablesPath: "",
			WatchAsset: true,
		},
		Server: ServerConfig{
			ListenAddr:   "127.0.0.1:8675",
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		Log: LogConfig{
			Level:   "info",
			Dir:     "",
			Console: true,
		},
	}
}

// Load reads configuration from file and environment. An empty path uses
// config.yaml from ~/.mouthsync or the working directory.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if dir, err := ConfigDir(); err == nil {
			v.AddConfigPath(dir)
		}
		v.AddConfigPath(".")
	}

	// Environment variable overrides, e.g. MOUTHSYNC_SPEECH_DEFAULT_CPS
	v.SetEnvPrefix("MOUTHSYNC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Seed every key so AutomaticEnv overrides apply even without a
	// config file.
	v.SetDefault("speech.default_cps", cfg.Speech.DefaultCPS)
	v.SetDefault("speech.tables_path", cfg.Speech.TablesPath)
	v.SetDefault("speech.watch_asset", cfg.Speech.WatchAsset)
	v.SetDefault("server.listen_addr", cfg.Server.ListenAddr)
	v.SetDefault("server.read_timeout", cfg.Server.ReadTimeout)
	v.SetDefault("server.write_timeout", cfg.Server.WriteTimeout)
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.dir", cfg.Log.Dir)
	v.SetDefault("log.console", cfg.Log.Console)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return cfg, err
		}
		// No config file: defaults plus environment only.
	}

	if err := v.Unmarshal(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ConfigDir returns the configuration directory path, creating it if needed.
func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(homeDir, ".mouthsync")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

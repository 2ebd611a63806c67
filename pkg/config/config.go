package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config represents the application configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Chat    ChatConfig    `mapstructure:"chat"`
	Player  PlayerConfig  `mapstructure:"player"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ServerConfig holds the backend connection configuration.
type ServerConfig struct {
	URL        string        `mapstructure:"url"`
	Timeout    time.Duration `mapstructure:"-"`
	TimeoutStr string        `mapstructure:"timeout"` // For parsing string duration
}

// ChatConfig holds chat view configuration.
type ChatConfig struct {
	Window int `mapstructure:"window"` // Max messages rendered at once
}

// PlayerConfig holds the playback-time subscription configuration.
type PlayerConfig struct {
	TickIntervalStr string        `mapstructure:"tick_interval"`
	TickInterval    time.Duration `mapstructure:"-"`
}

// LoggingConfig holds logging-related configuration.
type LoggingConfig struct {
	LogFile  string `mapstructure:"log_file"`
	Preserve bool   `mapstructure:"preserve"`
	Level    string `mapstructure:"level"`
}

// Global config instance
var cfg *Config

// Get returns the global config instance.
func Get() *Config {
	if cfg == nil {
		panic("config not initialized")
	}
	return cfg
}

// Load loads configuration from file and environment.
func Load(cfgFile string) (*Config, error) {
	setDefaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}

		xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
		if xdgConfigHome == "" {
			xdgConfigHome = filepath.Join(home, ".config")
		}

		viper.AddConfigPath("./.youtubegpt") // Check project directory first
		viper.AddConfigPath(filepath.Join(xdgConfigHome, "youtubegpt"))
		viper.SetConfigType("yaml")
		viper.SetConfigName("settings")
	}

	viper.SetEnvPrefix("YOUTUBEGPT")
	viper.AutomaticEnv()

	// Config file is optional; defaults and env cover a fresh install.
	_ = viper.ReadInConfig()

	cfg = &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := processDurations(cfg); err != nil {
		return nil, fmt.Errorf("failed to process durations: %w", err)
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("server.url", "http://localhost:8000")
	viper.SetDefault("server.timeout", "30s")

	viper.SetDefault("chat.window", 50)

	viper.SetDefault("player.tick_interval", "250ms")

	viper.SetDefault("logging.log_file", "./.youtubegpt/system.log")
	viper.SetDefault("logging.preserve", false)
	viper.SetDefault("logging.level", "info")
}

// processDurations converts string durations to time.Duration (viper doesn't
// handle time.Duration directly).
func processDurations(cfg *Config) error {
	if cfg.Server.TimeoutStr != "" {
		d, err := time.ParseDuration(cfg.Server.TimeoutStr)
		if err != nil {
			return fmt.Errorf("invalid server.timeout: %w", err)
		}
		cfg.Server.Timeout = d
	} else {
		cfg.Server.Timeout = 30 * time.Second
	}

	if cfg.Player.TickIntervalStr != "" {
		d, err := time.ParseDuration(cfg.Player.TickIntervalStr)
		if err != nil {
			return fmt.Errorf("invalid player.tick_interval: %w", err)
		}
		cfg.Player.TickInterval = d
	} else {
		cfg.Player.TickInterval = 250 * time.Millisecond
	}

	return nil
}

// GetConfigFileUsed returns the path to the config file being used.
func GetConfigFileUsed() string {
	return viper.ConfigFileUsed()
}

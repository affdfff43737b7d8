package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/yourusername/media-relay-go/internal/domain"
)

// LoadConfig loads configuration from file and environment
func LoadConfig(configPath string) (*domain.Config, error) {
	// Start with default config
	config := domain.DefaultConfig()

	v := viper.New()
	v.SetConfigType("yaml")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.AddConfigPath("./configs")
		v.AddConfigPath("$HOME/.media-relay")
		v.AddConfigPath("/etc/media-relay")
	}

	v.SetEnvPrefix("MEDIARELAY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found, use defaults
	}

	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config = expandPaths(config)

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// expandPaths expands environment variables in path configurations
func expandPaths(config *domain.Config) *domain.Config {
	config.History.DatabasePath = expandPath(config.History.DatabasePath)
	config.Comments.Path = expandPath(config.Comments.Path)
	config.Platforms.Instagram.CookieFile = expandPath(config.Platforms.Instagram.CookieFile)
	config.Platforms.YouTube.CookieFile = expandPath(config.Platforms.YouTube.CookieFile)
	config.Platforms.Twitter.CookieFile = expandPath(config.Platforms.Twitter.CookieFile)
	config.Platforms.TikTok.CookieFile = expandPath(config.Platforms.TikTok.CookieFile)
	config.Logging.EventsDir = expandPath(config.Logging.EventsDir)

	if config.Logging.OutputPath != "stdout" && config.Logging.OutputPath != "stderr" {
		config.Logging.OutputPath = expandPath(config.Logging.OutputPath)
	}

	return config
}

// expandPath expands environment variables and ~ in paths
func expandPath(path string) string {
	path = os.ExpandEnv(path)

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	}

	if strings.Contains(path, "$HOME") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = strings.ReplaceAll(path, "$HOME", home)
		}
	}

	return path
}

// validateConfig validates the configuration
func validateConfig(config *domain.Config) error {
	if config.Server.Port < 1 || config.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", config.Server.Port)
	}

	if config.Fetcher.YTDLPBinary == "" {
		return fmt.Errorf("yt-dlp binary not configured")
	}

	if config.Fetcher.Timeout < 0 {
		return fmt.Errorf("fetch timeout cannot be negative")
	}

	if config.History.DatabasePath == "" {
		return fmt.Errorf("history database path not configured")
	}

	if config.Telegram.UpdateTimeout < 1 {
		return fmt.Errorf("telegram update timeout must be at least 1 second")
	}

	if config.Logging.Level == "" {
		config.Logging.Level = "info"
	}

	return nil
}

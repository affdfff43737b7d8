package domain

import "time"

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Telegram  TelegramConfig  `mapstructure:"telegram"`
	Fetcher   FetcherConfig   `mapstructure:"fetcher"`
	Platforms PlatformsConfig `mapstructure:"platforms"`
	History   HistoryConfig   `mapstructure:"history"`
	Comments  CommentsConfig  `mapstructure:"comments"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// ServerConfig contains HTTP API configuration
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// TelegramConfig contains the chat surface configuration
type TelegramConfig struct {
	Token          string `mapstructure:"token"`
	UpdateTimeout  int    `mapstructure:"update_timeout"`  // long-poll timeout, seconds
	FailureMessage string `mapstructure:"failure_message"` // user-facing notice on pipeline failure
}

// FetcherConfig contains fetch-tool invocation configuration
type FetcherConfig struct {
	YTDLPBinary string        `mapstructure:"ytdlp_binary"`
	Timeout     time.Duration `mapstructure:"timeout"` // per-fetch bound on the external process
}

// PlatformsConfig enables platforms and carries their credentials
type PlatformsConfig struct {
	Instagram PlatformConfig `mapstructure:"instagram"`
	YouTube   YouTubeConfig  `mapstructure:"youtube"`
	Twitter   PlatformConfig `mapstructure:"twitter"`
	TikTok    PlatformConfig `mapstructure:"tiktok"`
}

// PlatformConfig is the per-platform activation and credential block
type PlatformConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	CookieFile string `mapstructure:"cookie_file"`
}

// YouTubeConfig adds the transcode passthrough on top of the common block
type YouTubeConfig struct {
	PlatformConfig    `mapstructure:",squash"`
	PostprocessorArgs string `mapstructure:"postprocessor_args"`
}

// HistoryConfig contains fetch history storage configuration
type HistoryConfig struct {
	DatabasePath string `mapstructure:"database_path"`
}

// CommentsConfig contains caption source configuration
type CommentsConfig struct {
	Path       string `mapstructure:"path"` // one caption line per file line
	Disclaimer string `mapstructure:"disclaimer"`
}

// LoggingConfig contains logging-related configuration
type LoggingConfig struct {
	Level      string `mapstructure:"level"`       // debug, info, warn, error
	Format     string `mapstructure:"format"`      // json, console
	OutputPath string `mapstructure:"output_path"` // stdout, stderr, or file path
	EventsDir  string `mapstructure:"events_dir"`  // categorized event log files; empty disables
}

// DefaultYouTubePostprocessorArgs is handed to yt-dlp unmodified when no
// override is configured.
const DefaultYouTubePostprocessorArgs = "ffmpeg:-vf setsar=1 -c:v libx264 -crf 20 -preset ultrafast -c:a aac -b:a 128k -movflags +faststart"

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "localhost",
			Port: 8080,
		},
		Telegram: TelegramConfig{
			UpdateTimeout:  30,
			FailureMessage: "Failed to fetch media.",
		},
		Fetcher: FetcherConfig{
			YTDLPBinary: "yt-dlp",
			Timeout:     10 * time.Minute,
		},
		Platforms: PlatformsConfig{
			Instagram: PlatformConfig{Enabled: true},
			YouTube: YouTubeConfig{
				PlatformConfig:    PlatformConfig{Enabled: true},
				PostprocessorArgs: DefaultYouTubePostprocessorArgs,
			},
			Twitter: PlatformConfig{Enabled: true},
			TikTok:  PlatformConfig{Enabled: true},
		},
		History: HistoryConfig{
			DatabasePath: "$HOME/.media-relay/history.db",
		},
		Comments: CommentsConfig{
			Disclaimer: "(Roleplay: fictional messages for entertainment.)",
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "console",
			OutputPath: "stdout",
		},
	}
}

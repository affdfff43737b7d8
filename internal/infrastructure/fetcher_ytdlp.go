package infrastructure

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/yourusername/media-relay-go/internal/domain"
	"go.uber.org/zap"
)

// YTDLPFetcher binds per-platform yt-dlp invocation profiles over the
// command runner. Each Fetch* method is a domain.FetchFunc: fixed base
// arguments, an optional cookie file when one is configured for the platform,
// and the target URL last.
type YTDLPFetcher struct {
	binary    string
	timeout   time.Duration
	platforms *domain.PlatformsConfig
	runner    *CommandRunner
	logger    *zap.Logger
}

// NewYTDLPFetcher creates a new yt-dlp fetcher
func NewYTDLPFetcher(fetcher *domain.FetcherConfig, platforms *domain.PlatformsConfig, runner *CommandRunner, logger *zap.Logger) *YTDLPFetcher {
	return &YTDLPFetcher{
		binary:    fetcher.YTDLPBinary,
		timeout:   fetcher.Timeout,
		platforms: platforms,
		runner:    runner,
		logger:    logger,
	}
}

// FetchInstagram downloads an Instagram post, reel or tv URL
func (f *YTDLPFetcher) FetchInstagram(ctx context.Context, url string) (*domain.DownloadResult, error) {
	return f.run(ctx, []string{"-t", "mp4"}, f.platforms.Instagram.CookieFile, url)
}

// FetchTikTok downloads a TikTok share URL
func (f *YTDLPFetcher) FetchTikTok(ctx context.Context, url string) (*domain.DownloadResult, error) {
	return f.run(ctx, []string{"-t", "mp4"}, f.platforms.TikTok.CookieFile, url)
}

// FetchTwitter downloads a Twitter/X status URL
func (f *YTDLPFetcher) FetchTwitter(ctx context.Context, url string) (*domain.DownloadResult, error) {
	return f.run(ctx, []string{"-t", "mp4"}, f.platforms.Twitter.CookieFile, url)
}

// FetchYouTube downloads a YouTube Shorts URL, merging to mp4 and passing the
// configured transcode arguments through to yt-dlp unmodified.
func (f *YTDLPFetcher) FetchYouTube(ctx context.Context, url string) (*domain.DownloadResult, error) {
	args := []string{
		"--no-playlist",
		"-f", "bestvideo[ext=mp4]+bestaudio[ext=m4a]/bestvideo+bestaudio/best",
		"--merge-output-format", "mp4",
	}
	if pp := f.platforms.YouTube.PostprocessorArgs; pp != "" {
		args = append(args, "--postprocessor-args", pp)
	}
	return f.run(ctx, args, f.platforms.YouTube.CookieFile, url)
}

func (f *YTDLPFetcher) run(ctx context.Context, baseArgs []string, cookieFile, url string) (*domain.DownloadResult, error) {
	args := f.buildArgs(baseArgs, cookieFile, url)

	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	return f.runner.RunInWorkspace(ctx, f.binary, args)
}

// buildArgs assembles the final argument list. The cookie file is injected
// only after an existence check; a configured but missing file is logged and
// skipped rather than handed to yt-dlp.
func (f *YTDLPFetcher) buildArgs(baseArgs []string, cookieFile, url string) []string {
	args := make([]string, 0, len(baseArgs)+3)
	args = append(args, baseArgs...)

	if cookieFile != "" {
		if fileExists(cookieFile) {
			args = append(args, "--cookies", cookieFile)
		} else {
			f.logger.Warn("Configured cookie file does not exist, skipping",
				zap.String("cookie_file", cookieFile))
		}
	}

	return append(args, strings.TrimSpace(url))
}

// fileExists checks if a file exists
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

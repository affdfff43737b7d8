package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/media-relay-go/internal/domain"
	"github.com/yourusername/media-relay-go/internal/infrastructure"
	"go.uber.org/zap"
)

func allEnabled() *domain.PlatformsConfig {
	return &domain.PlatformsConfig{
		Instagram: domain.PlatformConfig{Enabled: true},
		Twitter:   domain.PlatformConfig{Enabled: true},
		TikTok:    domain.PlatformConfig{Enabled: true},
		YouTube:   domain.YouTubeConfig{PlatformConfig: domain.PlatformConfig{Enabled: true}},
	}
}

func buildTestRegistry(t *testing.T, platforms *domain.PlatformsConfig) domain.Registry {
	t.Helper()
	logger := zap.NewNop()
	fetcher := infrastructure.NewYTDLPFetcher(
		&domain.FetcherConfig{YTDLPBinary: "yt-dlp"},
		platforms,
		infrastructure.NewCommandRunner(logger),
		logger,
	)
	return BuildRegistry(platforms, fetcher)
}

func TestBuildRegistry_AllPlatforms(t *testing.T) {
	registry := buildTestRegistry(t, allEnabled())
	require.Len(t, registry, 4)

	assert.Equal(t, "instagram", registry[0].Name)
	assert.Equal(t, "youtube", registry[1].Name)
	assert.Equal(t, "twitter", registry[2].Name)
	assert.Equal(t, "tiktok", registry[3].Name)
}

func TestBuildRegistry_DisabledPlatformAbsent(t *testing.T) {
	platforms := allEnabled()
	platforms.Twitter.Enabled = false

	registry := buildTestRegistry(t, platforms)
	require.Len(t, registry, 3)
	for _, h := range registry {
		assert.NotEqual(t, "twitter", h.Name)
	}
}

func TestRegistry_DispatchInstagram(t *testing.T) {
	registry := buildTestRegistry(t, allEnabled())

	for _, text := range []string{
		"https://www.instagram.com/reel/Cxyz_123/",
		"https://instagram.com/p/AbC-dEf/",
		"check this https://instagram.com/tv/XyZ987 out",
		"https://instagr.am/p/AbC123/",
	} {
		handler, target, ok := registry.Dispatch(text)
		require.True(t, ok, "expected a match for %q", text)
		assert.Equal(t, "instagram", handler.Name)
		assert.Contains(t, text, target)
	}
}

func TestRegistry_DispatchYouTubeShorts(t *testing.T) {
	registry := buildTestRegistry(t, allEnabled())

	handler, target, ok := registry.Dispatch("https://www.youtube.com/shorts/dQw4w9WgXcQ?feature=share")
	require.True(t, ok)
	assert.Equal(t, "youtube", handler.Name)
	assert.Contains(t, target, "/shorts/dQw4w9WgXcQ")
}

func TestRegistry_DispatchTwitterAndX(t *testing.T) {
	registry := buildTestRegistry(t, allEnabled())

	for _, text := range []string{
		"https://twitter.com/someuser/status/1234567890123456789",
		"https://x.com/someuser/status/1234567890123456789",
	} {
		handler, _, ok := registry.Dispatch(text)
		require.True(t, ok, "expected a match for %q", text)
		assert.Equal(t, "twitter", handler.Name)
	}
}

func TestRegistry_DispatchTikTokShareLinks(t *testing.T) {
	registry := buildTestRegistry(t, allEnabled())

	for _, text := range []string{
		"https://vm.tiktok.com/ZM1abc234/",
		"https://vt.tiktok.com/ZS5xyz789/",
	} {
		handler, _, ok := registry.Dispatch(text)
		require.True(t, ok, "expected a match for %q", text)
		assert.Equal(t, "tiktok", handler.Name)
	}
}

func TestRegistry_DispatchIgnoresPlainText(t *testing.T) {
	registry := buildTestRegistry(t, allEnabled())

	for _, text := range []string{
		"hello there",
		"https://example.com/watch?v=abc",
		"instagram.com without a scheme",
		"https://youtube.com/watch?v=abc",
	} {
		_, _, ok := registry.Dispatch(text)
		assert.False(t, ok, "expected no match for %q", text)
	}
}

func TestRegistry_URLInsideLongerMessage(t *testing.T) {
	registry := buildTestRegistry(t, allEnabled())

	handler, target, ok := registry.Dispatch(
		"lol look at this https://vm.tiktok.com/ZMabcdef/ absolute madness")
	require.True(t, ok)
	assert.Equal(t, "tiktok", handler.Name)
	assert.Contains(t, target, "vm.tiktok.com")
}

package app

import (
	"regexp"

	"github.com/yourusername/media-relay-go/internal/domain"
	"github.com/yourusername/media-relay-go/internal/infrastructure"
)

// URL-recognition patterns. Platforms are assumed pattern-disjoint; a
// message matching several is still routed to exactly one handler, by
// registration order.
const (
	instagramPattern = `https?://(?:www\.)?(?:instagram\.com|instagr\.am)/(?:p|reel|tv)/([A-Za-z0-9_-]+)`
	youtubePattern   = `https?://(?:www\.)?youtube\.com/shorts/[A-Za-z0-9_-]+(?:\?[^\s]*)?`
	twitterPattern   = `https?://(?:www\.)?(?:twitter\.com|x\.com)/[A-Za-z0-9_]+(?:/[A-Za-z0-9_]+)?/status/[0-9]{1,20}`
	tiktokPattern    = `https?://(?:www\.)?(?:vm|vt|tt|tik)\.tiktok\.com/([A-Za-z0-9_-]+)[/?#]?`
)

// BuildRegistry constructs the ordered handler list from the platform flag
// table. Disabled platforms simply have no handler; there is no conditional
// compilation involved. All yt-dlp backed handlers take the whole matched
// URL (group 0) because the tool parses it itself.
func BuildRegistry(platforms *domain.PlatformsConfig, fetcher *infrastructure.YTDLPFetcher) domain.Registry {
	type entry struct {
		name    domain.Platform
		enabled bool
		pattern string
		fetch   domain.FetchFunc
	}

	entries := []entry{
		{domain.PlatformInstagram, platforms.Instagram.Enabled, instagramPattern, fetcher.FetchInstagram},
		{domain.PlatformYouTube, platforms.YouTube.Enabled, youtubePattern, fetcher.FetchYouTube},
		{domain.PlatformTwitter, platforms.Twitter.Enabled, twitterPattern, fetcher.FetchTwitter},
		{domain.PlatformTikTok, platforms.TikTok.Enabled, tiktokPattern, fetcher.FetchTikTok},
	}

	var registry domain.Registry
	for _, e := range entries {
		if !e.enabled {
			continue
		}
		registry = append(registry, domain.Handler{
			Name:    string(e.name),
			Pattern: regexp.MustCompile(e.pattern),
			Fetch:   e.fetch,
		})
	}
	return registry
}

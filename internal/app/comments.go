package app

import (
	"math/rand"
	"os"
	"strings"

	"go.uber.org/zap"
)

// CaptionLimit is the Telegram media caption length cap, in runes.
const CaptionLimit = 1024

// fallbackLines ship with the binary so captions work without any configured
// comments file.
var fallbackLines = []string{
	"Oh come on, that's brilliant. And slightly chaotic, like always.",
	"That is a proper bit of craftsmanship, right until someone presses the red button.",
	"Nice shot. Looks good on the trailer, not so good on the gearbox.",
	"Here you go. Judge for yourself.",
}

// Comments provides caption lines for delivered media, one random line per
// delivery with the disclaimer appended. Read-only after construction.
type Comments struct {
	disclaimer string
	lines      []string
}

// LoadComments reads one caption line per file line from path. An empty path
// or unreadable file falls back to the built-in lines.
func LoadComments(path, disclaimer string, logger *zap.Logger) *Comments {
	lines := fallbackLines

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			logger.Warn("Failed to read comments file, using fallback lines",
				zap.String("path", path), zap.Error(err))
		} else if loaded := splitLines(string(data)); len(loaded) > 0 {
			lines = loaded
		}
	}

	return &Comments{
		disclaimer: disclaimer,
		lines:      lines,
	}
}

// BuildCaption returns a random caption line with the disclaimer appended,
// truncated to the caption limit.
func (c *Comments) BuildCaption() string {
	line := c.lines[rand.Intn(len(c.lines))]

	caption := line
	if c.disclaimer != "" {
		caption = line + "\n\n" + c.disclaimer
	}

	runes := []rune(caption)
	if len(runes) > CaptionLimit {
		return string(runes[:CaptionLimit])
	}
	return caption
}

// Len returns how many caption lines are loaded
func (c *Comments) Len() int {
	return len(c.lines)
}

func splitLines(data string) []string {
	var lines []string
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

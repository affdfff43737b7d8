package infrastructure

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShellEscape_PlainStringUnchanged(t *testing.T) {
	assert.Equal(t, "yt-dlp", ShellEscape("yt-dlp"))
	assert.Equal(t, "https://example.com/v/1", ShellEscape("https://example.com/v/1"))
	assert.Equal(t, "--merge-output-format", ShellEscape("--merge-output-format"))
}

func TestShellEscape_EmptyString(t *testing.T) {
	assert.Equal(t, "''", ShellEscape(""))
}

func TestShellEscape_Spaces(t *testing.T) {
	assert.Equal(t, "'hello world'", ShellEscape("hello world"))
}

func TestShellEscape_SpecialCharacters(t *testing.T) {
	assert.Equal(t, "'a$b'", ShellEscape("a$b"))
	assert.Equal(t, "'a;b'", ShellEscape("a;b"))
	assert.Equal(t, "'a|b'", ShellEscape("a|b"))
	assert.Equal(t, "'a&b'", ShellEscape("a&b"))
}

func TestShellEscape_EmbeddedSingleQuote(t *testing.T) {
	assert.Equal(t, `'it'"'"'s'`, ShellEscape("it's"))
}

func TestShellEscapeCommand(t *testing.T) {
	got := ShellEscapeCommand("yt-dlp", "-t", "mp4", "https://example.com/watch?v=1")
	assert.Equal(t, "yt-dlp -t mp4 'https://example.com/watch?v=1'", got)
}

package screen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSystemWindow_AppNameSubstring(t *testing.T) {
	blocklist := BlocklistFor("macos")

	tests := []struct {
		name    string
		appName string
		title   string
		blocked bool
	}{
		{
			name:    "exact app name match",
			appName: "Dock",
			title:   "anything",
			blocked: true,
		},
		{
			name:    "blocklisted entry as substring",
			appName: "Dock Helper",
			title:   "anything",
			blocked: true,
		},
		{
			name:    "case-insensitive app match",
			appName: "SPOTLIGHT",
			title:   "anything",
			blocked: true,
		},
		{
			name:    "regular application",
			appName: "Firefox",
			title:   "Mozilla Firefox",
			blocked: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.blocked, blocklist.IsSystemWindow(tt.appName, tt.title))
		})
	}
}

func TestIsSystemWindow_TitleExactMatch(t *testing.T) {
	blocklist := BlocklistFor("linux")

	// titles match exactly, never as substrings
	assert.True(t, blocklist.IsSystemWindow("myapp", "Desktop"))
	assert.True(t, blocklist.IsSystemWindow("myapp", "desktop"))
	assert.False(t, blocklist.IsSystemWindow("myapp", "My Desktop App"))
}

func TestIsSystemWindow_EmptyTitle(t *testing.T) {
	// the empty title is chrome on every platform, including unknown
	for _, platform := range []string{"macos", "windows", "linux", "unknown"} {
		blocklist := BlocklistFor(platform)
		assert.True(t, blocklist.IsSystemWindow("SomeApp", ""), "platform %s", platform)
	}
}

func TestBlocklistFor_UnknownPlatform(t *testing.T) {
	blocklist := BlocklistFor("plan9")

	assert.False(t, blocklist.IsSystemWindow("Dock", "Desktop"))
	assert.True(t, blocklist.IsSystemWindow("Dock", ""))
}

func TestDefaultBlocklist_ConstructedOnce(t *testing.T) {
	assert.Same(t, DefaultBlocklist(), DefaultBlocklist())
}

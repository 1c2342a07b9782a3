package screen

import (
	"strings"
	"sync"
)

// Blocklist identifies OS-owned chrome surfaces (taskbars, docks, menu
// bars) so they can be hidden from enumeration results. App names are
// matched case-insensitively as substrings; titles are matched
// case-insensitively as exact strings. The empty title always counts as
// system chrome.
type Blocklist struct {
	apps   []string
	titles map[string]struct{}
}

func newBlocklist(apps, titles []string) *Blocklist {
	b := &Blocklist{
		apps:   make([]string, 0, len(apps)),
		titles: make(map[string]struct{}, len(titles)),
	}
	for _, app := range apps {
		b.apps = append(b.apps, strings.ToLower(app))
	}
	for _, title := range titles {
		b.titles[strings.ToLower(title)] = struct{}{}
	}
	return b
}

// BlocklistFor returns the blocklist for the given platform identifier
// ("macos", "windows", "linux"). Unknown platforms get an empty
// blocklist, which still filters untitled windows.
func BlocklistFor(platform string) *Blocklist {
	switch platform {
	case "macos":
		return newBlocklist(
			[]string{
				"Window Server", "SystemUIServer", "ControlCenter", "Dock",
				"NotificationCenter", "loginwindow", "WindowManager", "Spotlight",
			},
			[]string{
				"Menu Bar", "Notification Center", "Control Center",
				"Spotlight", "Mission Control", "Desktop",
			})
	case "windows":
		return newBlocklist(
			[]string{
				"Windows Shell Experience Host", "Microsoft Text Input Application",
				"Windows Explorer", "Program Manager", "TaskBar",
			},
			[]string{
				"Program Manager", "Task View", "Start",
				"System Tray", "Task Bar", "Desktop",
			})
	case "linux":
		return newBlocklist(
			[]string{
				"Gnome-shell", "Plasma", "Polybar", "i3bar",
				"Plank", "Dock", "Panel",
			},
			[]string{
				"Desktop", "Panel", "Top Bar", "Status Bar",
				"Dock", "Activities", "System Tray",
			})
	default:
		return newBlocklist(nil, nil)
	}
}

// DefaultBlocklist returns the blocklist for the running platform,
// constructed at most once per process and safe for concurrent readers.
var DefaultBlocklist = sync.OnceValue(func() *Blocklist {
	return BlocklistFor(Platform())
})

// IsSystemWindow reports whether a window belongs to OS chrome: its app
// name contains a blocklisted entry, its title exactly equals a
// blocklisted entry, or its title is empty.
func (b *Blocklist) IsSystemWindow(appName, title string) bool {
	if title == "" {
		return true
	}

	appLower := strings.ToLower(appName)
	for _, app := range b.apps {
		if strings.Contains(appLower, app) {
			return true
		}
	}

	_, blocked := b.titles[strings.ToLower(title)]
	return blocked
}

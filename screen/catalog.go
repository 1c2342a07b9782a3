// Package screen enumerates monitors and application windows and
// produces still raster captures of either. Enumeration is always fresh:
// nothing is cached between calls, and results preserve the OS
// enumeration order.
package screen

import (
	"image"

	"github.com/desktop-next/desktopcli/types"
	"github.com/desktop-next/desktopcli/utils"
)

// Catalog normalizes and filters what the backend enumerates, and
// orchestrates captures on top of it. All methods run synchronously on
// the calling goroutine; the blocklist is the only shared state and is
// read-only once constructed.
type Catalog struct {
	backend   Backend
	blocklist *Blocklist
	encode    func(img image.Image) ([]byte, error)
}

// NewCatalog wires a backend to a blocklist. Pass DefaultBlocklist()
// for platform defaults, or any Blocklist to override filtering.
func NewCatalog(backend Backend, blocklist *Blocklist) *Catalog {
	return &Catalog{
		backend:   backend,
		blocklist: blocklist,
		encode:    utils.EncodePNG,
	}
}

// Close releases the backend's OS connection.
func (c *Catalog) Close() error {
	return c.backend.Close()
}

// ListWindows enumerates windows and applies the filter pipeline:
// minimized windows are dropped unless includeMinimized, system chrome
// is dropped when filterSystem, and zero-area windows are dropped
// unconditionally.
func (c *Catalog) ListWindows(includeMinimized, filterSystem bool) ([]types.WindowInfo, error) {
	raw, err := c.backend.ListWindows()
	if err != nil {
		return nil, &EnumerationError{Op: "windows", Err: err}
	}

	windows := make([]types.WindowInfo, 0, len(raw))
	for _, win := range raw {
		if !includeMinimized && win.IsMinimized {
			continue
		}

		if filterSystem && c.blocklist.IsSystemWindow(win.AppName, win.Title) {
			continue
		}

		if win.Width == 0 || win.Height == 0 {
			continue
		}

		windows = append(windows, win)
	}

	return windows, nil
}

// ListMonitors enumerates monitors and marks the first one as primary.
// The primary flag is a positional convention over enumeration order,
// not an OS-reported attribute.
func (c *Catalog) ListMonitors() ([]types.MonitorInfo, error) {
	raw, err := c.backend.ListMonitors()
	if err != nil {
		return nil, &EnumerationError{Op: "monitors", Err: err}
	}

	monitors := make([]types.MonitorInfo, len(raw))
	for i, m := range raw {
		m.IsPrimary = i == 0
		monitors[i] = m
	}

	return monitors, nil
}

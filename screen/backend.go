package screen

import (
	"fmt"
	"image"

	"github.com/desktop-next/desktopcli/types"
)

// Backend is the OS capture layer: raw window/monitor enumeration and
// still-frame RGBA pixel capture. Implementations must keep ids stable
// for the duration of a single call; nothing here is cached across
// calls. Thread-safety of concurrent calls is whatever the underlying OS
// connection provides.
type Backend interface {
	// ListWindows returns every enumerable window, unfiltered, in OS
	// enumeration order. IsPrimary-style normalization happens above.
	ListWindows() ([]types.WindowInfo, error)

	// ListMonitors returns every active monitor in OS enumeration order,
	// with IsPrimary left unset.
	ListMonitors() ([]types.MonitorInfo, error)

	// CaptureWindow grabs a still frame of the window with the given id.
	CaptureWindow(id uint32) (*image.RGBA, error)

	// CaptureMonitor grabs a full-frame still of the monitor with the
	// given id.
	CaptureMonitor(id uint32) (*image.RGBA, error)

	Close() error
}

// NewBackend returns the capture backend for the running platform.
// Linux desktops are served by the X11 backend; other platforms need a
// Backend implementation supplied by the host (see NewCatalog).
func NewBackend() (Backend, error) {
	platform := Platform()
	switch platform {
	case "linux":
		return newX11Backend()
	default:
		return nil, fmt.Errorf("no capture backend available for platform %q", platform)
	}
}

package screen

import (
	"fmt"

	"github.com/desktop-next/desktopcli/types"
	"github.com/desktop-next/desktopcli/utils"
)

// CapturedWindow bundles a window snapshot with its encoded image, both
// fixed at construction. The bytes are returned verbatim on every
// accessor call; nothing is re-encoded.
type CapturedWindow struct {
	Info types.WindowInfo
	data []byte
}

// ImageBytes returns the encoded PNG image.
func (c *CapturedWindow) ImageBytes() []byte {
	return c.data
}

// CapturedScreen bundles a monitor snapshot with its encoded image.
type CapturedScreen struct {
	Monitor types.MonitorInfo
	data    []byte
}

// ImageBytes returns the encoded PNG image.
func (c *CapturedScreen) ImageBytes() []byte {
	return c.data
}

// CaptureWindow captures the window with the given id. The window list
// is re-enumerated on every call, since windows come and go between
// calls. An unmatched id returns (nil, nil): "window no longer exists"
// is a normal outcome, not an error.
func (c *Catalog) CaptureWindow(id uint32) (*CapturedWindow, error) {
	windows, err := c.backend.ListWindows()
	if err != nil {
		return nil, &EnumerationError{Op: "windows", Err: err}
	}

	for _, win := range windows {
		if win.ID != id {
			continue
		}

		img, err := c.backend.CaptureWindow(win.ID)
		if err != nil {
			return nil, &CaptureError{Op: fmt.Sprintf("capture window %d", win.ID), Err: err}
		}

		data, err := c.encode(img)
		if err != nil {
			return nil, &CaptureError{Op: fmt.Sprintf("encode window %d", win.ID), Err: err}
		}

		return &CapturedWindow{Info: win, data: data}, nil
	}

	return nil, nil
}

// CaptureAllWindows captures every window surviving the same filter
// pipeline as ListWindows. Per-window capture or encode failures are
// absorbed and the window omitted, so one vanished window cannot sink
// the whole batch; only the initial enumeration fails hard. Windows are
// captured sequentially in enumeration order.
func (c *Catalog) CaptureAllWindows(includeMinimized, filterSystem bool) ([]*CapturedWindow, error) {
	windows, err := c.ListWindows(includeMinimized, filterSystem)
	if err != nil {
		return nil, err
	}

	captured := make([]*CapturedWindow, 0, len(windows))
	for _, win := range windows {
		img, err := c.backend.CaptureWindow(win.ID)
		if err != nil {
			utils.Verbose("skipping window %d (%s): %v", win.ID, win.AppName, err)
			continue
		}

		data, err := c.encode(img)
		if err != nil {
			utils.Verbose("skipping window %d (%s): %v", win.ID, win.AppName, err)
			continue
		}

		captured = append(captured, &CapturedWindow{Info: win, data: data})
	}

	return captured, nil
}

// CaptureScreen captures one monitor as a full frame. A nil monitorID
// selects the first enumerated monitor (the positional primary). An
// empty monitor list or an unmatched id is an error wrapping
// ErrNoMonitor, deliberately asymmetric with CaptureWindow's empty
// result.
func (c *Catalog) CaptureScreen(monitorID *uint32) (*CapturedScreen, error) {
	monitors, err := c.ListMonitors()
	if err != nil {
		return nil, err
	}

	var target *types.MonitorInfo
	if monitorID != nil {
		for i := range monitors {
			if monitors[i].ID == *monitorID {
				target = &monitors[i]
				break
			}
		}
	} else if len(monitors) > 0 {
		target = &monitors[0]
	}

	if target == nil {
		return nil, ErrNoMonitor
	}

	img, err := c.backend.CaptureMonitor(target.ID)
	if err != nil {
		return nil, &CaptureError{Op: fmt.Sprintf("capture monitor %d", target.ID), Err: err}
	}

	data, err := c.encode(img)
	if err != nil {
		return nil, &CaptureError{Op: fmt.Sprintf("encode monitor %d", target.ID), Err: err}
	}

	return &CapturedScreen{Monitor: *target, data: data}, nil
}

// CaptureScreenWithWindows captures one monitor and all visible windows
// as two independent, sequential backend queries. The two captures are
// not atomic: OS state may change in between, and the results may be
// mutually inconsistent.
func (c *Catalog) CaptureScreenWithWindows(monitorID *uint32, includeMinimized, filterSystem bool) (*CapturedScreen, []*CapturedWindow, error) {
	captureScreen, err := c.CaptureScreen(monitorID)
	if err != nil {
		return nil, nil, err
	}

	windows, err := c.CaptureAllWindows(includeMinimized, filterSystem)
	if err != nil {
		return nil, nil, err
	}

	return captureScreen, windows, nil
}

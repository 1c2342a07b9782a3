package screen

import (
	"fmt"
	"image"

	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"

	"github.com/desktop-next/desktopcli/types"
	"github.com/desktop-next/desktopcli/utils"
)

// x11Backend talks to the X server directly. Window enumeration uses the
// EWMH _NET_CLIENT_LIST maintained by the window manager, monitors come
// from RandR CRTCs, and pixels from xproto.GetImage.
type x11Backend struct {
	xu   *xgbutil.XUtil
	root xproto.Window
}

func newX11Backend() (*x11Backend, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X server: %w", err)
	}

	if err := randr.Init(xu.Conn()); err != nil {
		utils.Verbose("RandR unavailable, monitor enumeration will fail: %v", err)
	}

	return &x11Backend{
		xu:   xu,
		root: xu.RootWin(),
	}, nil
}

func (b *x11Backend) Close() error {
	b.xu.Conn().Close()
	return nil
}

// ListWindows enumerates the window manager's client list in stacking
// order. Windows whose properties cannot be read are skipped, matching
// how short-lived windows vanish mid-enumeration.
func (b *x11Backend) ListWindows() ([]types.WindowInfo, error) {
	clients, err := ewmh.ClientListGet(b.xu)
	if err != nil {
		return nil, fmt.Errorf("failed to read _NET_CLIENT_LIST: %w", err)
	}

	windows := make([]types.WindowInfo, 0, len(clients))
	for _, win := range clients {
		info, err := b.windowInfo(win)
		if err != nil {
			utils.Verbose("skipping window 0x%x: %v", uint32(win), err)
			continue
		}
		windows = append(windows, info)
	}

	return windows, nil
}

func (b *x11Backend) windowInfo(win xproto.Window) (types.WindowInfo, error) {
	geom, err := xproto.GetGeometry(b.xu.Conn(), xproto.Drawable(win)).Reply()
	if err != nil {
		return types.WindowInfo{}, fmt.Errorf("failed to get geometry: %w", err)
	}

	// window coordinates are relative to the parent; translate to root
	x, y := int(geom.X), int(geom.Y)
	if coords, err := xproto.TranslateCoordinates(b.xu.Conn(), win, b.root, 0, 0).Reply(); err == nil {
		x, y = int(coords.DstX), int(coords.DstY)
	}

	title, err := ewmh.WmNameGet(b.xu, win)
	if err != nil || title == "" {
		// fall back to the ICCCM name for non-EWMH clients
		title, _ = icccm.WmNameGet(b.xu, win)
	}

	appName := ""
	if class, err := icccm.WmClassGet(b.xu, win); err == nil {
		appName = class.Class
		if appName == "" {
			appName = class.Instance
		}
	}

	return types.WindowInfo{
		ID:          uint32(win),
		AppName:     appName,
		Title:       title,
		X:           x,
		Y:           y,
		Width:       uint32(geom.Width),
		Height:      uint32(geom.Height),
		IsMinimized: b.isMinimized(win),
	}, nil
}

func (b *x11Backend) isMinimized(win xproto.Window) bool {
	states, err := ewmh.WmStateGet(b.xu, win)
	if err != nil {
		return false
	}
	for _, state := range states {
		if state == "_NET_WM_STATE_HIDDEN" {
			return true
		}
	}
	return false
}

// ListMonitors queries active RandR CRTCs. The monitor id is the
// enumeration index, stable for the duration of one call.
func (b *x11Backend) ListMonitors() ([]types.MonitorInfo, error) {
	resources, err := randr.GetScreenResources(b.xu.Conn(), b.root).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to get screen resources: %w", err)
	}

	var monitors []types.MonitorInfo
	for _, crtc := range resources.Crtcs {
		crtcInfo, err := randr.GetCrtcInfo(b.xu.Conn(), crtc, resources.ConfigTimestamp).Reply()
		if err != nil {
			continue
		}

		// disabled CRTCs have no geometry and no outputs
		if crtcInfo.Width == 0 || crtcInfo.Height == 0 || len(crtcInfo.Outputs) == 0 {
			continue
		}

		id := uint32(len(monitors))
		name := fmt.Sprintf("Monitor%d", id)
		if outputInfo, err := randr.GetOutputInfo(b.xu.Conn(), crtcInfo.Outputs[0], resources.ConfigTimestamp).Reply(); err == nil {
			name = string(outputInfo.Name)
		}

		monitors = append(monitors, types.MonitorInfo{
			ID:     id,
			Name:   name,
			X:      int(crtcInfo.X),
			Y:      int(crtcInfo.Y),
			Width:  uint32(crtcInfo.Width),
			Height: uint32(crtcInfo.Height),
		})
	}

	return monitors, nil
}

// CaptureWindow grabs the window's current contents. Obscured regions
// may come back stale on non-compositing window managers.
func (b *x11Backend) CaptureWindow(id uint32) (*image.RGBA, error) {
	win := xproto.Window(id)

	geom, err := xproto.GetGeometry(b.xu.Conn(), xproto.Drawable(win)).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to get window geometry: %w", err)
	}

	return b.grabDrawable(xproto.Drawable(win), 0, 0, geom.Width, geom.Height)
}

// CaptureMonitor grabs the monitor's rectangle from the root window.
func (b *x11Backend) CaptureMonitor(id uint32) (*image.RGBA, error) {
	monitors, err := b.ListMonitors()
	if err != nil {
		return nil, err
	}

	for _, m := range monitors {
		if m.ID == id {
			return b.grabDrawable(xproto.Drawable(b.root), int16(m.X), int16(m.Y), uint16(m.Width), uint16(m.Height))
		}
	}

	return nil, fmt.Errorf("monitor %d is no longer present", id)
}

func (b *x11Backend) grabDrawable(drawable xproto.Drawable, x, y int16, width, height uint16) (*image.RGBA, error) {
	reply, err := xproto.GetImage(
		b.xu.Conn(),
		xproto.ImageFormatZPixmap,
		drawable,
		x, y,
		width, height,
		0xffffffff,
	).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to get image: %w", err)
	}

	return b.convertImageData(reply.Data, int(width), int(height)), nil
}

// convertImageData turns X11 ZPixmap data (BGRA at depth 24/32) into an
// opaque RGBA image.
func (b *x11Backend) convertImageData(data []byte, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			src := (y*width + x) * 4
			if src+3 >= len(data) {
				break
			}
			dst := img.PixOffset(x, y)
			img.Pix[dst+0] = data[src+2]
			img.Pix[dst+1] = data[src+1]
			img.Pix[dst+2] = data[src+0]
			img.Pix[dst+3] = 255
		}
	}

	return img
}

package screen

import (
	"errors"
	"fmt"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/desktop-next/desktopcli/types"
)

// fakeBackend scripts backend behavior for catalog and capture tests.
type fakeBackend struct {
	windows     []types.WindowInfo
	monitors    []types.MonitorInfo
	listErr     error
	monitorsErr error

	// capture failures by target id
	captureErr map[uint32]error

	captureCalls int
	closed       bool
}

func (f *fakeBackend) ListWindows() ([]types.WindowInfo, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.windows, nil
}

func (f *fakeBackend) ListMonitors() ([]types.MonitorInfo, error) {
	if f.monitorsErr != nil {
		return nil, f.monitorsErr
	}
	return f.monitors, nil
}

func (f *fakeBackend) CaptureWindow(id uint32) (*image.RGBA, error) {
	f.captureCalls++
	if err := f.captureErr[id]; err != nil {
		return nil, err
	}
	return testImage(4, 4), nil
}

func (f *fakeBackend) CaptureMonitor(id uint32) (*image.RGBA, error) {
	f.captureCalls++
	if err := f.captureErr[id]; err != nil {
		return nil, err
	}
	return testImage(8, 8), nil
}

func (f *fakeBackend) Close() error {
	f.closed = true
	return nil
}

func testImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = uint8(i % 251)
	}
	return img
}

func testWindow(id uint32, appName, title string, width, height uint32, minimized bool) types.WindowInfo {
	return types.WindowInfo{
		ID:          id,
		AppName:     appName,
		Title:       title,
		X:           10,
		Y:           20,
		Width:       width,
		Height:      height,
		IsMinimized: minimized,
	}
}

func newTestCatalog(backend Backend) *Catalog {
	return NewCatalog(backend, BlocklistFor("macos"))
}

func TestListWindows_FilterPipeline(t *testing.T) {
	backend := &fakeBackend{
		windows: []types.WindowInfo{
			testWindow(1, "Firefox", "Mozilla Firefox", 800, 600, false),
			testWindow(2, "Dock", "Dock", 1920, 40, false),
			testWindow(3, "TextEdit", "Untitled", 400, 300, true),
			testWindow(4, "Ghost", "Ghost", 0, 100, false),
			testWindow(5, "Terminal", "", 640, 480, false),
		},
	}
	catalog := newTestCatalog(backend)

	windows, err := catalog.ListWindows(false, true)
	require.NoError(t, err)

	// only Firefox survives: Dock is blocklisted, TextEdit is minimized,
	// Ghost has zero width, Terminal has an empty title
	require.Len(t, windows, 1)
	assert.Equal(t, uint32(1), windows[0].ID)
}

func TestListWindows_IncludeMinimized(t *testing.T) {
	backend := &fakeBackend{
		windows: []types.WindowInfo{
			testWindow(1, "Firefox", "Mozilla Firefox", 800, 600, false),
			testWindow(2, "TextEdit", "Untitled", 400, 300, true),
		},
	}
	catalog := newTestCatalog(backend)

	windows, err := catalog.ListWindows(true, true)
	require.NoError(t, err)
	assert.Len(t, windows, 2)
}

func TestListWindows_NoSystemFilter(t *testing.T) {
	backend := &fakeBackend{
		windows: []types.WindowInfo{
			testWindow(1, "Dock", "Dock", 1920, 40, false),
			testWindow(2, "Terminal", "", 640, 480, false),
		},
	}
	catalog := newTestCatalog(backend)

	windows, err := catalog.ListWindows(false, false)
	require.NoError(t, err)

	// with filtering off even chrome and untitled windows come through
	assert.Len(t, windows, 2)
}

func TestListWindows_ZeroAreaAlwaysExcluded(t *testing.T) {
	backend := &fakeBackend{
		windows: []types.WindowInfo{
			testWindow(1, "Firefox", "Mozilla Firefox", 800, 600, false),
			testWindow(2, "Zero", "Zero Width", 0, 600, false),
			testWindow(3, "Zero", "Zero Height", 800, 0, false),
		},
	}
	catalog := newTestCatalog(backend)

	// zero-area exclusion is independent of the filterSystem switch
	for _, filterSystem := range []bool{true, false} {
		windows, err := catalog.ListWindows(false, filterSystem)
		require.NoError(t, err)
		require.Len(t, windows, 1, "filterSystem=%v", filterSystem)
		assert.Equal(t, uint32(1), windows[0].ID)
	}
}

func TestListWindows_PreservesEnumerationOrder(t *testing.T) {
	backend := &fakeBackend{
		windows: []types.WindowInfo{
			testWindow(30, "AppC", "C", 100, 100, false),
			testWindow(10, "AppA", "A", 100, 100, false),
			testWindow(20, "AppB", "B", 100, 100, false),
		},
	}
	catalog := newTestCatalog(backend)

	windows, err := catalog.ListWindows(false, true)
	require.NoError(t, err)
	require.Len(t, windows, 3)
	assert.Equal(t, uint32(30), windows[0].ID)
	assert.Equal(t, uint32(10), windows[1].ID)
	assert.Equal(t, uint32(20), windows[2].ID)
}

func TestListWindows_EnumerationError(t *testing.T) {
	backend := &fakeBackend{listErr: errors.New("compositor unavailable")}
	catalog := newTestCatalog(backend)

	_, err := catalog.ListWindows(false, true)
	require.Error(t, err)

	var enumErr *EnumerationError
	require.ErrorAs(t, err, &enumErr)
	assert.Contains(t, err.Error(), "compositor unavailable")
}

func TestListMonitors_PrimaryIsFirst(t *testing.T) {
	backend := &fakeBackend{
		monitors: []types.MonitorInfo{
			{ID: 7, Name: "DP-1", Width: 2560, Height: 1440},
			{ID: 3, Name: "HDMI-1", X: 2560, Width: 1920, Height: 1080},
			{ID: 9, Name: "eDP-1", X: 4480, Width: 1920, Height: 1200},
		},
	}
	catalog := newTestCatalog(backend)

	monitors, err := catalog.ListMonitors()
	require.NoError(t, err)
	require.Len(t, monitors, 3)

	// exactly the first entry is primary, regardless of its id
	assert.True(t, monitors[0].IsPrimary)
	assert.False(t, monitors[1].IsPrimary)
	assert.False(t, monitors[2].IsPrimary)
	assert.Equal(t, uint32(7), monitors[0].ID)
}

func TestListMonitors_Empty(t *testing.T) {
	catalog := newTestCatalog(&fakeBackend{})

	monitors, err := catalog.ListMonitors()
	require.NoError(t, err)
	assert.Empty(t, monitors)
}

func TestListMonitors_EnumerationError(t *testing.T) {
	backend := &fakeBackend{monitorsErr: fmt.Errorf("randr init failed")}
	catalog := newTestCatalog(backend)

	_, err := catalog.ListMonitors()
	var enumErr *EnumerationError
	require.ErrorAs(t, err, &enumErr)
	assert.Equal(t, "monitors", enumErr.Op)
}

func TestCatalogClose(t *testing.T) {
	backend := &fakeBackend{}
	catalog := newTestCatalog(backend)

	require.NoError(t, catalog.Close())
	assert.True(t, backend.closed)
}

package server

import (
	"bytes"
	"encoding/json"
	"image"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/desktop-next/desktopcli/commands"
	"github.com/desktop-next/desktopcli/screen"
	"github.com/desktop-next/desktopcli/types"
)

// fakeBackend gives the RPC handlers a scripted capture source.
type fakeBackend struct {
	windows  []types.WindowInfo
	monitors []types.MonitorInfo
}

func (f *fakeBackend) ListWindows() ([]types.WindowInfo, error)   { return f.windows, nil }
func (f *fakeBackend) ListMonitors() ([]types.MonitorInfo, error) { return f.monitors, nil }

func (f *fakeBackend) CaptureWindow(id uint32) (*image.RGBA, error) {
	return image.NewRGBA(image.Rect(0, 0, 4, 4)), nil
}

func (f *fakeBackend) CaptureMonitor(id uint32) (*image.RGBA, error) {
	return image.NewRGBA(image.Rect(0, 0, 8, 8)), nil
}

func (f *fakeBackend) Close() error { return nil }

func useBackend(t *testing.T, backend *fakeBackend) {
	t.Helper()
	commands.SetCatalog(screen.NewCatalog(backend, screen.BlocklistFor("macos")))
	t.Cleanup(func() { commands.SetCatalog(nil) })
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(NewHandler(false))
	t.Cleanup(ts.Close)
	return ts
}

func postRPC(t *testing.T, ts *httptest.Server, body string) JSONRPCResponse {
	t.Helper()

	resp, err := http.Post(ts.URL+"/rpc", "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var rpcResp JSONRPCResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rpcResp))
	return rpcResp
}

func rpcErrorCode(t *testing.T, resp JSONRPCResponse) int {
	t.Helper()
	errObj, ok := resp.Error.(map[string]interface{})
	require.True(t, ok, "expected an error object, got %v", resp.Error)
	return int(errObj["code"].(float64))
}

func TestBanner(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
}

func TestRPCRejectsGet(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/rpc")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestRPCParseError(t *testing.T) {
	ts := newTestServer(t)

	resp := postRPC(t, ts, `{not json`)
	assert.Equal(t, ErrCodeParseError, rpcErrorCode(t, resp))
}

func TestRPCInvalidVersion(t *testing.T) {
	ts := newTestServer(t)

	resp := postRPC(t, ts, `{"jsonrpc":"1.0","method":"platform","id":1}`)
	assert.Equal(t, ErrCodeInvalidRequest, rpcErrorCode(t, resp))
}

func TestRPCMissingID(t *testing.T) {
	ts := newTestServer(t)

	resp := postRPC(t, ts, `{"jsonrpc":"2.0","method":"platform"}`)
	assert.Equal(t, ErrCodeInvalidRequest, rpcErrorCode(t, resp))
}

func TestRPCMissingMethod(t *testing.T) {
	ts := newTestServer(t)

	resp := postRPC(t, ts, `{"jsonrpc":"2.0","id":1}`)
	assert.Equal(t, ErrCodeInvalidRequest, rpcErrorCode(t, resp))
}

func TestRPCMethodNotFound(t *testing.T) {
	ts := newTestServer(t)

	resp := postRPC(t, ts, `{"jsonrpc":"2.0","method":"no_such_method","id":1}`)
	assert.Equal(t, ErrCodeMethodNotFound, rpcErrorCode(t, resp))
}

func TestRPCPlatform(t *testing.T) {
	ts := newTestServer(t)

	resp := postRPC(t, ts, `{"jsonrpc":"2.0","method":"platform","id":7}`)
	require.Nil(t, resp.Error)
	assert.Equal(t, float64(7), resp.ID)

	result, ok := resp.Result.(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, []interface{}{"macos", "windows", "linux", "unknown"}, result["platform"])
}

func TestRPCWindows(t *testing.T) {
	useBackend(t, &fakeBackend{
		windows: []types.WindowInfo{
			{ID: 1, AppName: "Firefox", Title: "Mozilla Firefox", Width: 100, Height: 100},
			{ID: 2, AppName: "Dock", Title: "Dock", Width: 100, Height: 100},
		},
	})
	ts := newTestServer(t)

	resp := postRPC(t, ts, `{"jsonrpc":"2.0","method":"windows","id":1}`)
	require.Nil(t, resp.Error)

	result := resp.Result.(map[string]interface{})
	windows := result["windows"].([]interface{})

	// filterSystem defaults to true when params are omitted
	require.Len(t, windows, 1)
	win := windows[0].(map[string]interface{})
	assert.Equal(t, "Firefox", win["appName"])
}

func TestRPCWindowsNoFilter(t *testing.T) {
	useBackend(t, &fakeBackend{
		windows: []types.WindowInfo{
			{ID: 1, AppName: "Firefox", Title: "Mozilla Firefox", Width: 100, Height: 100},
			{ID: 2, AppName: "Dock", Title: "Dock", Width: 100, Height: 100},
		},
	})
	ts := newTestServer(t)

	resp := postRPC(t, ts, `{"jsonrpc":"2.0","method":"windows","params":{"filterSystem":false},"id":1}`)
	require.Nil(t, resp.Error)

	result := resp.Result.(map[string]interface{})
	assert.Len(t, result["windows"].([]interface{}), 2)
}

func TestRPCCaptureWindowRequiresID(t *testing.T) {
	ts := newTestServer(t)

	resp := postRPC(t, ts, `{"jsonrpc":"2.0","method":"capture_window","params":{},"id":1}`)
	assert.Equal(t, ErrCodeServerError, rpcErrorCode(t, resp))
}

func TestRPCCaptureScreen(t *testing.T) {
	useBackend(t, &fakeBackend{
		monitors: []types.MonitorInfo{
			{ID: 0, Name: "DP-1", Width: 1920, Height: 1080},
		},
	})
	ts := newTestServer(t)

	resp := postRPC(t, ts, `{"jsonrpc":"2.0","method":"capture_screen","id":1}`)
	require.Nil(t, resp.Error)

	result := resp.Result.(map[string]interface{})
	assert.Equal(t, "png", result["format"])
	assert.NotEmpty(t, result["data"])
	monitor := result["monitor"].(map[string]interface{})
	assert.Equal(t, "DP-1", monitor["name"])
}

func TestExecuteMethodNotFound(t *testing.T) {
	_, err := Execute("bogus", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "method not found")
}

func TestExecutePlatform(t *testing.T) {
	result, err := Execute("platform", nil)
	require.NoError(t, err)

	data, ok := result.(map[string]interface{})
	require.True(t, ok)
	assert.NotEmpty(t, data["platform"])
}

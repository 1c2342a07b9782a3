package server

import (
	"encoding/json"
	"fmt"

	"github.com/desktop-next/desktopcli/commands"
)

// HandlerFunc is the signature for non-streaming JSON-RPC method handlers
type HandlerFunc func(params json.RawMessage) (interface{}, error)

// GetMethodRegistry returns a map of method names to handler functions
// This is used by both the HTTP server and the WebSocket endpoint
func GetMethodRegistry() map[string]HandlerFunc {
	return map[string]HandlerFunc{
		"platform":                    handlePlatform,
		"monitors":                    handleMonitors,
		"windows":                     handleWindows,
		"capture_window":              handleCaptureWindow,
		"capture_all_windows":         handleCaptureAllWindows,
		"capture_screen":              handleCaptureScreen,
		"capture_screen_with_windows": handleCaptureScreenWithWindows,
	}
}

// Execute dispatches a method call using the registry
// This is the main entry point for embedded clients
func Execute(method string, params json.RawMessage) (interface{}, error) {
	registry := GetMethodRegistry()

	handler, exists := registry[method]
	if !exists {
		return nil, fmt.Errorf("method not found: %s", method)
	}

	return handler(params)
}

// ListParams represents the enumeration parameters shared by windows
// and batch-capture methods. FilterSystem defaults to true when omitted.
type ListParams struct {
	IncludeMinimized bool  `json:"includeMinimized,omitempty"`
	FilterSystem     *bool `json:"filterSystem,omitempty"`
}

func (p ListParams) filterSystem() bool {
	if p.FilterSystem == nil {
		return true
	}
	return *p.FilterSystem
}

// CaptureParams represents the parameters for capture methods. The
// server always returns base64 data; file output is a CLI concern.
type CaptureParams struct {
	ListParams
	WindowID  *uint32 `json:"windowId,omitempty"`
	MonitorID *uint32 `json:"monitorId,omitempty"`
	Format    string  `json:"format,omitempty"`  // "png" or "jpeg"
	Quality   int     `json:"quality,omitempty"` // 1-100, only used for JPEG
}

func handlePlatform(params json.RawMessage) (interface{}, error) {
	response := commands.PlatformCommand()
	if response.Status == "error" {
		return nil, fmt.Errorf("%s", response.Error)
	}
	return response.Data, nil
}

func handleMonitors(params json.RawMessage) (interface{}, error) {
	response := commands.MonitorsCommand()
	if response.Status == "error" {
		return nil, fmt.Errorf("%s", response.Error)
	}
	return response.Data, nil
}

func handleWindows(params json.RawMessage) (interface{}, error) {
	var listParams ListParams
	if len(params) > 0 {
		if err := json.Unmarshal(params, &listParams); err != nil {
			return nil, fmt.Errorf("invalid parameters: %v. Expected fields: includeMinimized, filterSystem", err)
		}
	}

	response := commands.WindowsCommand(commands.WindowsRequest{
		IncludeMinimized: listParams.IncludeMinimized,
		FilterSystem:     listParams.filterSystem(),
	})
	if response.Status == "error" {
		return nil, fmt.Errorf("%s", response.Error)
	}

	return response.Data, nil
}

func handleCaptureWindow(params json.RawMessage) (interface{}, error) {
	if len(params) == 0 {
		return nil, fmt.Errorf("'params' is required with fields: windowId")
	}

	var captureParams CaptureParams
	if err := json.Unmarshal(params, &captureParams); err != nil {
		return nil, fmt.Errorf("invalid parameters: %v. Expected fields: windowId, format, quality", err)
	}

	if captureParams.WindowID == nil {
		return nil, fmt.Errorf("'windowId' is required")
	}

	req := commands.ScreenshotRequest{
		WindowID:   captureParams.WindowID,
		Format:     captureParams.Format,
		Quality:    captureParams.Quality,
		OutputPath: "-", // Always return base64 data for server
	}

	response := commands.CaptureWindowCommand(req)
	if response.Status == "error" {
		return nil, fmt.Errorf("%s", response.Error)
	}

	return response.Data, nil
}

func handleCaptureScreen(params json.RawMessage) (interface{}, error) {
	var captureParams CaptureParams
	if len(params) > 0 {
		if err := json.Unmarshal(params, &captureParams); err != nil {
			return nil, fmt.Errorf("invalid parameters: %v. Expected fields: monitorId, format, quality", err)
		}
	}

	req := commands.ScreenshotRequest{
		MonitorID:  captureParams.MonitorID,
		Format:     captureParams.Format,
		Quality:    captureParams.Quality,
		OutputPath: "-", // Always return base64 data for server
	}

	response := commands.CaptureScreenCommand(req)
	if response.Status == "error" {
		return nil, fmt.Errorf("%s", response.Error)
	}

	return response.Data, nil
}

func handleCaptureAllWindows(params json.RawMessage) (interface{}, error) {
	var captureParams CaptureParams
	if len(params) > 0 {
		if err := json.Unmarshal(params, &captureParams); err != nil {
			return nil, fmt.Errorf("invalid parameters: %v. Expected fields: includeMinimized, filterSystem, format, quality", err)
		}
	}

	response := commands.CaptureAllWindowsCommand(commands.CaptureAllRequest{
		IncludeMinimized: captureParams.IncludeMinimized,
		FilterSystem:     captureParams.filterSystem(),
		Format:           captureParams.Format,
		Quality:          captureParams.Quality,
		OutputPath:       "-",
	})
	if response.Status == "error" {
		return nil, fmt.Errorf("%s", response.Error)
	}

	return response.Data, nil
}

func handleCaptureScreenWithWindows(params json.RawMessage) (interface{}, error) {
	var captureParams CaptureParams
	if len(params) > 0 {
		if err := json.Unmarshal(params, &captureParams); err != nil {
			return nil, fmt.Errorf("invalid parameters: %v. Expected fields: monitorId, includeMinimized, filterSystem, format, quality", err)
		}
	}

	response := commands.CaptureScreenWithWindowsCommand(commands.CaptureAllRequest{
		IncludeMinimized: captureParams.IncludeMinimized,
		FilterSystem:     captureParams.filterSystem(),
		MonitorID:        captureParams.MonitorID,
		Format:           captureParams.Format,
		Quality:          captureParams.Quality,
		OutputPath:       "-",
	})
	if response.Status == "error" {
		return nil, fmt.Errorf("%s", response.Error)
	}

	return response.Data, nil
}

package commands

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/desktop-next/desktopcli/screen"
	"github.com/desktop-next/desktopcli/types"
	"github.com/desktop-next/desktopcli/utils"
)

// ScreenshotRequest represents the parameters for a single-target capture
type ScreenshotRequest struct {
	WindowID   *uint32 `json:"windowId,omitempty"`  // capture this window
	MonitorID  *uint32 `json:"monitorId,omitempty"` // capture this monitor; nil means primary
	Format     string  `json:"format,omitempty"`    // "png" or "jpeg"
	Quality    int     `json:"quality,omitempty"`   // 1-100, only used for JPEG
	OutputPath string  `json:"outputPath,omitempty"`
}

// CaptureAllRequest represents the parameters for batch window capture
type CaptureAllRequest struct {
	IncludeMinimized bool    `json:"includeMinimized,omitempty"`
	FilterSystem     bool    `json:"filterSystem"`
	MonitorID        *uint32 `json:"monitorId,omitempty"` // only used by the combined capture
	Format           string  `json:"format,omitempty"`
	Quality          int     `json:"quality,omitempty"`
	OutputPath       string  `json:"outputPath,omitempty"` // "-" for base64, else output directory
}

// CapturedImage is the JSON-friendly shape of one encoded capture
type CapturedImage struct {
	Window   *types.WindowInfo  `json:"window,omitempty"`
	Monitor  *types.MonitorInfo `json:"monitor,omitempty"`
	Format   string             `json:"format"`
	Data     string             `json:"data,omitempty"`     // base64 encoded image data
	FilePath string             `json:"filePath,omitempty"` // path where file was saved
}

// normalizeFormat validates the requested image format and fills in
// defaults: png unless asked otherwise, jpeg quality clamped to 90 when
// out of range.
func normalizeFormat(format string, quality int) (string, int, error) {
	if format == "" {
		format = "png"
	}

	format = strings.ToLower(format)
	if format != "png" && format != "jpeg" {
		return "", 0, fmt.Errorf("invalid format '%s'. Supported formats are 'png' and 'jpeg'", format)
	}

	if format == "jpeg" {
		if quality < 1 || quality > 100 {
			quality = 90
		}
	}

	return format, quality, nil
}

// renderImage converts the catalog's canonical PNG bytes to the
// requested output format.
func renderImage(pngBytes []byte, format string, quality int) ([]byte, error) {
	if format != "jpeg" {
		return pngBytes, nil
	}

	return utils.ConvertPngToJpeg(pngBytes, quality)
}

func formatExtension(format string) string {
	if format == "jpeg" {
		return "jpg"
	}
	return "png"
}

// writeOutput routes encoded bytes: "-" returns base64 data, a path
// writes the file, empty generates a timestamped filename from the
// given stem.
func writeOutput(imageBytes []byte, outputPath, stem, format string, out *CapturedImage) error {
	out.Format = format

	if outputPath == "-" {
		out.Data = base64.StdEncoding.EncodeToString(imageBytes)
		return nil
	}

	var finalPath string
	var err error
	if outputPath != "" {
		finalPath, err = filepath.Abs(outputPath)
		if err != nil {
			return fmt.Errorf("invalid output path: %v", err)
		}
	} else {
		timestamp := time.Now().Format("20060102150405")
		fileName := fmt.Sprintf("%s-%s.%s", stem, timestamp, formatExtension(format))
		finalPath, err = filepath.Abs("./" + fileName)
		if err != nil {
			return fmt.Errorf("error creating default path: %v", err)
		}
	}

	if err := os.WriteFile(finalPath, imageBytes, 0o600); err != nil {
		return fmt.Errorf("error writing file: %v", err)
	}

	out.FilePath = finalPath
	return nil
}

// CaptureWindowCommand captures a single window by id. A window id that
// matches nothing yields {"window": null} with status ok: the window
// has gone away, which is not an error.
func CaptureWindowCommand(req ScreenshotRequest) *CommandResponse {
	if req.WindowID == nil {
		return NewErrorResponse(fmt.Errorf("'windowId' is required"))
	}

	format, quality, err := normalizeFormat(req.Format, req.Quality)
	if err != nil {
		return NewErrorResponse(err)
	}

	catalog, err := getCatalog()
	if err != nil {
		return NewErrorResponse(err)
	}

	captured, err := catalog.CaptureWindow(*req.WindowID)
	if err != nil {
		return NewErrorResponse(fmt.Errorf("error capturing window: %v", err))
	}

	if captured == nil {
		return NewSuccessResponse(map[string]interface{}{
			"window": nil,
		})
	}

	imageBytes, err := renderImage(captured.ImageBytes(), format, quality)
	if err != nil {
		return NewErrorResponse(fmt.Errorf("error converting to JPEG: %v", err))
	}

	result := CapturedImage{Window: &captured.Info}
	stem := fmt.Sprintf("window-%d", captured.Info.ID)
	if err := writeOutput(imageBytes, req.OutputPath, stem, format, &result); err != nil {
		return NewErrorResponse(err)
	}

	return NewSuccessResponse(result)
}

// CaptureScreenCommand captures one monitor, defaulting to the primary
// (first enumerated) monitor when no id is given. An empty monitor list
// or unmatched id is an error, unlike the window case.
func CaptureScreenCommand(req ScreenshotRequest) *CommandResponse {
	format, quality, err := normalizeFormat(req.Format, req.Quality)
	if err != nil {
		return NewErrorResponse(err)
	}

	catalog, err := getCatalog()
	if err != nil {
		return NewErrorResponse(err)
	}

	captured, err := catalog.CaptureScreen(req.MonitorID)
	if err != nil {
		return NewErrorResponse(fmt.Errorf("error capturing screen: %v", err))
	}

	imageBytes, err := renderImage(captured.ImageBytes(), format, quality)
	if err != nil {
		return NewErrorResponse(fmt.Errorf("error converting to JPEG: %v", err))
	}

	result := CapturedImage{Monitor: &captured.Monitor}
	stem := fmt.Sprintf("screen-%d", captured.Monitor.ID)
	if err := writeOutput(imageBytes, req.OutputPath, stem, format, &result); err != nil {
		return NewErrorResponse(err)
	}

	return NewSuccessResponse(result)
}

// CaptureAllWindowsCommand captures every window surviving the filter
// pipeline. Windows that fail to capture or encode are omitted from the
// result, never surfaced as errors; only enumeration failure is fatal.
func CaptureAllWindowsCommand(req CaptureAllRequest) *CommandResponse {
	format, quality, err := normalizeFormat(req.Format, req.Quality)
	if err != nil {
		return NewErrorResponse(err)
	}

	catalog, err := getCatalog()
	if err != nil {
		return NewErrorResponse(err)
	}

	captured, err := catalog.CaptureAllWindows(req.IncludeMinimized, req.FilterSystem)
	if err != nil {
		return NewErrorResponse(fmt.Errorf("error capturing windows: %v", err))
	}

	images, err := renderCapturedWindows(captured, req, format, quality)
	if err != nil {
		return NewErrorResponse(err)
	}

	return NewSuccessResponse(map[string]interface{}{
		"windows": images,
		"count":   len(images),
	})
}

// CaptureScreenWithWindowsCommand composes a screen capture with a batch
// window capture as two sequential queries. The two results are not
// guaranteed to describe the same instant.
func CaptureScreenWithWindowsCommand(req CaptureAllRequest) *CommandResponse {
	format, quality, err := normalizeFormat(req.Format, req.Quality)
	if err != nil {
		return NewErrorResponse(err)
	}

	catalog, err := getCatalog()
	if err != nil {
		return NewErrorResponse(err)
	}

	capturedScreen, capturedWindows, err := catalog.CaptureScreenWithWindows(req.MonitorID, req.IncludeMinimized, req.FilterSystem)
	if err != nil {
		return NewErrorResponse(fmt.Errorf("error capturing screen: %v", err))
	}

	screenBytes, err := renderImage(capturedScreen.ImageBytes(), format, quality)
	if err != nil {
		return NewErrorResponse(fmt.Errorf("error converting to JPEG: %v", err))
	}

	screenImage := CapturedImage{Monitor: &capturedScreen.Monitor}
	stem := fmt.Sprintf("screen-%d", capturedScreen.Monitor.ID)
	if err := writeOutput(screenBytes, batchOutputPath(req.OutputPath, stem, format), stem, format, &screenImage); err != nil {
		return NewErrorResponse(err)
	}

	images, err := renderCapturedWindows(capturedWindows, req, format, quality)
	if err != nil {
		return NewErrorResponse(err)
	}

	return NewSuccessResponse(map[string]interface{}{
		"screen":  screenImage,
		"windows": images,
		"count":   len(images),
	})
}

// renderCapturedWindows converts a batch of captures to the requested
// format and routes each one to its output.
func renderCapturedWindows(captured []*screen.CapturedWindow, req CaptureAllRequest, format string, quality int) ([]CapturedImage, error) {
	images := make([]CapturedImage, 0, len(captured))
	for _, cw := range captured {
		imageBytes, err := renderImage(cw.ImageBytes(), format, quality)
		if err != nil {
			return nil, fmt.Errorf("error converting to JPEG: %v", err)
		}

		stem := fmt.Sprintf("window-%d", cw.Info.ID)
		img := CapturedImage{Window: &cw.Info}
		if err := writeOutput(imageBytes, batchOutputPath(req.OutputPath, stem, format), stem, format, &img); err != nil {
			return nil, err
		}

		images = append(images, img)
	}

	return images, nil
}

// batchOutputPath resolves one item's destination inside a batch:
// "-" keeps streaming base64, anything else is a directory that gets a
// timestamped file per item.
func batchOutputPath(outputPath, stem, format string) string {
	if outputPath == "-" || outputPath == "" {
		return outputPath
	}

	timestamp := time.Now().Format("20060102150405")
	fileName := fmt.Sprintf("%s-%s.%s", stem, timestamp, formatExtension(format))
	return filepath.Join(outputPath, fileName)
}

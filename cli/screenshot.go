package cli

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/desktop-next/desktopcli/commands"
	"github.com/spf13/cobra"
)

var screenshotCmd = &cobra.Command{
	Use:   "screenshot",
	Short: "Capture a screenshot of a monitor or window",
	Long: `Captures a still screenshot and saves it locally as a PNG file.
By default the primary monitor is captured; --monitor selects another monitor,
--window captures a single window by id, --all-windows captures every visible
window, and --with-windows captures the screen plus every visible window.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if screenshotAllWindows || screenshotWithWindows {
			return runBatchScreenshot(cmd)
		}

		req := commands.ScreenshotRequest{
			Format:     screenshotFormat,
			Quality:    screenshotJpegQuality,
			OutputPath: screenshotOutputPath,
		}
		if cmd.Flags().Changed("monitor") {
			id := screenshotMonitorID
			req.MonitorID = &id
		}

		var response *commands.CommandResponse
		if cmd.Flags().Changed("window") {
			id := screenshotWindowID
			req.WindowID = &id
			response = commands.CaptureWindowCommand(req)
		} else {
			response = commands.CaptureScreenCommand(req)
		}

		// Handle stdout output for binary data
		if screenshotOutputPath == "-" && response.Status == "ok" {
			if captured, ok := response.Data.(commands.CapturedImage); ok && captured.Data != "" {
				imageBytes, err := base64.StdEncoding.DecodeString(captured.Data)
				if err != nil {
					return fmt.Errorf("failed to decode image data: %v", err)
				}
				_, err = os.Stdout.Write(imageBytes)
				if err != nil {
					return fmt.Errorf("failed to write to stdout: %v", err)
				}
				return nil
			}
		}

		printJson(response)
		if response.Status == "error" {
			return fmt.Errorf("%s", response.Error)
		}
		return nil
	},
}

func runBatchScreenshot(cmd *cobra.Command) error {
	req := commands.CaptureAllRequest{
		IncludeMinimized: includeMinimized,
		FilterSystem:     !showSystem,
		Format:           screenshotFormat,
		Quality:          screenshotJpegQuality,
		OutputPath:       screenshotOutputPath,
	}
	if cmd.Flags().Changed("monitor") {
		id := screenshotMonitorID
		req.MonitorID = &id
	}

	var response *commands.CommandResponse
	if screenshotWithWindows {
		response = commands.CaptureScreenWithWindowsCommand(req)
	} else {
		response = commands.CaptureAllWindowsCommand(req)
	}

	printJson(response)
	if response.Status == "error" {
		return fmt.Errorf("%s", response.Error)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(screenshotCmd)

	// screenshot command flags
	screenshotCmd.Flags().Uint32Var(&screenshotWindowID, "window", 0, "ID of the window to capture")
	screenshotCmd.Flags().Uint32Var(&screenshotMonitorID, "monitor", 0, "ID of the monitor to capture (default: primary)")
	screenshotCmd.Flags().BoolVar(&screenshotAllWindows, "all-windows", false, "capture every visible window")
	screenshotCmd.Flags().BoolVar(&screenshotWithWindows, "with-windows", false, "capture the screen and every visible window")
	screenshotCmd.Flags().BoolVar(&includeMinimized, "include-minimized", false, "include minimized windows in batch capture")
	screenshotCmd.Flags().BoolVar(&showSystem, "show-system", false, "include system/chrome windows in batch capture")
	screenshotCmd.Flags().StringVarP(&screenshotOutputPath, "output", "o", "", "Output file path for screenshot (e.g., screen.png, or '-' for stdout)")
	screenshotCmd.Flags().StringVarP(&screenshotFormat, "format", "f", "png", "Output format for screenshot (png or jpeg)")
	screenshotCmd.Flags().IntVarP(&screenshotJpegQuality, "quality", "q", 90, "JPEG quality (1-100, only applies if format is jpeg)")
	screenshotCmd.MarkFlagsMutuallyExclusive("window", "monitor")
	screenshotCmd.MarkFlagsMutuallyExclusive("window", "all-windows", "with-windows")
}

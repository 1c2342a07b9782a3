package screen

import "runtime"

// Platform returns the capture platform identifier: "macos", "windows",
// "linux" or "unknown".
func Platform() string {
	switch runtime.GOOS {
	case "darwin":
		return "macos"
	case "windows":
		return "windows"
	case "linux":
		return "linux"
	default:
		return "unknown"
	}
}

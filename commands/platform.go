package commands

import (
	"github.com/desktop-next/desktopcli/screen"
)

// PlatformCommand reports the capture platform identifier. It never
// fails and does not open a backend connection.
func PlatformCommand() *CommandResponse {
	return NewSuccessResponse(map[string]interface{}{
		"platform": screen.Platform(),
	})
}

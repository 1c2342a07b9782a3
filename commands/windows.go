package commands

// WindowsRequest represents the parameters for listing windows
type WindowsRequest struct {
	IncludeMinimized bool `json:"includeMinimized,omitempty"`
	FilterSystem     bool `json:"filterSystem"`
}

// WindowsCommand lists application windows after the filter pipeline:
// minimized windows are excluded unless requested, system chrome is
// excluded when FilterSystem is set, zero-area windows always.
func WindowsCommand(req WindowsRequest) *CommandResponse {
	catalog, err := getCatalog()
	if err != nil {
		return NewErrorResponse(err)
	}

	windows, err := catalog.ListWindows(req.IncludeMinimized, req.FilterSystem)
	if err != nil {
		return NewErrorResponse(err)
	}

	return NewSuccessResponse(map[string]interface{}{
		"windows": windows,
	})
}

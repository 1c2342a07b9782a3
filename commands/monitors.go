package commands

// MonitorsCommand lists all connected monitors. The first monitor in
// the response carries the primary flag.
func MonitorsCommand() *CommandResponse {
	catalog, err := getCatalog()
	if err != nil {
		return NewErrorResponse(err)
	}

	monitors, err := catalog.ListMonitors()
	if err != nil {
		return NewErrorResponse(err)
	}

	return NewSuccessResponse(map[string]interface{}{
		"monitors": monitors,
	})
}

package cli

var (
	verbose bool

	// for windows command
	includeMinimized bool
	showSystem       bool

	// for screenshot command
	screenshotWindowID    uint32
	screenshotMonitorID   uint32
	screenshotAllWindows  bool
	screenshotWithWindows bool
	screenshotOutputPath  string
	screenshotFormat      string
	screenshotJpegQuality int
)

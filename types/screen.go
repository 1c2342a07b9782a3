package types

// WindowInfo is a snapshot of an application window at enumeration time.
// Instances returned by the catalog always have Width > 0 and Height > 0.
type WindowInfo struct {
	ID          uint32 `json:"id"`
	AppName     string `json:"appName"`
	Title       string `json:"title"`
	X           int    `json:"x"`
	Y           int    `json:"y"`
	Width       uint32 `json:"width"`
	Height      uint32 `json:"height"`
	IsMinimized bool   `json:"isMinimized"`
}

// MonitorInfo is a snapshot of a display at enumeration time.
// IsPrimary marks the monitor at enumeration index 0, by convention.
type MonitorInfo struct {
	ID        uint32 `json:"id"`
	Name      string `json:"name"`
	X         int    `json:"x"`
	Y         int    `json:"y"`
	Width     uint32 `json:"width"`
	Height    uint32 `json:"height"`
	IsPrimary bool   `json:"isPrimary"`
}

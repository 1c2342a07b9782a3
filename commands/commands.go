package commands

import (
	"sync"

	"github.com/desktop-next/desktopcli/screen"
)

// CommandResponse represents a standardized response format for all commands
type CommandResponse struct {
	Status string      `json:"status"`
	Data   interface{} `json:"data,omitempty"`
	Error  string      `json:"error,omitempty"`
}

// NewSuccessResponse creates a success response
func NewSuccessResponse(data interface{}) *CommandResponse {
	return &CommandResponse{
		Status: "ok",
		Data:   data,
	}
}

// NewErrorResponse creates an error response
func NewErrorResponse(err error) *CommandResponse {
	return &CommandResponse{
		Status: "error",
		Error:  err.Error(),
	}
}

// catalog is the process-wide capture catalog, constructed at most once
// on first use and shared by every command afterwards.
var (
	catalogMu sync.Mutex
	catalog   *screen.Catalog
)

// SetCatalog injects the catalog used by all commands. Embedding hosts
// call it once at startup to supply their own backend or blocklist;
// when unset, the platform defaults are constructed on first use.
func SetCatalog(c *screen.Catalog) {
	catalogMu.Lock()
	defer catalogMu.Unlock()
	catalog = c
}

// getCatalog returns the shared catalog, opening the platform backend
// on first use so commands that never touch the OS (platform, help)
// work without a capture connection.
func getCatalog() (*screen.Catalog, error) {
	catalogMu.Lock()
	defer catalogMu.Unlock()

	if catalog != nil {
		return catalog, nil
	}

	backend, err := screen.NewBackend()
	if err != nil {
		return nil, err
	}

	catalog = screen.NewCatalog(backend, screen.DefaultBlocklist())
	return catalog, nil
}

// Cleanup closes the catalog's backend connection if one was opened.
// Called from main during graceful shutdown.
func Cleanup() {
	catalogMu.Lock()
	defer catalogMu.Unlock()

	if catalog != nil {
		_ = catalog.Close()
		catalog = nil
	}
}

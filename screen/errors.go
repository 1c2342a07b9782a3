package screen

import (
	"errors"
	"fmt"
)

// ErrNoMonitor is returned by CaptureScreen when the monitor list is
// empty or the requested monitor id matches nothing. Unlike an unmatched
// window id, this is an error by contract.
var ErrNoMonitor = errors.New("no monitor found")

// EnumerationError wraps a backend window or monitor listing failure.
// It is surfaced immediately and never retried.
type EnumerationError struct {
	Op  string
	Err error
}

func (e *EnumerationError) Error() string {
	return fmt.Sprintf("failed to enumerate %s: %v", e.Op, e.Err)
}

func (e *EnumerationError) Unwrap() error {
	return e.Err
}

// CaptureError wraps a pixel acquisition or image encoding failure on a
// single capture target.
type CaptureError struct {
	Op  string
	Err error
}

func (e *CaptureError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *CaptureError) Unwrap() error {
	return e.Err
}

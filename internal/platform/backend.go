package platform

import (
	"errors"
	"fmt"
)

// WindowID is a platform-neutral window identifier.
type WindowID uint32

// NoWindow is the identifier reported when no window is under the pointer.
const NoWindow WindowID = 0

// Rect describes a rectangular region in screen coordinates.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// ErrClosed is returned by NextEvent once the display connection is gone.
var ErrClosed = errors.New("display connection closed")

// ProtocolError is an error the display server reported asynchronously,
// in reply to a request nobody waited on.
type ProtocolError struct {
	// Resource is the id the failed request referenced. It is only a window
	// when the error is a window error.
	Resource WindowID
	Err      error
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("display protocol error: %v", e.Err)
}

func (e *ProtocolError) Unwrap() error {
	return e.Err
}

// GeometrySource reads the current geometry of a window.
type GeometrySource interface {
	WindowGeometry(windowID WindowID) (Rect, error)
}

// Mover applies a full geometry to a window and flushes it to the server.
type Mover interface {
	MoveResize(windowID WindowID, bounds Rect) error
}

// EventSource yields decoded input events, blocking until one arrives.
type EventSource interface {
	NextEvent() (Event, error)
}

// Backend abstracts the window-system operations used while dragging.
type Backend interface {
	GeometrySource
	Mover
	EventSource
}

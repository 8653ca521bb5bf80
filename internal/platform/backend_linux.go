//go:build linux

package platform

import (
	"fmt"
	"sync"

	"github.com/1broseidon/altdrag/internal/x11"
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
)

// LinuxBackend wraps an existing X11 connection behind the platform Backend interface.
type LinuxBackend struct {
	conn      *x11.Connection
	closeOnce sync.Once
}

var _ Backend = (*LinuxBackend)(nil)

// NewLinuxBackend creates a Linux platform backend from an existing X11 connection.
func NewLinuxBackend(conn *x11.Connection) *LinuxBackend {
	return &LinuxBackend{conn: conn}
}

// NewLinuxBackendFromDisplay creates a new Linux backend by opening a fresh X11 connection.
func NewLinuxBackendFromDisplay(opts x11.Options) (*LinuxBackend, error) {
	conn, err := x11.NewConnection(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X11: %w", err)
	}
	return &LinuxBackend{conn: conn}, nil
}

// Disconnect closes the underlying X11 connection. A NextEvent blocked on
// the connection returns ErrClosed afterwards. It is safe to call more than
// once and from another goroutine.
func (b *LinuxBackend) Disconnect() {
	if b != nil && b.conn != nil {
		b.closeOnce.Do(b.conn.Close)
	}
}

// Connection returns the underlying X11 connection.
func (b *LinuxBackend) Connection() *x11.Connection {
	if b == nil {
		return nil
	}
	return b.conn
}

// XUtil returns the underlying xgbutil connection for X11-specific operations.
func (b *LinuxBackend) XUtil() *xgbutil.XUtil {
	if b == nil || b.conn == nil {
		return nil
	}
	return b.conn.XUtil
}

// RootWindow returns the X11 root window ID.
func (b *LinuxBackend) RootWindow() xproto.Window {
	if b == nil || b.conn == nil {
		return 0
	}
	return b.conn.Root
}

// WindowGeometry returns the current geometry of a window.
func (b *LinuxBackend) WindowGeometry(windowID WindowID) (Rect, error) {
	conn, err := b.connection()
	if err != nil {
		return Rect{}, err
	}

	x, y, w, h, err := conn.WindowGeometry(xproto.Window(windowID))
	if err != nil {
		return Rect{}, err
	}
	return Rect{X: x, Y: y, Width: w, Height: h}, nil
}

// MoveResize moves and resizes a window to the specified bounds and waits
// for the server to process the request.
func (b *LinuxBackend) MoveResize(windowID WindowID, bounds Rect) error {
	conn, err := b.connection()
	if err != nil {
		return err
	}

	return conn.ConfigureWindow(
		xproto.Window(windowID),
		bounds.X,
		bounds.Y,
		bounds.Width,
		bounds.Height,
	)
}

// NextEvent blocks for the next pointer event. Events of other kinds are
// skipped. Asynchronous X errors are returned as *ProtocolError and the
// caller may keep reading.
func (b *LinuxBackend) NextEvent() (Event, error) {
	conn, err := b.connection()
	if err != nil {
		return nil, err
	}

	for {
		xev, xerr := conn.WaitForEvent()
		if xev == nil && xerr == nil {
			return nil, ErrClosed
		}
		if xerr != nil {
			return nil, &ProtocolError{Resource: windowFromError(xerr), Err: xerr}
		}
		if ev, ok := decodeEvent(xev); ok {
			return ev, nil
		}
	}
}

func (b *LinuxBackend) connection() (*x11.Connection, error) {
	if b == nil || b.conn == nil {
		return nil, fmt.Errorf("x11 backend connection is nil")
	}
	return b.conn, nil
}

// decodeEvent is the only place xgb's wire-level event structs are turned
// into Event values. xgb has already stripped the send-event bit from the
// response type when choosing the struct.
func decodeEvent(xev xgb.Event) (Event, bool) {
	switch ev := xev.(type) {
	case xproto.ButtonPressEvent:
		return ButtonPress{
			Child:  WindowID(ev.Child),
			Event:  WindowID(ev.Event),
			Button: uint8(ev.Detail),
			RootX:  int(ev.RootX),
			RootY:  int(ev.RootY),
			State:  ev.State,
		}, true
	case xproto.MotionNotifyEvent:
		return Motion{
			RootX: int(ev.RootX),
			RootY: int(ev.RootY),
			State: ev.State,
		}, true
	case xproto.ButtonReleaseEvent:
		return ButtonRelease{
			Event:  WindowID(ev.Event),
			Button: uint8(ev.Detail),
		}, true
	default:
		return nil, false
	}
}

// windowFromError returns the window a BadWindow or BadDrawable error refers
// to, NoWindow for every other error.
func windowFromError(xerr xgb.Error) WindowID {
	switch xerr.(type) {
	case xproto.WindowError, xproto.DrawableError:
		return WindowID(xerr.BadId())
	default:
		return NoWindow
	}
}

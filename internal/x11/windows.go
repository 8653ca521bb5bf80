package x11

import (
	"fmt"
	"math"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/xwindow"
)

// configureMask selects all four geometry fields of a ConfigureWindow request.
const configureMask = xproto.ConfigWindowX | xproto.ConfigWindowY |
	xproto.ConfigWindowWidth | xproto.ConfigWindowHeight

// WindowGeometry returns the position and size of a window relative to its
// parent. This is a blocking round trip.
func (c *Connection) WindowGeometry(windowID xproto.Window) (x, y, width, height int, err error) {
	geom, err := xwindow.New(c.XUtil, windowID).Geometry()
	if err != nil {
		return 0, 0, 0, 0, fmt.Errorf("failed to get geometry of window 0x%x: %w", uint32(windowID), err)
	}
	return geom.X(), geom.Y(), geom.Width(), geom.Height(), nil
}

// ConfigureWindow sets x, y, width and height of a window in one request and
// waits for the server to acknowledge it, so a window that no longer exists
// is reported here instead of on the event queue.
func (c *Connection) ConfigureWindow(windowID xproto.Window, x, y, width, height int) error {
	values := ConfigureValues(x, y, width, height)
	err := xproto.ConfigureWindowChecked(c.XUtil.Conn(), windowID, uint16(configureMask), values).Check()
	if err != nil {
		return fmt.Errorf("failed to configure window 0x%x: %w", uint32(windowID), err)
	}
	return nil
}

// ConfigureValues encodes a geometry as the value list of a ConfigureWindow
// request. Coordinates are INT16 and sizes CARD16 on the wire, sizes are
// never below 1.
func ConfigureValues(x, y, width, height int) []uint32 {
	return []uint32{
		uint32(int32(clamp(x, math.MinInt16, math.MaxInt16))),
		uint32(int32(clamp(y, math.MinInt16, math.MaxInt16))),
		uint32(clamp(width, 1, math.MaxUint16)),
		uint32(clamp(height, 1, math.MaxUint16)),
	}
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
)

// grabEventMask is what a passive button grab reports: the press that
// activates it, the release that ends it and all motion in between.
const grabEventMask = xproto.EventMaskButtonPress | xproto.EventMaskButtonRelease |
	xproto.EventMaskPointerMotion

// GrabButton registers a passive grab for button+mods on the root window.
// Owner events are on so events carry the real child under the pointer.
// Pointer and keyboard stay asynchronous, with no confine window or cursor.
// The request is checked, so a grab already held by another client fails here.
func (c *Connection) GrabButton(button xproto.Button, mods uint16) error {
	err := xproto.GrabButtonChecked(
		c.XUtil.Conn(),
		true,
		c.Root,
		uint16(grabEventMask),
		xproto.GrabModeAsync,
		xproto.GrabModeAsync,
		xproto.WindowNone,
		xproto.CursorNone,
		byte(button),
		mods,
	).Check()
	if err != nil {
		return fmt.Errorf("failed to grab button %d with modifiers 0x%x: %w", button, mods, err)
	}
	return nil
}

// UngrabButton releases a grab registered with GrabButton.
func (c *Connection) UngrabButton(button xproto.Button, mods uint16) error {
	return xproto.UngrabButtonChecked(c.XUtil.Conn(), byte(button), c.Root, mods).Check()
}

package x11

import (
	"fmt"
	"os"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
)

// Connection manages the X11 connection and core X resources
type Connection struct {
	XUtil *xgbutil.XUtil
	Root  xproto.Window
}

// Options selects the X server to talk to.
type Options struct {
	// Display is the display name (":0"). Empty means $DISPLAY.
	Display string
	// XAuthority, when set, is exported as XAUTHORITY before connecting.
	XAuthority string
}

// NewConnection establishes a connection to the X11 server on the default
// screen and initializes the keyboard mapping used for lock modifier lookup.
func NewConnection(opts Options) (*Connection, error) {
	if opts.XAuthority != "" {
		if err := os.Setenv("XAUTHORITY", opts.XAuthority); err != nil {
			return nil, fmt.Errorf("failed to set XAUTHORITY: %w", err)
		}
	}

	xu, err := xgbutil.NewConnDisplay(opts.Display)
	if err != nil {
		return nil, err
	}

	// Needed by keybind.ModGet when resolving NumLock/ScrollLock masks.
	keybind.Initialize(xu)

	return &Connection{
		XUtil: xu,
		Root:  xu.RootWin(),
	}, nil
}

// Conn returns the raw xgb connection.
func (c *Connection) Conn() *xgb.Conn {
	return c.XUtil.Conn()
}

// Flush forces every pending request out and waits for the server to
// process them.
func (c *Connection) Flush() {
	c.XUtil.Conn().Sync()
}

// WaitForEvent blocks until the server delivers an event or an asynchronous
// error. Both results are nil once the connection is gone.
func (c *Connection) WaitForEvent() (xgb.Event, xgb.Error) {
	return c.XUtil.Conn().WaitForEvent()
}

// Close cleanly disconnects from the X11 server
func (c *Connection) Close() {
	c.XUtil.Conn().Close()
}

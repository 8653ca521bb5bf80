package platform

import "fmt"

// Button state bits carried in pointer events, as defined by the core X
// protocol (Button1 is bit 8, Button5 is bit 12).
const (
	Button1Mask uint16 = 1 << 8
	Button2Mask uint16 = 1 << 9
	Button3Mask uint16 = 1 << 10
	Button4Mask uint16 = 1 << 11
	Button5Mask uint16 = 1 << 12
)

// ButtonMask returns the state bit reported while button is held, or 0 for
// buttons the core protocol does not track.
func ButtonMask(button uint8) uint16 {
	if button < 1 || button > 5 {
		return 0
	}
	return 1 << (7 + uint16(button))
}

// Event is one decoded input event. The set of variants is closed:
// ButtonPress, Motion and ButtonRelease.
type Event interface {
	isEvent()
}

// ButtonPress is reported when a grabbed button goes down.
type ButtonPress struct {
	// Child is the top-level window the press landed on, NoWindow if none.
	Child WindowID
	// Event is the window the event was reported against.
	Event  WindowID
	Button uint8
	RootX  int
	RootY  int
	State  uint16
}

// Motion is reported while the pointer moves during a grab.
type Motion struct {
	RootX int
	RootY int
	// State holds the modifier and button bits in effect before the event.
	State uint16
}

// ButtonRelease is reported when a grabbed button comes up.
type ButtonRelease struct {
	Event  WindowID
	Button uint8
}

func (ButtonPress) isEvent()   {}
func (Motion) isEvent()        {}
func (ButtonRelease) isEvent() {}

func (e ButtonPress) String() string {
	return fmt.Sprintf("ButtonPress{button=%d child=0x%x root=(%d,%d)}", e.Button, uint32(e.Child), e.RootX, e.RootY)
}

func (e Motion) String() string {
	return fmt.Sprintf("Motion{root=(%d,%d) state=0x%x}", e.RootX, e.RootY, e.State)
}

func (e ButtonRelease) String() string {
	return fmt.Sprintf("ButtonRelease{button=%d event=0x%x}", e.Button, uint32(e.Event))
}

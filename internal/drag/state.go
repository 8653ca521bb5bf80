package drag

import "github.com/1broseidon/altdrag/internal/platform"

// Phase represents the current phase of the drag machine
type Phase int

const (
	// PhaseIdle means no drag session exists
	PhaseIdle Phase = iota
	// PhaseDragging means a session is active and motion events reshape its target
	PhaseDragging
)

// String returns the string representation of the phase
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseDragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// Session is one drag, from the press that started it to the next release.
// Target and Baseline never change once the session exists.
type Session struct {
	Target   platform.WindowID
	PressX   int
	PressY   int
	Baseline platform.Rect
	// Button is the button whose press started the session.
	Button uint8
}

// Stats counts what the machine has done since it was created.
type Stats struct {
	Events          int
	SessionsStarted int
	SessionsAborted int
	Reconfigures    int
}
